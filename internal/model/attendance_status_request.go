package model

import "gorm.io/gorm"

// AttendanceStatusRequest adalah pengajuan user untuk koreksi penanda
// absensi satu hari (misal late -> onTime), menunggu keputusan admin.
type AttendanceStatusRequest struct {
	gorm.Model
	AttendanceID    uint   `json:"attendance_id" gorm:"not null"`
	UserID          uint   `json:"user_id" gorm:"not null"`
	CurrentStatus   string `json:"current_status"`
	RequestedStatus string `json:"requested_status"`
	Description     string `json:"description"`
	AdminNote       string `json:"admin_note"`
	Status          string `json:"status" gorm:"default:Pending"` // Pending/Approved/Rejected

	User       User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Attendance Attendance `json:"attendance,omitempty" gorm:"foreignKey:AttendanceID"`
}
