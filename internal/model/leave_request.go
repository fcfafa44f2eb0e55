package model

import "gorm.io/gorm"

const (
	LeaveTypeIzin = "Izin" // izin biasa, tidak memotong jatah cuti
	LeaveTypeCuti = "Cuti" // cuti tahunan, memotong jatah

	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

type LeaveRequest struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"not null"`
	StartDate string `json:"start_date" gorm:"not null"` // YYYY-MM-DD, inklusif
	EndDate   string `json:"end_date" gorm:"not null"`   // YYYY-MM-DD, inklusif
	Reason    string `json:"reason"`
	Type      string `json:"type" gorm:"default:Izin"`      // Izin/Cuti
	Status    string `json:"status" gorm:"default:Pending"` // Pending/Approved/Rejected

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
