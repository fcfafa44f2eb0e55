package model

import "gorm.io/gorm"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleHead  = "head"
)

type User struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"default:user"` // admin/user/head
	Email    string `json:"email"`

	// Data pekerjaan
	EmployeeID  string  `json:"employee_id" gorm:"unique;not null"`
	Position    string  `json:"position"`
	Department  string  `json:"department"`
	StartDate   string  `json:"start_date"` // tanggal mulai kerja, format YYYY-MM-DD
	BasicSalary float64 `json:"basic_salary"`
	Currency    string  `json:"currency" gorm:"default:IDR"`

	ProfilePicture string `json:"profile_picture"`

	// Jatah cuti tahunan
	LeaveQuota      int  `json:"leave_quota" gorm:"default:12"`
	LeaveQuotaOther *int `json:"leave_quota_other"` // override manual, dipakai kalau diisi
	UsedLeaveQuota  int  `json:"used_leave_quota" gorm:"default:0"`
}

// EffectiveLeaveQuota mengembalikan jatah cuti yang berlaku:
// LeaveQuotaOther kalau diisi, kalau tidak LeaveQuota (default 12).
func (u *User) EffectiveLeaveQuota() int {
	if u.LeaveQuotaOther != nil && *u.LeaveQuotaOther > 0 {
		return *u.LeaveQuotaOther
	}
	if u.LeaveQuota > 0 {
		return u.LeaveQuota
	}
	return 12
}
