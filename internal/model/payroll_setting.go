package model

import "gorm.io/gorm"

const (
	DeductionPercentage = "percentage" // potongan dihitung % dari gaji pokok
	DeductionFixed      = "fixed"      // potongan nominal tetap
)

// PayrollSetting adalah aturan potongan/bonus gaji per user.
// Nilai deduction dibaca sebagai persen atau nominal tergantung DeductionType.
type PayrollSetting struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"unique;not null"`

	AlphaDeduction      float64 `json:"alpha_deduction" gorm:"default:0"`
	IzinDeduction       float64 `json:"izin_deduction" gorm:"default:0"`
	LateDeduction       float64 `json:"late_deduction" gorm:"default:0"`
	BreakLateDeduction  float64 `json:"break_late_deduction" gorm:"default:0"`
	EarlyLeaveDeduction float64 `json:"early_leave_deduction" gorm:"default:0"`
	NoReportDeduction   float64 `json:"no_report_deduction" gorm:"default:0"`

	// Berapa kali pelanggaran yang masih ditoleransi sebelum kena potongan.
	MaxLateAllowed       int `json:"max_late_allowed" gorm:"default:0"`
	MaxBreakLateAllowed  int `json:"max_break_late_allowed" gorm:"default:0"`
	MaxEarlyLeaveAllowed int `json:"max_early_leave_allowed" gorm:"default:0"`

	DeductionType string `json:"deduction_type" gorm:"default:percentage"` // percentage/fixed

	PerfectAttendanceBonus float64 `json:"perfect_attendance_bonus" gorm:"default:0"`
	AllReportsBonus        float64 `json:"all_reports_bonus" gorm:"default:0"`

	IsActive bool `json:"is_active"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
