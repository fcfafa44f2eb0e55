package model

import (
	"time"

	"gorm.io/gorm"
)

type DailyReport struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_report_user_date"`
	Date        string    `json:"date" gorm:"not null;uniqueIndex:idx_report_user_date"`
	Content     string    `json:"content" gorm:"not null"`
	FilePath    string    `json:"file_path"`
	FileName    string    `json:"file_name"`
	FileType    string    `json:"file_type"` // image atau pdf
	SubmittedAt time.Time `json:"submitted_at"`
	IsLate      bool      `json:"is_late" gorm:"default:false"` // lewat dari reportEndTime

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
