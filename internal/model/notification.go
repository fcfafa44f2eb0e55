package model

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"not null"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}
