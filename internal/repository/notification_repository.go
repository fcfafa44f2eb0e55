package repository

import (
	"absensi-backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(note *model.Notification) error
	ListByUser(userID uint) ([]model.Notification, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db}
}

func (r *notificationRepository) Create(note *model.Notification) error {
	return r.db.Create(note).Error
}

func (r *notificationRepository) ListByUser(userID uint) ([]model.Notification, error) {
	var list []model.Notification
	err := r.db.Where("user_id = ?", userID).Order("id desc").Find(&list).Error
	return list, err
}
