package repository

import (
	"absensi-backend/internal/model"

	"gorm.io/gorm"
)

type TimeSettingRepository interface {
	GetByUser(userID uint) (*model.UserTimeSetting, error)
	ListAll() ([]model.UserTimeSetting, error)
	Upsert(setting *model.UserTimeSetting) error
	DeleteByUser(userID uint) error
}

type timeSettingRepository struct {
	db *gorm.DB
}

func NewTimeSettingRepository(db *gorm.DB) TimeSettingRepository {
	return &timeSettingRepository{db}
}

func (r *timeSettingRepository) GetByUser(userID uint) (*model.UserTimeSetting, error) {
	var setting model.UserTimeSetting
	err := r.db.Where("user_id = ?", userID).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *timeSettingRepository) ListAll() ([]model.UserTimeSetting, error) {
	var list []model.UserTimeSetting
	err := r.db.Preload("User").Order("user_id asc").Find(&list).Error
	return list, err
}

// Upsert: satu setting per user, update kalau sudah ada.
func (r *timeSettingRepository) Upsert(setting *model.UserTimeSetting) error {
	var existing model.UserTimeSetting
	err := r.db.Where("user_id = ?", setting.UserID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(setting).Error
	}
	if err != nil {
		return err
	}
	setting.ID = existing.ID
	setting.CreatedAt = existing.CreatedAt
	return r.db.Save(setting).Error
}

func (r *timeSettingRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.UserTimeSetting{}).Error
}
