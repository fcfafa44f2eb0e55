package repository

import (
	"absensi-backend/internal/model"

	"gorm.io/gorm"
)

type HolidaySettingRepository interface {
	GetActiveByUser(userID uint) (*model.UserHolidaySetting, error)
	ListAll() ([]model.UserHolidaySetting, error)
	Upsert(setting *model.UserHolidaySetting) error
	DeleteByUser(userID uint) error
}

type holidaySettingRepository struct {
	db *gorm.DB
}

func NewHolidaySettingRepository(db *gorm.DB) HolidaySettingRepository {
	return &holidaySettingRepository{db}
}

// GetActiveByUser mengembalikan (nil, nil) kalau user tidak punya setting
// aktif: artinya user kerja setiap hari.
func (r *holidaySettingRepository) GetActiveByUser(userID uint) (*model.UserHolidaySetting, error) {
	var setting model.UserHolidaySetting
	err := r.db.Where("user_id = ? AND is_active = ?", userID, true).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *holidaySettingRepository) ListAll() ([]model.UserHolidaySetting, error) {
	var list []model.UserHolidaySetting
	err := r.db.Preload("User").Order("user_id asc").Find(&list).Error
	return list, err
}

func (r *holidaySettingRepository) Upsert(setting *model.UserHolidaySetting) error {
	var existing model.UserHolidaySetting
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

func (r *holidaySettingRepository) DeleteByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.UserHolidaySetting{}).Error
}
