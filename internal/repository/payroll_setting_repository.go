package repository

import (
	"absensi-backend/internal/model"

	"gorm.io/gorm"
)

type PayrollSettingRepository interface {
	GetByUser(userID uint) (*model.PayrollSetting, error)
	ListAll() ([]model.PayrollSetting, error)
	Upsert(setting *model.PayrollSetting) error
}

type payrollSettingRepository struct {
	db *gorm.DB
}

func NewPayrollSettingRepository(db *gorm.DB) PayrollSettingRepository {
	return &payrollSettingRepository{db}
}

func (r *payrollSettingRepository) GetByUser(userID uint) (*model.PayrollSetting, error) {
	var setting model.PayrollSetting
	err := r.db.Where("user_id = ?", userID).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *payrollSettingRepository) ListAll() ([]model.PayrollSetting, error) {
	var list []model.PayrollSetting
	err := r.db.Preload("User").Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *payrollSettingRepository) Upsert(setting *model.PayrollSetting) error {
	var existing model.PayrollSetting
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
