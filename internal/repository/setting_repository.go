package repository

import (
	"absensi-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	Get(key string) (string, bool)
	Upsert(key, value string) error
	ListAll() ([]model.Setting, error)
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db}
}

// Get mengembalikan (value, true) kalau key ada. Error DB diperlakukan
// sama dengan key tidak ada: resolver akan jatuh ke tier berikutnya.
func (r *settingRepository) Get(key string) (string, bool) {
	var s model.Setting
	if err := r.db.First(&s, "key = ?", key).Error; err != nil {
		return "", false
	}
	return s.Value, true
}

func (r *settingRepository) Upsert(key, value string) error {
	s := model.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&s).Error
}

func (r *settingRepository) ListAll() ([]model.Setting, error) {
	var list []model.Setting
	err := r.db.Order("key asc").Find(&list).Error
	return list, err
}
