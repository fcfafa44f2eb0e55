package repository

import (
	"absensi-backend/internal/model"

	"gorm.io/gorm"
)

type DailyReportRepository interface {
	Create(report *model.DailyReport) error
	Update(report *model.DailyReport) error
	GetByDate(userID uint, date string) (*model.DailyReport, error)
	ListByUser(userID uint) ([]model.DailyReport, error)
	ListAll() ([]model.DailyReport, error)
	ListByUserBetween(userID uint, startDate, endDate string) ([]model.DailyReport, error)
	CountByUserBetween(userID uint, startDate, endDate string) (int64, error)
}

type dailyReportRepository struct {
	db *gorm.DB
}

func NewDailyReportRepository(db *gorm.DB) DailyReportRepository {
	return &dailyReportRepository{db}
}

func (r *dailyReportRepository) Create(report *model.DailyReport) error {
	return r.db.Create(report).Error
}

func (r *dailyReportRepository) Update(report *model.DailyReport) error {
	return r.db.Save(report).Error
}

func (r *dailyReportRepository) GetByDate(userID uint, date string) (*model.DailyReport, error) {
	var report model.DailyReport
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *dailyReportRepository) ListByUser(userID uint) ([]model.DailyReport, error) {
	var list []model.DailyReport
	err := r.db.Where("user_id = ?", userID).
		Order("date desc, submitted_at desc").Find(&list).Error
	return list, err
}

func (r *dailyReportRepository) ListAll() ([]model.DailyReport, error) {
	var list []model.DailyReport
	err := r.db.Preload("User").Order("date desc, submitted_at desc").Find(&list).Error
	return list, err
}

func (r *dailyReportRepository) ListByUserBetween(userID uint, startDate, endDate string) ([]model.DailyReport, error) {
	var list []model.DailyReport
	err := r.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).Find(&list).Error
	return list, err
}

func (r *dailyReportRepository) CountByUserBetween(userID uint, startDate, endDate string) (int64, error) {
	var count int64
	err := r.db.Model(&model.DailyReport{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).Count(&count).Error
	return count, err
}
