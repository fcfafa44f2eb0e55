package repository

import (
	"absensi-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(att *model.Attendance) error
	Update(att *model.Attendance) error
	Delete(id uint) error
	GetByID(id uint) (*model.Attendance, error)
	GetByDate(userID uint, date string) (*model.Attendance, error)
	ListByUser(userID uint) ([]model.Attendance, error)
	ListByUserBetween(userID uint, startDate, endDate string) ([]model.Attendance, error)
	ListAll() ([]model.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(att *model.Attendance) error {
	return r.db.Create(att).Error
}

func (r *attendanceRepository) Update(att *model.Attendance) error {
	return r.db.Save(att).Error
}

func (r *attendanceRepository) Delete(id uint) error {
	return r.db.Delete(&model.Attendance{}, id).Error
}

func (r *attendanceRepository) GetByID(id uint) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.First(&att, id).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) GetByDate(userID uint, date string) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepository) ListByUser(userID uint) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.Where("user_id = ?", userID).Order("date desc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) ListByUserBetween(userID uint, startDate, endDate string) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("date asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) ListAll() ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.Preload("User").Order("date desc").Find(&list).Error
	return list, err
}
