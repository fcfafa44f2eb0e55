package repository

import (
	"absensi-backend/internal/model"

	"gorm.io/gorm"
)

type StatusRequestRepository interface {
	Create(req *model.AttendanceStatusRequest) error
	Update(req *model.AttendanceStatusRequest) error
	GetByID(id uint) (*model.AttendanceStatusRequest, error)
	ListByUser(userID uint) ([]model.AttendanceStatusRequest, error)
	ListAll() ([]model.AttendanceStatusRequest, error)
	ListPending(limit int) ([]model.AttendanceStatusRequest, error)
	ListPendingByUser(userID uint) ([]model.AttendanceStatusRequest, error)
}

type statusRequestRepository struct {
	db *gorm.DB
}

func NewStatusRequestRepository(db *gorm.DB) StatusRequestRepository {
	return &statusRequestRepository{db}
}

func (r *statusRequestRepository) Create(req *model.AttendanceStatusRequest) error {
	return r.db.Create(req).Error
}

func (r *statusRequestRepository) Update(req *model.AttendanceStatusRequest) error {
	return r.db.Save(req).Error
}

func (r *statusRequestRepository) GetByID(id uint) (*model.AttendanceStatusRequest, error) {
	var req model.AttendanceStatusRequest
	err := r.db.Preload("Attendance").First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *statusRequestRepository) ListByUser(userID uint) ([]model.AttendanceStatusRequest, error) {
	var list []model.AttendanceStatusRequest
	err := r.db.Preload("Attendance").Where("user_id = ?", userID).
		Order("id desc").Find(&list).Error
	return list, err
}

func (r *statusRequestRepository) ListAll() ([]model.AttendanceStatusRequest, error) {
	var list []model.AttendanceStatusRequest
	err := r.db.Preload("User").Preload("Attendance").Order("id desc").Find(&list).Error
	return list, err
}

func (r *statusRequestRepository) ListPending(limit int) ([]model.AttendanceStatusRequest, error) {
	// limit <= 0 berarti pakai default 10 entri terbaru.
	if limit <= 0 {
		limit = 10
	}
	var list []model.AttendanceStatusRequest
	err := r.db.Preload("User").Preload("Attendance").
		Where("status = ?", "Pending").Order("created_at desc").Limit(limit).Find(&list).Error
	return list, err
}

func (r *statusRequestRepository) ListPendingByUser(userID uint) ([]model.AttendanceStatusRequest, error) {
	var list []model.AttendanceStatusRequest
	err := r.db.Preload("Attendance").
		Where("user_id = ? AND status = ?", userID, "Pending").Find(&list).Error
	return list, err
}
