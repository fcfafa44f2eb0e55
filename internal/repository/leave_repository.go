package repository

import (
	"absensi-backend/internal/model"

	"gorm.io/gorm"
)

type LeaveRequestRepository interface {
	Create(req *model.LeaveRequest) error
	Update(req *model.LeaveRequest) error
	GetByID(id uint) (*model.LeaveRequest, error)
	ListByUser(userID uint) ([]model.LeaveRequest, error)
	ListAll() ([]model.LeaveRequest, error)
	ListPending(limit int) ([]model.LeaveRequest, error)
	FindApprovedCovering(userID uint, date string) (*model.LeaveRequest, error)
	ListApprovedByTypeStarting(userID uint, leaveType, startDate, endDate string) ([]model.LeaveRequest, error)
}

type leaveRequestRepository struct {
	db *gorm.DB
}

func NewLeaveRequestRepository(db *gorm.DB) LeaveRequestRepository {
	return &leaveRequestRepository{db}
}

func (r *leaveRequestRepository) Create(req *model.LeaveRequest) error {
	return r.db.Create(req).Error
}

func (r *leaveRequestRepository) Update(req *model.LeaveRequest) error {
	return r.db.Save(req).Error
}

func (r *leaveRequestRepository) GetByID(id uint) (*model.LeaveRequest, error) {
	var req model.LeaveRequest
	err := r.db.First(&req, id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *leaveRequestRepository) ListByUser(userID uint) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *leaveRequestRepository) ListAll() ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Preload("User").Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *leaveRequestRepository) ListPending(limit int) ([]model.LeaveRequest, error) {
	// limit <= 0 berarti pakai default 10 entri terbaru.
	if limit <= 0 {
		limit = 10
	}
	var list []model.LeaveRequest
	err := r.db.Preload("User").Where("status = ?", model.LeaveStatusPending).
		Order("created_at desc").Limit(limit).Find(&list).Error
	return list, err
}

// FindApprovedCovering mencari request Approved yang range tanggalnya
// mencakup date. Mengembalikan (nil, nil) kalau tidak ada.
func (r *leaveRequestRepository) FindApprovedCovering(userID uint, date string) (*model.LeaveRequest, error) {
	var req model.LeaveRequest
	err := r.db.Where("user_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
		userID, model.LeaveStatusApproved, date, date).First(&req).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *leaveRequestRepository) ListApprovedByTypeStarting(userID uint, leaveType, startDate, endDate string) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Where("user_id = ? AND type = ? AND status = ? AND start_date BETWEEN ? AND ?",
		userID, leaveType, model.LeaveStatusApproved, startDate, endDate).Find(&list).Error
	return list, err
}
