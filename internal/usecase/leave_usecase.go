package usecase

import (
	"fmt"
	"time"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"gorm.io/gorm"
)

type CreateLeaveInput struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Type      string `json:"type"` // Izin/Cuti, default Izin
}

// LeaveUsecase mengelola pengajuan izin/cuti dan buku besar jatah cuti.
// Mutasi UsedLeaveQuota selalu di dalam transaksi bersama perubahan
// status pengajuan supaya keduanya tidak pernah berpisah.
type LeaveUsecase struct {
	db       *gorm.DB
	repo     repository.LeaveRequestRepository
	userRepo repository.UserRepository
	syncer   *StatusSyncer
	notifier *Notifier
	now      func() time.Time
}

func NewLeaveUsecase(
	db *gorm.DB,
	repo repository.LeaveRequestRepository,
	userRepo repository.UserRepository,
	syncer *StatusSyncer,
	notifier *Notifier,
) *LeaveUsecase {
	return &LeaveUsecase{
		db:       db,
		repo:     repo,
		userRepo: userRepo,
		syncer:   syncer,
		notifier: notifier,
		now:      time.Now,
	}
}

func (u *LeaveUsecase) Create(userID uint, in CreateLeaveInput) (*model.LeaveRequest, error) {
	if in.StartDate == "" || in.EndDate == "" {
		return nil, &ValidationError{Msg: "Tanggal mulai dan selesai wajib diisi"}
	}
	if _, err := time.Parse(dateLayout, in.StartDate); err != nil {
		return nil, &ValidationError{Msg: "Format tanggal mulai tidak valid"}
	}
	if _, err := time.Parse(dateLayout, in.EndDate); err != nil {
		return nil, &ValidationError{Msg: "Format tanggal selesai tidak valid"}
	}
	if in.EndDate < in.StartDate {
		return nil, &ValidationError{Msg: "Tanggal selesai sebelum tanggal mulai"}
	}

	leaveType := in.Type
	if leaveType == "" {
		leaveType = model.LeaveTypeIzin
	}
	if leaveType != model.LeaveTypeIzin && leaveType != model.LeaveTypeCuti {
		return nil, &ValidationError{Msg: "Jenis pengajuan tidak dikenal"}
	}

	// Pre-check jatah untuk Cuti. Pengecekan final tetap dilakukan lagi
	// saat approval, di dalam transaksi.
	if leaveType == model.LeaveTypeCuti {
		user, err := u.userRepo.FindByID(userID)
		if err != nil {
			return nil, err
		}
		days, err := daysBetween(in.StartDate, in.EndDate)
		if err != nil {
			return nil, err
		}
		remaining := user.EffectiveLeaveQuota() - user.UsedLeaveQuota
		if days > remaining {
			return nil, &QuotaExceededError{
				Msg: fmt.Sprintf("Jatah cuti tidak cukup: butuh %d hari, sisa %d", days, remaining),
			}
		}
	}

	req := &model.LeaveRequest{
		UserID:    userID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    in.Reason,
		Type:      leaveType,
		Status:    model.LeaveStatusPending,
	}
	if err := u.repo.Create(req); err != nil {
		return nil, err
	}

	go u.notifyAdmins(req)
	return req, nil
}

func (u *LeaveUsecase) notifyAdmins(req *model.LeaveRequest) {
	admins, err := u.userRepo.ListByRole(model.RoleAdmin)
	if err != nil {
		return
	}
	body := fmt.Sprintf("Pengajuan %s baru untuk %s s/d %s", req.Type, req.StartDate, req.EndDate)
	for _, admin := range admins {
		u.notifier.Notify(admin.ID, "Pengajuan izin/cuti baru", body)
	}
}

// UpdateStatus mengubah status pengajuan dan menyelaraskan jatah cuti.
// Approve Cuti memotong jatah, membatalkan approval mengembalikannya
// (tidak pernah di bawah nol). Setelah commit, status absensi di rentang
// pengajuan disinkronkan ulang.
func (u *LeaveUsecase) UpdateStatus(id uint, newStatus string) (*model.LeaveRequest, error) {
	if newStatus != model.LeaveStatusApproved && newStatus != model.LeaveStatusRejected && newStatus != model.LeaveStatusPending {
		return nil, &ValidationError{Msg: "Status tidak dikenal"}
	}

	req, err := u.repo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Msg: "Pengajuan tidak ditemukan"}
		}
		return nil, err
	}
	if req.Status == newStatus {
		return req, nil
	}

	oldStatus := req.Status
	err = u.db.Transaction(func(tx *gorm.DB) error {
		if req.Type == model.LeaveTypeCuti {
			var user model.User
			if err := tx.First(&user, req.UserID).Error; err != nil {
				return err
			}
			days, err := daysBetween(req.StartDate, req.EndDate)
			if err != nil {
				return err
			}

			switch {
			case oldStatus != model.LeaveStatusApproved && newStatus == model.LeaveStatusApproved:
				remaining := user.EffectiveLeaveQuota() - user.UsedLeaveQuota
				if days > remaining {
					return &QuotaExceededError{
						Msg: fmt.Sprintf("Jatah cuti tidak cukup: butuh %d hari, sisa %d", days, remaining),
					}
				}
				user.UsedLeaveQuota += days
			case oldStatus == model.LeaveStatusApproved && newStatus != model.LeaveStatusApproved:
				user.UsedLeaveQuota -= days
				if user.UsedLeaveQuota < 0 {
					user.UsedLeaveQuota = 0
				}
			}
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}

		req.Status = newStatus
		return tx.Save(req).Error
	})
	if err != nil {
		return nil, err
	}

	// Keputusan langsung tercermin di kalender absensi user.
	if err := u.syncer.SyncRange(req.UserID, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	go u.notifier.Notify(req.UserID, "Pengajuan izin/cuti diperbarui",
		fmt.Sprintf("Pengajuan %s %s s/d %s: %s", req.Type, req.StartDate, req.EndDate, newStatus))

	return req, nil
}

func (u *LeaveUsecase) ListForUser(userID uint) ([]model.LeaveRequest, error) {
	return u.repo.ListByUser(userID)
}

func (u *LeaveUsecase) ListAll() ([]model.LeaveRequest, error) {
	return u.repo.ListAll()
}

func (u *LeaveUsecase) ListPending(limit int) ([]model.LeaveRequest, error) {
	return u.repo.ListPending(limit)
}
