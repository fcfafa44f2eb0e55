package usecase

import (
	"fmt"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"gorm.io/gorm"
)

type CreateStatusRequestInput struct {
	AttendanceID    uint   `json:"attendance_id"`
	CurrentStatus   string `json:"current_status"`
	RequestedStatus string `json:"requested_status"`
	Description     string `json:"description"`
}

// StatusRequestUsecase mengelola pengajuan koreksi penanda absensi
// (misal late -> onTime) yang butuh persetujuan admin.
type StatusRequestUsecase struct {
	repo           repository.StatusRequestRepository
	attendanceRepo repository.AttendanceRepository
	userRepo       repository.UserRepository
	notifier       *Notifier
}

func NewStatusRequestUsecase(
	repo repository.StatusRequestRepository,
	attendanceRepo repository.AttendanceRepository,
	userRepo repository.UserRepository,
	notifier *Notifier,
) *StatusRequestUsecase {
	return &StatusRequestUsecase{
		repo:           repo,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		notifier:       notifier,
	}
}

func (u *StatusRequestUsecase) Create(userID uint, in CreateStatusRequestInput) (*model.AttendanceStatusRequest, error) {
	if in.AttendanceID == 0 || in.CurrentStatus == "" || in.RequestedStatus == "" || in.Description == "" {
		return nil, &ValidationError{Msg: "Semua field wajib diisi"}
	}

	attendance, err := u.attendanceRepo.GetByID(in.AttendanceID)
	if err != nil || attendance.UserID != userID {
		return nil, &NotFoundError{Msg: "Attendance tidak ditemukan"}
	}

	// Satu pengajuan pending per tanggal per user.
	pending, err := u.repo.ListPendingByUser(userID)
	if err != nil {
		return nil, err
	}
	for _, p := range pending {
		existing, err := u.attendanceRepo.GetByID(p.AttendanceID)
		if err != nil {
			continue
		}
		if existing.Date == attendance.Date {
			return nil, &ConflictError{
				Msg: fmt.Sprintf("Anda sudah membuat request perubahan status absensi untuk tanggal %s. Setiap user hanya dapat membuat 1 request per hari.", attendance.Date),
			}
		}
	}

	req := &model.AttendanceStatusRequest{
		AttendanceID:    in.AttendanceID,
		UserID:          userID,
		CurrentStatus:   in.CurrentStatus,
		RequestedStatus: in.RequestedStatus,
		Description:     in.Description,
		Status:          model.LeaveStatusPending,
	}
	if err := u.repo.Create(req); err != nil {
		return nil, err
	}

	go u.notifyAdmins(userID, attendance.Date, in.CurrentStatus, in.RequestedStatus)
	return req, nil
}

func (u *StatusRequestUsecase) notifyAdmins(userID uint, date, currentStatus, requestedStatus string) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return
	}
	admins, err := u.userRepo.ListByRole(model.RoleAdmin)
	if err != nil {
		return
	}
	body := fmt.Sprintf("%s mengajukan perubahan status absensi tanggal %s. Status: %s -> %s",
		user.Name, date, currentStatus, requestedStatus)
	for _, admin := range admins {
		u.notifier.Notify(admin.ID, "Request Perubahan Status Absensi", body)
	}
}

// Decide memproses pengajuan pending. Kalau disetujui, koreksi yang
// diminta langsung diterapkan ke record absensinya.
func (u *StatusRequestUsecase) Decide(id uint, status, adminNote string) error {
	if status != model.LeaveStatusApproved && status != model.LeaveStatusRejected {
		return &ValidationError{Msg: "Status tidak valid"}
	}

	req, err := u.repo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return &NotFoundError{Msg: "Request tidak ditemukan"}
		}
		return err
	}
	if req.Status != model.LeaveStatusPending {
		return &ValidationError{Msg: "Request sudah diproses"}
	}

	req.Status = status
	req.AdminNote = adminNote
	if err := u.repo.Update(req); err != nil {
		return err
	}

	attendance, err := u.attendanceRepo.GetByID(req.AttendanceID)
	if err != nil {
		return err
	}

	if status == model.LeaveStatusApproved {
		changed := true
		switch req.RequestedStatus {
		case model.CheckInOnTime, model.CheckInAlmostLate, model.CheckInEarly:
			attendance.CheckInStatus = req.RequestedStatus
		case "normal":
			switch req.CurrentStatus {
			case "breakLate":
				attendance.BreakLate = false
			case "earlyLeave":
				attendance.EarlyLeave = false
			default:
				changed = false
			}
		case "onTimeCheckout":
			attendance.EarlyLeave = false
		default:
			changed = false
		}
		if changed {
			if err := u.attendanceRepo.Update(attendance); err != nil {
				return err
			}
		}
	}

	verdict := "ditolak"
	if status == model.LeaveStatusApproved {
		verdict = "disetujui"
	}
	body := fmt.Sprintf("Request perubahan status absensi tanggal %s telah %s.", attendance.Date, verdict)
	if adminNote != "" {
		body += " Catatan: " + adminNote
	}
	go u.notifier.Notify(req.UserID, "Request Perubahan Status "+status, body)

	return nil
}

func (u *StatusRequestUsecase) ListForUser(userID uint) ([]model.AttendanceStatusRequest, error) {
	return u.repo.ListByUser(userID)
}

func (u *StatusRequestUsecase) ListAll() ([]model.AttendanceStatusRequest, error) {
	return u.repo.ListAll()
}

func (u *StatusRequestUsecase) ListPending() ([]model.AttendanceStatusRequest, error) {
	return u.repo.ListPending(0)
}
