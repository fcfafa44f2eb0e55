package usecase

import (
	"time"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"gorm.io/gorm"
)

// StatusSyncer menjaga Attendance.status tetap konsisten dengan leave
// request yang disetujui, dan mengisi record hari-hari yang bolong.
type StatusSyncer struct {
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRequestRepository
	now            func() time.Time
}

func NewStatusSyncer(attendanceRepo repository.AttendanceRepository, leaveRepo repository.LeaveRequestRepository) *StatusSyncer {
	return &StatusSyncer{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		now:            time.Now,
	}
}

// DetermineStatus menentukan status absensi satu hari:
//  1. Sudah check-in -> selalu Hadir, apapun data lainnya.
//  2. Hari ini/masa depan -> Izin kalau ada leave Approved yang mencakup
//     tanggal itu, kalau tidak Hadir sebagai placeholder (hari belum lewat,
//     belum bisa disebut Alfa).
//  3. Masa lalu -> Izin kalau ada leave Approved, kalau tidak Alfa.
//
// Izin dan Cuti dua-duanya tampil sebagai status Izin.
func (s *StatusSyncer) DetermineStatus(userID uint, date string, hasCheckedIn bool) (string, error) {
	if hasCheckedIn {
		return model.StatusHadir, nil
	}

	leave, err := s.leaveRepo.FindApprovedCovering(userID, date)
	if err != nil {
		return "", err
	}

	today := s.now().Format(dateLayout)
	if date >= today { // string ISO bisa dibandingkan langsung
		if leave != nil {
			return model.StatusIzin, nil
		}
		return model.StatusHadir, nil
	}

	if leave != nil {
		return model.StatusIzin, nil
	}
	return model.StatusAlfa, nil
}

// Backfill membuat record absensi untuk tanggal-tanggal di range inklusif
// yang belum punya record. Idempoten: record yang sudah ada tidak disentuh.
func (s *StatusSyncer) Backfill(userID uint, startDate, endDate string) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return &ValidationError{Msg: "Format tanggal harus YYYY-MM-DD"}
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return &ValidationError{Msg: "Format tanggal harus YYYY-MM-DD"}
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(dateLayout)
		_, err := s.attendanceRepo.GetByDate(userID, dateStr)
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		status, err := s.DetermineStatus(userID, dateStr, false)
		if err != nil {
			return err
		}
		if err := s.attendanceRepo.Create(&model.Attendance{
			UserID: userID,
			Date:   dateStr,
			Status: status,
		}); err != nil {
			return err
		}
	}
	return nil
}

// Sync menghitung ulang status record yang sudah ada. No-op kalau record
// tidak ada atau user sudah check-in (check-in bersifat final).
func (s *StatusSyncer) Sync(userID uint, date string) error {
	att, err := s.attendanceRepo.GetByDate(userID, date)
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	if att.CheckIn != "" {
		return nil
	}

	status, err := s.DetermineStatus(userID, date, false)
	if err != nil {
		return err
	}
	if att.Status != status {
		att.Status = status
		return s.attendanceRepo.Update(att)
	}
	return nil
}

// SyncRange menjalankan Sync untuk tiap tanggal di range inklusif, dipakai
// saat status leave request berubah.
func (s *StatusSyncer) SyncRange(userID uint, startDate, endDate string) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return &ValidationError{Msg: "Format tanggal harus YYYY-MM-DD"}
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return &ValidationError{Msg: "Format tanggal harus YYYY-MM-DD"}
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if err := s.Sync(userID, d.Format(dateLayout)); err != nil {
			return err
		}
	}
	return nil
}
