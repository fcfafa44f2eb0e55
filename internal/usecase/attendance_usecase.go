package usecase

import (
	"errors"
	"fmt"
	"time"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"
	"absensi-backend/internal/storage"

	"gorm.io/gorm"
)

// Action discriminator untuk endpoint aksi absensi.
const (
	ActionCheckIn  = "checkin"
	ActionBreak    = "break"
	ActionCheckOut = "checkout"
)

type ActionInput struct {
	Action string `json:"action"` // checkin/break/checkout
	Photo  string `json:"photo"`  // data-URI, wajib untuk checkin & checkout
	Date   string `json:"date"`   // opsional, default hari ini
}

type ActionResult struct {
	Message   string            `json:"message"`
	IsHoliday bool              `json:"is_holiday"` // info saja, tidak memblokir absen
	Record    *model.Attendance `json:"record"`
}

// AttendanceUsecase memegang siklus hidup record absensi satu hari:
// checkin -> (break start/end) -> checkout, termasuk akumulasi jam kerja.
type AttendanceUsecase struct {
	repo        repository.AttendanceRepository
	userRepo    repository.UserRepository
	holidayRepo repository.HolidaySettingRepository
	resolver    *SettingResolver
	syncer      *StatusSyncer
	photos      *storage.PhotoStore
	locks       *keyedMutex
	now         func() time.Time
}

func NewAttendanceUsecase(
	repo repository.AttendanceRepository,
	userRepo repository.UserRepository,
	holidayRepo repository.HolidaySettingRepository,
	resolver *SettingResolver,
	syncer *StatusSyncer,
	photos *storage.PhotoStore,
) *AttendanceUsecase {
	return &AttendanceUsecase{
		repo:        repo,
		userRepo:    userRepo,
		holidayRepo: holidayRepo,
		resolver:    resolver,
		syncer:      syncer,
		photos:      photos,
		locks:       newKeyedMutex(),
		now:         time.Now,
	}
}

// Action menjalankan satu aksi absensi. Mutasi per (user, tanggal)
// diserialisasi lewat keyed mutex supaya penolakan "sudah check-in"
// bebas race.
func (u *AttendanceUsecase) Action(userID uint, in ActionInput) (*ActionResult, error) {
	now := u.now()
	today := in.Date
	if today == "" {
		today = now.Format(dateLayout)
	}

	unlock := u.locks.Lock(fmt.Sprintf("%d:%s", userID, today))
	defer unlock()

	record, err := u.fetchOrCreate(userID, today)
	if err != nil {
		return nil, err
	}

	nowTime := now.Format(clockLayout) // dipotong ke detik utuh
	times := u.resolver.AttendanceTimes(userID)

	switch in.Action {
	case ActionCheckIn:
		return u.checkIn(userID, record, in.Photo, today, nowTime, times)
	case ActionBreak:
		return u.toggleBreak(record, nowTime, times)
	case ActionCheckOut:
		return u.checkOut(userID, record, in.Photo, today, nowTime, times)
	default:
		return nil, &ValidationError{Msg: "Aksi tidak dikenal"}
	}
}

// fetchOrCreate idempoten: kalau record hari itu belum ada, dibuat dengan
// status default.
func (u *AttendanceUsecase) fetchOrCreate(userID uint, date string) (*model.Attendance, error) {
	record, err := u.repo.GetByDate(userID, date)
	if err == nil {
		return record, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	record = &model.Attendance{UserID: userID, Date: date, Status: model.StatusHadir}
	if err := u.repo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (u *AttendanceUsecase) checkIn(userID uint, record *model.Attendance, photo, today, nowTime string, times AttendanceTimes) (*ActionResult, error) {
	if record.CheckIn != "" {
		return nil, &ConflictError{Msg: "Anda sudah check-in hari ini"}
	}
	if photo == "" {
		return nil, &ValidationError{Msg: "Foto wajib untuk check-in"}
	}

	path, err := u.photos.Save(photo, fmt.Sprintf("u%d_%s_checkin", userID, today))
	if err != nil {
		if errors.Is(err, storage.ErrInvalidDataURI) {
			return nil, &ValidationError{Msg: "Format foto tidak valid"}
		}
		return nil, err
	}

	// Info hari libur: check-in di hari libur tetap boleh (kerja sukarela),
	// cuma dilaporkan di response.
	isHoliday := u.isUserHoliday(userID, today)

	checkInMinutes := timeToMinutes(nowTime)
	expectedMinutes := timeToMinutes(times.CheckInTime)

	// Klasifikasi keterlambatan. Untuk almostLate/late, jangkar jam kerja
	// mulai dari jam masuk yang ditentukan, bukan dari check-in: menit
	// telatnya dicatat lewat status, bukan lewat pengurangan jam kerja.
	checkInStatus := model.CheckInOnTime
	workStartTime := nowTime
	switch {
	case checkInMinutes < expectedMinutes:
		checkInStatus = model.CheckInEarly
	case checkInMinutes > expectedMinutes:
		if checkInMinutes-expectedMinutes > times.Tolerance {
			checkInStatus = model.CheckInLate
		} else {
			checkInStatus = model.CheckInAlmostLate
		}
		workStartTime = times.CheckInTime
	}

	record.CheckIn = nowTime
	record.CheckInPhotoPath = path
	record.Status = model.StatusHadir // check-in selalu menang atas izin pending
	record.CheckInStatus = checkInStatus
	record.WorkStartTime = workStartTime
	record.WorkHours = 0
	record.BreakDurationMinutes = 0

	if err := u.repo.Update(record); err != nil {
		return nil, err
	}
	return &ActionResult{Message: "Check-in berhasil", IsHoliday: isHoliday, Record: record}, nil
}

func (u *AttendanceUsecase) toggleBreak(record *model.Attendance, nowTime string, times AttendanceTimes) (*ActionResult, error) {
	// Setelah check-out akumulasi sudah berhenti permanen, break tidak
	// boleh dimulai atau diselesaikan lagi.
	if record.CheckOut != "" {
		return nil, &ConflictError{Msg: "Anda sudah check-out hari ini"}
	}

	switch record.Stage() {
	case model.StageOnBreak:
		// Selesai break: catat durasinya, lanjutkan akumulasi jam kerja.
		duration := timeToMinutes(nowTime) - timeToMinutes(record.BreakStart)
		record.BreakEnd = nowTime
		record.BreakDurationMinutes += duration
		record.BreakLate = duration > times.BreakDuration
		record.WorkStartTime = nowTime
		if err := u.repo.Update(record); err != nil {
			return nil, err
		}
		return &ActionResult{Message: "Istirahat selesai", Record: record}, nil

	case model.StageBackFromBreak:
		return nil, &ConflictError{Msg: "Istirahat hari ini sudah selesai"}

	default:
		// Mulai break: setor jam kerja berjalan lalu pause akumulasi.
		if record.WorkStartTime != "" {
			workMinutes := timeToMinutes(nowTime) - timeToMinutes(record.WorkStartTime)
			record.WorkHours += float64(workMinutes) / 60
			record.WorkStartTime = ""
		}
		record.BreakStart = nowTime
		if err := u.repo.Update(record); err != nil {
			return nil, err
		}
		return &ActionResult{Message: "Istirahat dimulai", Record: record}, nil
	}
}

func (u *AttendanceUsecase) checkOut(userID uint, record *model.Attendance, photo, today, nowTime string, times AttendanceTimes) (*ActionResult, error) {
	if record.CheckOut != "" {
		return nil, &ConflictError{Msg: "Anda sudah check-out hari ini"}
	}
	if photo == "" {
		return nil, &ValidationError{Msg: "Foto wajib untuk check-out"}
	}

	path, err := u.photos.Save(photo, fmt.Sprintf("u%d_%s_checkout", userID, today))
	if err != nil {
		if errors.Is(err, storage.ErrInvalidDataURI) {
			return nil, &ValidationError{Msg: "Format foto tidak valid"}
		}
		return nil, err
	}

	// Setor sisa jam kerja berjalan, lalu akumulasi berhenti permanen.
	if record.WorkStartTime != "" {
		workMinutes := timeToMinutes(nowTime) - timeToMinutes(record.WorkStartTime)
		record.WorkHours += float64(workMinutes) / 60
		record.WorkStartTime = ""
	}

	record.CheckOut = nowTime
	record.CheckOutPhotoPath = path
	record.EarlyLeave = timeToMinutes(nowTime) < timeToMinutes(times.CheckOutTime)

	if err := u.repo.Update(record); err != nil {
		return nil, err
	}
	return &ActionResult{Message: "Check-out berhasil", Record: record}, nil
}

func (u *AttendanceUsecase) isUserHoliday(userID uint, date string) bool {
	setting, err := u.holidayRepo.GetActiveByUser(userID)
	if err != nil || setting == nil {
		return false
	}
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return setting.IsHoliday(int(d.Weekday()))
}

// ListForUser: backfill range [max(startDate user, 30 hari lalu), hari ini],
// sinkronkan statusnya dengan leave request, lalu kembalikan riwayat user.
func (u *AttendanceUsecase) ListForUser(userID uint) ([]model.Attendance, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Msg: "User tidak ditemukan"}
		}
		return nil, err
	}

	today := u.now().Format(dateLayout)
	startDate := u.now().AddDate(0, 0, -30).Format(dateLayout)
	if user.StartDate != "" && user.StartDate > startDate {
		startDate = user.StartDate
	}

	if err := u.syncer.Backfill(userID, startDate, today); err != nil {
		return nil, err
	}
	if err := u.syncer.SyncRange(userID, startDate, today); err != nil {
		return nil, err
	}

	return u.repo.ListByUser(userID)
}

// ListAll untuk admin: sinkronkan dulu record yang belum check-in supaya
// statusnya mengikuti keputusan leave terbaru.
func (u *AttendanceUsecase) ListAll() ([]model.Attendance, error) {
	all, err := u.repo.ListAll()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].CheckIn == "" {
			if err := u.syncer.Sync(all[i].UserID, all[i].Date); err != nil {
				return nil, err
			}
		}
	}
	return u.repo.ListAll()
}
