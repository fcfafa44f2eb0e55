package usecase

import (
	"strconv"

	"absensi-backend/internal/repository"
)

// Default jam kerja kalau tidak ada setting sama sekali.
const (
	defaultCheckInTime    = "08:00"
	defaultCheckOutTime   = "17:00"
	defaultBreakStartTime = "12:00"
	defaultBreakEndTime   = "13:00"
	defaultTolerance      = 15 // menit
	defaultBreakDuration  = 60 // menit

	defaultReportStartTime = "08:00"
	defaultReportEndTime   = "18:00"
	defaultReportFrequency = "daily"
)

type AttendanceTimes struct {
	CheckInTime    string
	CheckOutTime   string
	BreakStartTime string
	BreakEndTime   string
	Tolerance      int // menit
	BreakDuration  int // menit
}

type ReportTimes struct {
	StartTime string
	EndTime   string
	Frequency string // daily atau weekly
}

// SettingResolver menentukan jam kerja efektif untuk satu user dengan
// urutan: UserTimeSetting aktif -> tabel settings global -> default.
// Lookup yang gagal diam-diam jatuh ke tier berikutnya, tidak pernah error.
type SettingResolver struct {
	timeSettingRepo repository.TimeSettingRepository
	settingRepo     repository.SettingRepository
}

func NewSettingResolver(timeSettingRepo repository.TimeSettingRepository, settingRepo repository.SettingRepository) *SettingResolver {
	return &SettingResolver{timeSettingRepo: timeSettingRepo, settingRepo: settingRepo}
}

func (r *SettingResolver) AttendanceTimes(userID uint) AttendanceTimes {
	times := AttendanceTimes{
		CheckInTime:    defaultCheckInTime,
		CheckOutTime:   defaultCheckOutTime,
		BreakStartTime: defaultBreakStartTime,
		BreakEndTime:   defaultBreakEndTime,
		Tolerance:      defaultTolerance,
		BreakDuration:  defaultBreakDuration,
	}

	// Tier global: tiap key dibaca sendiri-sendiri
	if v, ok := r.settingRepo.Get("checkInTime"); ok && v != "" {
		times.CheckInTime = v
	}
	if v, ok := r.settingRepo.Get("checkOutTime"); ok && v != "" {
		times.CheckOutTime = v
	}
	if v, ok := r.settingRepo.Get("breakStartTime"); ok && v != "" {
		times.BreakStartTime = v
	}
	if v, ok := r.settingRepo.Get("breakEndTime"); ok && v != "" {
		times.BreakEndTime = v
	}
	if v, ok := r.settingRepo.Get("checkInTolerance"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			times.Tolerance = n
		}
	}
	if v, ok := r.settingRepo.Get("breakDuration"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			times.BreakDuration = n
		}
	}

	// Tier per-user: override penuh kalau ada dan aktif
	if setting, err := r.timeSettingRepo.GetByUser(userID); err == nil && setting.IsActive {
		times.CheckInTime = setting.CheckInTime
		times.CheckOutTime = setting.CheckOutTime
		times.BreakStartTime = setting.BreakStartTime
		times.BreakEndTime = setting.BreakEndTime
		times.Tolerance = setting.CheckInTolerance
		times.BreakDuration = setting.BreakDuration
	}

	return times
}

func (r *SettingResolver) ReportTimes() ReportTimes {
	times := ReportTimes{
		StartTime: defaultReportStartTime,
		EndTime:   defaultReportEndTime,
		Frequency: defaultReportFrequency,
	}
	if v, ok := r.settingRepo.Get("reportStartTime"); ok && v != "" {
		times.StartTime = v
	}
	if v, ok := r.settingRepo.Get("reportEndTime"); ok && v != "" {
		times.EndTime = v
	}
	if v, ok := r.settingRepo.Get("reportFrequency"); ok && v != "" {
		times.Frequency = v
	}
	return times
}

// DailyRate membaca tarif harian untuk payroll sederhana, default 100000.
func (r *SettingResolver) DailyRate() float64 {
	if v, ok := r.settingRepo.Get("dailyRate"); ok {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			return rate
		}
	}
	return 100000
}
