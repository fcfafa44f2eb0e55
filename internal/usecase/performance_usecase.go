package usecase

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"gorm.io/gorm"
)

const (
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

type KPIMetrics struct {
	TotalWorkHours  float64 `json:"total_work_hours"`
	PresentDays     int     `json:"present_days"`
	IzinCount       int     `json:"izin_count"`
	CutiCount       int     `json:"cuti_count"`
	ReportCount     int     `json:"report_count"`
	ExpectedReports int     `json:"expected_reports"`
	ReportFrequency string  `json:"report_frequency"`
}

type KPIBreakdown struct {
	WorkHoursScore float64 `json:"work_hours_score"`
	ReportsScore   float64 `json:"reports_score"`
	IzinPenalty    float64 `json:"izin_penalty"`
	CutiPenalty    float64 `json:"cuti_penalty"`
}

type UserKPI struct {
	UserID         uint         `json:"user_id"`
	Name           string       `json:"name"`
	Username       string       `json:"username"`
	EmployeeID     string       `json:"employee_id"`
	Position       string       `json:"position"`
	Department     string       `json:"department"`
	Mode           string       `json:"mode"`
	Period         string       `json:"period"`
	Metrics        KPIMetrics   `json:"metrics"`
	KPIScore       float64      `json:"kpi_score"`
	Breakdown      KPIBreakdown `json:"breakdown"`
	IsBelowAverage bool         `json:"is_below_average"`
	Warning        string       `json:"warning,omitempty"`
}

type KPIReport struct {
	Mode       string    `json:"mode"`
	Period     string    `json:"period"`
	AverageKPI float64   `json:"average_kpi"`
	Users      []UserKPI `json:"users"`
}

// PerformanceUsecase menghitung skor KPI 0-100 per user per periode:
// 40% jam kerja, 30% laporan harian, 15% penalti izin, 15% penalti cuti.
type PerformanceUsecase struct {
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRequestRepository
	reportRepo     repository.DailyReportRepository
	userRepo       repository.UserRepository
	resolver       *SettingResolver
	now            func() time.Time
}

func NewPerformanceUsecase(
	attendanceRepo repository.AttendanceRepository,
	leaveRepo repository.LeaveRequestRepository,
	reportRepo repository.DailyReportRepository,
	userRepo repository.UserRepository,
	resolver *SettingResolver,
) *PerformanceUsecase {
	return &PerformanceUsecase{
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		reportRepo:     reportRepo,
		userRepo:       userRepo,
		resolver:       resolver,
		now:            time.Now,
	}
}

// resolvePeriod menerjemahkan (mode, month, year) jadi rentang tanggal.
// Parameter kosong berarti periode berjalan.
func (u *PerformanceUsecase) resolvePeriod(mode, month, year string) (startDate, endDate, label string, totalDays int, err error) {
	if mode == "" {
		mode = PeriodMonthly
	}
	switch mode {
	case PeriodYearly:
		if year == "" {
			year = strconv.Itoa(u.now().Year())
		}
		startDate, endDate, totalDays, err = yearRange(year)
		return startDate, endDate, year, totalDays, err
	case PeriodMonthly:
		if month == "" {
			month = u.now().Format(monthLayout)
		}
		startDate, endDate, totalDays, err = monthRange(month)
		return startDate, endDate, month, totalDays, err
	default:
		return "", "", "", 0, &ValidationError{Msg: "Mode harus monthly atau yearly"}
	}
}

// leaveDays menghitung pemakaian izin/cuti di periode. Bulanan menghitung
// jumlah pengajuan, tahunan menghitung total harinya.
func (u *PerformanceUsecase) leaveDays(userID uint, leaveType, startDate, endDate, mode string) (int, error) {
	requests, err := u.leaveRepo.ListApprovedByTypeStarting(userID, leaveType, startDate, endDate)
	if err != nil {
		return 0, err
	}
	if mode != PeriodYearly {
		return len(requests), nil
	}
	total := 0
	for _, req := range requests {
		days, err := daysBetween(req.StartDate, req.EndDate)
		if err != nil {
			continue
		}
		total += days
	}
	return total, nil
}

func (u *PerformanceUsecase) scoreUser(user *model.User, mode, label, startDate, endDate string, totalDays int) (*UserKPI, error) {
	attendances, err := u.attendanceRepo.ListByUserBetween(user.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var totalWorkHours float64
	presentDays := 0
	for _, a := range attendances {
		if a.CheckIn != "" && a.CheckOut != "" && a.Status == model.StatusHadir {
			totalWorkHours += workHoursOf(&a)
			presentDays++
		}
	}

	izinCount, err := u.leaveDays(user.ID, model.LeaveTypeIzin, startDate, endDate, mode)
	if err != nil {
		return nil, err
	}
	cutiCount, err := u.leaveDays(user.ID, model.LeaveTypeCuti, startDate, endDate, mode)
	if err != nil {
		return nil, err
	}

	reportCount, err := u.reportRepo.CountByUserBetween(user.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	frequency := u.resolver.ReportTimes().Frequency

	expectedWorkHours := float64(presentDays) * 8
	workHoursScore := 0.0
	if expectedWorkHours > 0 {
		workHoursScore = math.Min(100, totalWorkHours/expectedWorkHours*100)
	}

	expectedReports := presentDays
	if frequency == "weekly" {
		if mode == PeriodYearly {
			expectedReports = 52
			if y, err := strconv.Atoi(label); err == nil && isLeapYear(y) {
				expectedReports = 53
			}
		} else {
			expectedReports = int(math.Ceil(float64(totalDays) / 7))
		}
	}

	reportsScore := 0.0
	if expectedReports > 0 {
		reportsScore = math.Min(100, float64(reportCount)/float64(expectedReports)*100)
	}

	izinPenalty := math.Max(0, 100-float64(izinCount)/float64(totalDays)*100)
	cutiPenalty := math.Max(0, 100-float64(cutiCount)/float64(totalDays)*100)

	score := workHoursScore*0.40 + reportsScore*0.30 + izinPenalty*0.15 + cutiPenalty*0.15

	return &UserKPI{
		UserID:     user.ID,
		Name:       user.Name,
		Username:   user.Username,
		EmployeeID: user.EmployeeID,
		Position:   user.Position,
		Department: user.Department,
		Mode:       mode,
		Period:     label,
		Metrics: KPIMetrics{
			TotalWorkHours:  round2(totalWorkHours),
			PresentDays:     presentDays,
			IzinCount:       izinCount,
			CutiCount:       cutiCount,
			ReportCount:     int(reportCount),
			ExpectedReports: expectedReports,
			ReportFrequency: frequency,
		},
		KPIScore: round2(score),
		Breakdown: KPIBreakdown{
			WorkHoursScore: round2(workHoursScore),
			ReportsScore:   round2(reportsScore),
			IzinPenalty:    round2(izinPenalty),
			CutiPenalty:    round2(cutiPenalty),
		},
	}, nil
}

// ScoreUser menghitung KPI satu user.
func (u *PerformanceUsecase) ScoreUser(userID uint, mode, month, year string) (*UserKPI, error) {
	if mode == "" {
		mode = PeriodMonthly
	}
	startDate, endDate, label, totalDays, err := u.resolvePeriod(mode, month, year)
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Msg: "User tidak ditemukan"}
		}
		return nil, err
	}
	return u.scoreUser(user, mode, label, startDate, endDate, totalDays)
}

// ScoreAll menghitung KPI semua user berrole "user", menandai yang di
// bawah rata-rata, dan mengurutkan dari skor tertinggi.
func (u *PerformanceUsecase) ScoreAll(mode, month, year string) (*KPIReport, error) {
	if mode == "" {
		mode = PeriodMonthly
	}
	startDate, endDate, label, totalDays, err := u.resolvePeriod(mode, month, year)
	if err != nil {
		return nil, err
	}

	users, err := u.userRepo.ListByRole(model.RoleUser)
	if err != nil {
		return nil, err
	}

	results := make([]UserKPI, 0, len(users))
	var sum float64
	for i := range users {
		kpi, err := u.scoreUser(&users[i], mode, label, startDate, endDate, totalDays)
		if err != nil {
			return nil, err
		}
		sum += kpi.KPIScore
		results = append(results, *kpi)
	}

	var avg float64
	if len(results) > 0 {
		avg = sum / float64(len(results))
	}
	for i := range results {
		if results[i].KPIScore < avg {
			results[i].IsBelowAverage = true
			results[i].Warning = fmt.Sprintf("KPI di bawah rata-rata (%.2f)", round2(avg))
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].KPIScore > results[j].KPIScore })

	return &KPIReport{
		Mode:       mode,
		Period:     label,
		AverageKPI: round2(avg),
		Users:      results,
	}, nil
}

// workHoursOf memakai workHours yang sudah terakumulasi; kalau belum ada,
// jatuh ke selisih kasar checkIn-checkOut (data lama).
func workHoursOf(a *model.Attendance) float64 {
	if a.WorkHours > 0 {
		return a.WorkHours
	}
	if a.CheckIn != "" && a.CheckOut != "" {
		return float64(timeToMinutes(a.CheckOut)-timeToMinutes(a.CheckIn)) / 60
	}
	return 0
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
