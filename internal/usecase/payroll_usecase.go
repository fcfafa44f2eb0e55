package usecase

import (
	"encoding/csv"
	"math"
	"strconv"
	"strings"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"gorm.io/gorm"
)

type DeductionDetail struct {
	Count     int     `json:"count"`
	Deduction float64 `json:"deduction"`
}

type PayrollDetails struct {
	WorkingDays      int                        `json:"working_days"`
	TotalDaysInMonth int                        `json:"total_days_in_month"`
	AlphaCount       int                        `json:"alpha_count"`
	IzinCount        int                        `json:"izin_count"`
	LateCount        int                        `json:"late_count"`
	BreakLateCount   int                        `json:"break_late_count"`
	EarlyLeaveCount  int                        `json:"early_leave_count"`
	ExpectedReports  int                        `json:"expected_reports"`
	SubmittedReports int                        `json:"submitted_reports"`
	MissingReports   int                        `json:"missing_reports"`
	Deductions       map[string]DeductionDetail `json:"deduction_details"`
	Bonuses          map[string]float64         `json:"bonus_details"`
	Message          string                     `json:"message,omitempty"`
}

type PayrollResult struct {
	UserID      uint            `json:"user_id"`
	Month       string          `json:"month"`
	BaseSalary  float64         `json:"base_salary"`
	Currency    string          `json:"currency"`
	Deductions  float64         `json:"deductions"`
	Bonuses     float64         `json:"bonuses"`
	FinalSalary float64         `json:"final_salary"`
	Details     *PayrollDetails `json:"details"`
}

// PayrollUsecase menghitung gaji bulanan dari data absensi dan laporan
// yang sudah tersimpan. Murni baca, tidak pernah mengubah data.
type PayrollUsecase struct {
	attendanceRepo repository.AttendanceRepository
	reportRepo     repository.DailyReportRepository
	settingRepo    repository.PayrollSettingRepository
	userRepo       repository.UserRepository
	resolver       *SettingResolver
}

func NewPayrollUsecase(
	attendanceRepo repository.AttendanceRepository,
	reportRepo repository.DailyReportRepository,
	settingRepo repository.PayrollSettingRepository,
	userRepo repository.UserRepository,
	resolver *SettingResolver,
) *PayrollUsecase {
	return &PayrollUsecase{
		attendanceRepo: attendanceRepo,
		reportRepo:     reportRepo,
		settingRepo:    settingRepo,
		userRepo:       userRepo,
		resolver:       resolver,
	}
}

// Calculate menghitung payroll user untuk satu bulan (format YYYY-MM).
func (u *PayrollUsecase) Calculate(userID uint, month string) (*PayrollResult, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Msg: "User tidak ditemukan"}
		}
		return nil, err
	}

	startDate, endDate, totalDays, err := monthRange(month)
	if err != nil {
		return nil, &ValidationError{Msg: "Format month harus YYYY-MM"}
	}

	baseSalary := user.BasicSalary
	currency := user.Currency
	if currency == "" {
		currency = "IDR"
	}

	setting, err := u.settingRepo.GetByUser(userID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if setting == nil || !setting.IsActive {
		// Tanpa aturan aktif, gaji dibayar penuh.
		return &PayrollResult{
			UserID:      userID,
			Month:       month,
			BaseSalary:  baseSalary,
			Currency:    currency,
			FinalSalary: baseSalary,
			Details:     &PayrollDetails{Message: "Payroll setting tidak ditemukan atau tidak aktif"},
		}, nil
	}

	attendances, err := u.attendanceRepo.ListByUserBetween(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	reportCount, err := u.reportRepo.CountByUserBetween(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	var alphaCount, izinCount, lateCount, breakLateCount, earlyLeaveCount, workingDays int
	for _, a := range attendances {
		switch a.Status {
		case model.StatusAlfa:
			alphaCount++
		case model.StatusIzin:
			izinCount++
		}
		if a.CheckInStatus == model.CheckInLate {
			lateCount++
		}
		if a.BreakLate {
			breakLateCount++
		}
		if a.EarlyLeave {
			earlyLeaveCount++
		}
		if a.Status == model.StatusHadir && a.CheckIn != "" {
			workingDays++
		}
	}

	expectedReports := workingDays
	missingReports := expectedReports - int(reportCount)

	details := &PayrollDetails{
		WorkingDays:      workingDays,
		TotalDaysInMonth: totalDays,
		AlphaCount:       alphaCount,
		IzinCount:        izinCount,
		LateCount:        lateCount,
		BreakLateCount:   breakLateCount,
		EarlyLeaveCount:  earlyLeaveCount,
		ExpectedReports:  expectedReports,
		SubmittedReports: int(reportCount),
		MissingReports:   missingReports,
		Deductions:       map[string]DeductionDetail{},
		Bonuses:          map[string]float64{},
	}

	// rate diartikan sebagai persen dari gaji pokok atau nominal tetap,
	// tergantung DeductionType di setting.
	perOccurrence := func(rate float64) float64 {
		if setting.DeductionType == model.DeductionPercentage {
			return baseSalary * rate / 100
		}
		return rate
	}

	var totalDeductions float64
	addDeduction := func(name string, count int, rate float64) {
		if count <= 0 {
			return
		}
		amount := perOccurrence(rate) * float64(count)
		totalDeductions += amount
		details.Deductions[name] = DeductionDetail{Count: count, Deduction: amount}
	}

	addDeduction("alpha", alphaCount, setting.AlphaDeduction)
	addDeduction("izin", izinCount, setting.IzinDeduction)
	addDeduction("late", max0(lateCount-setting.MaxLateAllowed), setting.LateDeduction)
	addDeduction("breakLate", max0(breakLateCount-setting.MaxBreakLateAllowed), setting.BreakLateDeduction)
	addDeduction("earlyLeave", max0(earlyLeaveCount-setting.MaxEarlyLeaveAllowed), setting.EarlyLeaveDeduction)
	addDeduction("missingReports", max0(missingReports), setting.NoReportDeduction)

	var totalBonuses float64
	if alphaCount == 0 && izinCount == 0 && lateCount == 0 && breakLateCount == 0 && earlyLeaveCount == 0 && workingDays > 0 {
		bonus := perOccurrence(setting.PerfectAttendanceBonus)
		totalBonuses += bonus
		details.Bonuses["perfectAttendance"] = bonus
	}
	if missingReports == 0 && expectedReports > 0 {
		bonus := perOccurrence(setting.AllReportsBonus)
		totalBonuses += bonus
		details.Bonuses["allReports"] = bonus
	}

	return &PayrollResult{
		UserID:      userID,
		Month:       month,
		BaseSalary:  baseSalary,
		Currency:    currency,
		Deductions:  totalDeductions,
		Bonuses:     totalBonuses,
		FinalSalary: math.Max(0, baseSalary-totalDeductions+totalBonuses),
		Details:     details,
	}, nil
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

type SimplePayrollRow struct {
	UserID      uint    `json:"user_id"`
	Name        string  `json:"name"`
	Username    string  `json:"username"`
	EmployeeID  string  `json:"employee_id"`
	Position    string  `json:"position"`
	Department  string  `json:"department"`
	Month       string  `json:"month"`
	PresentDays int     `json:"present_days"`
	DailyRate   float64 `json:"daily_rate"`
	Salary      float64 `json:"salary"`
}

func (u *PayrollUsecase) presentDays(userID uint, startDate, endDate string) (int, error) {
	attendances, err := u.attendanceRepo.ListByUserBetween(userID, startDate, endDate)
	if err != nil {
		return 0, err
	}
	present := 0
	for _, a := range attendances {
		if a.CheckIn != "" {
			present++
		}
	}
	return present, nil
}

// GenerateSimple menghitung gaji kasar semua user: dailyRate x hari hadir.
func (u *PayrollUsecase) GenerateSimple(month string) ([]SimplePayrollRow, error) {
	startDate, endDate, _, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	dailyRate := u.resolver.DailyRate()

	users, err := u.userRepo.ListAll()
	if err != nil {
		return nil, err
	}

	rows := make([]SimplePayrollRow, 0, len(users))
	for _, user := range users {
		present, err := u.presentDays(user.ID, startDate, endDate)
		if err != nil {
			return nil, err
		}
		rows = append(rows, SimplePayrollRow{
			UserID:      user.ID,
			Name:        user.Name,
			Username:    user.Username,
			EmployeeID:  user.EmployeeID,
			Position:    user.Position,
			Department:  user.Department,
			Month:       month,
			PresentDays: present,
			DailyRate:   dailyRate,
			Salary:      float64(present) * dailyRate,
		})
	}
	return rows, nil
}

// SimpleCSV merender hasil GenerateSimple sebagai CSV untuk diunduh.
func (u *PayrollUsecase) SimpleCSV(month string) (string, error) {
	rows, err := u.GenerateSimple(month)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"user", "username", "presentDays", "dailyRate", "salary"})
	for _, r := range rows {
		_ = w.Write([]string{
			r.Name,
			r.Username,
			strconv.Itoa(r.PresentDays),
			strconv.FormatFloat(r.DailyRate, 'f', -1, 64),
			strconv.FormatFloat(r.Salary, 'f', -1, 64),
		})
	}
	w.Flush()
	return b.String(), w.Error()
}

// MySimple menghitung gaji kasar satu user untuk satu bulan.
func (u *PayrollUsecase) MySimple(userID uint, month string) (*SimplePayrollRow, error) {
	startDate, endDate, _, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	dailyRate := u.resolver.DailyRate()
	present, err := u.presentDays(userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return &SimplePayrollRow{
		UserID:      userID,
		Month:       month,
		PresentDays: present,
		DailyRate:   dailyRate,
		Salary:      float64(present) * dailyRate,
	}, nil
}
