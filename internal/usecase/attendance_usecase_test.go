package usecase

import (
	"encoding/base64"
	"testing"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"
	"absensi-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testPhoto() string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("foto"))
}

func newAttendanceUsecase(t *testing.T, db *gorm.DB) *AttendanceUsecase {
	t.Helper()
	attendanceRepo := repository.NewAttendanceRepository(db)
	leaveRepo := repository.NewLeaveRequestRepository(db)
	uc := NewAttendanceUsecase(
		attendanceRepo,
		repository.NewUserRepository(db),
		repository.NewHolidaySettingRepository(db),
		NewSettingResolver(repository.NewTimeSettingRepository(db), repository.NewSettingRepository(db)),
		NewStatusSyncer(attendanceRepo, leaveRepo),
		storage.NewPhotoStore(t.TempDir(), "/uploads/attendance"),
	)
	return uc
}

func TestCheckInClassification(t *testing.T) {
	// Default: masuk 08:00, toleransi 15 menit.
	cases := []struct {
		name          string
		clock         string
		wantStatus    string
		wantWorkStart string
	}{
		{"early", "2025-03-10 07:45:00", model.CheckInEarly, "07:45:00"},
		{"tepat waktu", "2025-03-10 08:00:00", model.CheckInOnTime, "08:00:00"},
		{"dalam toleransi", "2025-03-10 08:10:00", model.CheckInAlmostLate, "08:00"},
		{"batas toleransi", "2025-03-10 08:15:00", model.CheckInAlmostLate, "08:00"},
		{"telat", "2025-03-10 08:20:00", model.CheckInLate, "08:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := newTestDB(t)
			user := createUser(t, db, &model.User{})
			uc := newAttendanceUsecase(t, db)
			uc.now = fixedClock(tc.clock)

			result, err := uc.Action(user.ID, ActionInput{Action: ActionCheckIn, Photo: testPhoto()})
			require.NoError(t, err)

			assert.Equal(t, model.StatusHadir, result.Record.Status)
			assert.Equal(t, tc.wantStatus, result.Record.CheckInStatus)
			assert.Equal(t, tc.wantWorkStart, result.Record.WorkStartTime)
			assert.Zero(t, result.Record.WorkHours)
			assert.NotEmpty(t, result.Record.CheckInPhotoPath)
		})
	}
}

func TestCheckInRejections(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newAttendanceUsecase(t, db)
	uc.now = fixedClock("2025-03-10 08:00:00")

	_, err := uc.Action(user.ID, ActionInput{Action: ActionCheckIn})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = uc.Action(user.ID, ActionInput{Action: ActionCheckIn, Photo: "bukan-data-uri"})
	require.ErrorAs(t, err, &validationErr)

	_, err = uc.Action(user.ID, ActionInput{Action: ActionCheckIn, Photo: testPhoto()})
	require.NoError(t, err)

	// Check-in kedua hari yang sama ditolak.
	_, err = uc.Action(user.ID, ActionInput{Action: ActionCheckIn, Photo: testPhoto()})
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)

	_, err = uc.Action(user.ID, ActionInput{Action: "terbang"})
	require.ErrorAs(t, err, &validationErr)
}

func TestLateCheckInFullDayWorkHours(t *testing.T) {
	// Telat 20 menit: jam kerja dihitung dari jam masuk resmi, sehingga
	// checkout jam 17:00 tetap menghasilkan 9 jam penuh.
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newAttendanceUsecase(t, db)

	uc.now = fixedClock("2025-03-10 08:20:00")
	result, err := uc.Action(user.ID, ActionInput{Action: ActionCheckIn, Photo: testPhoto()})
	require.NoError(t, err)
	require.Equal(t, model.CheckInLate, result.Record.CheckInStatus)
	require.Equal(t, "08:00", result.Record.WorkStartTime)

	uc.now = fixedClock("2025-03-10 17:00:00")
	result, err = uc.Action(user.ID, ActionInput{Action: ActionCheckOut, Photo: testPhoto()})
	require.NoError(t, err)

	assert.InDelta(t, 9.0, result.Record.WorkHours, 0.001)
	assert.False(t, result.Record.EarlyLeave)
	assert.Empty(t, result.Record.WorkStartTime)
}

func TestBreakToggleAccrual(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newAttendanceUsecase(t, db)

	uc.now = fixedClock("2025-03-10 08:00:00")
	_, err := uc.Action(user.ID, ActionInput{Action: ActionCheckIn, Photo: testPhoto()})
	require.NoError(t, err)

	// Mulai break jam 12:00: 4 jam kerja tersetor, akumulasi berhenti.
	uc.now = fixedClock("2025-03-10 12:00:00")
	result, err := uc.Action(user.ID, ActionInput{Action: ActionBreak})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, result.Record.WorkHours, 0.001)
	assert.Empty(t, result.Record.WorkStartTime)
	assert.Equal(t, "12:00:00", result.Record.BreakStart)

	// Selesai break jam 13:10: durasi 70 menit > 60 berarti breakLate,
	// akumulasi lanjut dari 13:10.
	uc.now = fixedClock("2025-03-10 13:10:00")
	result, err = uc.Action(user.ID, ActionInput{Action: ActionBreak})
	require.NoError(t, err)
	assert.Equal(t, 70, result.Record.BreakDurationMinutes)
	assert.True(t, result.Record.BreakLate)
	assert.Equal(t, "13:10:00", result.Record.WorkStartTime)

	// Break ketiga ditolak: satu siklus per hari.
	uc.now = fixedClock("2025-03-10 15:00:00")
	_, err = uc.Action(user.ID, ActionInput{Action: ActionBreak})
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)

	// Checkout 17:10: 4 jam pagi + 4 jam sore.
	uc.now = fixedClock("2025-03-10 17:10:00")
	result, err = uc.Action(user.ID, ActionInput{Action: ActionCheckOut, Photo: testPhoto()})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, result.Record.WorkHours, 0.001)
}

func TestBreakWithinAllowanceNotLate(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newAttendanceUsecase(t, db)

	uc.now = fixedClock("2025-03-10 08:00:00")
	_, err := uc.Action(user.ID, ActionInput{Action: ActionCheckIn, Photo: testPhoto()})
	require.NoError(t, err)

	uc.now = fixedClock("2025-03-10 12:00:00")
	_, err = uc.Action(user.ID, ActionInput{Action: ActionBreak})
	require.NoError(t, err)

	uc.now = fixedClock("2025-03-10 12:45:00")
	result, err := uc.Action(user.ID, ActionInput{Action: ActionBreak})
	require.NoError(t, err)
	assert.Equal(t, 45, result.Record.BreakDurationMinutes)
	assert.False(t, result.Record.BreakLate)
}

func TestCheckOutEarlyLeave(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newAttendanceUsecase(t, db)

	uc.now = fixedClock("2025-03-10 08:00:00")
	_, err := uc.Action(user.ID, ActionInput{Action: ActionCheckIn, Photo: testPhoto()})
	require.NoError(t, err)

	uc.now = fixedClock("2025-03-10 15:30:00")
	result, err := uc.Action(user.ID, ActionInput{Action: ActionCheckOut, Photo: testPhoto()})
	require.NoError(t, err)
	assert.True(t, result.Record.EarlyLeave)
	assert.InDelta(t, 7.5, result.Record.WorkHours, 0.001)

	// Checkout kedua ditolak.
	_, err = uc.Action(user.ID, ActionInput{Action: ActionCheckOut, Photo: testPhoto()})
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestBreakAfterCheckOutRejected(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newAttendanceUsecase(t, db)

	uc.now = fixedClock("2025-03-10 08:00:00")
	_, err := uc.Action(user.ID, ActionInput{Action: ActionCheckIn, Photo: testPhoto()})
	require.NoError(t, err)

	uc.now = fixedClock("2025-03-10 17:00:00")
	_, err = uc.Action(user.ID, ActionInput{Action: ActionCheckOut, Photo: testPhoto()})
	require.NoError(t, err)

	// Break setelah check-out ditolak dan jangkar akumulasi tetap mati.
	uc.now = fixedClock("2025-03-10 17:30:00")
	_, err = uc.Action(user.ID, ActionInput{Action: ActionBreak})
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)

	var rec model.Attendance
	require.NoError(t, db.Where("user_id = ? AND date = ?", user.ID, "2025-03-10").First(&rec).Error)
	assert.Empty(t, rec.WorkStartTime)
	assert.InDelta(t, 9.0, rec.WorkHours, 0.001)
}

func TestCheckInOnHolidayAllowedWithFlag(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	holidayRepo := repository.NewHolidaySettingRepository(db)
	// 2025-03-09 adalah hari Minggu (weekday 0).
	require.NoError(t, holidayRepo.Upsert(&model.UserHolidaySetting{
		UserID:   user.ID,
		Day1:     0,
		IsActive: true,
	}))

	uc := newAttendanceUsecase(t, db)
	uc.now = fixedClock("2025-03-09 08:00:00")

	result, err := uc.Action(user.ID, ActionInput{Action: ActionCheckIn, Photo: testPhoto()})
	require.NoError(t, err)
	assert.True(t, result.IsHoliday)
	assert.Equal(t, model.StatusHadir, result.Record.Status)
}

func TestCheckInOverridesLeavePlaceholder(t *testing.T) {
	// Record berstatus Izin hasil sync tetap jadi Hadir kalau user check-in.
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	attendanceRepo := repository.NewAttendanceRepository(db)
	require.NoError(t, attendanceRepo.Create(&model.Attendance{
		UserID: user.ID,
		Date:   "2025-03-10",
		Status: model.StatusIzin,
	}))

	uc := newAttendanceUsecase(t, db)
	uc.now = fixedClock("2025-03-10 08:00:00")

	result, err := uc.Action(user.ID, ActionInput{Action: ActionCheckIn, Photo: testPhoto()})
	require.NoError(t, err)
	assert.Equal(t, model.StatusHadir, result.Record.Status)
}

func TestListForUserBackfillsAndSyncs(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{StartDate: "2025-03-05"})
	leaveRepo := repository.NewLeaveRequestRepository(db)
	require.NoError(t, leaveRepo.Create(&model.LeaveRequest{
		UserID:    user.ID,
		StartDate: "2025-03-06",
		EndDate:   "2025-03-07",
		Type:      model.LeaveTypeIzin,
		Status:    model.LeaveStatusApproved,
	}))

	uc := newAttendanceUsecase(t, db)
	uc.now = fixedClock("2025-03-10 09:00:00")
	uc.syncer.now = uc.now

	records, err := uc.ListForUser(user.ID)
	require.NoError(t, err)
	// 2025-03-05 .. 2025-03-10 inklusif
	require.Len(t, records, 6)

	byDate := map[string]model.Attendance{}
	for _, r := range records {
		byDate[r.Date] = r
	}
	assert.Equal(t, model.StatusAlfa, byDate["2025-03-05"].Status)
	assert.Equal(t, model.StatusIzin, byDate["2025-03-06"].Status)
	assert.Equal(t, model.StatusIzin, byDate["2025-03-07"].Status)
	assert.Equal(t, model.StatusAlfa, byDate["2025-03-08"].Status)
	// Hari ini belum lewat: placeholder Hadir
	assert.Equal(t, model.StatusHadir, byDate["2025-03-10"].Status)

	// Pemanggilan ulang idempoten.
	records, err = uc.ListForUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, records, 6)
}
