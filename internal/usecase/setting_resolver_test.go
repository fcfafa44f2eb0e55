package usecase

import (
	"testing"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverDefaults(t *testing.T) {
	db := newTestDB(t)
	resolver := NewSettingResolver(repository.NewTimeSettingRepository(db), repository.NewSettingRepository(db))

	times := resolver.AttendanceTimes(1)
	assert.Equal(t, "08:00", times.CheckInTime)
	assert.Equal(t, "17:00", times.CheckOutTime)
	assert.Equal(t, "12:00", times.BreakStartTime)
	assert.Equal(t, "13:00", times.BreakEndTime)
	assert.Equal(t, 15, times.Tolerance)
	assert.Equal(t, 60, times.BreakDuration)

	report := resolver.ReportTimes()
	assert.Equal(t, "08:00", report.StartTime)
	assert.Equal(t, "18:00", report.EndTime)
	assert.Equal(t, "daily", report.Frequency)

	assert.Equal(t, float64(100000), resolver.DailyRate())
}

func TestResolverGlobalTier(t *testing.T) {
	db := newTestDB(t)
	settingRepo := repository.NewSettingRepository(db)
	resolver := NewSettingResolver(repository.NewTimeSettingRepository(db), settingRepo)

	require.NoError(t, settingRepo.Upsert("checkInTime", "09:00"))
	require.NoError(t, settingRepo.Upsert("checkInTolerance", "30"))
	require.NoError(t, settingRepo.Upsert("reportFrequency", "weekly"))
	require.NoError(t, settingRepo.Upsert("dailyRate", "150000"))

	times := resolver.AttendanceTimes(1)
	assert.Equal(t, "09:00", times.CheckInTime)
	assert.Equal(t, 30, times.Tolerance)
	// Key yang tidak diset tetap default
	assert.Equal(t, "17:00", times.CheckOutTime)

	assert.Equal(t, "weekly", resolver.ReportTimes().Frequency)
	assert.Equal(t, float64(150000), resolver.DailyRate())
}

func TestResolverUserTierOverridesGlobal(t *testing.T) {
	db := newTestDB(t)
	settingRepo := repository.NewSettingRepository(db)
	timeRepo := repository.NewTimeSettingRepository(db)
	resolver := NewSettingResolver(timeRepo, settingRepo)

	require.NoError(t, settingRepo.Upsert("checkInTime", "09:00"))
	require.NoError(t, timeRepo.Upsert(&model.UserTimeSetting{
		UserID:           7,
		CheckInTime:      "10:00",
		CheckOutTime:     "19:00",
		BreakStartTime:   "14:00",
		BreakEndTime:     "15:00",
		CheckInTolerance: 5,
		BreakDuration:    30,
		IsActive:         true,
	}))

	times := resolver.AttendanceTimes(7)
	assert.Equal(t, "10:00", times.CheckInTime)
	assert.Equal(t, "19:00", times.CheckOutTime)
	assert.Equal(t, 5, times.Tolerance)
	assert.Equal(t, 30, times.BreakDuration)

	// User lain tetap pakai tier global
	assert.Equal(t, "09:00", resolver.AttendanceTimes(8).CheckInTime)
}

func TestResolverInactiveUserSettingIgnored(t *testing.T) {
	db := newTestDB(t)
	settingRepo := repository.NewSettingRepository(db)
	timeRepo := repository.NewTimeSettingRepository(db)
	resolver := NewSettingResolver(timeRepo, settingRepo)

	require.NoError(t, timeRepo.Upsert(&model.UserTimeSetting{
		UserID:      7,
		CheckInTime: "10:00",
		IsActive:    false,
	}))

	assert.Equal(t, "08:00", resolver.AttendanceTimes(7).CheckInTime)
}

func TestResolverBadNumericValueFallsThrough(t *testing.T) {
	db := newTestDB(t)
	settingRepo := repository.NewSettingRepository(db)
	resolver := NewSettingResolver(repository.NewTimeSettingRepository(db), settingRepo)

	require.NoError(t, settingRepo.Upsert("checkInTolerance", "banyak"))
	require.NoError(t, settingRepo.Upsert("dailyRate", "gratis"))

	assert.Equal(t, 15, resolver.AttendanceTimes(1).Tolerance)
	assert.Equal(t, float64(100000), resolver.DailyRate())
}
