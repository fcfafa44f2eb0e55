package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSettingApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Setting{},
		&model.UserTimeSetting{},
		&model.UserHolidaySetting{},
	))

	hdl := NewSettingHandler(
		repository.NewSettingRepository(db),
		repository.NewTimeSettingRepository(db),
		repository.NewHolidaySettingRepository(db),
	)
	app := fiber.New()
	app.Post("/api/time-settings/bulk", hdl.BulkUpsertTimeSettings)
	app.Put("/api/time-settings/:userId", hdl.UpsertTimeSetting)
	return app, db
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func TestUpsertTimeSettingRejectsEmptyTimes(t *testing.T) {
	app, db := newSettingApp(t)

	existing := model.UserTimeSetting{
		UserID:      7,
		CheckInTime: "09:00", CheckOutTime: "18:00",
		BreakStartTime: "12:00", BreakEndTime: "13:00",
		CheckInTolerance: 15, BreakDuration: 60,
		IsActive: true,
	}
	require.NoError(t, db.Create(&existing).Error)

	// Body yang cuma bawa is_active tidak boleh menghapus jam yang sudah ada.
	req := httptest.NewRequest("PUT", "/api/time-settings/7",
		jsonBody(t, fiber.Map{"is_active": true}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var stored model.UserTimeSetting
	require.NoError(t, db.Where("user_id = ?", 7).First(&stored).Error)
	assert.Equal(t, "09:00", stored.CheckInTime)
	assert.Equal(t, 15, stored.CheckInTolerance)
}

func TestUpsertTimeSettingFullBody(t *testing.T) {
	app, db := newSettingApp(t)

	req := httptest.NewRequest("PUT", "/api/time-settings/7",
		jsonBody(t, fiber.Map{
			"check_in_time": "08:30", "check_out_time": "17:30",
			"break_start_time": "12:00", "break_end_time": "13:00",
			"check_in_tolerance": 10, "break_duration": 45,
			"is_active": true,
		}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stored model.UserTimeSetting
	require.NoError(t, db.Where("user_id = ?", 7).First(&stored).Error)
	assert.Equal(t, "08:30", stored.CheckInTime)
	assert.Equal(t, 10, stored.CheckInTolerance)
}

func TestBulkUpsertTimeSettingsRejectsEmptyTimes(t *testing.T) {
	app, db := newSettingApp(t)

	req := httptest.NewRequest("POST", "/api/time-settings/bulk",
		jsonBody(t, fiber.Map{"user_ids": []uint{1, 2}, "is_active": true}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.UserTimeSetting{}).Count(&count).Error)
	assert.Zero(t, count)
}
