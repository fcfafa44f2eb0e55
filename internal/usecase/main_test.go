package usecase

import (
	"testing"
	"time"

	"absensi-backend/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Satu koneksi saja supaya in-memory database tidak hilang
	// di antara query.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Attendance{},
		&model.LeaveRequest{},
		&model.DailyReport{},
		&model.Setting{},
		&model.UserTimeSetting{},
		&model.UserHolidaySetting{},
		&model.PayrollSetting{},
		&model.Notification{},
		&model.AttendanceStatusRequest{},
	))
	return db
}

func fixedClock(value string) func() time.Time {
	return func() time.Time {
		t, err := time.Parse("2006-01-02 15:04:05", value)
		if err != nil {
			panic(err)
		}
		return t
	}
}

func createUser(t *testing.T, db *gorm.DB, user *model.User) *model.User {
	t.Helper()
	if user.Name == "" {
		user.Name = "Test User"
	}
	if user.Username == "" {
		user.Username = "testuser"
	}
	if user.Password == "" {
		user.Password = "secret"
	}
	if user.EmployeeID == "" {
		user.EmployeeID = "EMP-" + user.Username
	}
	if user.Role == "" {
		user.Role = model.RoleUser
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
