package config

import (
	"fmt"
	"log"

	"absensi-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "absensi_db"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Gagal koneksi ke database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Gagal migrasi database: %v", err)
	}

	log.Println("Koneksi database berhasil")
	DB = db
}

// Migrate membuat/menyesuaikan semua tabel dari struct model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}
