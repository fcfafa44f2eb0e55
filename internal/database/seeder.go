package database

import (
	"log"

	"absensi-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Setting global default untuk jam kerja dan laporan
	settings := []model.Setting{
		{Key: "checkInTime", Value: "08:00"},
		{Key: "checkOutTime", Value: "17:00"},
		{Key: "breakStartTime", Value: "12:00"},
		{Key: "breakEndTime", Value: "13:00"},
		{Key: "checkInTolerance", Value: "15"},
		{Key: "breakDuration", Value: "60"},
		{Key: "reportStartTime", Value: "08:00"},
		{Key: "reportEndTime", Value: "18:00"},
		{Key: "reportFrequency", Value: "daily"},
		{Key: "dailyRate", Value: "100000"},
	}
	for _, s := range settings {
		db.FirstOrCreate(&s, model.Setting{Key: s.Key})
	}

	// 2. Akun admin pertama
	hashedAdmin, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.User{
		Name:       "Administrator",
		Username:   "admin",
		Password:   string(hashedAdmin),
		Role:       model.RoleAdmin,
		Email:      "admin@example.com",
		EmployeeID: "ADM-001",
		Position:   "Administrator",
		Department: "Management",
		StartDate:  "2024-01-01",
		LeaveQuota: 12,
	}
	result := db.FirstOrCreate(&admin, model.User{Username: admin.Username})
	if result.Error == nil {
		// Password selalu direset ke admin123 supaya akun dev bisa dipakai
		db.Model(&admin).Update("password", string(hashedAdmin))
		log.Println("Seeding admin berhasil")
	}

	// 3. Satu pegawai contoh
	hashedUser, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
	employee := model.User{
		Name:        "Budi Santoso",
		Username:    "budi",
		Password:    string(hashedUser),
		Role:        model.RoleUser,
		Email:       "budi@example.com",
		EmployeeID:  "EMP-001",
		Position:    "Staff",
		Department:  "Operasional",
		StartDate:   "2024-03-01",
		BasicSalary: 5000000,
		LeaveQuota:  12,
	}
	db.FirstOrCreate(&employee, model.User{Username: employee.Username})

	// 4. Aturan payroll default untuk pegawai contoh
	payroll := model.PayrollSetting{
		UserID:               employee.ID,
		AlphaDeduction:       10,
		IzinDeduction:        5,
		LateDeduction:        2,
		BreakLateDeduction:   1,
		EarlyLeaveDeduction:  2,
		NoReportDeduction:    1,
		MaxLateAllowed:       2,
		MaxBreakLateAllowed:  2,
		MaxEarlyLeaveAllowed: 2,
		DeductionType:        model.DeductionPercentage,
		IsActive:             true,
	}
	db.FirstOrCreate(&payroll, model.PayrollSetting{UserID: employee.ID})

	log.Println("Seeding selesai")
}
