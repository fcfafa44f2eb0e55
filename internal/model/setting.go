package model

import "gorm.io/gorm"

// Setting adalah key-value global yang bisa diubah admin lewat API.
// Key yang dipakai resolver: checkInTime, checkOutTime, breakStartTime,
// breakEndTime, checkInTolerance, breakDuration, reportStartTime,
// reportEndTime, reportFrequency, dailyRate.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey"`
	Value string `json:"value"`
}

// UserTimeSetting meng-override jam kerja global untuk satu user.
type UserTimeSetting struct {
	gorm.Model
	UserID           uint   `json:"user_id" gorm:"unique;not null"`
	CheckInTime      string `json:"check_in_time" gorm:"default:08:00"`
	CheckOutTime     string `json:"check_out_time" gorm:"default:17:00"`
	BreakStartTime   string `json:"break_start_time" gorm:"default:12:00"`
	BreakEndTime     string `json:"break_end_time" gorm:"default:13:00"`
	CheckInTolerance int    `json:"check_in_tolerance" gorm:"default:15"` // menit
	BreakDuration    int    `json:"break_duration" gorm:"default:60"`     // menit
	// Tanpa default gorm: false harus bisa tersimpan apa adanya.
	IsActive bool `json:"is_active"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// UserHolidaySetting menandai hari libur mingguan per user.
// 0=Minggu .. 6=Sabtu. Day2 opsional.
type UserHolidaySetting struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"unique;not null"`
	Day1     int  `json:"day1" gorm:"not null"`
	Day2     *int `json:"day2"`
	IsActive bool `json:"is_active"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// IsHoliday cek apakah tanggal (weekday 0-6) jatuh di hari libur user.
func (s *UserHolidaySetting) IsHoliday(weekday int) bool {
	if !s.IsActive {
		return false
	}
	return s.Day1 == weekday || (s.Day2 != nil && *s.Day2 == weekday)
}
