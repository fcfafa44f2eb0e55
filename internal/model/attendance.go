package model

import "gorm.io/gorm"

// Status harian absensi.
const (
	StatusHadir = "Hadir" // hadir (sudah check-in)
	StatusIzin  = "Izin"  // izin/cuti disetujui
	StatusSakit = "Sakit"
	StatusAlfa  = "Alfa" // tidak hadir tanpa keterangan
)

// Klasifikasi waktu check-in terhadap jam masuk + toleransi.
const (
	CheckInEarly      = "early"
	CheckInOnTime     = "onTime"
	CheckInAlmostLate = "almostLate"
	CheckInLate       = "late"
)

// Tahapan record absensi dalam satu hari.
const (
	StageCreated       = "Created"
	StageCheckedIn     = "CheckedIn"
	StageOnBreak       = "OnBreak"
	StageBackFromBreak = "BackFromBreak"
	StageCheckedOut    = "CheckedOut"
)

// Attendance adalah satu record per (user, tanggal).
// Semua kolom jam disimpan sebagai string "15:04:05" (kosong = belum diisi),
// tanggal sebagai "2006-01-02".
type Attendance struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_user_date"`
	Date   string `json:"date" gorm:"not null;uniqueIndex:idx_user_date"`

	CheckIn           string `json:"check_in"`
	CheckOut          string `json:"check_out"`
	CheckInPhotoPath  string `json:"check_in_photo_path"`
	CheckOutPhotoPath string `json:"check_out_photo_path"`

	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`

	Status        string `json:"status" gorm:"default:Hadir"` // Hadir/Izin/Sakit/Alfa
	CheckInStatus string `json:"check_in_status"`             // early/onTime/almostLate/late, kosong sebelum check-in
	BreakLate     bool   `json:"break_late" gorm:"default:false"`
	EarlyLeave    bool   `json:"early_leave" gorm:"default:false"`

	// Jangkar akumulasi jam kerja. Kosong = akumulasi sedang berhenti (break/selesai).
	WorkStartTime        string  `json:"work_start_time"`
	WorkHours            float64 `json:"work_hours" gorm:"default:0"`
	BreakDurationMinutes int     `json:"break_duration_minutes" gorm:"default:0"`

	Note string `json:"note"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// Stage menurunkan tahapan harian dari kombinasi kolom, supaya pengecekan
// aksi tidak tersebar sebagai perbandingan kolom nullable satu-satu.
func (a *Attendance) Stage() string {
	switch {
	case a.CheckOut != "":
		return StageCheckedOut
	case a.BreakStart != "" && a.BreakEnd != "":
		return StageBackFromBreak
	case a.BreakStart != "":
		return StageOnBreak
	case a.CheckIn != "":
		return StageCheckedIn
	default:
		return StageCreated
	}
}
