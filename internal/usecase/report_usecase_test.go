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

func newReportUsecase(t *testing.T, db *gorm.DB) *ReportUsecase {
	t.Helper()
	uc := NewReportUsecase(
		repository.NewDailyReportRepository(db),
		NewSettingResolver(repository.NewTimeSettingRepository(db), repository.NewSettingRepository(db)),
		storage.NewPhotoStore(t.TempDir(), "/uploads/reports"),
	)
	uc.now = fixedClock("2025-03-10 15:00:00")
	return uc
}

func TestCreateReport(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newReportUsecase(t, db)

	report, err := uc.Create(user.ID, CreateReportInput{Content: "  Selesai rekap data  "})
	require.NoError(t, err)
	assert.Equal(t, "Selesai rekap data", report.Content)
	assert.Equal(t, "2025-03-10", report.Date)
	// Default jam tutup laporan 18:00, jadi jam 15:00 belum telat.
	assert.False(t, report.IsLate)
}

func TestCreateReportRejectsDuplicateDate(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newReportUsecase(t, db)

	_, err := uc.Create(user.ID, CreateReportInput{Content: "Laporan pertama"})
	require.NoError(t, err)

	_, err = uc.Create(user.ID, CreateReportInput{Content: "Laporan kedua"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Laporan untuk tanggal ini sudah dikirim", conflict.Msg)
}

func TestCreateReportRequiresContent(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newReportUsecase(t, db)

	_, err := uc.Create(user.ID, CreateReportInput{Content: "   "})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestCreateReportMarksLate(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newReportUsecase(t, db)
	uc.now = fixedClock("2025-03-10 18:30:00")

	report, err := uc.Create(user.ID, CreateReportInput{Content: "Laporan lembur"})
	require.NoError(t, err)
	assert.True(t, report.IsLate)
}

func TestCreateReportWithAttachment(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newReportUsecase(t, db)

	pdf := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString([]byte("%PDF-1.4"))
	report, err := uc.Create(user.ID, CreateReportInput{Content: "Dengan lampiran", File: pdf})
	require.NoError(t, err)
	assert.Equal(t, "pdf", report.FileType)
	assert.Contains(t, report.FilePath, "/uploads/reports/")
	assert.NotEmpty(t, report.FileName)

	report, err = uc.Create(user.ID, CreateReportInput{Content: "Foto", File: testPhoto(), Date: "2025-03-11"})
	require.NoError(t, err)
	assert.Equal(t, "image", report.FileType)
}

func TestCreateReportRejectsBadAttachment(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	uc := newReportUsecase(t, db)

	_, err := uc.Create(user.ID, CreateReportInput{Content: "Lampiran rusak", File: "bukan-data-uri"})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Format file tidak valid", validation.Msg)

	video := "data:video/mp4;base64," + base64.StdEncoding.EncodeToString([]byte("mp4"))
	_, err = uc.Create(user.ID, CreateReportInput{Content: "Lampiran video", File: video})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "File harus berupa gambar atau PDF", validation.Msg)
}
