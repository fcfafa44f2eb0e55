package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"
	"absensi-backend/internal/storage"

	"gorm.io/gorm"
)

type CreateReportInput struct {
	Content string `json:"content"`
	File    string `json:"file"` // data-URI opsional, hanya image/pdf
	Date    string `json:"date"` // opsional, default hari ini
}

// ReportUsecase mengelola laporan kerja harian: satu laporan per user per
// tanggal, dengan penanda telat kalau lewat dari jam tutup laporan.
type ReportUsecase struct {
	repo     repository.DailyReportRepository
	resolver *SettingResolver
	files    *storage.PhotoStore
	now      func() time.Time
}

func NewReportUsecase(repo repository.DailyReportRepository, resolver *SettingResolver, files *storage.PhotoStore) *ReportUsecase {
	return &ReportUsecase{repo: repo, resolver: resolver, files: files, now: time.Now}
}

func (u *ReportUsecase) Create(userID uint, in CreateReportInput) (*model.DailyReport, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, &ValidationError{Msg: "Isi laporan wajib diisi"}
	}

	now := u.now()
	date := in.Date
	if date == "" {
		date = now.Format(dateLayout)
	}

	if _, err := u.repo.GetByDate(userID, date); err == nil {
		return nil, &ConflictError{Msg: "Laporan untuk tanggal ini sudah dikirim"}
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	times := u.resolver.ReportTimes()
	isLate := timeToMinutes(now.Format(clockLayout)) > timeToMinutes(times.EndTime)

	report := &model.DailyReport{
		UserID:      userID,
		Date:        date,
		Content:     content,
		SubmittedAt: now,
		IsLate:      isLate,
	}

	if in.File != "" {
		mime, _, err := storage.ParseDataURI(in.File)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidDataURI) {
				return nil, &ValidationError{Msg: "Format file tidak valid"}
			}
			return nil, err
		}
		switch {
		case strings.Contains(mime, "pdf"):
			report.FileType = "pdf"
		case strings.Contains(mime, "image"):
			report.FileType = "image"
		default:
			return nil, &ValidationError{Msg: "File harus berupa gambar atau PDF"}
		}

		path, err := u.files.Save(in.File, fmt.Sprintf("u%d_%s_report", userID, date))
		if err != nil {
			return nil, err
		}
		report.FilePath = path
		report.FileName = path[strings.LastIndex(path, "/")+1:]
	}

	if err := u.repo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (u *ReportUsecase) ListForUser(userID uint) ([]model.DailyReport, error) {
	return u.repo.ListByUser(userID)
}

func (u *ReportUsecase) ListAll() ([]model.DailyReport, error) {
	return u.repo.ListAll()
}
