package usecase

import (
	"testing"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSyncer(t *testing.T, db *gorm.DB) *StatusSyncer {
	t.Helper()
	syncer := NewStatusSyncer(
		repository.NewAttendanceRepository(db),
		repository.NewLeaveRequestRepository(db),
	)
	syncer.now = fixedClock("2025-03-10 09:00:00")
	return syncer
}

func approveLeave(t *testing.T, db *gorm.DB, userID uint, leaveType, start, end string) {
	t.Helper()
	require.NoError(t, repository.NewLeaveRequestRepository(db).Create(&model.LeaveRequest{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Type:      leaveType,
		Status:    model.LeaveStatusApproved,
	}))
}

func TestDetermineStatus(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	syncer := newSyncer(t, db)
	approveLeave(t, db, user.ID, model.LeaveTypeIzin, "2025-03-06", "2025-03-07")
	approveLeave(t, db, user.ID, model.LeaveTypeCuti, "2025-03-12", "2025-03-12")

	cases := []struct {
		name         string
		date         string
		hasCheckedIn bool
		want         string
	}{
		{"check-in selalu Hadir", "2025-03-05", true, model.StatusHadir},
		{"masa lalu tanpa izin", "2025-03-05", false, model.StatusAlfa},
		{"masa lalu dengan izin", "2025-03-06", false, model.StatusIzin},
		{"hari ini tanpa izin", "2025-03-10", false, model.StatusHadir},
		{"masa depan tanpa izin", "2025-03-11", false, model.StatusHadir},
		{"masa depan dengan cuti tampil Izin", "2025-03-12", false, model.StatusIzin},
		{"check-in menang atas izin", "2025-03-06", true, model.StatusHadir},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := syncer.DetermineStatus(user.ID, tc.date, tc.hasCheckedIn)
			require.NoError(t, err)
			assert.Equal(t, tc.want, status)
		})
	}
}

func TestBackfillIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	attendanceRepo := repository.NewAttendanceRepository(db)
	syncer := newSyncer(t, db)

	// Record manual yang sudah ada tidak boleh disentuh backfill.
	require.NoError(t, attendanceRepo.Create(&model.Attendance{
		UserID:  user.ID,
		Date:    "2025-03-06",
		Status:  model.StatusHadir,
		CheckIn: "08:00:00",
	}))

	require.NoError(t, syncer.Backfill(user.ID, "2025-03-05", "2025-03-08"))

	records, err := attendanceRepo.ListByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, records, 4)

	byDate := map[string]model.Attendance{}
	for _, r := range records {
		byDate[r.Date] = r
	}
	assert.Equal(t, model.StatusAlfa, byDate["2025-03-05"].Status)
	assert.Equal(t, "08:00:00", byDate["2025-03-06"].CheckIn)
	assert.Equal(t, model.StatusAlfa, byDate["2025-03-07"].Status)

	// Jalankan ulang: tidak ada duplikat, tidak ada perubahan.
	require.NoError(t, syncer.Backfill(user.ID, "2025-03-05", "2025-03-08"))
	records, err = attendanceRepo.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, records, 4)
}

func TestSyncSkipsCheckedIn(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	attendanceRepo := repository.NewAttendanceRepository(db)
	syncer := newSyncer(t, db)

	require.NoError(t, attendanceRepo.Create(&model.Attendance{
		UserID:  user.ID,
		Date:    "2025-03-06",
		Status:  model.StatusHadir,
		CheckIn: "08:00:00",
	}))
	approveLeave(t, db, user.ID, model.LeaveTypeIzin, "2025-03-06", "2025-03-06")

	require.NoError(t, syncer.Sync(user.ID, "2025-03-06"))

	record, err := attendanceRepo.GetByDate(user.ID, "2025-03-06")
	require.NoError(t, err)
	assert.Equal(t, model.StatusHadir, record.Status)
}

func TestSyncRangeUpdatesPlaceholders(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, &model.User{})
	attendanceRepo := repository.NewAttendanceRepository(db)
	syncer := newSyncer(t, db)

	// Backfill dulu tanpa leave: masa lalu jadi Alfa.
	require.NoError(t, syncer.Backfill(user.ID, "2025-03-05", "2025-03-07"))

	// Leave disetujui belakangan: sync range memperbaiki status lama.
	approveLeave(t, db, user.ID, model.LeaveTypeCuti, "2025-03-05", "2025-03-06")
	require.NoError(t, syncer.SyncRange(user.ID, "2025-03-05", "2025-03-06"))

	records, err := attendanceRepo.ListByUser(user.ID)
	require.NoError(t, err)
	byDate := map[string]model.Attendance{}
	for _, r := range records {
		byDate[r.Date] = r
	}
	assert.Equal(t, model.StatusIzin, byDate["2025-03-05"].Status)
	assert.Equal(t, model.StatusIzin, byDate["2025-03-06"].Status)
	assert.Equal(t, model.StatusAlfa, byDate["2025-03-07"].Status)

	// Sync tanggal tanpa record adalah no-op.
	require.NoError(t, syncer.Sync(user.ID, "2025-02-01"))
}
