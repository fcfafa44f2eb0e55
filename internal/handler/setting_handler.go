package handler

import (
	"strconv"

	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type SettingHandler struct {
	repo        repository.SettingRepository
	timeRepo    repository.TimeSettingRepository
	holidayRepo repository.HolidaySettingRepository
}

func NewSettingHandler(repo repository.SettingRepository, timeRepo repository.TimeSettingRepository, holidayRepo repository.HolidaySettingRepository) *SettingHandler {
	return &SettingHandler{repo: repo, timeRepo: timeRepo, holidayRepo: holidayRepo}
}

func (h *SettingHandler) List(c *fiber.Ctx) error {
	settings, err := h.repo.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

type SetSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (h *SettingHandler) Set(c *fiber.Ctx) error {
	var req SetSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if req.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Key required"})
	}

	if err := h.repo.Upsert(req.Key, req.Value); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Saved"})
}

// --- Pengaturan jam kerja per user ---

func (h *SettingHandler) ListTimeSettings(c *fiber.Ctx) error {
	settings, err := h.timeRepo.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

func (h *SettingHandler) GetTimeSetting(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	setting, err := h.timeRepo.GetByUser(uint(userID))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Setting tidak ditemukan"})
	}
	return c.JSON(setting)
}

func (h *SettingHandler) UpsertTimeSetting(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var setting model.UserTimeSetting
	if err := c.BodyParser(&setting); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if setting.CheckInTime == "" || setting.CheckOutTime == "" || setting.BreakStartTime == "" || setting.BreakEndTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Semua field jam wajib diisi"})
	}
	setting.UserID = uint(userID)

	if err := h.timeRepo.Upsert(&setting); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pengaturan jam kerja berhasil disimpan", "data": setting})
}

type BulkTimeSettingRequest struct {
	UserIDs          []uint `json:"user_ids"`
	CheckInTime      string `json:"check_in_time"`
	CheckOutTime     string `json:"check_out_time"`
	BreakStartTime   string `json:"break_start_time"`
	BreakEndTime     string `json:"break_end_time"`
	CheckInTolerance int    `json:"check_in_tolerance"`
	BreakDuration    int    `json:"break_duration"`
	IsActive         bool   `json:"is_active"`
}

// BulkUpsertTimeSettings memasang jam kerja yang sama ke banyak user sekaligus.
func (h *SettingHandler) BulkUpsertTimeSettings(c *fiber.Ctx) error {
	var req BulkTimeSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if len(req.UserIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "user_ids wajib diisi"})
	}
	if req.CheckInTime == "" || req.CheckOutTime == "" || req.BreakStartTime == "" || req.BreakEndTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Semua field jam wajib diisi"})
	}

	for _, userID := range req.UserIDs {
		setting := model.UserTimeSetting{
			UserID:           userID,
			CheckInTime:      req.CheckInTime,
			CheckOutTime:     req.CheckOutTime,
			BreakStartTime:   req.BreakStartTime,
			BreakEndTime:     req.BreakEndTime,
			CheckInTolerance: req.CheckInTolerance,
			BreakDuration:    req.BreakDuration,
			IsActive:         req.IsActive,
		}
		if err := h.timeRepo.Upsert(&setting); err != nil {
			return respondError(c, err)
		}
	}
	return c.JSON(fiber.Map{"message": "Pengaturan jam kerja berhasil disimpan", "count": len(req.UserIDs)})
}

func (h *SettingHandler) DeleteTimeSetting(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if err := h.timeRepo.DeleteByUser(uint(userID)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pengaturan jam kerja berhasil dihapus"})
}

// --- Pengaturan hari libur per user ---

func (h *SettingHandler) ListHolidaySettings(c *fiber.Ctx) error {
	settings, err := h.holidayRepo.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

func (h *SettingHandler) GetHolidaySetting(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	setting, err := h.holidayRepo.GetActiveByUser(uint(userID))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Setting tidak ditemukan"})
	}
	return c.JSON(setting)
}

func (h *SettingHandler) UpsertHolidaySetting(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var setting model.UserHolidaySetting
	if err := c.BodyParser(&setting); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if setting.Day1 < 0 || setting.Day1 > 6 || (setting.Day2 != nil && (*setting.Day2 < 0 || *setting.Day2 > 6)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Hari harus 0 (Minggu) sampai 6 (Sabtu)"})
	}
	if setting.Day2 != nil && *setting.Day2 == setting.Day1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Hari libur kedua tidak boleh sama dengan hari pertama"})
	}
	setting.UserID = uint(userID)

	if err := h.holidayRepo.Upsert(&setting); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pengaturan hari libur berhasil disimpan", "data": setting})
}

func (h *SettingHandler) DeleteHolidaySetting(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if err := h.holidayRepo.DeleteByUser(uint(userID)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pengaturan hari libur berhasil dihapus"})
}
