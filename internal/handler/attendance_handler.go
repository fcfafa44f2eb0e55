package handler

import (
	"strconv"

	"absensi-backend/internal/middleware"
	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"
	"absensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	uc   *usecase.AttendanceUsecase
	repo repository.AttendanceRepository
}

func NewAttendanceHandler(uc *usecase.AttendanceUsecase, repo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{uc: uc, repo: repo}
}

// Action menerima checkin/break/checkout dalam satu endpoint.
func (h *AttendanceHandler) Action(c *fiber.Ctx) error {
	var in usecase.ActionInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	result, err := h.uc.Action(middleware.UserID(c), in)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    result.Message,
		"is_holiday": result.IsHoliday,
		"data":       result.Record,
	})
}

func (h *AttendanceHandler) MyHistory(c *fiber.Ctx) error {
	records, err := h.uc.ListForUser(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil riwayat", "data": records})
}

func (h *AttendanceHandler) ListAll(c *fiber.Ctx) error {
	records, err := h.uc.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data absensi", "data": records})
}

type CreateAttendanceRequest struct {
	UserID        uint   `json:"user_id"`
	Date          string `json:"date"`
	Status        string `json:"status"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	CheckInStatus string `json:"check_in_status"`
}

// Create untuk input manual oleh admin, misal absensi susulan.
func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var req CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if req.UserID == 0 || req.Date == "" || req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id, date, dan status wajib diisi"})
	}
	if _, err := h.repo.GetByDate(req.UserID, req.Date); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data absensi untuk tanggal ini sudah ada"})
	}

	record := &model.Attendance{
		UserID:        req.UserID,
		Date:          req.Date,
		Status:        req.Status,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		CheckInStatus: req.CheckInStatus,
	}
	if err := h.repo.Create(record); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Data absensi berhasil dibuat", "data": record})
}

type UpdateAttendanceRequest struct {
	Status        string `json:"status"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
	CheckInStatus string `json:"check_in_status"`
}

// Update untuk koreksi manual oleh admin.
func (h *AttendanceHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	record, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data absensi tidak ditemukan"})
	}

	var req UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	if req.Status != "" {
		record.Status = req.Status
	}
	if req.CheckIn != "" {
		record.CheckIn = req.CheckIn
	}
	if req.CheckOut != "" {
		record.CheckOut = req.CheckOut
	}
	if req.CheckInStatus != "" {
		record.CheckInStatus = req.CheckInStatus
	}

	if err := h.repo.Update(record); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Data absensi berhasil diperbarui", "data": record})
}

func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Data absensi berhasil dihapus"})
}
