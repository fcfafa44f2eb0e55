package handler

import (
	"fmt"
	"strconv"

	"absensi-backend/internal/middleware"
	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"
	"absensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PayrollHandler struct {
	uc          *usecase.PayrollUsecase
	settingRepo repository.PayrollSettingRepository
	userRepo    repository.UserRepository
}

func NewPayrollHandler(uc *usecase.PayrollUsecase, settingRepo repository.PayrollSettingRepository, userRepo repository.UserRepository) *PayrollHandler {
	return &PayrollHandler{uc: uc, settingRepo: settingRepo, userRepo: userRepo}
}

// Calculate menghitung payroll lengkap (potongan + bonus) satu user.
func (h *PayrollHandler) Calculate(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Query("userId"))
	month := c.Query("month")
	if err != nil || userID == 0 || month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "userId dan month (YYYY-MM) wajib diisi"})
	}

	result, calcErr := h.uc.Calculate(uint(userID), month)
	if calcErr != nil {
		return respondError(c, calcErr)
	}
	return c.JSON(result)
}

// GenerateCSV mengunduh payroll sederhana semua user sebagai CSV.
func (h *PayrollHandler) GenerateCSV(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "month=YYYY-MM required"})
	}

	csvData, err := h.uc.SimpleCSV(month)
	if err != nil {
		return respondError(c, err)
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payroll_%s.csv"`, month))
	return c.SendString(csvData)
}

func (h *PayrollHandler) ListAll(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "month=YYYY-MM required"})
	}

	rows, err := h.uc.GenerateSimple(month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

func (h *PayrollHandler) My(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "month=YYYY-MM required"})
	}

	row, err := h.uc.MySimple(middleware.UserID(c), month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(row)
}

func (h *PayrollHandler) ListSettings(c *fiber.Ctx) error {
	settings, err := h.settingRepo.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(settings)
}

func (h *PayrollHandler) GetSetting(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	setting, err := h.settingRepo.GetByUser(uint(userID))
	if err == nil {
		return c.JSON(setting)
	}

	// Belum ada setting: balas default supaya form admin tetap terisi.
	user, userErr := h.userRepo.FindByID(uint(userID))
	if userErr != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User tidak ditemukan"})
	}
	return c.JSON(model.PayrollSetting{
		UserID:        uint(userID),
		DeductionType: model.DeductionPercentage,
		IsActive:      true,
		User:          *user,
	})
}

func (h *PayrollHandler) UpsertSetting(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if _, err := h.userRepo.FindByID(uint(userID)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User tidak ditemukan"})
	}

	var setting model.PayrollSetting
	if err := c.BodyParser(&setting); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	setting.UserID = uint(userID)
	if setting.DeductionType == "" {
		setting.DeductionType = model.DeductionPercentage
	}

	if err := h.settingRepo.Upsert(&setting); err != nil {
		return respondError(c, err)
	}
	return c.JSON(setting)
}
