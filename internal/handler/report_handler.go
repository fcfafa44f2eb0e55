package handler

import (
	"absensi-backend/internal/middleware"
	"absensi-backend/internal/model"
	"absensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	uc *usecase.ReportUsecase
}

func NewReportHandler(uc *usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var in usecase.CreateReportInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	report, err := h.uc.Create(middleware.UserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Laporan berhasil dikirim", "data": report})
}

// List: admin melihat semua laporan, user hanya miliknya sendiri.
func (h *ReportHandler) List(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	var (
		reports []model.DailyReport
		err     error
	)
	if role == model.RoleAdmin {
		reports, err = h.uc.ListAll()
	} else {
		reports, err = h.uc.ListForUser(middleware.UserID(c))
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil laporan", "data": reports})
}
