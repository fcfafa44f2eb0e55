package handler

import (
	"strconv"

	"absensi-backend/internal/middleware"
	"absensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PerformanceHandler struct {
	uc *usecase.PerformanceUsecase
}

func NewPerformanceHandler(uc *usecase.PerformanceUsecase) *PerformanceHandler {
	return &PerformanceHandler{uc: uc}
}

func (h *PerformanceHandler) AllKPI(c *fiber.Ctx) error {
	report, err := h.uc.ScoreAll(c.Query("mode"), c.Query("month"), c.Query("year"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

func (h *PerformanceHandler) UserKPI(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	kpi, err := h.uc.ScoreUser(uint(userID), c.Query("mode"), c.Query("month"), c.Query("year"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(kpi)
}

func (h *PerformanceHandler) MyKPI(c *fiber.Ctx) error {
	kpi, err := h.uc.ScoreUser(middleware.UserID(c), c.Query("mode"), c.Query("month"), c.Query("year"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(kpi)
}
