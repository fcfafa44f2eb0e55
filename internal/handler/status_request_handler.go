package handler

import (
	"strconv"

	"absensi-backend/internal/middleware"
	"absensi-backend/internal/model"
	"absensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type StatusRequestHandler struct {
	uc *usecase.StatusRequestUsecase
}

func NewStatusRequestHandler(uc *usecase.StatusRequestUsecase) *StatusRequestHandler {
	return &StatusRequestHandler{uc: uc}
}

func (h *StatusRequestHandler) Create(c *fiber.Ctx) error {
	var in usecase.CreateStatusRequestInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	req, err := h.uc.Create(middleware.UserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(req)
}

// List: admin melihat semua request, user hanya miliknya sendiri.
func (h *StatusRequestHandler) List(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	var (
		requests []model.AttendanceStatusRequest
		err      error
	)
	if role == model.RoleAdmin {
		requests, err = h.uc.ListAll()
	} else {
		requests, err = h.uc.ListForUser(middleware.UserID(c))
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

func (h *StatusRequestHandler) ListPending(c *fiber.Ctx) error {
	requests, err := h.uc.ListPending()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

type DecideStatusRequest struct {
	Status    string `json:"status"` // Approved/Rejected
	AdminNote string `json:"admin_note"`
}

func (h *StatusRequestHandler) Decide(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req DecideStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	if err := h.uc.Decide(uint(id), req.Status, req.AdminNote); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Request berhasil diproses"})
}
