package handler

import (
	"strconv"

	"absensi-backend/internal/middleware"
	"absensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type LeaveHandler struct {
	uc *usecase.LeaveUsecase
}

func NewLeaveHandler(uc *usecase.LeaveUsecase) *LeaveHandler {
	return &LeaveHandler{uc: uc}
}

func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	var in usecase.CreateLeaveInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	req, err := h.uc.Create(middleware.UserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pengajuan berhasil dibuat", "data": req})
}

func (h *LeaveHandler) MyRequests(c *fiber.Ctx) error {
	requests, err := h.uc.ListForUser(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil pengajuan", "data": requests})
}

func (h *LeaveHandler) ListAll(c *fiber.Ctx) error {
	requests, err := h.uc.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil pengajuan", "data": requests})
}

func (h *LeaveHandler) ListPending(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))
	requests, err := h.uc.ListPending(limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil pengajuan pending", "data": requests})
}

type UpdateLeaveStatusRequest struct {
	Status string `json:"status"` // Approved/Rejected/Pending
}

func (h *LeaveHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req UpdateLeaveStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	updated, err := h.uc.UpdateStatus(uint(id), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Status pengajuan berhasil diperbarui", "data": updated})
}
