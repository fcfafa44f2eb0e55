package handler

import (
	"absensi-backend/internal/middleware"
	"absensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	repo repository.NotificationRepository
}

func NewNotificationHandler(repo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

func (h *NotificationHandler) MyNotifications(c *fiber.Ctx) error {
	notifications, err := h.repo.ListByUser(middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil notifikasi", "data": notifications})
}
