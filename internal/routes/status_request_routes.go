package routes

import (
	"absensi-backend/internal/handler"
	"absensi-backend/internal/middleware"
	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"
	"absensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStatusRequestRoutes(app *fiber.App, db *gorm.DB) {
	requestRepo := repository.NewStatusRequestRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	userRepo := repository.NewUserRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notifier := usecase.NewNotifier(notificationRepo, userRepo)
	uc := usecase.NewStatusRequestUsecase(requestRepo, attendanceRepo, userRepo, notifier)
	hdl := handler.NewStatusRequestHandler(uc)

	api := app.Group("/api/attendance-status-requests", middleware.Auth)
	api.Post("/", hdl.Create)
	api.Get("/", hdl.List)
	api.Get("/pending", middleware.Role(model.RoleAdmin), hdl.ListPending)
	api.Put("/:id", middleware.Role(model.RoleAdmin), hdl.Decide)
}
