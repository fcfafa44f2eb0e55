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

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB) {
	leaveRepo := repository.NewLeaveRequestRepository(db)
	userRepo := repository.NewUserRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	syncer := usecase.NewStatusSyncer(attendanceRepo, leaveRepo)
	notifier := usecase.NewNotifier(notificationRepo, userRepo)

	uc := usecase.NewLeaveUsecase(db, leaveRepo, userRepo, syncer, notifier)
	hdl := handler.NewLeaveHandler(uc)

	api := app.Group("/api/leave", middleware.Auth)
	api.Post("/", hdl.Create)
	api.Get("/my", hdl.MyRequests)
	api.Get("/", middleware.Role(model.RoleAdmin), hdl.ListAll)
	api.Get("/pending", middleware.Role(model.RoleAdmin), hdl.ListPending)
	api.Put("/:id/status", middleware.Role(model.RoleAdmin), hdl.UpdateStatus)
}
