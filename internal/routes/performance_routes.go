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

func SetupPerformanceRoutes(app *fiber.App, db *gorm.DB) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	leaveRepo := repository.NewLeaveRequestRepository(db)
	reportRepo := repository.NewDailyReportRepository(db)
	userRepo := repository.NewUserRepository(db)
	timeSettingRepo := repository.NewTimeSettingRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	resolver := usecase.NewSettingResolver(timeSettingRepo, settingRepo)
	uc := usecase.NewPerformanceUsecase(attendanceRepo, leaveRepo, reportRepo, userRepo, resolver)
	hdl := handler.NewPerformanceHandler(uc)

	api := app.Group("/api/kpi", middleware.Auth)
	api.Get("/my", hdl.MyKPI)
	api.Get("/", middleware.Role(model.RoleAdmin, model.RoleHead), hdl.AllKPI)
	api.Get("/users/:userId", middleware.Role(model.RoleAdmin, model.RoleHead), hdl.UserKPI)
}
