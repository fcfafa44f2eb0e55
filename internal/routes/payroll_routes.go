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

func SetupPayrollRoutes(app *fiber.App, db *gorm.DB) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	reportRepo := repository.NewDailyReportRepository(db)
	payrollSettingRepo := repository.NewPayrollSettingRepository(db)
	userRepo := repository.NewUserRepository(db)
	timeSettingRepo := repository.NewTimeSettingRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	resolver := usecase.NewSettingResolver(timeSettingRepo, settingRepo)
	uc := usecase.NewPayrollUsecase(attendanceRepo, reportRepo, payrollSettingRepo, userRepo, resolver)
	hdl := handler.NewPayrollHandler(uc, payrollSettingRepo, userRepo)

	api := app.Group("/api/payroll", middleware.Auth)
	api.Get("/my", hdl.My)
	api.Get("/calculate", middleware.Role(model.RoleAdmin), hdl.Calculate)
	api.Get("/generate", middleware.Role(model.RoleAdmin), hdl.GenerateCSV)
	api.Get("/all", middleware.Role(model.RoleAdmin), hdl.ListAll)

	settings := app.Group("/api/payroll-settings", middleware.Auth, middleware.Role(model.RoleAdmin))
	settings.Get("/", hdl.ListSettings)
	settings.Get("/:userId", hdl.GetSetting)
	settings.Put("/:userId", hdl.UpsertSetting)
}
