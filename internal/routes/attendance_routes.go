package routes

import (
	"absensi-backend/internal/handler"
	"absensi-backend/internal/middleware"
	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"
	"absensi-backend/internal/storage"
	"absensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	userRepo := repository.NewUserRepository(db)
	leaveRepo := repository.NewLeaveRequestRepository(db)
	holidayRepo := repository.NewHolidaySettingRepository(db)
	timeSettingRepo := repository.NewTimeSettingRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	resolver := usecase.NewSettingResolver(timeSettingRepo, settingRepo)
	syncer := usecase.NewStatusSyncer(attendanceRepo, leaveRepo)
	photos := storage.NewPhotoStore("./uploads/attendance", "/uploads/attendance")

	uc := usecase.NewAttendanceUsecase(attendanceRepo, userRepo, holidayRepo, resolver, syncer, photos)
	hdl := handler.NewAttendanceHandler(uc, attendanceRepo)

	api := app.Group("/api/attendance", middleware.Auth)
	api.Post("/", hdl.Action)
	api.Get("/my", hdl.MyHistory)
	api.Get("/", middleware.Role(model.RoleAdmin), hdl.ListAll)
	api.Post("/manual", middleware.Role(model.RoleAdmin), hdl.Create)
	api.Put("/:id", middleware.Role(model.RoleAdmin), hdl.Update)
	api.Delete("/:id", middleware.Role(model.RoleAdmin), hdl.Delete)
}
