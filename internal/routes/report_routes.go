package routes

import (
	"absensi-backend/internal/handler"
	"absensi-backend/internal/middleware"
	"absensi-backend/internal/repository"
	"absensi-backend/internal/storage"
	"absensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	reportRepo := repository.NewDailyReportRepository(db)
	timeSettingRepo := repository.NewTimeSettingRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	resolver := usecase.NewSettingResolver(timeSettingRepo, settingRepo)
	files := storage.NewPhotoStore("./uploads/reports", "/uploads/reports")

	uc := usecase.NewReportUsecase(reportRepo, resolver, files)
	hdl := handler.NewReportHandler(uc)

	api := app.Group("/api/reports", middleware.Auth)
	api.Post("/", hdl.Create)
	api.Get("/", hdl.List)
}
