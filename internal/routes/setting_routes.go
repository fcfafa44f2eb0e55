package routes

import (
	"absensi-backend/internal/handler"
	"absensi-backend/internal/middleware"
	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSettingRoutes(app *fiber.App, db *gorm.DB) {
	settingRepo := repository.NewSettingRepository(db)
	timeRepo := repository.NewTimeSettingRepository(db)
	holidayRepo := repository.NewHolidaySettingRepository(db)
	hdl := handler.NewSettingHandler(settingRepo, timeRepo, holidayRepo)

	api := app.Group("/api/settings", middleware.Auth)
	api.Get("/", hdl.List)
	api.Post("/", middleware.Role(model.RoleAdmin), hdl.Set)

	timeAPI := app.Group("/api/time-settings", middleware.Auth, middleware.Role(model.RoleAdmin))
	timeAPI.Get("/", hdl.ListTimeSettings)
	timeAPI.Post("/bulk", hdl.BulkUpsertTimeSettings)
	timeAPI.Get("/:userId", hdl.GetTimeSetting)
	timeAPI.Put("/:userId", hdl.UpsertTimeSetting)
	timeAPI.Delete("/:userId", hdl.DeleteTimeSetting)

	holidayAPI := app.Group("/api/holiday-settings", middleware.Auth, middleware.Role(model.RoleAdmin))
	holidayAPI.Get("/", hdl.ListHolidaySettings)
	holidayAPI.Get("/:userId", hdl.GetHolidaySetting)
	holidayAPI.Put("/:userId", hdl.UpsertHolidaySetting)
	holidayAPI.Delete("/:userId", hdl.DeleteHolidaySetting)
}
