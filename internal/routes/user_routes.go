package routes

import (
	"absensi-backend/internal/handler"
	"absensi-backend/internal/middleware"
	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewUserHandler(userRepo)

	app.Post("/api/auth/login", hdl.Login)
	app.Get("/api/profile", middleware.Auth, hdl.GetProfile)

	api := app.Group("/api/users", middleware.Auth, middleware.Role(model.RoleAdmin))
	api.Post("/", hdl.Create)
	api.Get("/", hdl.List)
	api.Get("/:id", hdl.Get)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
