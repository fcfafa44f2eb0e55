package main

import (
	"log"

	"absensi-backend/config"
	"absensi-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // foto absensi dikirim sebagai base64
	})

	app.Use(cors.New())
	app.Use(logger.New())

	// Foto bukti dan lampiran laporan diserve sebagai static file.
	app.Static("/uploads", "./uploads")

	routes.SetupUserRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)
	routes.SetupLeaveRoutes(app, config.DB)
	routes.SetupReportRoutes(app, config.DB)
	routes.SetupPayrollRoutes(app, config.DB)
	routes.SetupPerformanceRoutes(app, config.DB)
	routes.SetupSettingRoutes(app, config.DB)
	routes.SetupNotificationRoutes(app, config.DB)
	routes.SetupStatusRequestRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	log.Printf("Server siap di port :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
