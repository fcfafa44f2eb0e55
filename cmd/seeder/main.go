package main

import (
	"log"

	"absensi-backend/config"
	"absensi-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)
}
