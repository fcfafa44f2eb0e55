package middleware

import (
	"strings"

	"absensi-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTSecret dibaca sekali saat start. Harus sama dengan yang dipakai
// saat menandatangani token di handler login.
func JWTSecret() []byte {
	return []byte(config.GetEnv("JWT_SECRET", "rahasia_absensi"))
}

func Auth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak ditemukan"})
	}

	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
	}

	claims := token.Claims.(jwt.MapClaims)
	c.Locals("user_id", claims["user_id"])
	c.Locals("username", claims["username"])
	c.Locals("role", claims["role"])

	return c.Next()
}

// UserID membaca user id dari context yang diset Auth.
// Claim angka di JWT selalu terparse sebagai float64.
func UserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("user_id").(float64); ok {
		return uint(id)
	}
	return 0
}
