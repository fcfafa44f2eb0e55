package handler

import (
	"strconv"
	"time"

	"absensi-backend/internal/middleware"
	"absensi-backend/internal/model"
	"absensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	repo repository.UserRepository
}

func NewUserHandler(repo repository.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func generateToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.JWTSecret())
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	user, err := h.repo.FindByUsername(req.Username)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Username atau password salah"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Username atau password salah"})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data": fiber.Map{
			"id":          user.ID,
			"name":        user.Name,
			"username":    user.Username,
			"role":        user.Role,
			"employee_id": user.EmployeeID,
			"position":    user.Position,
			"department":  user.Department,
		},
	})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user, err := h.repo.FindByID(middleware.UserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	return c.JSON(fiber.Map{"message": "Berhasil mengambil profil", "data": user})
}

type CreateUserRequest struct {
	Name            string  `json:"name"`
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	Role            string  `json:"role"`
	Email           string  `json:"email"`
	EmployeeID      string  `json:"employee_id"`
	Position        string  `json:"position"`
	Department      string  `json:"department"`
	StartDate       string  `json:"start_date"`
	BasicSalary     float64 `json:"basic_salary"`
	Currency        string  `json:"currency"`
	LeaveQuota      int     `json:"leave_quota"`
	LeaveQuotaOther *int    `json:"leave_quota_other"`
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if req.Username == "" || req.Password == "" || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name, username, dan password wajib diisi"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memproses password"})
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}
	leaveQuota := req.LeaveQuota
	if leaveQuota == 0 {
		leaveQuota = 12
	}

	user := model.User{
		Name:            req.Name,
		Username:        req.Username,
		Password:        string(hashed),
		Role:            role,
		Email:           req.Email,
		EmployeeID:      req.EmployeeID,
		Position:        req.Position,
		Department:      req.Department,
		StartDate:       req.StartDate,
		BasicSalary:     req.BasicSalary,
		Currency:        req.Currency,
		LeaveQuota:      leaveQuota,
		LeaveQuotaOther: req.LeaveQuotaOther,
	}
	if err := h.repo.Create(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Username atau employee ID sudah dipakai"})
	}

	return c.JSON(fiber.Map{"message": "User berhasil dibuat", "data": user})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.repo.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data user", "data": users})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	user, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data user", "data": user})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	user, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}

	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Position != "" {
		user.Position = req.Position
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.StartDate != "" {
		user.StartDate = req.StartDate
	}
	if req.BasicSalary > 0 {
		user.BasicSalary = req.BasicSalary
	}
	if req.Currency != "" {
		user.Currency = req.Currency
	}
	if req.LeaveQuota > 0 {
		user.LeaveQuota = req.LeaveQuota
	}
	if req.LeaveQuotaOther != nil {
		user.LeaveQuotaOther = req.LeaveQuotaOther
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memproses password"})
		}
		user.Password = string(hashed)
	}

	if err := h.repo.Update(user); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User berhasil diperbarui", "data": user})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User berhasil dihapus"})
}
