package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/delishare/delishare-backend/app/models"
	"github.com/delishare/delishare-backend/app/repository"
)

// msgInvalidCredentials is deliberately the same for an unknown email and a
// wrong password so the endpoint cannot be used to enumerate accounts.
const msgInvalidCredentials = "Email o contraseña incorrectos."

// AuthController serves the /auth routes: registration and login.
type AuthController struct {
	users repository.UserRepository
}

// NewAuthController creates an auth controller on the given user repository.
func NewAuthController(users repository.UserRepository) *AuthController {
	return &AuthController{users: users}
}

// HandleRegister validates the registration input, rejects duplicate emails
// and persists the user with a bcrypt hash. The response never contains
// password material.
func (ctrl *AuthController) HandleRegister(c *fiber.Ctx) error {
	var input models.UserCreate
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	if err := input.Validate(); err != nil {
		if errors.Is(err, models.ErrInvalidPasswordFormat) {
			return respondError(c, fiber.StatusBadRequest, "La contraseña no cumple con los requisitos de formato (8-20 caracteres, sin espacios).")
		}
		return respondError(c, fiber.StatusBadRequest, msgInvalidInput)
	}

	if _, err := ctrl.users.GetByEmail(input.Email); err == nil {
		return respondError(c, fiber.StatusConflict, "Este correo electrónico ya está registrado.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return respondError(c, fiber.StatusInternalServerError, msgInternalError)
	}

	hash, err := models.HashPassword(input.Password)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, msgInternalError)
	}

	user, err := ctrl.users.Create(&input, hash)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, msgInternalError)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// loginRequest is the expected login body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin authenticates a user by email and password and reports whether
// their premium subscription is currently active.
func (ctrl *AuthController) HandleLogin(c *fiber.Ctx) error {
	var input loginRequest
	if err := c.BodyParser(&input); err != nil {
		return respondError(c, fiber.StatusBadRequest, msgInvalidBody)
	}
	if input.Email == "" || input.Password == "" {
		return respondError(c, fiber.StatusBadRequest, "Faltan datos: email y password son requeridos.")
	}

	user, err := ctrl.users.GetByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respondError(c, fiber.StatusUnauthorized, msgInvalidCredentials)
		}
		return respondError(c, fiber.StatusInternalServerError, msgInternalError)
	}

	if !user.CheckPassword(input.Password) {
		return respondError(c, fiber.StatusUnauthorized, msgInvalidCredentials)
	}

	now := time.Now()
	if err := ctrl.users.UpdateLastLogin(user.ID, now); err == nil {
		user.LastLogin = &now
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    loginResponseUser(user, now),
	})
}

// loginResponseUser shapes the public user representation for the login
// response, with the derived suscripcion_activa flag attached. The password
// hash stays behind the repository boundary.
func loginResponseUser(user *models.User, now time.Time) fiber.Map {
	return fiber.Map{
		"id":                 user.ID,
		"nombre":             user.Name,
		"email":              user.Email,
		"tipo_suscripcion":   user.SubscriptionType,
		"fecha_suscripcion":  user.SubscriptionStart,
		"fecha_vencimiento":  user.SubscriptionExpiry,
		"activo":             user.Active,
		"intentos_login":     user.LoginAttempts,
		"bloqueado_hasta":    user.LockedUntil,
		"ultimo_login":       user.LastLogin,
		"created_at":         user.CreatedAt,
		"updated_at":         user.UpdatedAt,
		"suscripcion_activa": user.SubscriptionActive(now),
	}
}
