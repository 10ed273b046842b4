package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"dugun.link/services"
)

// AuthHandler yönetici giriş ucu.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

// NewAuthHandlerWith bağımlılık enjeksiyonu ile oluşturur (testler).
func NewAuthHandlerWith(as services.IAuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "istek gövdesi çözümlenemedi",
		})
	}

	result, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		case errors.Is(err, services.ErrAuthAccountDisabled):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "beklenmeyen bir hata oluştu",
			})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}
