package middlewares

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"dugun.link/configs"
)

// AuthMiddleware Authorization başlığındaki Bearer token'ı doğrular ve
// kullanıcı kimliğini Locals'a yazar.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return unauthorized(c, "oturum token'ı eksik")
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("beklenmeyen imza yöntemi")
		}
		return []byte(configs.JWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return unauthorized(c, "oturum token'ı geçersiz veya süresi dolmuş")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return unauthorized(c, "oturum token'ı geçersiz")
	}
	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return unauthorized(c, "oturum token'ı geçersiz")
	}

	isSystem, _ := claims["isSystem"].(bool)
	c.Locals("userID", uint(sub))
	c.Locals("isSystem", isSystem)
	return c.Next()
}

// RequireSystem yalnızca sistem yöneticilerinin geçmesine izin verir.
// AuthMiddleware'den sonra kullanılmalıdır.
func RequireSystem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isSystem, _ := c.Locals("isSystem").(bool)
		if !isSystem {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "bu işlem için sistem yöneticisi yetkisi gereklidir",
			})
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// UserIDFromContext Locals'taki kullanıcı kimliğini döndürür.
func UserIDFromContext(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}
