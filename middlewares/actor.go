package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

// Session and cookie handling live in the web frontend; the engine's API is
// signed instead: X-Signature = HMAC-SHA256(user_code, API_SECRET).

func validSignature(userCode, signature string) bool {
	secret := os.Getenv("API_SECRET")
	if secret == "" || signature == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(userCode))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func authByRole(c *fiber.Ctx, roles ...string) error {
	userCode := c.Get("X-User-Code")
	signature := c.Get("X-Signature")

	if userCode == "" {
		return helpers.JSONError(c, "USER_CODE_REQUIRED")
	}
	if !validSignature(userCode, signature) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "INVALID_SIGNATURE",
			"data":    nil,
		})
	}

	var actor models.User
	if err := database.DB.
		Where("user_code = ? AND role IN ? AND is_active = true", userCode, roles).
		First(&actor).Error; err != nil {
		return helpers.JSONError(c, "ACTOR_NOT_FOUND_OR_UNAUTHORIZED")
	}

	c.Locals("actor", actor)
	return c.Next()
}

// AdminAuth resolves an acting admin or subadmin account.
func AdminAuth(c *fiber.Ctx) error {
	return authByRole(c, models.RoleAdmin, models.RoleSubadmin)
}

// PlayerAuth resolves an acting player account.
func PlayerAuth(c *fiber.Ctx) error {
	return authByRole(c, models.RolePlayer)
}
