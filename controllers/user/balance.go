package user

import (
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

// Balance reports the acting account's balance. Rupee rendering happens
// here, at the presentation boundary; the stored value is subunits.
func Balance(c *fiber.Ctx) error {
	actor, ok := c.Locals("actor").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACTOR_SESSION")
	}

	return helpers.JSONSuccess(c, "Balance retrieved successfully", fiber.Map{
		"user_code": actor.UserCode,
		"balance":   helpers.DisplayAmount(actor.Balance),
		"subunits":  actor.Balance,
	})
}
