package user

import (
	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

// History lists the acting account's ledger entries, newest first. The
// ledger is append-only, so this is the audit trail.
func History(c *fiber.Ctx) error {
	actor, ok := c.Locals("actor").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACTOR_SESSION")
	}

	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var txns []models.Transaction
	if err := database.DB.
		Where("user_id = ?", actor.ID).
		Order("id DESC").
		Limit(limit).
		Find(&txns).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_HISTORY")
	}

	entries := make([]fiber.Map, 0, len(txns))
	for _, t := range txns {
		entries = append(entries, fiber.Map{
			"id":            t.ID,
			"amount":        helpers.DisplayAmount(t.Amount),
			"balance_after": helpers.DisplayAmount(t.BalanceAfter),
			"description":   t.Description,
			"ref_id":        t.RefID,
			"created_at":    t.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return helpers.JSONSuccess(c, "Transaction history", fiber.Map{
		"user_code":    actor.UserCode,
		"transactions": entries,
	})
}
