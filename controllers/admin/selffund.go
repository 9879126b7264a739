package admin

import (
	"matka/database"
	"matka/helpers"
	"matka/ledger"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

type SelfFundRequest struct {
	Amount int64  `json:"amount"` // subunits
	Note   string `json:"note"`
}

// SelfFund credits the acting admin's own float ("platform investment").
// The single case where money appears without a counterpart deduction.
func SelfFund(c *fiber.Ctx) error {
	var req SelfFundRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Amount <= 0 {
		return helpers.JSONError(c, "VALID_AMOUNT_REQUIRED")
	}

	actor, ok := c.Locals("actor").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACTOR_SESSION")
	}

	result, err := ledger.Transfer(database.DB, actor.ID, actor.ID,
		req.Amount, ledger.DirectionCredit, req.Note, nil)
	if err != nil {
		return transferError(c, err)
	}

	return helpers.JSONSuccess(c, "Platform funding recorded", fiber.Map{
		"ref_id":  result.RefID,
		"balance": helpers.DisplayAmount(result.TargetTxn.BalanceAfter),
	})
}
