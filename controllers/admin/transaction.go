package admin

import (
	"errors"

	"matka/database"
	"matka/helpers"
	"matka/ledger"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

type TransactionRequest struct {
	UserCode  string `json:"user_code"`
	Amount    int64  `json:"amount"` // subunits
	Direction string `json:"direction"`
	Note      string `json:"note"`
}

// Transaction is the admin-initiated transfer: credit moves funds toward the
// target, debit claws them back. Commission scaling for subadmin targets
// lives in the ledger, not here.
func Transaction(c *fiber.Ctx) error {
	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.UserCode == "" || req.Amount <= 0 {
		return helpers.JSONError(c, "USER_CODE_AND_VALID_AMOUNT_REQUIRED")
	}

	actor, ok := c.Locals("actor").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACTOR_SESSION")
	}

	var target models.User
	if err := database.DB.
		Where("user_code = ? AND assigned_to = ? AND is_active = true", req.UserCode, actor.ID).
		First(&target).Error; err != nil {
		return helpers.JSONError(c, "USER_NOT_FOUND_OR_UNAUTHORIZED")
	}

	result, err := ledger.Transfer(database.DB, actor.ID, target.ID,
		req.Amount, ledger.Direction(req.Direction), req.Note, nil)
	if err != nil {
		return transferError(c, err)
	}

	return helpers.JSONSuccess(c, "Transaction completed", fiber.Map{
		"ref_id":         result.RefID,
		"user_code":      target.UserCode,
		"actor_balance":  helpers.DisplayAmount(result.ActorTxn.BalanceAfter),
		"target_balance": helpers.DisplayAmount(result.TargetTxn.BalanceAfter),
	})
}

func transferError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return helpers.JSONError(c, "INSUFFICIENT_BALANCE")
	case errors.Is(err, ledger.ErrInvalidAmount):
		return helpers.JSONError(c, "INVALID_AMOUNT")
	case errors.Is(err, ledger.ErrAccountNotFound):
		return helpers.JSONError(c, "ACCOUNT_NOT_FOUND")
	case errors.Is(err, ledger.ErrSameAccount), errors.Is(err, ledger.ErrInvalidTransition):
		return helpers.JSONError(c, "INVALID_TRANSFER")
	default:
		return helpers.JSONError(c, "TRANSFER_FAILED")
	}
}
