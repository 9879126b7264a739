package wallet

import (
	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

type CreateRequest struct {
	Type   string `json:"type"` // deposit | withdrawal
	Amount int64  `json:"amount"`
	Note   string `json:"note"`
}

// Create files a deposit or withdrawal request for the acting player. No
// money moves here; the transfer happens when a superior approves it.
func Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Type != models.RequestDeposit && req.Type != models.RequestWithdrawal {
		return helpers.JSONError(c, "TYPE_MUST_BE_DEPOSIT_OR_WITHDRAWAL")
	}
	if req.Amount <= 0 {
		return helpers.JSONError(c, "VALID_AMOUNT_REQUIRED")
	}

	actor, ok := c.Locals("actor").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACTOR_SESSION")
	}

	request := models.WalletRequest{
		UserID: actor.ID,
		Type:   req.Type,
		Amount: req.Amount,
		Status: models.RequestPending,
		Note:   req.Note,
	}

	if err := database.DB.Create(&request).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_REQUEST")
	}

	return helpers.JSONSuccess(c, "Wallet request filed", fiber.Map{
		"request_id": request.ID,
		"type":       request.Type,
		"amount":     helpers.DisplayAmount(request.Amount),
		"status":     request.Status,
	})
}
