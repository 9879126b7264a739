package wallet

import (
	"errors"

	"matka/database"
	"matka/helpers"
	"matka/ledger"
	"matka/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	RequestID uint   `json:"request_id"`
	Decision  string `json:"decision"` // approved | rejected
	Note      string `json:"note"`
}

var (
	errAlreadyReviewed = errors.New("request already reviewed")
	errNotOwned        = errors.New("request belongs to another hierarchy")
)

// Review decides a pending wallet request. Approval wraps the ledger
// transfer: a deposit credits the player from the reviewing account, a
// withdrawal debits the player back to it. The status flip and the transfer
// commit in one transaction, so a request can never pay out twice.
func Review(c *fiber.Ctx) error {
	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Decision != models.RequestApproved && req.Decision != models.RequestRejected {
		return helpers.JSONError(c, "DECISION_MUST_BE_APPROVED_OR_REJECTED")
	}

	actor, ok := c.Locals("actor").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACTOR_SESSION")
	}

	var request models.WalletRequest
	var result *ledger.TransferResult

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := ledger.LockForUpdate(tx).
			First(&request, req.RequestID).Error; err != nil {
			return err
		}

		// Subadmins only review their own players; admins review anyone.
		if actor.Role != models.RoleAdmin {
			var owned int64
			if err := tx.Model(&models.User{}).
				Where("id = ? AND assigned_to = ?", request.UserID, actor.ID).
				Count(&owned).Error; err != nil {
				return err
			}
			if owned == 0 {
				return errNotOwned
			}
		}

		// Race-safe claim: only a pending request may be reviewed.
		res := tx.Model(&models.WalletRequest{}).
			Where("id = ? AND status = ?", request.ID, models.RequestPending).
			Updates(map[string]any{"status": req.Decision, "reviewed_by": actor.ID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyReviewed
		}

		if req.Decision == models.RequestRejected {
			return nil
		}

		direction := ledger.DirectionCredit
		note := "Deposit request approved"
		if request.Type == models.RequestWithdrawal {
			direction = ledger.DirectionDebit
			note = "Withdrawal request approved"
		}
		if req.Note != "" {
			note = req.Note
		}

		requestID := request.ID
		r, err := ledger.Transfer(tx, actor.ID, request.UserID,
			request.Amount, direction, note, &requestID)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		if errors.Is(err, errAlreadyReviewed) {
			return helpers.JSONError(c, "REQUEST_ALREADY_REVIEWED")
		}
		if errors.Is(err, errNotOwned) {
			return helpers.JSONError(c, "REQUEST_NOT_FOUND_OR_UNAUTHORIZED")
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONError(c, "REQUEST_NOT_FOUND")
		}
		return reviewTransferError(c, err)
	}

	data := fiber.Map{
		"request_id": request.ID,
		"decision":   req.Decision,
	}
	if result != nil {
		data["ref_id"] = result.RefID
		data["player_balance"] = helpers.DisplayAmount(result.TargetTxn.BalanceAfter)
	}
	return helpers.JSONSuccess(c, "Wallet request reviewed", data)
}

func reviewTransferError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return helpers.JSONError(c, "INSUFFICIENT_BALANCE")
	case errors.Is(err, ledger.ErrAccountNotFound):
		return helpers.JSONError(c, "ACCOUNT_NOT_FOUND")
	default:
		return helpers.JSONError(c, "REVIEW_FAILED")
	}
}
