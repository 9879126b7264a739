package bet

import (
	"errors"
	"fmt"

	"matka/database"
	"matka/helpers"
	"matka/ledger"
	"matka/models"
	"matka/settlement"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaceRequest struct {
	MarketID   uint   `json:"market_id"`
	Mode       string `json:"mode"`
	Prediction string `json:"prediction"`
	Stake      int64  `json:"stake"` // subunits
}

// Place creates a pending bet and deducts the stake in the same
// transaction. New bets must carry a mode the settlement engine knows;
// fail-closed settling only covers rows that predate mode validation.
func Place(c *fiber.Ctx) error {
	var req PlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.MarketID == 0 || req.Stake <= 0 || req.Prediction == "" {
		return helpers.JSONError(c, "MARKET_MODE_PREDICTION_AND_STAKE_REQUIRED")
	}

	mode := settlement.ParseMode(req.Mode)
	if mode == settlement.ModeUnknown {
		return helpers.JSONError(c, "UNKNOWN_BET_MODE")
	}

	actor, ok := c.Locals("actor").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_ACTOR_SESSION")
	}

	var market models.Market
	if err := database.DB.First(&market, req.MarketID).Error; err != nil {
		return helpers.JSONError(c, "MARKET_NOT_FOUND")
	}
	if market.Status != models.MarketOpen {
		return helpers.JSONError(c, "MARKET_NOT_OPEN")
	}

	potential := settlement.PayoutFor(req.Stake, settlement.MultiplierFor(&market, mode))

	placed := models.Bet{
		UserID:     actor.ID,
		MarketID:   market.ID,
		Mode:       req.Mode,
		Prediction: req.Prediction,
		Stake:      req.Stake,
		Potential:  potential,
		Result:     models.BetPending,
	}

	var balanceAfter int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&placed).Error; err != nil {
			return err
		}

		linkID := placed.ID
		txn, err := ledger.Apply(tx, ledger.Entry{
			UserID:      actor.ID,
			Amount:      -req.Stake,
			PerformedBy: actor.ID,
			Description: fmt.Sprintf("Stake for bet #%d on market #%d", placed.ID, market.ID),
			RefID:       uuid.New().String(),
			BetID:       &linkID,
		})
		if err != nil {
			return err
		}
		balanceAfter = txn.BalanceAfter
		return nil
	})
	if err != nil {
		if errors.Is(err, ledger.ErrInsufficientBalance) {
			return helpers.JSONError(c, "INSUFFICIENT_BALANCE")
		}
		return helpers.JSONError(c, "FAILED_TO_PLACE_BET")
	}

	return helpers.JSONSuccess(c, "Bet placed", fiber.Map{
		"bet_id":    placed.ID,
		"market_id": market.ID,
		"mode":      mode.String(),
		"stake":     helpers.DisplayAmount(placed.Stake),
		"potential": helpers.DisplayAmount(placed.Potential),
		"balance":   helpers.DisplayAmount(balanceAfter),
	})
}
