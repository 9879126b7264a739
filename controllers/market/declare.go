package market

import (
	"strings"
	"time"

	"matka/database"
	"matka/helpers"
	"matka/models"
	"matka/settlement"

	"github.com/gofiber/fiber/v2"
)

type DeclareRequest struct {
	MarketID uint   `json:"market_id"`
	Result   string `json:"result"`
}

// Declare records the outcome of a closed market and settles every pending
// bet against it. The closed -> resulted flip is race-safe, so a second
// declaration is rejected instead of re-settling.
func Declare(c *fiber.Ctx) error {
	var req DeclareRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	var m models.Market
	if err := database.DB.First(&m, req.MarketID).Error; err != nil {
		return helpers.JSONError(c, "MARKET_NOT_FOUND")
	}

	result := strings.TrimSpace(req.Result)
	if !validResult(m.Kind, result) {
		return helpers.JSONError(c, "INVALID_RESULT_FOR_MARKET_KIND")
	}

	now := time.Now()
	res := database.DB.Model(&models.Market{}).
		Where("id = ? AND status = ?", m.ID, models.MarketClosed).
		Updates(map[string]any{
			"status":      models.MarketResulted,
			"result":      result,
			"resulted_at": &now,
		})
	if res.Error != nil {
		return helpers.JSONError(c, "FAILED_TO_DECLARE_RESULT")
	}
	if res.RowsAffected == 0 {
		return helpers.JSONError(c, "MARKET_MUST_BE_CLOSED_TO_DECLARE")
	}

	summary, err := settlement.SettleMarket(database.DB, m.ID, result)
	if err != nil {
		// Result stands; the sweeper retries settlement for resulted
		// markets that still carry pending bets.
		return helpers.JSONError(c, "SETTLEMENT_FAILED_WILL_RETRY")
	}

	return helpers.JSONSuccess(c, "Result declared and market settled", summary)
}

func validResult(kind, result string) bool {
	switch kind {
	case models.KindNumbers:
		return len(result) == 2 &&
			result[0] >= '0' && result[0] <= '9' &&
			result[1] >= '0' && result[1] <= '9'
	case models.KindToss, models.KindCoinflip:
		r := strings.ToLower(result)
		return r == settlement.TeamA || r == settlement.TeamB
	default:
		return false
	}
}
