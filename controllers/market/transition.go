package market

import (
	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

type TransitionRequest struct {
	MarketID uint   `json:"market_id"`
	Status   string `json:"status"` // open | closed
}

// allowed transitions: waiting -> open -> closed. Resulting is handled by
// Declare, which also runs settlement.
var allowedFrom = map[string]string{
	models.MarketOpen:   models.MarketWaiting,
	models.MarketClosed: models.MarketOpen,
}

// Transition moves a market along its lifecycle. Triggered externally
// (an operator or a scheduler outside this service).
func Transition(c *fiber.Ctx) error {
	var req TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	from, ok := allowedFrom[req.Status]
	if !ok {
		return helpers.JSONError(c, "STATUS_MUST_BE_OPEN_OR_CLOSED")
	}

	res := database.DB.Model(&models.Market{}).
		Where("id = ? AND status = ?", req.MarketID, from).
		Update("status", req.Status)
	if res.Error != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_MARKET")
	}
	if res.RowsAffected == 0 {
		return helpers.JSONError(c, "INVALID_MARKET_TRANSITION")
	}

	return helpers.JSONSuccess(c, "Market updated", fiber.Map{
		"market_id": req.MarketID,
		"status":    req.Status,
	})
}
