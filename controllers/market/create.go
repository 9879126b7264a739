package market

import (
	"encoding/json"
	"time"

	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type CreateRequest struct {
	Name     string           `json:"name"`
	Kind     string           `json:"kind"`
	Odds     map[string]int64 `json:"odds"` // mode -> multiplier x10000
	OpensAt  time.Time        `json:"opens_at"`
	ClosesAt time.Time        `json:"closes_at"`
}

// Create registers a market in waiting state. Open/close/result are
// separate externally triggered transitions.
func Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Name == "" {
		return helpers.JSONError(c, "NAME_REQUIRED")
	}
	switch req.Kind {
	case models.KindNumbers, models.KindToss, models.KindCoinflip:
	default:
		return helpers.JSONError(c, "KIND_MUST_BE_NUMBERS_TOSS_OR_COINFLIP")
	}

	m := models.Market{
		Name:     req.Name,
		Kind:     req.Kind,
		Status:   models.MarketWaiting,
		OpensAt:  req.OpensAt,
		ClosesAt: req.ClosesAt,
	}

	if len(req.Odds) > 0 {
		odds, err := json.Marshal(req.Odds)
		if err != nil {
			return helpers.JSONError(c, "INVALID_ODDS")
		}
		m.Odds = datatypes.JSON(odds)
	}

	if err := database.DB.Create(&m).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_MARKET")
	}

	return helpers.JSONSuccess(c, "Market created", fiber.Map{
		"market_id": m.ID,
		"name":      m.Name,
		"kind":      m.Kind,
		"status":    m.Status,
	})
}
