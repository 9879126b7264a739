package market

import (
	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/gofiber/fiber/v2"
)

// Summary reports bet counts and money flow for one market.
func Summary(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_MARKET_ID")
	}

	var m models.Market
	if err := database.DB.First(&m, id).Error; err != nil {
		return helpers.JSONError(c, "MARKET_NOT_FOUND")
	}

	type tally struct {
		Result string
		Count  int64
		Stake  int64
		Payout int64
	}
	var rows []tally
	err = database.DB.Model(&models.Bet{}).
		Select("result, COUNT(*) AS count, COALESCE(SUM(stake),0) AS stake, COALESCE(SUM(payout),0) AS payout").
		Where("market_id = ?", m.ID).
		Group("result").
		Scan(&rows).Error
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_SUMMARY")
	}

	data := fiber.Map{
		"market_id": m.ID,
		"name":      m.Name,
		"kind":      m.Kind,
		"status":    m.Status,
		"result":    m.Result,
	}
	byResult := fiber.Map{}
	for _, r := range rows {
		byResult[r.Result] = fiber.Map{
			"count":  r.Count,
			"stake":  helpers.DisplayAmount(r.Stake),
			"payout": helpers.DisplayAmount(r.Payout),
		}
	}
	data["bets"] = byResult

	return helpers.JSONSuccess(c, "Market summary", data)
}
