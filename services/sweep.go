package services

import (
	"log"

	"matka/database"
	"matka/models"
	"matka/settlement"
)

// SweepUnsettled re-runs settlement for resulted markets that still carry
// pending bets. A per-bet failure during the original settlement (or a crash
// between declaring and settling) must not strand bets in pending.
func SweepUnsettled() error {
	var marketIDs []uint
	err := database.DB.Model(&models.Bet{}).
		Joins("JOIN markets ON markets.id = bets.market_id").
		Where("bets.result = ? AND markets.status = ?", models.BetPending, models.MarketResulted).
		Distinct().
		Pluck("bets.market_id", &marketIDs).Error
	if err != nil {
		return err
	}

	for _, id := range marketIDs {
		summary, err := settlement.SettleMarket(database.DB, id, "")
		if err != nil {
			log.Printf("❌ sweep settle market %d: %v", id, err)
			continue
		}
		if summary.Processed > 0 {
			log.Printf("✅ sweep settled %d bets on market %d (%d won)",
				summary.Processed, id, summary.Won)
		}
	}

	return nil
}
