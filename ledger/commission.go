package ledger

import (
	"matka/models"

	"gorm.io/gorm"
)

// RateScale is the fixed-point scale for commission rates and odds
// multipliers: a rate of 10000 means 100%.
const RateScale = 10000

// DefaultRateBps is used when a subadmin has no configured commission rate:
// 100%, i.e. transfers behave like plain 1:1 moves. Missing configuration
// must never block a transfer.
const DefaultRateBps = RateScale

// RateFor returns the commission rate in scaled basis points for a subadmin.
// It never fails: unconfigured or out-of-range rates fall back to DefaultRateBps.
func RateFor(db *gorm.DB, subadminID uint) int64 {
	var rate models.CommissionRate
	if err := db.Where("subadmin_id = ?", subadminID).First(&rate).Error; err != nil {
		return DefaultRateBps
	}
	if rate.RateBps <= 0 || rate.RateBps > RateScale {
		return DefaultRateBps
	}
	return rate.RateBps
}
