package models

import "gorm.io/gorm"

const (
	BetPending = "pending"
	BetWin     = "win"
	BetLoss    = "loss"
)

type Bet struct {
	gorm.Model

	UserID   uint `gorm:"index" json:"user_id"`
	MarketID uint `gorm:"index:idx_bets_market_result" json:"market_id"`

	Mode       string `gorm:"size:16" json:"mode"`
	Prediction string `gorm:"size:32" json:"prediction"`

	Stake     int64 `json:"stake"`     // subunits, deducted at creation
	Potential int64 `json:"potential"` // payout declared at creation
	Payout    int64 `json:"payout"`    // set once, by settlement

	Result string `gorm:"size:8;default:pending;index:idx_bets_market_result" json:"result"`
}
