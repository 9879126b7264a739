package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MarketWaiting  = "waiting"
	MarketOpen     = "open"
	MarketClosed   = "closed"
	MarketResulted = "resulted"
)

const (
	KindNumbers  = "numbers"
	KindToss     = "toss"
	KindCoinflip = "coinflip"
)

type Market struct {
	gorm.Model

	Name   string `gorm:"size:64" json:"name"`
	Kind   string `gorm:"size:16" json:"kind"`
	Status string `gorm:"size:16;index" json:"status"`

	// Result is a two-digit string ("00"-"99") for number markets, or a
	// team token for toss/coinflip games. Empty until resulted.
	Result string `gorm:"size:8" json:"result"`

	// Odds maps bet mode to a payout multiplier scaled x10000,
	// e.g. {"jodi": 900000} for 90x. Modes without an entry use the
	// engine defaults.
	Odds datatypes.JSON `gorm:"type:jsonb" json:"odds"`

	OpensAt    time.Time  `json:"opens_at"`
	ClosesAt   time.Time  `json:"closes_at"`
	ResultedAt *time.Time `json:"resulted_at"`
}
