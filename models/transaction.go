package models

import "gorm.io/gorm"

// Transaction is an append-only ledger entry. Rows are written by the
// ledger and settlement engines and never updated or deleted afterwards.
type Transaction struct {
	gorm.Model

	UserID       uint   `gorm:"index" json:"user_id"`
	Amount       int64  `json:"amount"` // signed delta in subunits
	BalanceAfter int64  `json:"balance_after"`
	PerformedBy  uint   `gorm:"index" json:"performed_by"` // 0 = system (settlement)
	Description  string `gorm:"size:255" json:"description"`
	RefID        string `gorm:"size:64;index" json:"ref_id"`
	BetID        *uint  `gorm:"index" json:"bet_id"`
	RequestID    *uint  `gorm:"index" json:"request_id"`
}
