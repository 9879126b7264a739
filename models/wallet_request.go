package models

import "gorm.io/gorm"

const (
	RequestDeposit    = "deposit"
	RequestWithdrawal = "withdrawal"
)

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

type WalletRequest struct {
	gorm.Model

	UserID     uint   `gorm:"index" json:"user_id"`
	Type       string `gorm:"size:16" json:"type"`
	Amount     int64  `json:"amount"` // subunits
	Status     string `gorm:"size:16;index;default:pending" json:"status"`
	ReviewedBy *uint  `json:"reviewed_by"`
	Note       string `gorm:"size:255" json:"note"`
}
