package models

import "gorm.io/gorm"

const (
	RoleAdmin    = "admin"
	RoleSubadmin = "subadmin"
	RolePlayer   = "player"
)

type User struct {
	gorm.Model

	UserCode string `gorm:"uniqueIndex;size:32" json:"user_code"`
	Name     string `gorm:"size:64" json:"name"`
	Role     string `gorm:"size:16;index" json:"role"`

	// Balance is held in subunits (paisa). Only the ledger and the
	// settlement engine may write it.
	Balance    int64 `json:"balance"`
	AssignedTo *uint `gorm:"index" json:"assigned_to"`
	IsActive   bool  `gorm:"default:true" json:"is_active"`

	Transactions []Transaction `gorm:"foreignKey:UserID"`
	Bets         []Bet         `gorm:"foreignKey:UserID"`
}
