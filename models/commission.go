package models

import "gorm.io/gorm"

// CommissionRate holds the revenue-share rate for one subadmin, in basis
// points scaled x10000 (10000 = 100%, i.e. a full 1:1 transfer).
type CommissionRate struct {
	gorm.Model

	SubadminID uint  `gorm:"uniqueIndex" json:"subadmin_id"`
	RateBps    int64 `json:"rate_bps"`
}
