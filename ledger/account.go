package ledger

import (
	"errors"

	"matka/models"

	"gorm.io/gorm"
)

// Entry describes one single-sided balance mutation. BetID/RequestID link
// the ledger row back to the bet or wallet request that caused it.
type Entry struct {
	UserID      uint
	Amount      int64 // positive = credit, negative = debit
	PerformedBy uint
	Description string
	RefID       string
	BetID       *uint
	RequestID   *uint
}

// Apply mutates one account inside the caller's transaction and appends the
// matching ledger row. It is the only code path that writes a balance: the
// row is locked, the post-delta balance is checked against zero, and the
// transaction record snapshots balance_after, all under the same tx.
// A zero delta is allowed: commission floors can reduce an actor's share to
// nothing and the audit row must still be written.
func Apply(tx *gorm.DB, e Entry) (*models.Transaction, error) {
	var user models.User
	err := LockForUpdate(tx).
		Where("id = ? AND is_active = true", e.UserID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	newBalance := user.Balance + e.Amount
	if newBalance < 0 {
		return nil, ErrInsufficientBalance
	}

	if err := tx.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("balance", newBalance).Error; err != nil {
		return nil, err
	}

	record := models.Transaction{
		UserID:       user.ID,
		Amount:       e.Amount,
		BalanceAfter: newBalance,
		PerformedBy:  e.PerformedBy,
		Description:  e.Description,
		RefID:        e.RefID,
		BetID:        e.BetID,
		RequestID:    e.RequestID,
	}
	if err := tx.Create(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}
