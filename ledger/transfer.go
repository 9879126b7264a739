package ledger

import (
	"errors"
	"fmt"

	"matka/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

// TransferResult carries the ledger rows written by one Transfer. ActorTxn
// is nil for self-funding, which writes a single row.
type TransferResult struct {
	RefID     string
	ActorTxn  *models.Transaction
	TargetTxn *models.Transaction
}

// Transfer moves funds between two hierarchically related accounts, or tops
// up the platform itself when actorID == targetID (admin self-funding).
//
// direction = credit: target gains amount. The actor pays the full amount
// when the target is a player; when the target is a subadmin the actor pays
// only floor(amount * rate / RateScale), the commission share of a
// revenue-split funding relationship.
//
// direction = debit: the inverse. The full amount leaves the target; a
// subadmin target returns only the commission share to the actor.
//
// The whole operation is one database transaction: balance reads, balance
// writes and ledger rows commit together or not at all.
func Transfer(db *gorm.DB, actorID, targetID uint, amount int64, direction Direction, note string, requestID *uint) (*TransferResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if direction != DirectionCredit && direction != DirectionDebit {
		return nil, ErrInvalidTransition
	}

	var result *TransferResult
	err := db.Transaction(func(tx *gorm.DB) error {
		if actorID == targetID {
			r, err := selfFund(tx, actorID, amount, direction, note, requestID)
			if err != nil {
				return err
			}
			result = r
			return nil
		}

		// Lock both rows in ID order so two concurrent transfers over the
		// same pair cannot deadlock.
		firstID, secondID := actorID, targetID
		if firstID > secondID {
			firstID, secondID = secondID, firstID
		}
		first, err := lockAccount(tx, firstID)
		if err != nil {
			return err
		}
		second, err := lockAccount(tx, secondID)
		if err != nil {
			return err
		}

		actor, target := first, second
		if actor.ID != actorID {
			actor, target = second, first
		}

		rate := int64(RateScale)
		if target.Role == models.RoleSubadmin {
			rate = RateFor(tx, target.ID)
		}

		var actorDelta, targetDelta int64
		switch direction {
		case DirectionCredit:
			targetDelta = amount
			actorDelta = -(amount * rate / RateScale)
		case DirectionDebit:
			targetDelta = -amount
			actorDelta = amount * rate / RateScale
		}

		refID := uuid.New().String()
		if note == "" {
			if direction == DirectionCredit {
				note = "Fund transfer via API"
			} else {
				note = "Fund deduction via API"
			}
		}

		actorTxn, err := Apply(tx, Entry{
			UserID:      actor.ID,
			Amount:      actorDelta,
			PerformedBy: actor.ID,
			Description: fmt.Sprintf("%s (counterparty: %s)", note, target.UserCode),
			RefID:       refID,
			RequestID:   requestID,
		})
		if err != nil {
			return err
		}

		targetTxn, err := Apply(tx, Entry{
			UserID:      target.ID,
			Amount:      targetDelta,
			PerformedBy: actor.ID,
			Description: note,
			RefID:       refID,
			RequestID:   requestID,
		})
		if err != nil {
			return err
		}

		result = &TransferResult{RefID: refID, ActorTxn: actorTxn, TargetTxn: targetTxn}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// selfFund is the one exception to paired entries: an admin crediting the
// platform's own float. Pure credit, no counterpart deduction, one row.
func selfFund(tx *gorm.DB, adminID uint, amount int64, direction Direction, note string, requestID *uint) (*TransferResult, error) {
	if direction != DirectionCredit {
		return nil, ErrInvalidTransition
	}

	admin, err := lockAccount(tx, adminID)
	if err != nil {
		return nil, err
	}
	if admin.Role != models.RoleAdmin {
		return nil, ErrSameAccount
	}

	refID := uuid.New().String()
	if note == "" {
		note = "Platform investment"
	}

	txn, err := Apply(tx, Entry{
		UserID:      admin.ID,
		Amount:      amount,
		PerformedBy: admin.ID,
		Description: note,
		RefID:       refID,
		RequestID:   requestID,
	})
	if err != nil {
		return nil, err
	}

	return &TransferResult{RefID: refID, TargetTxn: txn}, nil
}

func lockAccount(tx *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := LockForUpdate(tx).
		Where("id = ? AND is_active = true", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &user, nil
}
