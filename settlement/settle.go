package settlement

import (
	"errors"
	"fmt"
	"log"

	"matka/ledger"
	"matka/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Summary reports what one settlement pass did.
type Summary struct {
	MarketID  uint   `json:"market_id"`
	Result    string `json:"result"`
	Processed int    `json:"processed"`
	Won       int    `json:"won"`
	PaidOut   int64  `json:"paid_out"`
}

// errAlreadyClaimed marks a bet another settlement run got to first.
var errAlreadyClaimed = errors.New("bet no longer pending")

// SettleMarket resolves every pending bet on a resulted market. Pass an
// empty declaredResult to settle against the market's stored result (the
// sweeper's path). Each bet settles in its own transaction, so one bad bet
// cannot strand the rest, and a bet that already left pending is never
// touched again: the state transition and the payout commit together.
func SettleMarket(db *gorm.DB, marketID uint, declaredResult string) (*Summary, error) {
	var market models.Market
	if err := db.First(&market, marketID).Error; err != nil {
		return nil, err
	}

	if market.Status != models.MarketResulted {
		return nil, ledger.ErrInvalidTransition
	}
	if declaredResult == "" {
		declaredResult = market.Result
	}
	if declaredResult == "" || declaredResult != market.Result {
		return nil, ledger.ErrInvalidTransition
	}

	var pending []models.Bet
	if err := db.Where("market_id = ? AND result = ?", marketID, models.BetPending).
		Find(&pending).Error; err != nil {
		return nil, err
	}

	summary := &Summary{MarketID: marketID, Result: declaredResult}
	for i := range pending {
		won, payout, err := settleBet(db, &market, pending[i].ID, declaredResult)
		if err != nil {
			if errors.Is(err, errAlreadyClaimed) {
				continue
			}
			log.Printf("❌ settle bet %d on market %d: %v", pending[i].ID, marketID, err)
			continue
		}
		summary.Processed++
		if won {
			summary.Won++
			summary.PaidOut += payout
		}
	}

	return summary, nil
}

// settleBet claims one pending bet and, on a win, credits the payout. The
// claim, the balance write and the ledger row share one transaction.
func settleBet(db *gorm.DB, market *models.Market, betID uint, result string) (won bool, payout int64, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var bet models.Bet
		lookupErr := ledger.LockForUpdate(tx).
			Where("id = ? AND result = ?", betID, models.BetPending).
			First(&bet).Error
		if lookupErr != nil {
			if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
				return errAlreadyClaimed
			}
			return lookupErr
		}

		mode := ParseMode(bet.Mode)
		if mode == ModeUnknown {
			// Fail closed: an uninterpretable bet settles as a loss so it
			// can never sit pending forever.
			log.Printf("⚠️  unknown bet mode %q on bet %d, settling as loss", bet.Mode, bet.ID)
		}

		won = Wins(mode, bet.Prediction, result)
		payout = 0
		if won {
			payout = PayoutFor(bet.Stake, MultiplierFor(market, mode))
		}

		outcome := models.BetLoss
		if won {
			outcome = models.BetWin
		}

		res := tx.Model(&models.Bet{}).
			Where("id = ? AND result = ?", bet.ID, models.BetPending).
			Updates(map[string]any{"result": outcome, "payout": payout})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyClaimed
		}

		if won {
			linkID := bet.ID
			_, applyErr := ledger.Apply(tx, ledger.Entry{
				UserID:      bet.UserID,
				Amount:      payout,
				Description: fmt.Sprintf("Win payout for bet #%d on market #%d (%s %s -> %s)", bet.ID, market.ID, mode, bet.Prediction, result),
				RefID:       uuid.New().String(),
				BetID:       &linkID,
			})
			if applyErr != nil {
				return applyErr
			}
		}

		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return won, payout, nil
}
