package settlement

import (
	"encoding/json"

	"matka/ledger"
	"matka/models"
)

// Odds multipliers share the ledger's x10000 fixed-point scale: 900000 is
// 90x, 19000 is 1.9x.
const OddsScale = ledger.RateScale

// Default multipliers per mode, used when a market configures nothing for a
// mode. Matches the house rules the platform launched with.
var defaultOdds = map[Mode]int64{
	ModeJodi:     90 * OddsScale,
	ModeHarf:     9 * OddsScale,
	ModeCrossing: 90 * OddsScale,
	ModeOddEven:  19000,
	ModeTeamToss: 19000,
}

// fallbackOdds covers a mode missing from both the market's configuration
// and the defaults table: stake-back (1x), never a settlement failure.
const fallbackOdds = OddsScale

// MultiplierFor resolves the scaled payout multiplier for a mode on a
// market. Configuration is read from the market's odds JSON (mode name to
// scaled multiplier); absent or unusable entries fall back to defaults.
func MultiplierFor(market *models.Market, mode Mode) int64 {
	if market != nil && len(market.Odds) > 0 {
		var configured map[string]int64
		if err := json.Unmarshal(market.Odds, &configured); err == nil {
			if m, ok := configured[mode.String()]; ok && m > 0 {
				return m
			}
		}
	}
	if m, ok := defaultOdds[mode]; ok {
		return m
	}
	return fallbackOdds
}

// PayoutFor computes floor(stake * multiplier / OddsScale).
func PayoutFor(stake, multiplier int64) int64 {
	return stake * multiplier / OddsScale
}
