package jobs

import (
	"log"
	"os"
	"time"

	"matka/services"
	tasks "matka/task"
)

// StartSettlementSweeper retries settlement for resulted markets with
// pending bets, and runs housekeeping on a slower tick.
func StartSettlementSweeper() {
	interval := time.Minute
	if v := os.Getenv("SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			interval = d
		}
	}

	tickerSweep := time.NewTicker(interval)
	go func() {
		for {
			<-tickerSweep.C
			if err := services.SweepUnsettled(); err != nil {
				log.Printf("❌ error sweeping unsettled markets: %v", err)
			}
		}
	}()

	tickerCleanup := time.NewTicker(6 * time.Hour)
	go func() {
		for {
			<-tickerCleanup.C
			tasks.CleanupRejectedRequests()
		}
	}()
}
