package tasks

import (
	"log"
	"time"

	"matka/database"
	"matka/models"
)

// CleanupRejectedRequests deletes rejected wallet requests older than 30
// days. Approved requests are kept: their ledger rows reference them.
func CleanupRejectedRequests() {
	horizon := time.Now().AddDate(0, 0, -30)
	result := database.DB.
		Where("status = ? AND updated_at < ?", models.RequestRejected, horizon).
		Delete(&models.WalletRequest{})

	if result.Error != nil {
		log.Println("❌ Failed to delete old wallet requests:", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("✅ Deleted %d rejected wallet requests older than 30 days\n", result.RowsAffected)
	}
}
