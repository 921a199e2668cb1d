// internals/features/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/features/auth/model"
)

const purgeBatchSize = 100

// StartBlacklistCleanup purges revoked tokens whose expiry has passed.
// Every authenticated request probes the blacklist table, so expired rows
// must not be left to pile up.
func StartBlacklistCleanup(db *gorm.DB) {
	go func() {
		// grace period past expiry from env (default: 24h)
		graceHours := 24
		if val := os.Getenv("TOKEN_BLACKLIST_GRACE_HOURS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed >= 0 {
				graceHours = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Purging expired blacklist tokens...")

			cutoff := time.Now().Add(-time.Duration(graceHours) * time.Hour)
			removed, err := PurgeExpiredTokens(db, cutoff)
			if err != nil {
				log.Printf("[CLEANUP ERROR] Purging blacklist failed: %v", err)
			} else if removed > 0 {
				log.Printf("[CLEANUP] %d expired token(s) removed", removed)
			} else {
				log.Println("[CLEANUP] No tokens eligible for removal")
			}

			// run every 24h
			time.Sleep(24 * time.Hour)
		}
	}()
}

// PurgeExpiredTokens hard-deletes blacklist rows whose expiry precedes
// cutoff. Deletion runs in batches so a large backlog cannot hold the
// write lock for long.
func PurgeExpiredTokens(db *gorm.DB, cutoff time.Time) (int64, error) {
	var total int64
	for {
		var batch []model.TokenBlacklist
		if err := db.Unscoped().
			Where("expired_at < ?", cutoff).
			Limit(purgeBatchSize).
			Find(&batch).Error; err != nil {
			return total, err
		}
		if len(batch) == 0 {
			return total, nil
		}

		res := db.Unscoped().Delete(&batch)
		if res.Error != nil {
			return total, res.Error
		}
		total += res.RowsAffected

		if len(batch) < purgeBatchSize {
			return total, nil
		}
	}
}
