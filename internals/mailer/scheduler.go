package mailer

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"
)

const maxDeliveryAttempts = 5

// StartOutboxScheduler drains due outbox rows in the background.
func StartOutboxScheduler(db *gorm.DB, m *Mailer) {
	go func() {
		// poll interval from env (default: 30s)
		interval := 30 * time.Second
		if val := os.Getenv("MAIL_OUTBOX_INTERVAL_SECONDS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				interval = time.Duration(parsed) * time.Second
			}
		}

		for {
			drainOutbox(db, m)
			time.Sleep(interval)
		}
	}()
}

func drainOutbox(db *gorm.DB, m *Mailer) {
	var due []OutboxEmail
	if err := db.
		Where("sent_at IS NULL AND send_at <= ? AND attempts < ?", time.Now(), maxDeliveryAttempts).
		Order("send_at").
		Limit(20).
		Find(&due).Error; err != nil {
		log.Printf("[OUTBOX ERROR] fetching due mail: %v", err)
		return
	}
	if len(due) == 0 {
		return
	}

	log.Printf("[OUTBOX] delivering %d due mail(s)", len(due))
	for i := range due {
		row := &due[i]
		err := m.Send(row.Recipient, row.Subject, row.Body)
		updates := map[string]any{"attempts": row.Attempts + 1}
		if err != nil {
			msg := err.Error()
			updates["last_error"] = msg
			log.Printf("[OUTBOX ERROR] %q to %s: %v", row.Subject, row.Recipient, err)
		} else {
			now := time.Now()
			updates["sent_at"] = &now
			log.Printf("[OUTBOX] %q delivered to %s", row.Subject, row.Recipient)
		}
		if err := db.Model(row).Updates(updates).Error; err != nil {
			log.Printf("[OUTBOX ERROR] updating row %s: %v", row.ID, err)
		}
	}
}
