package mailer

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutboxEmail is a durably scheduled mail. The onboarding sequence
// (immediate, +5 minutes, +24 hours) is written here instead of being held
// in in-process timers, so a restart does not drop pending mail.
type OutboxEmail struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Recipient string     `gorm:"size:255;not null" json:"recipient"`
	Subject   string     `gorm:"size:255;not null" json:"subject"`
	Body      string     `gorm:"type:text;not null" json:"-"`
	SendAt    time.Time  `gorm:"not null;index" json:"send_at"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	Attempts  int        `gorm:"not null;default:0" json:"attempts"`
	LastError *string    `json:"last_error,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (OutboxEmail) TableName() string {
	return "email_outbox"
}

func (o *OutboxEmail) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Enqueue stores a mail for delivery at sendAt.
func Enqueue(db *gorm.DB, recipient, subject, body string, sendAt time.Time) error {
	return db.Create(&OutboxEmail{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		SendAt:    sendAt,
	}).Error
}
