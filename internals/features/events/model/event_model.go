package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventModel represents the events table (personal calendar entries)
type EventModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID string    `gorm:"size:10;not null;index" json:"employee_id"`
	WorkEmail  string    `gorm:"size:255;not null;index" json:"work_email"`
	Title      string    `gorm:"size:32;not null" json:"title"`
	Date       string    `gorm:"size:10;not null" json:"date"`
	StartTime  string    `gorm:"size:8;not null" json:"start_time"`
	EndTime    string    `gorm:"size:8;not null" json:"end_time"`
	EventType  string    `gorm:"size:20;not null" json:"event_type"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (EventModel) TableName() string {
	return "events"
}

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
