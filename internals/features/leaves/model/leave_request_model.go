package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// LeaveRequestModel represents the leave_requests table
type LeaveRequestModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID string    `gorm:"size:10;not null;index" json:"employee_id"`
	FromDate   string    `gorm:"size:10;not null" json:"from_date"`
	ToDate     string    `gorm:"size:10;not null" json:"to_date"`
	FromTime   string    `gorm:"size:8;not null" json:"from_time"`
	ToTime     string    `gorm:"size:8;not null" json:"to_time"`
	LeaveType  string    `gorm:"size:20;not null" json:"leave_type"`
	Reason     string    `gorm:"type:text;not null" json:"reason"`
	Status     string    `gorm:"size:10;not null;default:'Pending'" json:"status"`
	AppliedOn  time.Time `gorm:"autoCreateTime" json:"applied_on"`
}

func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}

func (l *LeaveRequestModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Status == "" {
		l.Status = StatusPending
	}
	return nil
}
