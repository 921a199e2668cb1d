package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceLogModel is one row of the attendance ledger. A row is created
// at login and mutated once at logout. LogStatus "Yes" marks the open
// session; "No", "EL" and "WH" are closed / excused / outside-working-hours.
type AttendanceLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID     string    `gorm:"size:10;not null;index" json:"employee_id"`
	WorkEmail      string    `gorm:"size:255;not null;index:idx_attendance_email_date" json:"work_email"`
	LogDate        string    `gorm:"size:10;not null;index:idx_attendance_email_date" json:"log_date"`
	LogTime        string    `gorm:"size:8;not null" json:"log_time"`
	EffectiveHours string    `gorm:"size:16;not null" json:"effective_hours"`
	GrossHours     string    `gorm:"size:16;not null" json:"gross_hours"`
	ArrivalStatus  *string   `gorm:"size:32" json:"arrival_status"`
	LeaveStatus    string    `gorm:"size:3;not null" json:"leave_status"`
	LogStatus      string    `gorm:"size:3;not null" json:"log_status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AttendanceLogModel) TableName() string {
	return "attendance_logs"
}

func (a *AttendanceLogModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
