package repository

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Srinivaspandrala/server-hrm/internals/features/attendance/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrapping test db: %v", err)
	}
	// :memory: gives each connection its own database
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.AttendanceLogModel{}); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return db
}

func openSessionRow(email, date, logTime string) *model.AttendanceLogModel {
	arrival := "On Time"
	return &model.AttendanceLogModel{
		EmployeeID:     "GTS241",
		WorkEmail:      email,
		LogDate:        date,
		LogTime:        logTime,
		EffectiveHours: "9:00 Hrs",
		GrossHours:     "9:00 Hrs",
		ArrivalStatus:  &arrival,
		LeaveStatus:    "No",
		LogStatus:      "Yes",
	}
}

func TestFindOpenSession(t *testing.T) {
	db := newTestDB(t)

	if err := Insert(db, openSessionRow("jane@example.com", "2025-03-10", "20:00:00")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	open, err := FindOpenSession(db, "jane@example.com", "2025-03-10")
	if err != nil {
		t.Fatalf("FindOpenSession: %v", err)
	}
	if open.LogTime != "20:00:00" || open.LogStatus != "Yes" {
		t.Errorf("open session LogTime=%q LogStatus=%q, want 20:00:00 / Yes", open.LogTime, open.LogStatus)
	}

	// a different day has no open session
	if _, err := FindOpenSession(db, "jane@example.com", "2025-03-11"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindOpenSession on empty day: err = %v, want ErrRecordNotFound", err)
	}
}

func TestCloseSession(t *testing.T) {
	db := newTestDB(t)

	if err := Insert(db, openSessionRow("jane@example.com", "2025-03-10", "20:00:00")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := CloseSession(db, "jane@example.com", "2025-03-10", "05:00:00", "9.00 Hrs", "Yes"); err != nil {
		t.Fatalf("CloseSession: %v", err)
	}

	var row model.AttendanceLogModel
	if err := db.Where("work_email = ? AND log_date = ?", "jane@example.com", "2025-03-10").
		First(&row).Error; err != nil {
		t.Fatalf("refetching closed row: %v", err)
	}
	if row.LogStatus != "No" {
		t.Errorf("LogStatus = %q, want No", row.LogStatus)
	}
	if row.LogTime != "05:00:00" {
		t.Errorf("LogTime = %q, want 05:00:00", row.LogTime)
	}
	if row.EffectiveHours != "9.00 Hrs" {
		t.Errorf("EffectiveHours = %q, want 9.00 Hrs", row.EffectiveHours)
	}
	if row.LeaveStatus != "Yes" {
		t.Errorf("LeaveStatus = %q, want Yes", row.LeaveStatus)
	}

	// the row is closed; a second logout finds no open session
	if _, err := FindOpenSession(db, "jane@example.com", "2025-03-10"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindOpenSession after close: err = %v, want ErrRecordNotFound", err)
	}
	if err := CloseSession(db, "jane@example.com", "2025-03-10", "06:00:00", "10.00 Hrs", "Yes"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second CloseSession: err = %v, want ErrRecordNotFound", err)
	}
}

func TestCloseSessionWithoutOpenRow(t *testing.T) {
	db := newTestDB(t)

	err := CloseSession(db, "nobody@example.com", "2025-03-10", "21:30:00", "0.00 Hrs", "No")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("CloseSession with no open session: err = %v, want ErrRecordNotFound", err)
	}
}

func TestCloseSessionLeavesOtherEmployeesAlone(t *testing.T) {
	db := newTestDB(t)

	if err := Insert(db, openSessionRow("jane@example.com", "2025-03-10", "20:00:00")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	other := openSessionRow("ravi@example.com", "2025-03-10", "20:15:00")
	other.EmployeeID = "GTS242"
	if err := Insert(db, other); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := CloseSession(db, "jane@example.com", "2025-03-10", "05:00:00", "9.00 Hrs", "Yes"); err != nil {
		t.Fatalf("CloseSession: %v", err)
	}

	open, err := FindOpenSession(db, "ravi@example.com", "2025-03-10")
	if err != nil {
		t.Fatalf("other employee's session should stay open: %v", err)
	}
	if open.LogTime != "20:15:00" {
		t.Errorf("other employee LogTime = %q, want 20:15:00", open.LogTime)
	}
}
