// internals/features/attendance/repository/attendance_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/features/attendance/model"
)

func Insert(db *gorm.DB, row *model.AttendanceLogModel) error {
	return db.Create(row).Error
}

// FindOpenSession returns the row opened today by a login, if any.
func FindOpenSession(db *gorm.DB, email, date string) (*model.AttendanceLogModel, error) {
	var row model.AttendanceLogModel
	if err := db.
		Where("work_email = ? AND log_date = ? AND log_status = ?", email, date, "Yes").
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// CloseSession mutates the open row: logout time, recomputed effective
// hours, leave eligibility, and Logstatus -> "No".
func CloseSession(db *gorm.DB, email, date, logTime, effectiveHours, leaveStatus string) error {
	res := db.Model(&model.AttendanceLogModel{}).
		Where("work_email = ? AND log_date = ? AND log_status = ?", email, date, "Yes").
		Updates(map[string]any{
			"log_time":        logTime,
			"effective_hours": effectiveHours,
			"leave_status":    leaveStatus,
			"log_status":      "No",
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func ListByEmail(db *gorm.DB, email string) ([]model.AttendanceLogModel, error) {
	var rows []model.AttendanceLogModel
	if err := db.
		Where("work_email = ?", email).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListRequests returns the requester's closed-session rows.
func ListRequests(db *gorm.DB, email string) ([]model.AttendanceLogModel, error) {
	var rows []model.AttendanceLogModel
	if err := db.
		Where("work_email = ? AND log_status = ?", email, "No").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func ListByEmployeeID(db *gorm.DB, employeeID string) ([]model.AttendanceLogModel, error) {
	var rows []model.AttendanceLogModel
	if err := db.
		Where("employee_id = ?", employeeID).
		Order("log_date DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
