// internals/features/leaves/service/leave_service.go
package service

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/features/leaves/model"
	helper "github.com/Srinivaspandrala/server-hrm/internals/helpers"
)

// MaxLeaveDays is the per-employee quota of approved leave days.
const MaxLeaveDays = 30

const dateLayout = "2006-01-02"

var validate = validator.New()

/* ====================== PURE HELPERS ====================== */

// LeaveDays counts calendar days in [from, to], inclusive of both ends.
func LeaveDays(fromDate, toDate string) (int, error) {
	from, err := time.Parse(dateLayout, fromDate)
	if err != nil {
		return 0, fmt.Errorf("invalid from date %q", fromDate)
	}
	to, err := time.Parse(dateLayout, toDate)
	if err != nil {
		return 0, fmt.Errorf("invalid to date %q", toDate)
	}
	if to.Before(from) {
		return 0, fmt.Errorf("to date precedes from date")
	}
	return int(to.Sub(from).Hours()/24) + 1, nil
}

// TotalDays sums the day spans of the given requests. Rows with unparsable
// dates are skipped.
func TotalDays(rows []model.LeaveRequestModel) int {
	total := 0
	for i := range rows {
		if d, err := LeaveDays(rows[i].FromDate, rows[i].ToDate); err == nil {
			total += d
		}
	}
	return total
}

// Overlaps reports whether [fromDate, toDate] intersects any existing
// request. ISO dates compare correctly as strings.
func Overlaps(rows []model.LeaveRequestModel, fromDate, toDate string) bool {
	for i := range rows {
		if rows[i].FromDate <= toDate && rows[i].ToDate >= fromDate {
			return true
		}
	}
	return false
}

/* ====================== HANDLER SERVICES ====================== */

// Apply submits a leave request after the quota and overlap checks.
func Apply(db *gorm.DB, c *fiber.Ctx) error {
	employeeID, ok := c.Locals("employee_id").(string)
	if !ok || employeeID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input struct {
		FromDate  string `json:"FromDate" validate:"required"`
		ToDate    string `json:"ToDate" validate:"required"`
		FromTime  string `json:"FromTime" validate:"required"`
		ToTime    string `json:"ToTime" validate:"required"`
		LeaveType string `json:"LeaveType" validate:"required"`
		Reason    string `json:"Reason" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}

	leaveDays, err := LeaveDays(input.FromDate, input.ToDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Quota counts approved leave only.
	var approved []model.LeaveRequestModel
	if err := db.Where("employee_id = ? AND status = ?", employeeID, model.StatusApproved).
		Find(&approved).Error; err != nil {
		log.Println("[ERROR] fetching approved leave:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	used := TotalDays(approved)
	if used+leaveDays > MaxLeaveDays {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Leave quota exceeded! You have %d days left.", MaxLeaveDays-used))
	}

	// Overlap is checked against every request, pending included.
	var existing []model.LeaveRequestModel
	if err := db.Where("employee_id = ?", employeeID).Find(&existing).Error; err != nil {
		log.Println("[ERROR] fetching leave requests:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Database error")
	}
	if Overlaps(existing, input.FromDate, input.ToDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Leave request conflicts with existing leave period.")
	}

	req := model.LeaveRequestModel{
		EmployeeID: employeeID,
		FromDate:   input.FromDate,
		ToDate:     input.ToDate,
		FromTime:   input.FromTime,
		ToTime:     input.ToTime,
		LeaveType:  input.LeaveType,
		Reason:     input.Reason,
		Status:     model.StatusPending,
	}
	if err := db.Create(&req).Error; err != nil {
		log.Println("[ERROR] inserting leave request:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to apply for leave")
	}

	return helper.JsonCreated(c, "Leave request submitted successfully", fiber.Map{
		"LeaveID": req.ID,
		"Status":  req.Status,
	})
}

// List returns all of the requester's leave requests.
func List(db *gorm.DB, c *fiber.Ctx) error {
	employeeID, ok := c.Locals("employee_id").(string)
	if !ok || employeeID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var rows []model.LeaveRequestModel
	if err := db.Where("employee_id = ?", employeeID).Find(&rows).Error; err != nil {
		log.Println("[ERROR] listing leave requests:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonList(c, "", rows)
}

// Count returns the total day span across the requester's requests.
func Count(db *gorm.DB, c *fiber.Ctx) error {
	employeeID, ok := c.Locals("employee_id").(string)
	if !ok || employeeID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var rows []model.LeaveRequestModel
	if err := db.Where("employee_id = ?", employeeID).Find(&rows).Error; err != nil {
		log.Println("[ERROR] counting leave days:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return helper.JsonOK(c, "", fiber.Map{"TotalLeaves": TotalDays(rows)})
}

// DeleteAll removes every leave request of the requester.
func DeleteAll(db *gorm.DB, c *fiber.Ctx) error {
	employeeID, ok := c.Locals("employee_id").(string)
	if !ok || employeeID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res := db.Where("employee_id = ?", employeeID).Delete(&model.LeaveRequestModel{})
	if res.Error != nil {
		log.Println("[ERROR] deleting leave requests:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No leave requests found")
	}

	return helper.JsonDeleted(c, "All leave requests deleted successfully", nil)
}
