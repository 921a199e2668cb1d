package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/features/attendance/model"
	"github.com/Srinivaspandrala/server-hrm/internals/features/attendance/repository"
	helper "github.com/Srinivaspandrala/server-hrm/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// MyLogs returns the requester's ledger, newest first.
func (ac *AttendanceController) MyLogs(c *fiber.Ctx) error {
	email, ok := c.Locals("user_email").(string)
	if !ok || email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	rows, err := repository.ListByEmail(ac.DB, email)
	if err != nil {
		log.Println("[ERROR] listing attendance logs:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching attendance data")
	}
	return helper.JsonList(c, "", rows)
}

// MyRequests returns the requester's closed-session rows.
func (ac *AttendanceController) MyRequests(c *fiber.Ctx) error {
	email, ok := c.Locals("user_email").(string)
	if !ok || email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	rows, err := repository.ListRequests(ac.DB, email)
	if err != nil {
		log.Println("[ERROR] listing attendance requests:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching attendance data")
	}
	return helper.JsonList(c, "", rows)
}

// LogsByEmployee returns one employee's ledger for Admin.
func (ac *AttendanceController) LogsByEmployee(c *fiber.Ctx) error {
	employeeID := c.Params("employeeID")

	rows, err := repository.ListByEmployeeID(ac.DB, employeeID)
	if err != nil {
		log.Println("[ERROR] listing attendance by employee:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching attendance logs")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No attendance logs found for this employee")
	}
	return helper.JsonList(c, "", rows)
}

// Export streams one employee's ledger as an .xlsx sheet.
func (ac *AttendanceController) Export(c *fiber.Ctx) error {
	employeeID := c.Params("employeeID")

	rows, err := repository.ListByEmployeeID(ac.DB, employeeID)
	if err != nil {
		log.Println("[ERROR] exporting attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching attendance logs")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No attendance logs found for this employee")
	}

	buf, err := buildAttendanceSheet(rows)
	if err != nil {
		log.Println("[ERROR] building attendance sheet:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error building attendance export")
	}

	filename := fmt.Sprintf("attendance_%s.xlsx", employeeID)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf)
}

func buildAttendanceSheet(rows []model.AttendanceLogModel) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Employee ID", "Work Email", "Log Date", "Log Time",
		"Effective Hours", "Gross Hours", "Arrival Status", "Leave Status", "Log Status"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r, row := range rows {
		arrival := ""
		if row.ArrivalStatus != nil {
			arrival = *row.ArrivalStatus
		}
		values := []any{row.EmployeeID, row.WorkEmail, row.LogDate, row.LogTime,
			row.EffectiveHours, row.GrossHours, arrival, row.LeaveStatus, row.LogStatus}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	out, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
