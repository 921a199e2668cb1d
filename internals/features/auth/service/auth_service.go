// internals/features/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authModel "github.com/Srinivaspandrala/server-hrm/internals/features/auth/model"
	attendanceModel "github.com/Srinivaspandrala/server-hrm/internals/features/attendance/model"
	attendanceRepo "github.com/Srinivaspandrala/server-hrm/internals/features/attendance/repository"
	attendanceSvc "github.com/Srinivaspandrala/server-hrm/internals/features/attendance/service"
	employeeDTO "github.com/Srinivaspandrala/server-hrm/internals/features/employees/dto"
	employeeModel "github.com/Srinivaspandrala/server-hrm/internals/features/employees/model"
	employeeRepo "github.com/Srinivaspandrala/server-hrm/internals/features/employees/repository"
	helper "github.com/Srinivaspandrala/server-hrm/internals/helpers"
	"github.com/Srinivaspandrala/server-hrm/internals/mailer"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

var validate = validator.New()

// ========================== SIGNUP ==========================
// POST /api/auth/signup
func Signup(db *gorm.DB, m *mailer.Mailer, c *fiber.Ctx) error {
	var input employeeDTO.SignupRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}

	randomPassword := helper.GenerateRandomPassword()
	hash, err := helper.HashPassword(randomPassword)
	if err != nil {
		log.Println("[ERROR] hashing signup password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error during signup")
	}

	employeeID, err := employeeRepo.NextEmployeeID(db)
	if err != nil {
		log.Println("[ERROR] minting employee ID:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error during signup")
	}

	emp := employeeModel.EmployeeModel{
		EmployeeID:  employeeID,
		FullName:    input.FullName,
		WorkEmail:   input.Email,
		Company:     input.Company,
		Gender:      input.Gender,
		DateOfBirth: input.DateOfBirth,
		Country:     input.Country,
		About:       input.About,
		Password:    hash,
	}
	if err := employeeRepo.Create(db, &emp); err != nil {
		log.Println("[ERROR] signup insert:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error during signup")
	}

	// Signup is the one place a notifier failure surfaces to the caller:
	// the credentials only exist in this mail.
	subject, body := mailer.WelcomeEmail(emp.FullName, emp.WorkEmail, randomPassword)
	if err := m.Send(emp.WorkEmail, subject, body); err != nil {
		log.Println("[ERROR] sending signup email:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Signup successful, but email sending failed")
	}

	return helper.JsonCreated(c, "Signup successful, email sent!", fiber.Map{
		"employee_id": emp.EmployeeID,
	})
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, m *mailer.Mailer, c *fiber.Ctx) error {
	var input struct {
		Email      string `json:"email"`
		EmployeeID string `json:"EmployeeID"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if (input.Email == "" && input.EmployeeID == "") || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email or EmployeeID and password are required")
	}

	identifier := input.Email
	if identifier == "" {
		identifier = input.EmployeeID
	}

	emp, err := employeeRepo.FindByEmailOrEmployeeID(db, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or EmployeeID")
		}
		log.Println("[ERROR] login lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err := helper.CheckPasswordHash(emp.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid password")
	}

	now := time.Now()
	logDate := now.Format(dateLayout)
	logTime := now.Format(timeLayout)

	// Derive the attendance row for this login. Persisting it is
	// best-effort: a ledger write failure is logged and never blocks
	// token issuance.
	cls := attendanceSvc.Classify(now, attendanceSvc.ShiftFromConfig())
	row := attendanceModel.AttendanceLogModel{
		EmployeeID:     emp.EmployeeID,
		WorkEmail:      emp.WorkEmail,
		LogDate:        logDate,
		LogTime:        logTime,
		EffectiveHours: cls.EffectiveHours,
		GrossHours:     cls.GrossHours,
		ArrivalStatus:  cls.ArrivalStatus,
		LeaveStatus:    cls.LeaveStatus,
		LogStatus:      cls.LogStatus,
	}
	if err := attendanceRepo.Insert(db, &row); err != nil {
		log.Println("[ERROR] attendance log insert:", err)
	}

	token, err := IssueAccessToken(emp)
	if err != nil {
		log.Println("[ERROR] issuing token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	subject, body := mailer.LoginAlertEmail(emp.FullName)
	m.SendAsync(emp.WorkEmail, subject, body)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": fiber.Map{
			"fullname":    emp.FullName,
			"email":       emp.WorkEmail,
			"company":     emp.Company,
			"logDate":     logDate,
			"logTime":     logTime,
			"message":     "Login successful",
			"role":        emp.Role,
			"designation": emp.Designation,
			"token":       token,
		},
	})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	email, ok := c.Locals("user_email").(string)
	if !ok || email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now()
	logDate := now.Format(dateLayout)
	logTime := now.Format(timeLayout)

	open, err := attendanceRepo.FindOpenSession(db, email, logDate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Login record not found for today")
		}
		log.Println("[ERROR] fetching open session:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching login time")
	}

	loginAt, err := time.ParseInLocation(dateLayout+" "+timeLayout, open.LogDate+" "+open.LogTime, time.Local)
	if err != nil {
		log.Println("[ERROR] parsing login time:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching login time")
	}

	effective := attendanceSvc.EffectiveHoursBetween(loginAt, now)
	leaveStatus := attendanceSvc.LeaveStatusForHours(effective)
	effectiveStr := attendanceSvc.FormatDecimalHours(effective)

	if err := attendanceRepo.CloseSession(db, email, logDate, logTime, effectiveStr, leaveStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Login record not found for today")
		}
		log.Println("[ERROR] closing session:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update logout time")
	}

	// Revoke the presented token so the session really ends here.
	if tok, ok := c.Locals("access_token").(string); ok && tok != "" {
		if err := db.Create(&authModel.TokenBlacklist{
			Token:     tok,
			ExpiredAt: now.Add(AccessTokenTTL),
		}).Error; err != nil {
			log.Println("[ERROR] blacklisting token:", err)
		}
	}

	return helper.JsonOK(c, "Logout successful", fiber.Map{
		"effectiveHours": effectiveStr,
	})
}
