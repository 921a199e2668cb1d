package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/features/employees/dto"
	"github.com/Srinivaspandrala/server-hrm/internals/features/employees/model"
	"github.com/Srinivaspandrala/server-hrm/internals/features/employees/repository"
	helper "github.com/Srinivaspandrala/server-hrm/internals/helpers"
	"github.com/Srinivaspandrala/server-hrm/internals/mailer"
)

var validate = validator.New()

type EmployeeController struct {
	DB     *gorm.DB
	Mailer *mailer.Mailer
}

func NewEmployeeController(db *gorm.DB, m *mailer.Mailer) *EmployeeController {
	return &EmployeeController{DB: db, Mailer: m}
}

// Register handles admin onboarding of a new employee (full profile) and
// schedules the onboarding mail sequence.
func (ec *EmployeeController) Register(c *fiber.Ctx) error {
	var input dto.RegisterEmployeeRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}

	employeeID, err := repository.NextEmployeeID(ec.DB)
	if err != nil {
		log.Println("[ERROR] minting employee ID:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error during employee registration")
	}

	randomPassword := helper.GenerateRandomPassword()
	hash, err := helper.HashPassword(randomPassword)
	if err != nil {
		log.Println("[ERROR] hashing onboarding password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error during employee registration")
	}

	emp := model.EmployeeModel{
		EmployeeID:  employeeID,
		FullName:    input.FullName,
		FirstName:   &input.FirstName,
		LastName:    &input.LastName,
		WorkEmail:   input.Email,
		Designation: input.Position,
		Department:  &input.Department,
		Phone:       &input.Phone,
		StartDate:   &input.StartDate,
		Company:     input.Company,
		Gender:      input.Gender,
		DateOfBirth: input.DateOfBirth,
		Address:     &input.StreetAddress,
		City:        &input.City,
		State:       &input.State,
		Country:     input.Country,
		PinCode:     &input.ZipCode,
		About:       input.About,
		Password:    hash,
	}
	if err := repository.Create(ec.DB, &emp); err != nil {
		log.Println("[ERROR] registering employee:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error during employee registration")
	}

	// Onboarding sequence: welcome now, credentials +5 min, getting-started
	// +24 h. All three go through the durable outbox so a restart cannot
	// drop them.
	now := time.Now()
	enqueueOnboarding := func(subject, body string, sendAt time.Time) {
		if err := mailer.Enqueue(ec.DB, emp.WorkEmail, subject, body, sendAt); err != nil {
			log.Printf("[ERROR] enqueueing %q: %v", subject, err)
		}
	}
	s, b := mailer.OnboardingWelcomeEmail(emp.FullName, input.Position)
	enqueueOnboarding(s, b, now)
	s, b = mailer.CredentialsEmail(emp.FullName, emp.WorkEmail, randomPassword)
	enqueueOnboarding(s, b, now.Add(5*time.Minute))
	s, b = mailer.GettingStartedEmail(emp.FullName)
	enqueueOnboarding(s, b, now.Add(24*time.Hour))

	return helper.JsonCreated(c, "Employee registered successfully", fiber.Map{
		"employee_id": emp.EmployeeID,
	})
}

// List returns every employee, credentials excluded.
func (ec *EmployeeController) List(c *fiber.Ctx) error {
	emps, err := repository.ListAll(ec.DB)
	if err != nil {
		log.Println("[ERROR] listing employees:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching employee data")
	}
	return helper.JsonList(c, "", dto.FromModels(emps))
}

// GetByEmployeeID returns one employee's profile for Admin.
func (ec *EmployeeController) GetByEmployeeID(c *fiber.Ctx) error {
	employeeID := c.Params("employeeID")

	emp, err := repository.FindByEmployeeID(ec.DB, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		log.Println("[ERROR] fetching employee:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching employee data")
	}
	return helper.JsonOK(c, "", dto.FromModel(emp))
}

// Me returns the requester's own profile, resolved from the token email.
func (ec *EmployeeController) Me(c *fiber.Ctx) error {
	email, ok := c.Locals("user_email").(string)
	if !ok || email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	emp, err := repository.FindByEmail(ec.DB, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee not found")
		}
		log.Println("[ERROR] fetching own profile:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching employee data")
	}
	return helper.JsonOK(c, "", dto.FromModel(emp))
}
