package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/features/events/model"
	helper "github.com/Srinivaspandrala/server-hrm/internals/helpers"
)

var validate = validator.New()

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// Create adds a calendar entry for the requester.
func (ec *EventController) Create(c *fiber.Ctx) error {
	var input struct {
		Title     string `json:"title" validate:"required,max=32"`
		Date      string `json:"date" validate:"required"`
		StartTime string `json:"startTime" validate:"required"`
		EndTime   string `json:"endTime" validate:"required"`
		Type      string `json:"type" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "All fields are required")
	}

	email, _ := c.Locals("user_email").(string)
	employeeID, _ := c.Locals("employee_id").(string)
	if email == "" || employeeID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	event := model.EventModel{
		EmployeeID: employeeID,
		WorkEmail:  email,
		Title:      input.Title,
		Date:       input.Date,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		EventType:  input.Type,
	}
	if err := ec.DB.Create(&event).Error; err != nil {
		log.Println("[ERROR] inserting event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error while inserting event")
	}

	return helper.JsonCreated(c, "Event successfully inserted", event)
}

// List returns the requester's calendar entries.
func (ec *EventController) List(c *fiber.Ctx) error {
	email, ok := c.Locals("user_email").(string)
	if !ok || email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var events []model.EventModel
	if err := ec.DB.Where("work_email = ?", email).Find(&events).Error; err != nil {
		log.Println("[ERROR] fetching events:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error while fetching events")
	}
	return helper.JsonList(c, "", events)
}

// Delete removes one of the requester's own entries.
func (ec *EventController) Delete(c *fiber.Ctx) error {
	email, ok := c.Locals("user_email").(string)
	if !ok || email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	res := ec.DB.Where("work_email = ? AND id = ?", email, eventID).Delete(&model.EventModel{})
	if res.Error != nil {
		log.Println("[ERROR] deleting event:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error while deleting event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found or not authorized to delete")
	}

	return helper.JsonDeleted(c, "Event deleted successfully", nil)
}
