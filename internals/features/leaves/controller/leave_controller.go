package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/features/leaves/service"
)

type LeaveController struct {
	DB *gorm.DB
}

func NewLeaveController(db *gorm.DB) *LeaveController {
	return &LeaveController{DB: db}
}

func (lc *LeaveController) Apply(c *fiber.Ctx) error {
	return service.Apply(lc.DB, c)
}

func (lc *LeaveController) List(c *fiber.Ctx) error {
	return service.List(lc.DB, c)
}

func (lc *LeaveController) Count(c *fiber.Ctx) error {
	return service.Count(lc.DB, c)
}

func (lc *LeaveController) DeleteAll(c *fiber.Ctx) error {
	return service.DeleteAll(lc.DB, c)
}
