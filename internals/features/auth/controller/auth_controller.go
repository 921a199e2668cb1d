package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/features/auth/service"
	"github.com/Srinivaspandrala/server-hrm/internals/mailer"
)

type AuthController struct {
	DB     *gorm.DB
	Mailer *mailer.Mailer
}

func NewAuthController(db *gorm.DB, m *mailer.Mailer) *AuthController {
	return &AuthController{DB: db, Mailer: m}
}

func (ac *AuthController) Signup(c *fiber.Ctx) error {
	return service.Signup(ac.DB, ac.Mailer, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, ac.Mailer, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	return service.ForgotPassword(ac.DB, ac.Mailer, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}
