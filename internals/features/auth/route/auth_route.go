// file: internals/features/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/constants"
	controller "github.com/Srinivaspandrala/server-hrm/internals/features/auth/controller"
	"github.com/Srinivaspandrala/server-hrm/internals/mailer"
	rateLimiter "github.com/Srinivaspandrala/server-hrm/internals/middlewares"
	authMw "github.com/Srinivaspandrala/server-hrm/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, m *mailer.Mailer) {
	authController := controller.NewAuthController(db, m)

	// ==========================
	// PUBLIC
	// Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/signup", rateLimiter.SignupRateLimiter(), authController.Signup)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/forgot-password", rateLimiter.ForgotPasswordRateLimiter(), authController.ForgotPassword)

	// ==========================
	// PROTECTED
	// ==========================
	protectedAuth := app.Group("/api/auth", authMw.AuthMiddleware(db))

	protectedAuth.Post("/logout",
		authMw.OnlyRoles("", constants.RoleAdmin, constants.RoleEmployee),
		authController.Logout)
	protectedAuth.Post("/change-password",
		authMw.OnlyRoles("", constants.RoleAdmin, constants.RoleEmployee),
		authController.ChangePassword)
}
