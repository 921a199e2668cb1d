// file: internals/features/employees/route/employee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/constants"
	controller "github.com/Srinivaspandrala/server-hrm/internals/features/employees/controller"
	"github.com/Srinivaspandrala/server-hrm/internals/mailer"
	authMw "github.com/Srinivaspandrala/server-hrm/internals/middlewares/auth"
)

func EmployeeRoutes(app *fiber.App, db *gorm.DB, m *mailer.Mailer) {
	employeeController := controller.NewEmployeeController(db, m)

	// ==========================
	// USER (own profile)
	// Base: /api/u/employees
	// ==========================
	user := app.Group("/api/u/employees", authMw.AuthMiddleware(db))
	user.Get("/me",
		authMw.OnlyRoles("", constants.RoleAdmin, constants.RoleEmployee),
		employeeController.Me)

	// ==========================
	// ADMIN
	// Base: /api/a/employees
	// ==========================
	admin := app.Group("/api/a/employees",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("employee management"), constants.RoleAdmin),
	)
	admin.Post("/", employeeController.Register)
	admin.Get("/", employeeController.List)
	admin.Get("/:employeeID", employeeController.GetByEmployeeID)
}
