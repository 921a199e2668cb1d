// file: internals/features/leaves/route/leave_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/constants"
	controller "github.com/Srinivaspandrala/server-hrm/internals/features/leaves/controller"
	authMw "github.com/Srinivaspandrala/server-hrm/internals/middlewares/auth"
)

func LeaveRoutes(app *fiber.App, db *gorm.DB) {
	leaveController := controller.NewLeaveController(db)

	leaves := app.Group("/api/u/leaves",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorEmployee("leave requests"), constants.RoleEmployee),
	)
	leaves.Post("/", leaveController.Apply)
	leaves.Get("/", leaveController.List)
	leaves.Get("/count", leaveController.Count)
	leaves.Delete("/", leaveController.DeleteAll)
}
