// file: internals/features/events/route/event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/constants"
	controller "github.com/Srinivaspandrala/server-hrm/internals/features/events/controller"
	authMw "github.com/Srinivaspandrala/server-hrm/internals/middlewares/auth"
)

func EventRoutes(app *fiber.App, db *gorm.DB) {
	eventController := controller.NewEventController(db)

	events := app.Group("/api/u/events",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorEmployee("events"), constants.RoleEmployee),
	)
	events.Post("/", eventController.Create)
	events.Get("/", eventController.List)
	events.Delete("/:id", eventController.Delete)
}
