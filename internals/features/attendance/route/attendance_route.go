// file: internals/features/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/constants"
	controller "github.com/Srinivaspandrala/server-hrm/internals/features/attendance/controller"
	authMw "github.com/Srinivaspandrala/server-hrm/internals/middlewares/auth"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB) {
	attendanceController := controller.NewAttendanceController(db)

	// ==========================
	// USER (own ledger)
	// Base: /api/u/attendance
	// ==========================
	user := app.Group("/api/u/attendance",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorEmployee("attendance tracking"), constants.RoleEmployee),
	)
	user.Get("/logs", attendanceController.MyLogs)
	user.Get("/requests", attendanceController.MyRequests)

	// ==========================
	// ADMIN
	// Base: /api/a/attendance
	// ==========================
	admin := app.Group("/api/a/attendance",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("attendance review"), constants.RoleAdmin),
	)
	admin.Get("/:employeeID", attendanceController.LogsByEmployee)
	admin.Get("/:employeeID/export", attendanceController.Export)
}
