// file: internals/route/setup.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "github.com/Srinivaspandrala/server-hrm/internals/features/attendance/route"
	authRoute "github.com/Srinivaspandrala/server-hrm/internals/features/auth/route"
	employeeRoute "github.com/Srinivaspandrala/server-hrm/internals/features/employees/route"
	eventRoute "github.com/Srinivaspandrala/server-hrm/internals/features/events/route"
	leaveRoute "github.com/Srinivaspandrala/server-hrm/internals/features/leaves/route"
	"github.com/Srinivaspandrala/server-hrm/internals/mailer"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, m *mailer.Mailer) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, m)

	log.Println("[INFO] Setting up EmployeeRoutes...")
	employeeRoute.EmployeeRoutes(app, db, m)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(app, db)

	log.Println("[INFO] Setting up EventRoutes...")
	eventRoute.EventRoutes(app, db)

	log.Println("[INFO] Setting up LeaveRoutes...")
	leaveRoute.LeaveRoutes(app, db)
}
