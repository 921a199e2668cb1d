package database

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/configs"
	"github.com/Srinivaspandrala/server-hrm/internals/constants"
	authModel "github.com/Srinivaspandrala/server-hrm/internals/features/auth/model"
	attendanceModel "github.com/Srinivaspandrala/server-hrm/internals/features/attendance/model"
	employeeModel "github.com/Srinivaspandrala/server-hrm/internals/features/employees/model"
	employeeRepo "github.com/Srinivaspandrala/server-hrm/internals/features/employees/repository"
	eventModel "github.com/Srinivaspandrala/server-hrm/internals/features/events/model"
	leaveModel "github.com/Srinivaspandrala/server-hrm/internals/features/leaves/model"
	helper "github.com/Srinivaspandrala/server-hrm/internals/helpers"
	"github.com/Srinivaspandrala/server-hrm/internals/mailer"
)

func Migrate() {
	if err := DB.AutoMigrate(
		&employeeModel.EmployeeModel{},
		&employeeModel.SequenceModel{},
		&attendanceModel.AttendanceLogModel{},
		&eventModel.EventModel{},
		&leaveModel.LeaveRequestModel{},
		&authModel.TokenBlacklist{},
		&mailer.OutboxEmail{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	// At most one open session per employee per day, enforced by the store.
	if err := DB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_open_session
		 ON attendance_logs (work_email, log_date) WHERE log_status = 'Yes'`,
	).Error; err != nil {
		log.Fatalf("❌ Creating open-session index failed: %v", err)
	}

	log.Println("✅ Migration complete.")
}

// SeedAdmin inserts the platform admin account once. Idempotent.
func SeedAdmin() {
	adminEmail := configs.AdminEmail
	adminPassword := configs.AdminPassword

	if adminPassword == "" {
		log.Fatal("❌ ADMIN_PASSWORD is not set in the environment variables")
	}

	var existing employeeModel.EmployeeModel
	err := DB.Where("work_email = ?", adminEmail).First(&existing).Error
	if err == nil {
		log.Println("[INFO] Admin user already exists")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("❌ Admin lookup failed: %v", err)
	}

	hash, err := helper.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("❌ Hashing admin password failed: %v", err)
	}

	employeeID, err := employeeRepo.NextEmployeeID(DB)
	if err != nil {
		log.Fatalf("❌ Minting admin employee ID failed: %v", err)
	}

	admin := employeeModel.EmployeeModel{
		EmployeeID:  employeeID,
		FullName:    "Admin",
		WorkEmail:   adminEmail,
		Role:        constants.RoleAdmin,
		Designation: "Founder and CEO",
		Company:     "HRM Company",
		Gender:      "Other",
		DateOfBirth: "1970-01-01",
		Country:     "Country",
		About:       "Admin of the HRM platform",
		Password:    hash,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Inserting admin user failed: %v", err)
	}
	log.Println("✅ Admin user inserted successfully")
}
