// internals/features/auth/service/password_service.go
package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	employeeRepo "github.com/Srinivaspandrala/server-hrm/internals/features/employees/repository"
	helper "github.com/Srinivaspandrala/server-hrm/internals/helpers"
	"github.com/Srinivaspandrala/server-hrm/internals/mailer"
)

// ========================== FORGOT PASSWORD ==========================
// Resets the credential to a fresh random password and mails it.
func ForgotPassword(db *gorm.DB, m *mailer.Mailer, c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if input.Email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email is required")
	}

	if _, err := employeeRepo.FindByEmail(db, input.Email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Email not found")
		}
		log.Println("[ERROR] forgot-password lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while checking the email")
	}

	randomPassword := helper.GenerateRandomPassword()
	hash, err := helper.HashPassword(randomPassword)
	if err != nil {
		log.Println("[ERROR] hashing reset password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An unexpected error occurred")
	}

	if err := employeeRepo.UpdatePasswordByEmail(db, input.Email, hash); err != nil {
		log.Println("[ERROR] updating password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	subject, body := mailer.PasswordResetEmail(randomPassword)
	m.SendAsync(input.Email, subject, body)

	return helper.JsonUpdated(c, "Password has been reset successfully", nil)
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if input.OldPassword == "" || input.NewPassword == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Old password and new password are required")
	}
	if input.OldPassword == input.NewPassword {
		return helper.JsonError(c, fiber.StatusBadRequest, "New password cannot be the same as the old password")
	}

	email, ok := c.Locals("user_email").(string)
	if !ok || email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	emp, err := employeeRepo.FindByEmail(db, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] change-password lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if err := helper.CheckPasswordHash(emp.Password, input.OldPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Old password is incorrect")
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		log.Println("[ERROR] hashing new password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An unexpected error occurred")
	}

	if err := employeeRepo.UpdatePasswordByEmail(db, email, hash); err != nil {
		log.Println("[ERROR] updating password:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
