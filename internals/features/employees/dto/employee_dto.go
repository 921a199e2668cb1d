package dto

import (
	"github.com/Srinivaspandrala/server-hrm/internals/features/employees/model"
)

// SignupRequest is the public self-signup payload.
type SignupRequest struct {
	FullName    string `json:"fullname" validate:"required,min=2,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Company     string `json:"company" validate:"required"`
	Gender      string `json:"gender" validate:"required"`
	DateOfBirth string `json:"dateofbirth" validate:"required"`
	Country     string `json:"country" validate:"required"`
	About       string `json:"aboutyourself" validate:"required"`
}

// RegisterEmployeeRequest is the admin onboarding payload (full profile).
type RegisterEmployeeRequest struct {
	FullName      string `json:"fullname" validate:"required,min=2,max=50"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	DateOfBirth   string `json:"dateOfBirth" validate:"required"`
	Department    string `json:"department" validate:"required"`
	Position      string `json:"position" validate:"required"`
	StartDate     string `json:"startDate" validate:"required"`
	StreetAddress string `json:"streetAddress" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state" validate:"required"`
	ZipCode       string `json:"zipCode" validate:"required"`
	Country       string `json:"country" validate:"required"`
	Gender        string `json:"gender" validate:"required"`
	About         string `json:"about" validate:"required"`
	Company       string `json:"company" validate:"required"`
}

// EmployeeResponse is the profile shape returned to clients; the credential
// never leaves the store.
type EmployeeResponse struct {
	EmployeeID  string  `json:"employee_id"`
	FullName    string  `json:"full_name"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	WorkEmail   string  `json:"work_email"`
	Role        string  `json:"role"`
	Designation string  `json:"designation"`
	Department  *string `json:"department,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	Company     string  `json:"company"`
	Gender      string  `json:"gender"`
	DateOfBirth string  `json:"date_of_birth"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Country     string  `json:"country"`
	PinCode     *string `json:"pin_code,omitempty"`
	About       string  `json:"about_yourself"`
}

func FromModel(e *model.EmployeeModel) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  e.EmployeeID,
		FullName:    e.FullName,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		WorkEmail:   e.WorkEmail,
		Role:        e.Role,
		Designation: e.Designation,
		Department:  e.Department,
		Phone:       e.Phone,
		StartDate:   e.StartDate,
		Company:     e.Company,
		Gender:      e.Gender,
		DateOfBirth: e.DateOfBirth,
		Address:     e.Address,
		City:        e.City,
		State:       e.State,
		Country:     e.Country,
		PinCode:     e.PinCode,
		About:       e.About,
	}
}

func FromModels(models []model.EmployeeModel) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(models))
	for i := range models {
		out = append(out, FromModel(&models[i]))
	}
	return out
}
