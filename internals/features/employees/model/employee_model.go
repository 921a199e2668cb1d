package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Srinivaspandrala/server-hrm/internals/constants"
)

// EmployeeModel represents the employees table
type EmployeeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID  string    `gorm:"size:10;uniqueIndex;not null" json:"employee_id"`
	FullName    string    `gorm:"size:50;not null" json:"full_name" validate:"required,min=2,max=50"`
	FirstName   *string   `gorm:"size:24" json:"first_name,omitempty"`
	LastName    *string   `gorm:"size:24" json:"last_name,omitempty"`
	WorkEmail   string    `gorm:"size:255;uniqueIndex;not null" json:"work_email" validate:"required,email"`
	Role        string    `gorm:"size:20;not null;default:'Employee'" json:"role"`
	Designation string    `gorm:"size:50;default:'Software Developer'" json:"designation"`
	Department  *string   `gorm:"size:50" json:"department,omitempty"`
	Phone       *string   `gorm:"size:20" json:"phone,omitempty"`
	StartDate   *string   `gorm:"size:10" json:"start_date,omitempty"`
	Company     string    `gorm:"size:50;not null" json:"company" validate:"required"`
	Gender      string    `gorm:"size:10;not null" json:"gender" validate:"required"`
	DateOfBirth string    `gorm:"size:10" json:"date_of_birth"`
	Address     *string   `json:"address,omitempty"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty"`
	Country     string    `json:"country"`
	PinCode     *string   `gorm:"size:10" json:"pin_code,omitempty"`
	About       string    `gorm:"column:about_yourself" json:"about_yourself"`
	Password    string    `gorm:"not null" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}

// BeforeCreate fills defaults (sqlite has no uuid generator)
func (e *EmployeeModel) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Role == "" {
		e.Role = constants.RoleEmployee
	}
	return nil
}
