package constants

import "fmt"

const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess    = "❌ Only Admin may access %s."
	ErrOnlyEmployeesCanAccess = "❌ Only Employee may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEmployee(feature string) string {
	return fmt.Sprintf(ErrOnlyEmployeesCanAccess, feature)
}
