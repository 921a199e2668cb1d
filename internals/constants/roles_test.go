package constants

import "testing"

func TestRoleErrorMessages(t *testing.T) {
	if got, want := RoleErrorAdmin("employee management"), "❌ Only Admin may access employee management."; got != want {
		t.Errorf("RoleErrorAdmin = %q, want %q", got, want)
	}
	if got, want := RoleErrorEmployee("leave requests"), "❌ Only Employee may access leave requests."; got != want {
		t.Errorf("RoleErrorEmployee = %q, want %q", got, want)
	}
}
