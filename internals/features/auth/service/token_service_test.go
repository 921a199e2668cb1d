package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	employeeModel "github.com/Srinivaspandrala/server-hrm/internals/features/employees/model"
)

const testSecret = "test-secret"

func testEmployee() *employeeModel.EmployeeModel {
	return &employeeModel.EmployeeModel{
		EmployeeID: "GTS241",
		WorkEmail:  "jane@example.com",
		Role:       "Employee",
	}
}

func parseClaims(t *testing.T, token, secret string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		t.Fatalf("parsing token: %v", err)
	}
	return claims
}

func TestIssueAccessTokenClaims(t *testing.T) {
	now := time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

	token, err := issueAccessTokenAt(testSecret, testEmployee(), now)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	claims := parseClaims(t, token, testSecret)
	if got := claims["id"]; got != "GTS241" {
		t.Errorf("id claim = %v, want GTS241", got)
	}
	if got := claims["email"]; got != "jane@example.com" {
		t.Errorf("email claim = %v, want jane@example.com", got)
	}
	if got := claims["role"]; got != "Employee" {
		t.Errorf("role claim = %v, want Employee", got)
	}

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	if iat != now.Unix() {
		t.Errorf("iat = %d, want %d", iat, now.Unix())
	}
	if exp != now.Add(time.Hour).Unix() {
		t.Errorf("exp = %d, want %d", exp, now.Add(time.Hour).Unix())
	}
	if exp < iat {
		t.Errorf("exp %d precedes iat %d", exp, iat)
	}
}

func TestIssueAccessTokenRejectsEmptySecret(t *testing.T) {
	if _, err := issueAccessTokenAt("", testEmployee(), time.Now()); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestIssueAccessTokenSignatureBinding(t *testing.T) {
	token, err := issueAccessTokenAt(testSecret, testEmployee(), time.Now())
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	// verification with claim validation must pass under the right secret
	if _, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}); err != nil {
		t.Fatalf("verifying with correct secret: %v", err)
	}

	// and fail under any other
	if _, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	}); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}
