package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Srinivaspandrala/server-hrm/internals/configs"
)

const testSecret = "mw-test-secret"

// newProtectedApp wires the gate (stateless: nil db) plus an optional role
// requirement in front of a trivial handler.
func newProtectedApp(t *testing.T, requiredRoles ...string) *fiber.App {
	t.Helper()
	configs.JWTSecret = testSecret

	app := fiber.New()
	handlers := []fiber.Handler{AuthMiddleware(nil)}
	if len(requiredRoles) > 0 {
		handlers = append(handlers, OnlyRoles("", requiredRoles...))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/protected", handlers...)
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}

func request(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func validClaims(role string) jwt.MapClaims {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    "GTS241",
		"email": "jane@example.com",
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
	if role != "" {
		claims["role"] = role
	}
	return claims
}

func TestAuthMiddlewareRejections(t *testing.T) {
	app := newProtectedApp(t)

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Token abc", fiber.StatusUnauthorized},
		{"bare token", "Bearer", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other-secret", validClaims("Employee")), fiber.StatusUnauthorized},
		{"no role claim", "Bearer " + signToken(t, testSecret, validClaims("")), fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := request(t, app, tt.authorization)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app := newProtectedApp(t)

	claims := validClaims("Employee")
	claims["exp"] = time.Now().Add(-10 * time.Minute).Unix()

	resp := request(t, app, "Bearer "+signToken(t, testSecret, claims))
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUnauthorized)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	app := newProtectedApp(t)

	resp := request(t, app, "Bearer "+signToken(t, testSecret, validClaims("Employee")))
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}
}

func TestRoleGate(t *testing.T) {
	tests := []struct {
		name       string
		required   []string
		role       string
		wantStatus int
	}{
		{"employee on admin endpoint", []string{"Admin"}, "Employee", fiber.StatusForbidden},
		{"admin on admin endpoint", []string{"Admin"}, "Admin", fiber.StatusOK},
		{"employee within role set", []string{"Admin", "Employee"}, "Employee", fiber.StatusOK},
		{"unknown role", []string{"Admin", "Employee"}, "Contractor", fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newProtectedApp(t, tt.required...)
			resp := request(t, app, "Bearer "+signToken(t, testSecret, validClaims(tt.role)))
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
