// internals/features/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Srinivaspandrala/server-hrm/internals/configs"
	employeeModel "github.com/Srinivaspandrala/server-hrm/internals/features/employees/model"
)

// AccessTokenTTL: re-authentication is the only renewal path.
const AccessTokenTTL = time.Hour

// IssueAccessToken signs a session token carrying identity and role.
func IssueAccessToken(emp *employeeModel.EmployeeModel) (string, error) {
	return issueAccessTokenAt(configs.JWTSecret, emp, time.Now())
}

func issueAccessTokenAt(secret string, emp *employeeModel.EmployeeModel, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("missing JWT secret")
	}
	claims := jwt.MapClaims{
		"id":    emp.EmployeeID,
		"email": emp.WorkEmail,
		"role":  emp.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(AccessTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
