package auth

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const UserIDKey contextKey = "user_id"

var (
	adminSecretOnce  sync.Once
	adminSecretValue string
)

func adminSecretFromEnv() string {
	adminSecretOnce.Do(func() {
		adminSecretValue = strings.TrimSpace(os.Getenv("ADMIN_API_SECRET"))
	})
	return adminSecretValue
}

// RequireAdmin accepts either a Bearer JWT issued by Login or the
// shared X-Admin-Secret header used by the operator CLIs.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if secret := adminSecretFromEnv(); secret != "" {
			if c.Request().Header.Get("X-Admin-Secret") == secret {
				return next(c)
			}
		}

		header := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or malformed authorization header")
		}

		userID, err := parseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(string(UserIDKey), userID)
		return next(c)
	}
}

func parseToken(tokenString string) (uuid.UUID, error) {
	secretKey, err := jwtSecretFromEnv()
	if err != nil {
		return uuid.Nil, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("unexpected claims type")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("missing subject claim: %w", err)
	}

	return uuid.Parse(sub)
}

// UserIDFrom extracts the authenticated user from the request context.
func UserIDFrom(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(UserIDKey)).(uuid.UUID)
	return id, ok
}
