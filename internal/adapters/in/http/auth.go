package http

import (
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actorID"

// BearerAuth accepts HS256 tokens signed with secret and stores the subject
// as the acting user's id. Whether that user exists is checked by the use
// cases, which report unknown actors as unauthorized too.
func BearerAuth(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				return errs.NewUnauthorizedError(nil)
			}

			var claims jwt.RegisteredClaims
			if _, err := parser.ParseWithClaims(strings.TrimSpace(raw), &claims, keyFunc); err != nil {
				return errs.NewUnauthorizedError(nil)
			}

			actorID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return errs.NewUnauthorizedError(claims.Subject)
			}

			c.Set(actorContextKey, actorID)
			return next(c)
		}
	}
}

func actorFrom(c echo.Context) (kernel.UUID, error) {
	actorID, ok := c.Get(actorContextKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, errs.NewUnauthorizedError(nil)
	}
	return actorID, nil
}
