package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dbuhub/blog-admin-api/internal/core/domain"
	"github.com/dbuhub/blog-admin-api/internal/core/ports"
)

// userContextKey is where the resolved *domain.User is stored in the echo
// context for downstream handlers.
const userContextKey = "current_user"

// credentialsError is the single 401 returned for every authentication
// failure on protected routes: missing header, bad token, unknown subject.
func credentialsError() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
}

// Auth validates the bearer token and resolves the acting user. The token's
// subject is looked up in the user store; a token whose subject no longer
// exists fails closed with the same undifferentiated 401.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return credentialsError()
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				return credentialsError()
			}

			user, err := users.FindByUsername(c.Request().Context(), claims.Username)
			if err != nil {
				return credentialsError()
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by Auth for this request. The second
// return value is false when the middleware did not run.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok
}
