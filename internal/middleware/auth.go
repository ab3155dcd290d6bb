package middleware

import (
	"net/http"
	"strings"

	"github.com/OmandamRheajen/Point-Of-Sale/internal/service"
	"github.com/OmandamRheajen/Point-Of-Sale/pkg/jwtutil"
	"github.com/OmandamRheajen/Point-Of-Sale/pkg/logger"
	"github.com/OmandamRheajen/Point-Of-Sale/prometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the JWT token and resolves the request principal
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		// Extract the token
		tokenString := parts[1]

		// Validate the token
		claims, err := jwtutil.ValidateToken(tokenString)
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		// Store the resolved principal in context for the handlers
		c.Set("principal", &service.Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
		})

		// Token is valid, proceed with the request
		return next(c)
	}
}

// PrincipalFromContext retrieves the authenticated principal from the
// Echo context. Returns nil when the request was not authenticated.
func PrincipalFromContext(c echo.Context) *service.Principal {
	principal, ok := c.Get("principal").(*service.Principal)
	if !ok {
		return nil
	}
	return principal
}
