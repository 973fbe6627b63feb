package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"hinga/entities"
	"hinga/pkg/auth"
)

// JWT reads the bearer token, validates it and sets "uid" and "role" into
// the request context for downstream handlers.
func JWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := auth.ValidateJWT(strings.TrimPrefix(header, "Bearer "), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}
			c.Set("uid", claims.UserID)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}

// AdminOnly rejects requests whose authenticated role is not admin.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != entities.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin role required"})
			}
			return next(c)
		}
	}
}
