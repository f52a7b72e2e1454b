package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const userIDContextKey = "user_id"

// RequireAuth verifies the bearer token and stores the subject id in the
// request context under user_id.
func (h *Handler) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token faltante o inválido"})
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := h.authService.VerifyToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Token inválido"})
		}

		c.Set(userIDContextKey, userID)
		return next(c)
	}
}
