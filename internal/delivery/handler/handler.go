package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"auth-service/internal/application/command"
	"auth-service/internal/application/interfaces"
	"auth-service/internal/domain"
)

type Handler struct {
	authService interfaces.AuthService
}

func NewHandler(authService interfaces.AuthService) *Handler {
	return &Handler{authService: authService}
}

// RegisterRoutes mounts the auth endpoints under /api/auth.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.GET("/me", h.Me, h.RequireAuth)
}

func (h *Handler) Register(c echo.Context) error {
	var registerCommand command.RegisterUserCommand
	if err := c.Bind(&registerCommand); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Cuerpo de la petición inválido"})
	}

	result, err := h.authService.Register(c.Request().Context(), &registerCommand)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "El usuario ya existe"})
		case errors.Is(err, domain.ErrCreateFailed):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "No se pudo crear el usuario."})
		default:
			// The cause goes back to the caller on purpose, matching the
			// original behaviour. Hardening candidate, see DESIGN.md.
			c.Logger().Errorf("register: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": fmt.Sprintf("Error: %v", domain.Cause(err))})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"_id":   result.User.ID,
		"name":  result.User.Name,
		"email": result.User.Email,
		"token": result.Token,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var loginCommand command.LoginUserCommand
	if err := c.Bind(&loginCommand); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Cuerpo de la petición inválido"})
	}

	result, err := h.authService.Login(c.Request().Context(), &loginCommand)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Usuario no existe"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Contraseña incorrecta"})
		default:
			c.Logger().Errorf("login: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": fmt.Sprintf("Error: %v", domain.Cause(err))})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"_id":   result.User.ID,
		"name":  result.User.Name,
		"email": result.User.Email,
		"token": result.Token,
	})
}

// Me returns the profile of the bearer token's subject.
func (h *Handler) Me(c echo.Context) error {
	userID := c.Get(userIDContextKey).(string)

	result, err := h.authService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Usuario no encontrado"})
		}
		c.Logger().Errorf("me: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": fmt.Sprintf("Error: %v", domain.Cause(err))})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"_id":   result.Result.ID,
		"name":  result.Result.Name,
		"email": result.Result.Email,
	})
}
