package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"hinga/entities"
	"hinga/pkg/auth"
	"hinga/pkg/auth/controller"
	"hinga/pkg/auth/repository"
)

type authCtrl struct {
	users       repository.UserRepository
	secret      string
	expiryHours int
	validate    *validator.Validate
}

func New(users repository.UserRepository, secret string, expiryHours int) controller.AuthController {
	return &authCtrl{users: users, secret: secret, expiryHours: expiryHours, validate: validator.New()}
}

type registerReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (h *authCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := h.users.FindByEmail(email); err == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "email already registered"})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	u := &entities.User{Name: req.Name, Email: email, PasswordHash: hash, Role: entities.RoleFarmer}
	if err := h.users.Create(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	token, err := auth.GenerateJWT(u.UserID, u.Email, u.Role, h.secret, h.expiryHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"token": token, "user": u})
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	u, err := h.users.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}

	token, err := auth.GenerateJWT(u.UserID, u.Email, u.Role, h.secret, h.expiryHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"token": token, "user": u})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(uint)
	role, _ := c.Get("role").(string)
	return c.JSON(http.StatusOK, map[string]any{"uid": uid, "role": role})
}
