package http

import (
	"net/http"

	"prestamos-backend/internal/adapter/middleware"
	"prestamos-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type registerReq struct {
	Name                 string `json:"name" validate:"required,max=100"`
	Email                string `json:"email" validate:"required,email,max=100"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	out, err := h.uc.Register(c.Request().Context(), auth.RegisterInput(req))
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, out)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	out, err := h.uc.Login(c.Request().Context(), auth.LoginInput(req))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, out)
}

func (h *AuthHandler) Me(c echo.Context) error {
	p, err := caller(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Me(c.Request().Context(), p.UserID)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, out)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	p, err := caller(c)
	if err != nil {
		return err
	}
	if err := h.uc.Logout(c.Request().Context(), p); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Envelope{Status: statusSuccess, Message: "Sesión cerrada"})
}

func caller(c echo.Context) (*auth.Principal, error) {
	p, found := middleware.PrincipalFrom(c)
	if !found {
		return nil, errNoSession
	}
	return p, nil
}
