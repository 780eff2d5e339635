package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskmarket.com/taskmarket/internal/data_models"
	middleware "taskmarket.com/taskmarket/internal/http/middlewares"
)

type authResponse struct {
	Success bool `json:"success"`
	*dto.AuthResult
}

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Success: true, AuthResult: result})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Success: true, AuthResult: result})
}

func (h *Handler) Me(c echo.Context) error {
	user, err := h.authService.Me(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, user)
}
