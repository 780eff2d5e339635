package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskmarket.com/taskmarket/internal/errors"
	"taskmarket.com/taskmarket/internal/services"
)

type Handler struct {
	authService  *services.AuthService
	taskService  *services.TaskService
	offerService *services.OfferService
	skillService *services.SkillService
	ping         func(ctx context.Context) error
}

func NewHandler(
	authService *services.AuthService,
	taskService *services.TaskService,
	offerService *services.OfferService,
	skillService *services.SkillService,
	ping func(ctx context.Context) error,
) *Handler {
	return &Handler{
		authService:  authService,
		taskService:  taskService,
		offerService: offerService,
		skillService: skillService,
		ping:         ping,
	}
}

type envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Count   *int     `json:"count,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func respondList[T any](c echo.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	return c.JSON(http.StatusOK, envelope{Success: true, Data: items, Count: &count})
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	return nil
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, envelope{Message: "database unavailable"})
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Message: "ok"})
}
