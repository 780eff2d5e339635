package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskmarket.com/taskmarket/internal/data_models"
	middleware "taskmarket.com/taskmarket/internal/http/middlewares"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), middleware.CallerFrom(c), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return err
	}

	return respondList(c, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, task)
}

func (h *Handler) SubmitProgress(c echo.Context) error {
	var req dto.ProgressRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	entry, err := h.taskService.SubmitProgress(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, entry)
}

func (h *Handler) CompleteTask(c echo.Context) error {
	var req dto.CompleteTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.CompleteTask(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, task)
}

func (h *Handler) ResolveCompletion(c echo.Context) error {
	var req dto.DecisionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.ResolveCompletion(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, task)
}

func (h *Handler) ListTaskOffers(c echo.Context) error {
	offers, err := h.offerService.ListOffersForTask(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		return err
	}

	return respondList(c, offers)
}
