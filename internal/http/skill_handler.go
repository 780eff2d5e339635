package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskmarket.com/taskmarket/internal/data_models"
	middleware "taskmarket.com/taskmarket/internal/http/middlewares"
)

func (h *Handler) CreateSkill(c echo.Context) error {
	var req dto.CreateSkillRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	skill, err := h.skillService.CreateSkill(c.Request().Context(), middleware.CallerFrom(c), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, skill)
}

func (h *Handler) ListSkills(c echo.Context) error {
	skills, err := h.skillService.ListSkills(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return err
	}

	return respondList(c, skills)
}

func (h *Handler) UpdateSkill(c echo.Context) error {
	var req dto.UpdateSkillRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	skill, err := h.skillService.UpdateSkill(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, skill)
}

func (h *Handler) DeleteSkill(c echo.Context) error {
	if err := h.skillService.DeleteSkill(c.Request().Context(), middleware.CallerFrom(c), c.Param("id")); err != nil {
		return err
	}

	return respond(c, http.StatusOK, echo.Map{})
}
