package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskmarket.com/taskmarket/internal/data_models"
	middleware "taskmarket.com/taskmarket/internal/http/middlewares"
)

func (h *Handler) CreateOffer(c echo.Context) error {
	var req dto.CreateOfferRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	offer, err := h.offerService.CreateOffer(c.Request().Context(), middleware.CallerFrom(c), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, offer)
}

func (h *Handler) ListProviderOffers(c echo.Context) error {
	offers, err := h.offerService.ListOffersForProvider(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return err
	}

	return respondList(c, offers)
}

func (h *Handler) DecideOffer(c echo.Context) error {
	var req dto.DecisionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	offer, err := h.offerService.DecideOffer(c.Request().Context(), middleware.CallerFrom(c), c.Param("id"), req)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, offer)
}
