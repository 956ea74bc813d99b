package appointment

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/appointments", h.List)
	e.POST("/appointments", h.Create)
	e.DELETE("/appointments/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving appointments").SetInternal(err)
	}
	return c.Render(http.StatusOK, "appointments.html", map[string]interface{}{
		"Appointments": items,
	})
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	appt, err := h.svc.Create(c.Request().Context(), &in)
	if errors.Is(err, ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error scheduling appointment").SetInternal(err)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	err = h.svc.Delete(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error canceling appointment").SetInternal(err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("Appointment with ID %d deleted", id))
}
