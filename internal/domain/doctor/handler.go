package doctor

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
	e.GET("/doctors", h.List)
	e.GET("/doctors/:id/edit", h.EditForm)
	e.POST("/doctors", h.Create)
	e.PUT("/doctors/:id", h.UpdatePhone)
	e.DELETE("/doctors/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving doctors").SetInternal(err)
	}
	return c.Render(http.StatusOK, "doctors.html", map[string]interface{}{
		"Doctors": items,
	})
}

// EditForm renders the phone edit form for one doctor. An unknown identifier
// is a 404, not an empty form.
func (h *Handler) EditForm(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}
	d, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving doctor").SetInternal(err)
	}
	return c.Render(http.StatusOK, "editDoctor.html", map[string]interface{}{
		"Doctor": d,
	})
}

func (h *Handler) Create(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	d, err := h.svc.Create(c.Request().Context(), &in)
	if errors.Is(err, ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error adding doctor").SetInternal(err)
	}
	return c.JSON(http.StatusCreated, d)
}

// UpdatePhone handles the form-driven phone edit and redirects back to the
// doctors list rather than returning JSON.
func (h *Handler) UpdatePhone(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}
	var in PhoneInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	err = h.svc.UpdatePhone(c.Request().Context(), id, &in)
	if errors.Is(err, ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error updating doctor").SetInternal(err)
	}
	return c.Redirect(http.StatusSeeOther, "/doctors")
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}
	err = h.svc.Delete(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error deleting doctor").SetInternal(err)
	}
	return c.String(http.StatusOK, fmt.Sprintf("Doctor with ID %d deleted", id))
}
