package medicalrecord

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/medicalRecords", h.List)
}

func (h *Handler) List(c echo.Context) error {
	records, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving medical records").SetInternal(err)
	}
	return c.Render(http.StatusOK, "medicalRecords.html", map[string]interface{}{
		"MedicalRecords": records,
	})
}
