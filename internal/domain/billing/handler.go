package billing

import (
	"errors"
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
	e.GET("/billing", h.List)
	e.GET("/payment/:billingId", h.PaymentForm)
	e.POST("/payment", h.Pay)
}

func (h *Handler) List(c echo.Context) error {
	bills, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error retrieving billing records").SetInternal(err)
	}
	return c.Render(http.StatusOK, "billing.html", map[string]interface{}{
		"Billing": bills,
	})
}

// PaymentForm renders the confirmation form for one bill. The id is only
// echoed into the form; existence is checked on submission.
func (h *Handler) PaymentForm(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("billingId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid billing id")
	}
	return c.Render(http.StatusOK, "payment.html", map[string]interface{}{
		"BillingID": id,
	})
}

func (h *Handler) Pay(c echo.Context) error {
	var in PaymentInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body").SetInternal(err)
	}
	err := h.svc.Pay(c.Request().Context(), &in)
	if errors.Is(err, ErrInvalidInput) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "bill not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error processing payment").SetInternal(err)
	}
	return c.Redirect(http.StatusSeeOther, "/billing")
}
