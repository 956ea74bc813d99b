package doctor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinichq/clinic/internal/platform/web"
)

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	svc := NewService(newMockRepo())
	h := NewHandler(svc)
	e := echo.New()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	return h, e
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler(t)
	body := `{"firstName":"Sam","lastName":"Hart","specialization":"Cardiology","phoneNumber":"555","email":"s@h.c"}`
	req := httptest.NewRequest(http.MethodPost, "/doctors", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"doctorId":1`) {
		t.Errorf("expected generated doctorId, got %s", rec.Body.String())
	}
}

func TestHandler_EditForm(t *testing.T) {
	h, e := newTestHandler(t)
	h.svc.Create(nil, validInput())

	req := httptest.NewRequest(http.MethodGet, "/doctors/1/edit", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.EditForm(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Sam Hart") {
		t.Errorf("expected edit form to name the doctor, got %s", rec.Body.String())
	}
}

func TestHandler_EditForm_NotFound(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/doctors/999/edit", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.EditForm(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 HTTPError, got %v", err)
	}
}

func TestHandler_UpdatePhone_Redirects(t *testing.T) {
	h, e := newTestHandler(t)
	h.svc.Create(nil, validInput())

	form := "phoneNumber=999"
	req := httptest.NewRequest(http.MethodPut, "/doctors/1", strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.UpdatePhone(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected 303 redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/doctors" {
		t.Errorf("expected redirect to /doctors, got %s", loc)
	}

	got, _ := h.svc.Get(nil, 1)
	if got.PhoneNumber != "999" {
		t.Errorf("expected phone updated to 999, got %s", got.PhoneNumber)
	}
}

func TestHandler_UpdatePhone_NotFound(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodPut, "/doctors/999", strings.NewReader("phoneNumber=1"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.UpdatePhone(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 HTTPError, got %v", err)
	}
}

func TestHandler_Delete(t *testing.T) {
	h, e := newTestHandler(t)
	h.svc.Create(nil, validInput())

	req := httptest.NewRequest(http.MethodDelete, "/doctors/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Body.String() != "Doctor with ID 1 deleted" {
		t.Errorf("unexpected confirmation message: %q", rec.Body.String())
	}
}

func TestHandler_Delete_NotFound(t *testing.T) {
	h, e := newTestHandler(t)
	req := httptest.NewRequest(http.MethodDelete, "/doctors/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404 HTTPError, got %v", err)
	}
}

func TestHandler_List_RendersView(t *testing.T) {
	h, e := newTestHandler(t)
	h.svc.Create(nil, validInput())

	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Cardiology") {
		t.Errorf("expected rendered view to contain specialization, got %s", rec.Body.String())
	}
}
