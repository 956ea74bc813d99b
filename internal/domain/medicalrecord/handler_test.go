package medicalrecord

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/clinichq/clinic/internal/platform/web"
)

func newTestHandler(t *testing.T, repo Repository) (*Handler, *echo.Echo) {
	t.Helper()
	h := NewHandler(NewService(repo))
	e := echo.New()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer
	return h, e
}

func TestHandler_List_RendersView(t *testing.T) {
	repo := &mockRepo{
		records: []*Record{record(1, 1, 1, "Flu")},
		prescribed: []PrescribedMedication{
			{PatientID: 1, DoctorID: 1, MedicationName: "Oseltamivir",
				Dosage: "75mg", DosageInstructions: "Twice daily"},
		},
	}
	h, e := newTestHandler(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/medicalRecords", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Ann Lee", "Sam Hart", "Flu", "Oseltamivir", "Twice daily"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected rendered view to contain %q", want)
		}
	}
}

func TestHandler_List_StoreError(t *testing.T) {
	h, e := newTestHandler(t, &mockRepo{listErr: errBoom})

	req := httptest.NewRequest(http.MethodGet, "/medicalRecords", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 HTTPError, got %v", err)
	}
	if ok && he.Message != "error retrieving medical records" {
		t.Errorf("expected generic message, got %v", he.Message)
	}
}
