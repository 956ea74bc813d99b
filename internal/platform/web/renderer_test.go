package web

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNewRenderer_ParsesAllTemplates(t *testing.T) {
	if _, err := NewRenderer(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRender_Index(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, "index.html", nil, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "Clinic Management") {
		t.Error("expected index view to contain the title")
	}
}

func TestRender_PatientsList(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type row struct {
		ID                                  int64
		FirstName, LastName                 string
		DateOfBirth                         string
		Gender, Address, PhoneNumber        string
		Email, InsuranceProvider            string
	}
	data := map[string]interface{}{
		"Patients": []row{
			{ID: 1, FirstName: "Ann", LastName: "Lee", DateOfBirth: "1990-01-01", Gender: "F"},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, "patients.html", data, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Ann Lee") {
		t.Errorf("expected rendered list to contain patient name, got: %s", out)
	}
}

func TestRender_Payment(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, "payment.html", map[string]interface{}{"BillingID": int64(7)}, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), `value="7"`) {
		t.Error("expected payment form to carry the billing id")
	}
}

func TestRender_DatetimeHelper(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	type appt struct {
		ID                                 int64
		Date                               time.Time
		PatientFirstName, PatientLastName  string
		DoctorFirstName, DoctorLastName    string
		Reason, Status                     string
	}
	data := map[string]interface{}{
		"Appointments": []appt{
			{ID: 3, Date: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), Status: "scheduled"},
		},
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, "appointments.html", data, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "2024-05-01 10:00") {
		t.Errorf("expected formatted appointment date, got: %s", buf.String())
	}
}
