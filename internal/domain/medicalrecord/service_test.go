package medicalrecord

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errBoom = errors.New("boom")

// -- Mock Repository --

type mockRepo struct {
	records    []*Record
	prescribed []PrescribedMedication
	listErr    error
}

func (m *mockRepo) ListRecords(_ context.Context) ([]*Record, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*Record, len(m.records))
	for i, r := range m.records {
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

func (m *mockRepo) ListPrescribed(_ context.Context) ([]PrescribedMedication, error) {
	return m.prescribed, nil
}

func record(id, patientID, doctorID int64, diagnosis string) *Record {
	return &Record{
		ID:               id,
		PatientID:        patientID,
		DoctorID:         doctorID,
		Diagnosis:        diagnosis,
		TreatmentPlan:    "Rest",
		DateCreated:      time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
		PatientFirstName: "Ann",
		PatientLastName:  "Lee",
		DoctorFirstName:  "Sam",
		DoctorLastName:   "Hart",
	}
}

// -- Service Tests --

func TestService_List_AttachesMedications(t *testing.T) {
	repo := &mockRepo{
		records: []*Record{record(1, 1, 1, "Flu")},
		prescribed: []PrescribedMedication{
			{PatientID: 1, DoctorID: 1, MedicationName: "Oseltamivir",
				Dosage: "75mg", DosageInstructions: "Twice daily"},
		},
	}
	svc := NewService(repo)

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	rec := records[0]
	if len(rec.Medications) != 1 || rec.Medications[0].Name != "Oseltamivir" {
		t.Errorf("expected medication attached, got %+v", rec.Medications)
	}
	if len(rec.Prescriptions) != 1 || rec.Prescriptions[0].DosageInstructions != "Twice daily" {
		t.Errorf("expected prescription attached, got %+v", rec.Prescriptions)
	}
}

func TestService_List_DuplicatePairSharesPrescriptions(t *testing.T) {
	repo := &mockRepo{
		records: []*Record{
			record(1, 1, 1, "Flu"),
			record(2, 1, 1, "Follow-up"),
		},
		prescribed: []PrescribedMedication{
			{PatientID: 1, DoctorID: 1, MedicationName: "Oseltamivir",
				Dosage: "75mg", DosageInstructions: "Twice daily"},
		},
	}
	svc := NewService(repo)

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected two records, got %d", len(records))
	}
	for _, rec := range records {
		if len(rec.Prescriptions) != 1 || rec.Prescriptions[0].MedicationName != "Oseltamivir" {
			t.Errorf("expected record %d to carry the pair's prescription, got %+v",
				rec.ID, rec.Prescriptions)
		}
	}
}

func TestService_List_NoMatchLeavesEmpty(t *testing.T) {
	repo := &mockRepo{
		records: []*Record{record(1, 1, 1, "Flu")},
		prescribed: []PrescribedMedication{
			{PatientID: 2, DoctorID: 1, MedicationName: "Ibuprofen",
				Dosage: "200mg", DosageInstructions: "As needed"},
		},
	}
	svc := NewService(repo)

	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records[0].Medications) != 0 || len(records[0].Prescriptions) != 0 {
		t.Errorf("expected no medication data for unmatched pair, got %+v", records[0])
	}
}

func TestService_List_PropagatesError(t *testing.T) {
	svc := NewService(&mockRepo{listErr: errBoom})

	if _, err := svc.List(context.Background()); !errors.Is(err, errBoom) {
		t.Errorf("expected store error to propagate, got %v", err)
	}
}
