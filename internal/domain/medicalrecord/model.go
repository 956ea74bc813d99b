package medicalrecord

import "time"

// Record is a medical record row joined with the patient and doctor names,
// enriched with the medications prescribed for the same patient/doctor pair.
type Record struct {
	ID               int64          `json:"recordId"`
	PatientID        int64          `json:"patientId"`
	DoctorID         int64          `json:"doctorId"`
	Diagnosis        string         `json:"diagnosis"`
	TreatmentPlan    string         `json:"treatmentPlan"`
	DateCreated      time.Time      `json:"dateCreated"`
	PatientFirstName string         `json:"patientFirstName"`
	PatientLastName  string         `json:"patientLastName"`
	DoctorFirstName  string         `json:"doctorFirstName"`
	DoctorLastName   string         `json:"doctorLastName"`
	Medications      []Medication   `json:"medications"`
	Prescriptions    []Prescription `json:"prescriptions"`
}

type Medication struct {
	Name   string `json:"medicationName"`
	Dosage string `json:"dosage"`
}

type Prescription struct {
	MedicationName     string `json:"medicationName"`
	DosageInstructions string `json:"dosageInstructions"`
}

// PrescribedMedication is one prescription row resolved to its medication,
// keyed by the patient/doctor pair it was written for. Enrichment attaches
// it to every record sharing that pair, so a pair with several records sees
// the same prescription on each of them.
type PrescribedMedication struct {
	PatientID          int64
	DoctorID           int64
	MedicationName     string
	Dosage             string
	DosageInstructions string
}
