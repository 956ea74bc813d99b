package medicalrecord

import "context"

// Repository abstracts medical record storage.
type Repository interface {
	// ListRecords returns every record joined with patient and doctor names,
	// without medication data.
	ListRecords(ctx context.Context) ([]*Record, error)
	// ListPrescribed returns every prescription resolved to its medication.
	ListPrescribed(ctx context.Context) ([]PrescribedMedication, error)
}
