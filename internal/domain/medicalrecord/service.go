package medicalrecord

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type pairKey struct {
	patientID int64
	doctorID  int64
}

// List returns every record with the medications and prescriptions written
// for its patient/doctor pair attached. Prescriptions are keyed by the pair,
// not by the record, so two records for the same pair carry the same
// medication data.
func (s *Service) List(ctx context.Context) ([]*Record, error) {
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	prescribed, err := s.repo.ListPrescribed(ctx)
	if err != nil {
		return nil, err
	}

	meds := make(map[pairKey][]Medication)
	scripts := make(map[pairKey][]Prescription)
	for _, pm := range prescribed {
		k := pairKey{pm.PatientID, pm.DoctorID}
		meds[k] = append(meds[k], Medication{Name: pm.MedicationName, Dosage: pm.Dosage})
		scripts[k] = append(scripts[k], Prescription{
			MedicationName:     pm.MedicationName,
			DosageInstructions: pm.DosageInstructions,
		})
	}

	for _, rec := range records {
		k := pairKey{rec.PatientID, rec.DoctorID}
		rec.Medications = meds[k]
		rec.Prescriptions = scripts[k]
	}
	return records, nil
}
