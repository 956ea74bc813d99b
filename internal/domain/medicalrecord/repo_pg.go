package medicalrecord

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepoPG returns a Repository backed by PostgreSQL.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) ListRecords(ctx context.Context) ([]*Record, error) {
	const q = `
		SELECT mr.record_id, mr.patient_id, mr.doctor_id, mr.diagnosis,
		       mr.treatment_plan, mr.date_created,
		       p.first_name, p.last_name,
		       d.first_name, d.last_name
		FROM medical_records mr
		INNER JOIN patients p ON mr.patient_id = p.patient_id
		INNER JOIN doctors d ON mr.doctor_id = d.doctor_id
		ORDER BY mr.record_id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec := &Record{}
		if err := rows.Scan(
			&rec.ID, &rec.PatientID, &rec.DoctorID, &rec.Diagnosis,
			&rec.TreatmentPlan, &rec.DateCreated,
			&rec.PatientFirstName, &rec.PatientLastName,
			&rec.DoctorFirstName, &rec.DoctorLastName,
		); err != nil {
			return nil, fmt.Errorf("scan medical record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	return records, nil
}

// ListPrescribed fetches all prescriptions with their medications in one
// query rather than a query per record.
func (r *repoPG) ListPrescribed(ctx context.Context) ([]PrescribedMedication, error) {
	const q = `
		SELECT pr.patient_id, pr.doctor_id, m.medication_name, m.dosage,
		       pr.dosage_instructions
		FROM prescriptions pr
		INNER JOIN medications m ON pr.medication_id = m.medication_id
		ORDER BY pr.prescription_id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	defer rows.Close()

	var prescribed []PrescribedMedication
	for rows.Next() {
		var pm PrescribedMedication
		if err := rows.Scan(
			&pm.PatientID, &pm.DoctorID, &pm.MedicationName, &pm.Dosage,
			&pm.DosageInstructions,
		); err != nil {
			return nil, fmt.Errorf("scan prescription: %w", err)
		}
		prescribed = append(prescribed, pm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list prescriptions: %w", err)
	}
	return prescribed, nil
}
