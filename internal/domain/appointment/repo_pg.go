package appointment

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

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	const q = `
		INSERT INTO appointments (patient_id, doctor_id, appointment_date, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING appointment_id`

	err := r.pool.QueryRow(ctx, q, a.PatientID, a.DoctorID, a.Date, a.Reason, a.Status).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context) ([]ListEntry, error) {
	const q = `
		SELECT a.appointment_id, a.appointment_date, a.reason, a.status,
		       p.first_name, p.last_name,
		       d.first_name, d.last_name
		FROM appointments a
		INNER JOIN patients p ON a.patient_id = p.patient_id
		INNER JOIN doctors d ON a.doctor_id = d.doctor_id
		ORDER BY a.appointment_id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var entries []ListEntry
	for rows.Next() {
		var e ListEntry
		if err := rows.Scan(
			&e.ID, &e.Date, &e.Reason, &e.Status,
			&e.PatientFirstName, &e.PatientLastName,
			&e.DoctorFirstName, &e.DoctorLastName,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return entries, nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE appointment_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
