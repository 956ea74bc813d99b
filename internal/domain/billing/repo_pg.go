package billing

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

func (r *repoPG) List(ctx context.Context) ([]Bill, error) {
	const q = `
		SELECT b.billing_id, b.total_amount, b.date_issued, b.payment_status,
		       p.first_name, p.last_name
		FROM billing b
		INNER JOIN patients p ON b.patient_id = p.patient_id
		ORDER BY b.billing_id`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	var bills []Bill
	for rows.Next() {
		var b Bill
		if err := rows.Scan(
			&b.ID, &b.TotalAmount, &b.DateIssued, &b.PaymentStatus,
			&b.PatientFirstName, &b.PatientLastName,
		); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	return bills, nil
}

func (r *repoPG) MarkPaid(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE billing SET payment_status = $1 WHERE billing_id = $2`, StatusPaid, id)
	if err != nil {
		return fmt.Errorf("mark bill paid: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
