package doctor

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `doctor_id, first_name, last_name, specialization, phone_number, email`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Specialization,
		&d.PhoneNumber, &d.Email)
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, d *Doctor) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO doctors (first_name, last_name, specialization, phone_number, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING doctor_id`,
		d.FirstName, d.LastName, d.Specialization, d.PhoneNumber, d.Email,
	).Scan(&d.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	d, err := scanDoctor(r.pool.QueryRow(ctx,
		`SELECT `+cols+` FROM doctors WHERE doctor_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM doctors ORDER BY doctor_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *repoPG) UpdatePhone(ctx context.Context, id int64, phone string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE doctors SET phone_number = $1 WHERE doctor_id = $2`, phone, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM doctors WHERE doctor_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
