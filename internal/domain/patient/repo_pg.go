package patient

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `patient_id, first_name, last_name, date_of_birth, gender,
	address, phone_number, email, insurance_provider`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&p.Address, &p.PhoneNumber, &p.Email, &p.InsuranceProvider)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (first_name, last_name, date_of_birth, gender,
			address, phone_number, email, insurance_provider)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING patient_id`,
		p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
		p.Address, p.PhoneNumber, p.Email, p.InsuranceProvider,
	).Scan(&p.ID)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+cols+` FROM patients WHERE patient_id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+cols+` FROM patients ORDER BY patient_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET first_name = $1, last_name = $2, date_of_birth = $3,
			gender = $4, address = $5, phone_number = $6, email = $7,
			insurance_provider = $8
		WHERE patient_id = $9`,
		p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
		p.Address, p.PhoneNumber, p.Email, p.InsuranceProvider, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE patient_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
