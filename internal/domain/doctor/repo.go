package doctor

import "context"

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	List(ctx context.Context) ([]*Doctor, error)
	UpdatePhone(ctx context.Context, id int64, phone string) error
	Delete(ctx context.Context, id int64) error
}
