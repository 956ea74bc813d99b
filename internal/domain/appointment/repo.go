package appointment

import "context"

// Repository abstracts appointment storage.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	List(ctx context.Context) ([]ListEntry, error)
	Delete(ctx context.Context, id int64) error
}
