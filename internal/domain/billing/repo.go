package billing

import "context"

// Repository abstracts billing storage.
type Repository interface {
	List(ctx context.Context) ([]Bill, error)
	// MarkPaid sets the bill's payment_status to StatusPaid. It returns
	// ErrNotFound when no bill has the given id.
	MarkPaid(ctx context.Context, id int64) error
}
