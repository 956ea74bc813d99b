package billing

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Bill, error) {
	return s.repo.List(ctx)
}

// Pay settles the referenced bill. Paying an already settled bill succeeds
// and leaves the status unchanged.
func (s *Service) Pay(ctx context.Context, in *PaymentInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.repo.MarkPaid(ctx, in.BillingID)
}
