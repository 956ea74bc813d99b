package appointment

import "context"

// Service wraps appointment business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the references before any store call and returns the row
// with its generated identifier.
func (s *Service) Create(ctx context.Context, in *Input) (*Appointment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a := in.toAppointment()
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]ListEntry, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
