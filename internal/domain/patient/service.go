package patient

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the input before any store call, then inserts and returns
// the stored row with its generated identifier.
func (s *Service) Create(ctx context.Context, in *Input) (*Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p := in.toPatient()
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.repo.List(ctx)
}

// Update overwrites the full row identified by id.
func (s *Service) Update(ctx context.Context, id int64, in *Input) (*Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p := in.toPatient()
	p.ID = id
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
