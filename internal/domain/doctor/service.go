package doctor

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in *Input) (*Doctor, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	d := &Doctor{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Specialization: in.Specialization,
		PhoneNumber:    in.PhoneNumber,
		Email:          in.Email,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

// UpdatePhone changes only the phone number; the rest of the row is untouched.
func (s *Service) UpdatePhone(ctx context.Context, id int64, in *PhoneInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.repo.UpdatePhone(ctx, id, in.PhoneNumber)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
