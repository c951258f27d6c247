package frontdesk

import (
	"context"

	"hotelops/models"
)

func (s *DefaultService) CreateStaff(ctx context.Context, st *models.Staff) (string, error) {
	id, err := s.Staff.Create(ctx, st)
	if err != nil {
		return "", err
	}
	s.publish(ctx, models.CollectionStaff, nil, st)
	return id, nil
}

func (s *DefaultService) GetStaff(ctx context.Context, id string) (*models.Staff, error) {
	return s.Staff.GetByID(ctx, id)
}

func (s *DefaultService) ListStaff(ctx context.Context) ([]models.Staff, error) {
	return s.Staff.List(ctx)
}

func (s *DefaultService) UpdateStaff(ctx context.Context, id string, st *models.Staff) error {
	before, err := s.Staff.GetByID(ctx, id)
	if err != nil {
		return err
	}
	st.CreatedAt = before.CreatedAt
	if err := s.Staff.Update(ctx, id, st); err != nil {
		return err
	}
	s.publish(ctx, models.CollectionStaff, before, st)
	return nil
}

func (s *DefaultService) DeleteStaff(ctx context.Context, id string) error {
	before, err := s.Staff.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Staff.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, models.CollectionStaff, before, nil)
	return nil
}
