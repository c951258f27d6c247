package frontdesk

import (
	"context"

	"hotelops/models"
)

func (s *DefaultService) CreateBooking(ctx context.Context, b *models.Booking) (string, error) {
	id, err := s.Bookings.Create(ctx, b)
	if err != nil {
		return "", err
	}
	s.publish(ctx, models.CollectionBookings, nil, b)
	return id, nil
}

func (s *DefaultService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Bookings.GetByID(ctx, id)
}

func (s *DefaultService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.List(ctx)
}

func (s *DefaultService) UpdateBooking(ctx context.Context, id string, b *models.Booking) error {
	before, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	// The body becomes the whole document; keep the original create time.
	b.CreatedAt = before.CreatedAt
	if err := s.Bookings.Update(ctx, id, b); err != nil {
		return err
	}
	s.publish(ctx, models.CollectionBookings, before, b)
	return nil
}

func (s *DefaultService) DeleteBooking(ctx context.Context, id string) error {
	before, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, models.CollectionBookings, before, nil)
	return nil
}
