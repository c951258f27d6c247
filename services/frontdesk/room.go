package frontdesk

import (
	"context"

	"hotelops/models"
)

func (s *DefaultService) CreateRoom(ctx context.Context, room *models.Room) (string, error) {
	id, err := s.Rooms.Create(ctx, room)
	if err != nil {
		return "", err
	}
	s.publish(ctx, models.CollectionRooms, nil, room)
	return id, nil
}

func (s *DefaultService) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	return s.Rooms.GetByID(ctx, id)
}

func (s *DefaultService) ListRooms(ctx context.Context) ([]models.Room, error) {
	return s.Rooms.List(ctx)
}

func (s *DefaultService) UpdateRoom(ctx context.Context, id string, room *models.Room) error {
	before, err := s.Rooms.GetByID(ctx, id)
	if err != nil {
		return err
	}
	room.CreatedAt = before.CreatedAt
	if err := s.Rooms.Update(ctx, id, room); err != nil {
		return err
	}
	s.publish(ctx, models.CollectionRooms, before, room)
	return nil
}

func (s *DefaultService) DeleteRoom(ctx context.Context, id string) error {
	before, err := s.Rooms.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Rooms.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, models.CollectionRooms, before, nil)
	return nil
}
