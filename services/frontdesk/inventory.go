package frontdesk

import (
	"context"

	"hotelops/models"
)

func (s *DefaultService) CreateInventoryItem(ctx context.Context, item *models.InventoryItem) (string, error) {
	id, err := s.Inventory.Create(ctx, item)
	if err != nil {
		return "", err
	}
	s.publish(ctx, models.CollectionInventory, nil, item)
	return id, nil
}

func (s *DefaultService) GetInventoryItem(ctx context.Context, id string) (*models.InventoryItem, error) {
	return s.Inventory.GetByID(ctx, id)
}

func (s *DefaultService) ListInventory(ctx context.Context) ([]models.InventoryItem, error) {
	return s.Inventory.List(ctx)
}

func (s *DefaultService) UpdateInventoryItem(ctx context.Context, id string, item *models.InventoryItem) error {
	before, err := s.Inventory.GetByID(ctx, id)
	if err != nil {
		return err
	}
	item.CreatedAt = before.CreatedAt
	if err := s.Inventory.Update(ctx, id, item); err != nil {
		return err
	}
	s.publish(ctx, models.CollectionInventory, before, item)
	return nil
}

func (s *DefaultService) DeleteInventoryItem(ctx context.Context, id string) error {
	before, err := s.Inventory.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Inventory.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, models.CollectionInventory, before, nil)
	return nil
}
