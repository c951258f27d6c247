package inventoryRepo

import (
	"context"

	"hotelops/models"
)

// Repository is the storage contract for the inventory collection. Update
// is a full document replace, never a partial patch.
type Repository interface {
	Create(ctx context.Context, item *models.InventoryItem) (string, error)
	GetByID(ctx context.Context, id string) (*models.InventoryItem, error)
	Update(ctx context.Context, id string, item *models.InventoryItem) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.InventoryItem, error)
	CountAll(ctx context.Context) (int, error)
	CountLowStock(ctx context.Context) (int, error)
}
