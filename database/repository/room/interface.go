package roomRepo

import (
	"context"

	"hotelops/models"
)

// Repository is the storage contract for the rooms collection. Update is a
// full document replace, never a partial patch. The Count
// methods use a server-side count when the deployment supports it and fall
// back to enumerating the collection when it does not (emulator case).
type Repository interface {
	Create(ctx context.Context, room *models.Room) (string, error)
	GetByID(ctx context.Context, id string) (*models.Room, error)
	Update(ctx context.Context, id string, room *models.Room) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Room, error)
	CountAll(ctx context.Context) (int, error)
	CountAvailable(ctx context.Context) (int, error)
}
