package staffRepo

import (
	"context"

	"hotelops/models"
)

// Repository is the storage contract for the staff collection. Update is a
// full document replace, never a partial patch. CountActive
// must honor the same activity precedence as the live aggregation: the
// isActive boolean wins when present, the legacy status string otherwise.
type Repository interface {
	Create(ctx context.Context, st *models.Staff) (string, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	Update(ctx context.Context, id string, st *models.Staff) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Staff, error)
	CountAll(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int, error)
}
