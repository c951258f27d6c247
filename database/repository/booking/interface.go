package bookingRepo

import (
	"context"

	"hotelops/models"
)

// Repository is the storage contract for the bookings collection.
// Update is a full document replace, never a partial patch, so the stored
// document and the event snapshots built from the request stay in step.
// List returns the full collection; the reconciliation job depends on it
// because booking aggregates (revenue, arrival buckets) need every document,
// not just a cardinality.
type Repository interface {
	Create(ctx context.Context, b *models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Update(ctx context.Context, id string, b *models.Booking) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Booking, error)
}
