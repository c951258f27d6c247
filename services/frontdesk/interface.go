package frontdesk

import (
	"context"

	"hotelops/models"
)

// Service is the write path for the four source collections. Every mutation
// captures the document's before/after snapshots and hands them to the event
// publisher, which feeds the stats aggregation pipeline. Event publishing is
// best effort: a failed publish never fails the originating write.
type Service interface {
	CreateBooking(ctx context.Context, b *models.Booking) (string, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id string, b *models.Booking) error
	DeleteBooking(ctx context.Context, id string) error

	CreateRoom(ctx context.Context, room *models.Room) (string, error)
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	UpdateRoom(ctx context.Context, id string, room *models.Room) error
	DeleteRoom(ctx context.Context, id string) error

	CreateStaff(ctx context.Context, st *models.Staff) (string, error)
	GetStaff(ctx context.Context, id string) (*models.Staff, error)
	ListStaff(ctx context.Context) ([]models.Staff, error)
	UpdateStaff(ctx context.Context, id string, st *models.Staff) error
	DeleteStaff(ctx context.Context, id string) error

	CreateInventoryItem(ctx context.Context, item *models.InventoryItem) (string, error)
	GetInventoryItem(ctx context.Context, id string) (*models.InventoryItem, error)
	ListInventory(ctx context.Context) ([]models.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, id string, item *models.InventoryItem) error
	DeleteInventoryItem(ctx context.Context, id string) error
}
