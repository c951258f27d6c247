package frontdesk

import (
	"context"

	bookingRepo "hotelops/database/repository/booking"
	inventoryRepo "hotelops/database/repository/inventory"
	roomRepo "hotelops/database/repository/room"
	staffRepo "hotelops/database/repository/staff"
	"hotelops/models"
	"hotelops/services/tasks"

	"go.uber.org/zap"
)

// DefaultService implements Service over the mongo repositories.
type DefaultService struct {
	Bookings  bookingRepo.Repository
	Rooms     roomRepo.Repository
	Staff     staffRepo.Repository
	Inventory inventoryRepo.Repository
	Events    tasks.Publisher
	Logger    *zap.Logger
}

// publish builds and enqueues the write event for one mutation. Publish
// failures are logged and absorbed: the source write already committed, and
// reconciliation repairs whatever the stats pipeline misses.
func (s *DefaultService) publish(ctx context.Context, collection string, before, after interface{}) {
	evt, err := models.NewSourceWriteEvent(collection, before, after)
	if err != nil {
		s.Logger.Warn("failed to build source write event",
			zap.String("collection", collection), zap.Error(err))
		return
	}
	if err := s.Events.PublishSourceWrite(ctx, evt); err != nil {
		s.Logger.Warn("failed to publish source write event",
			zap.String("collection", collection),
			zap.String("eventId", evt.EventID), zap.Error(err))
	}
}
