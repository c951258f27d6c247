package reconcile

import (
	"context"
	"fmt"

	bookingRepo "hotelops/database/repository/booking"
	inventoryRepo "hotelops/database/repository/inventory"
	roomRepo "hotelops/database/repository/room"
	staffRepo "hotelops/database/repository/staff"
	"hotelops/services/stats"

	"go.uber.org/zap"
)

// Job recomputes the dashboard stats document from full collection scans
// and merge-writes the result, repairing any drift the live pipeline left
// behind (lost events, swallowed write failures). It runs single-threaded
// and takes no lock against live aggregator traffic: a run overlapping
// heavy writes can be superseded by counters that moved during the scan,
// which the next run corrects.
//
// The recomputation uses the same field-fallback rules as the live
// aggregators, so a clean reconciliation is a fixed point: running it twice
// with no intervening writes yields identical documents.
type Job struct {
	Bookings  bookingRepo.Repository
	Rooms     roomRepo.Repository
	Staff     staffRepo.Repository
	Inventory inventoryRepo.Repository
	Stats     stats.Repository
	Logger    *zap.Logger
}

// RunFull rebuilds every stats field from the bookings, rooms, staff and
// inventory collections. Fields the job does not own survive the merge.
func (j *Job) RunFull(ctx context.Context) error {
	fields := map[string]interface{}{}

	bookingFields, err := j.bookingFields(ctx)
	if err != nil {
		return fmt.Errorf("reconcile bookings: %w", err)
	}
	for k, v := range bookingFields {
		fields[k] = v
	}

	roomFields, err := j.roomFields(ctx)
	if err != nil {
		return fmt.Errorf("reconcile rooms: %w", err)
	}
	for k, v := range roomFields {
		fields[k] = v
	}

	staffFields, err := j.staffFields(ctx)
	if err != nil {
		return fmt.Errorf("reconcile staff: %w", err)
	}
	for k, v := range staffFields {
		fields[k] = v
	}

	inventoryFields, err := j.inventoryFields(ctx)
	if err != nil {
		return fmt.Errorf("reconcile inventory: %w", err)
	}
	for k, v := range inventoryFields {
		fields[k] = v
	}

	if err := j.Stats.MergeSnapshot(ctx, fields); err != nil {
		return fmt.Errorf("reconcile write: %w", err)
	}
	j.Logger.Info("full reconciliation complete",
		zap.Any("totalBookings", fields[stats.FieldTotalBookings]),
		zap.Any("totalRooms", fields[stats.FieldTotalRooms]),
		zap.Any("totalStaff", fields[stats.FieldTotalStaff]),
		zap.Any("totalInventoryItems", fields[stats.FieldTotalInventoryItems]))
	return nil
}

// RunStaff rebuilds only the staff counters.
func (j *Job) RunStaff(ctx context.Context) error {
	fields, err := j.staffFields(ctx)
	if err != nil {
		return fmt.Errorf("reconcile staff: %w", err)
	}
	if err := j.Stats.MergeSnapshot(ctx, fields); err != nil {
		return fmt.Errorf("reconcile write: %w", err)
	}
	j.Logger.Info("staff reconciliation complete",
		zap.Any("totalStaff", fields[stats.FieldTotalStaff]),
		zap.Any("activeStaff", fields[stats.FieldActiveStaff]))
	return nil
}

// bookingFields scans every booking; the monthly and arrival maps are
// replaced wholesale so stale buckets from deleted bookings disappear.
// Bookings without a resolvable arrival date count toward totals only,
// matching the live aggregator.
func (j *Job) bookingFields(ctx context.Context) (map[string]interface{}, error) {
	bookings, err := j.Bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue := 0.0
	monthly := map[string]int{}
	arrivals := map[string]int{}
	for i := range bookings {
		b := &bookings[i]
		totalRevenue += stats.Revenue(b)
		if day, ok := stats.ArrivalDay(b); ok {
			arrivals[day]++
			monthly[stats.MonthOf(day)]++
		}
	}

	j.Logger.Info("scanned bookings", zap.Int("count", len(bookings)))
	return map[string]interface{}{
		stats.FieldTotalBookings: len(bookings),
		stats.FieldTotalRevenue:  totalRevenue,
		"monthly":                monthly,
		"arrivals":               arrivals,
	}, nil
}

func (j *Job) roomFields(ctx context.Context) (map[string]interface{}, error) {
	total, err := j.Rooms.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	available, err := j.Rooms.CountAvailable(ctx)
	if err != nil {
		return nil, err
	}
	j.Logger.Info("counted rooms", zap.Int("total", total), zap.Int("available", available))
	return map[string]interface{}{
		stats.FieldTotalRooms:     total,
		stats.FieldAvailableRooms: available,
	}, nil
}

func (j *Job) staffFields(ctx context.Context) (map[string]interface{}, error) {
	total, err := j.Staff.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	active, err := j.Staff.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	j.Logger.Info("counted staff", zap.Int("total", total), zap.Int("active", active))
	return map[string]interface{}{
		stats.FieldTotalStaff:  total,
		stats.FieldActiveStaff: active,
	}, nil
}

func (j *Job) inventoryFields(ctx context.Context) (map[string]interface{}, error) {
	total, err := j.Inventory.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := j.Inventory.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}
	j.Logger.Info("counted inventory", zap.Int("total", total), zap.Int("lowStock", lowStock))
	return map[string]interface{}{
		stats.FieldTotalInventoryItems: total,
		stats.FieldLowStockItems:       lowStock,
	}, nil
}
