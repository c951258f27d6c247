package stats

import "hotelops/models"

// Aggregators turn one source-collection write, a before/after snapshot
// pair with before nil on create and after nil on delete, into the Delta
// to merge into the stats document. They are pure: no storage, no clock,
// no delivery concerns, so any queue or trigger feed can drive them.

// BookingDelta computes the stats change for one write to a booking.
//
// Updates never move totalBookings. A booking whose arrival date does not
// resolve contributes nothing to the monthly or arrival buckets: counting
// it under the wall-clock month would fold data-entry defects into the
// monthly trend.
func BookingDelta(before, after *models.Booking) Delta {
	d := Delta{}
	switch {
	case before == nil && after == nil:
		return d
	case before == nil:
		d.Add(FieldTotalBookings, 1)
		d.Add(FieldTotalRevenue, Revenue(after))
		if day, ok := ArrivalDay(after); ok {
			d.Add(ArrivalsField(day), 1)
			d.Add(MonthlyField(MonthOf(day)), 1)
		}
	case after == nil:
		d.Add(FieldTotalBookings, -1)
		d.Add(FieldTotalRevenue, -Revenue(before))
		if day, ok := ArrivalDay(before); ok {
			d.Add(ArrivalsField(day), -1)
			d.Add(MonthlyField(MonthOf(day)), -1)
		}
	default:
		d.Add(FieldTotalRevenue, Revenue(after)-Revenue(before))
		oldDay, oldOK := ArrivalDay(before)
		newDay, newOK := ArrivalDay(after)
		if oldDay != newDay || oldOK != newOK {
			if oldOK {
				d.Add(ArrivalsField(oldDay), -1)
				d.Add(MonthlyField(MonthOf(oldDay)), -1)
			}
			if newOK {
				d.Add(ArrivalsField(newDay), 1)
				d.Add(MonthlyField(MonthOf(newDay)), 1)
			}
		}
	}
	return d
}

// RoomDelta computes the stats change for one write to a room.
// Updates never move totalRooms; only availability flips matter.
func RoomDelta(before, after *models.Room) Delta {
	d := Delta{}
	switch {
	case before == nil && after == nil:
		return d
	case before == nil:
		d.Add(FieldTotalRooms, 1)
		if IsAvailable(after) {
			d.Add(FieldAvailableRooms, 1)
		}
	case after == nil:
		d.Add(FieldTotalRooms, -1)
		if IsAvailable(before) {
			d.Add(FieldAvailableRooms, -1)
		}
	default:
		was, is := IsAvailable(before), IsAvailable(after)
		if was != is {
			if is {
				d.Add(FieldAvailableRooms, 1)
			} else {
				d.Add(FieldAvailableRooms, -1)
			}
		}
	}
	return d
}

// StaffDelta computes the stats change for one write to a staff record.
func StaffDelta(before, after *models.Staff) Delta {
	d := Delta{}
	switch {
	case before == nil && after == nil:
		return d
	case before == nil:
		d.Add(FieldTotalStaff, 1)
		if IsActive(after) {
			d.Add(FieldActiveStaff, 1)
		}
	case after == nil:
		d.Add(FieldTotalStaff, -1)
		if IsActive(before) {
			d.Add(FieldActiveStaff, -1)
		}
	default:
		was, is := IsActive(before), IsActive(after)
		if was != is {
			if is {
				d.Add(FieldActiveStaff, 1)
			} else {
				d.Add(FieldActiveStaff, -1)
			}
		}
	}
	return d
}

// InventoryDelta computes the stats change for one write to an inventory item.
func InventoryDelta(before, after *models.InventoryItem) Delta {
	d := Delta{}
	switch {
	case before == nil && after == nil:
		return d
	case before == nil:
		d.Add(FieldTotalInventoryItems, 1)
		if IsLowStock(after) {
			d.Add(FieldLowStockItems, 1)
		}
	case after == nil:
		d.Add(FieldTotalInventoryItems, -1)
		if IsLowStock(before) {
			d.Add(FieldLowStockItems, -1)
		}
	default:
		was, is := IsLowStock(before), IsLowStock(after)
		if was != is {
			if is {
				d.Add(FieldLowStockItems, 1)
			} else {
				d.Add(FieldLowStockItems, -1)
			}
		}
	}
	return d
}
