package stats

import (
	"time"

	"hotelops/models"
)

// The source collections have gone through schema drift: bookings carry
// revenue under totalAmount or amount, the arrival date under checkIn,
// checkInDate or arrivalDate, and staff activity under isActive or status.
// Each logical field is resolved through an ordered accessor chain (first
// non-nil wins), kept here as the single source of truth for fallback order.

var bookingRevenueChain = []func(*models.Booking) *float64{
	func(b *models.Booking) *float64 { return b.TotalAmount },
	func(b *models.Booking) *float64 { return b.Amount },
}

var bookingArrivalChain = []func(*models.Booking) *string{
	func(b *models.Booking) *string { return b.CheckIn },
	func(b *models.Booking) *string { return b.CheckInDate },
	func(b *models.Booking) *string { return b.ArrivalDate },
}

// Revenue resolves a booking's revenue; a booking with no revenue field
// contributes zero.
func Revenue(b *models.Booking) float64 {
	if b == nil {
		return 0
	}
	for _, get := range bookingRevenueChain {
		if v := get(b); v != nil {
			return *v
		}
	}
	return 0
}

// ArrivalDay resolves a booking's arrival date normalized to YYYY-MM-DD.
// It reports false when no date field is present or none parses.
func ArrivalDay(b *models.Booking) (string, bool) {
	if b == nil {
		return "", false
	}
	for _, get := range bookingArrivalChain {
		if v := get(b); v != nil {
			return formatDateKey(*v)
		}
	}
	return "", false
}

// dateKeyLayouts are tried in order when normalizing an arrival date.
var dateKeyLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
}

func formatDateKey(raw string) (string, bool) {
	for _, layout := range dateKeyLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// MonthOf derives the YYYY-MM bucket from a normalized YYYY-MM-DD day.
func MonthOf(day string) string {
	return day[:len("2006-01")]
}

// IsAvailable reports whether a room counts toward availableRooms.
func IsAvailable(r *models.Room) bool {
	return r != nil && r.Status == models.RoomStatusAvailable
}

// IsActive resolves a staff member's activity: the IsActive boolean wins
// when present, otherwise the legacy status string decides. An absent
// document is inactive.
func IsActive(s *models.Staff) bool {
	if s == nil {
		return false
	}
	if s.IsActive != nil {
		return *s.IsActive
	}
	return s.Status == models.StaffStatusActive
}

// IsLowStock reports whether an inventory item counts toward lowStockItems.
func IsLowStock(it *models.InventoryItem) bool {
	return it != nil && it.Quantity <= it.ReorderLevel
}
