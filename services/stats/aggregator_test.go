package stats_test

import (
	"strings"
	"testing"

	"hotelops/models"
	"hotelops/services/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyToDoc folds a delta into an in-memory stats document, mirroring the
// merge-increment the mongo repository performs.
func applyToDoc(doc *models.DashboardStats, d stats.Delta) {
	for path, amount := range d {
		switch {
		case strings.HasPrefix(path, "monthly."):
			doc.Monthly[strings.TrimPrefix(path, "monthly.")] += int(amount)
		case strings.HasPrefix(path, "arrivals."):
			doc.Arrivals[strings.TrimPrefix(path, "arrivals.")] += int(amount)
		case path == stats.FieldTotalBookings:
			doc.TotalBookings += int(amount)
		case path == stats.FieldTotalRevenue:
			doc.TotalRevenue += amount
		case path == stats.FieldTotalRooms:
			doc.TotalRooms += int(amount)
		case path == stats.FieldAvailableRooms:
			doc.AvailableRooms += int(amount)
		case path == stats.FieldTotalStaff:
			doc.TotalStaff += int(amount)
		case path == stats.FieldActiveStaff:
			doc.ActiveStaff += int(amount)
		case path == stats.FieldTotalInventoryItems:
			doc.TotalInventoryItems += int(amount)
		case path == stats.FieldLowStockItems:
			doc.LowStockItems += int(amount)
		}
	}
}

func TestBookingDelta_Create(t *testing.T) {
	after := &models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-03-10")}

	doc := models.NewDashboardStats()
	applyToDoc(doc, stats.BookingDelta(nil, after))

	assert.Equal(t, 1, doc.TotalBookings)
	assert.Equal(t, 500.0, doc.TotalRevenue)
	assert.Equal(t, 1, doc.Monthly["2024-03"])
	assert.Equal(t, 1, doc.Arrivals["2024-03-10"])
}

func TestBookingDelta_DeleteMirrorsCreate(t *testing.T) {
	b := &models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-03-10")}

	doc := models.NewDashboardStats()
	applyToDoc(doc, stats.BookingDelta(nil, b))
	applyToDoc(doc, stats.BookingDelta(b, nil))

	assert.Equal(t, 0, doc.TotalBookings)
	assert.Equal(t, 0.0, doc.TotalRevenue)
	assert.Equal(t, 0, doc.Monthly["2024-03"])
	assert.Equal(t, 0, doc.Arrivals["2024-03-10"])
}

func TestBookingDelta_UpdateDateChange(t *testing.T) {
	before := &models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-03-10")}
	after := &models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-04-01")}

	d := stats.BookingDelta(before, after)

	// Count and revenue untouched on update.
	assert.NotContains(t, d, stats.FieldTotalBookings)
	assert.NotContains(t, d, stats.FieldTotalRevenue)
	assert.Equal(t, -1.0, d[stats.ArrivalsField("2024-03-10")])
	assert.Equal(t, 1.0, d[stats.ArrivalsField("2024-04-01")])
	assert.Equal(t, -1.0, d[stats.MonthlyField("2024-03")])
	assert.Equal(t, 1.0, d[stats.MonthlyField("2024-04")])
}

func TestBookingDelta_UpdateDateChangeWithinMonth(t *testing.T) {
	before := &models.Booking{ID: "b1", CheckIn: str("2024-03-10")}
	after := &models.Booking{ID: "b1", CheckIn: str("2024-03-12")}

	d := stats.BookingDelta(before, after)

	// Day buckets move, month bucket nets out and must not appear.
	assert.Equal(t, -1.0, d[stats.ArrivalsField("2024-03-10")])
	assert.Equal(t, 1.0, d[stats.ArrivalsField("2024-03-12")])
	assert.NotContains(t, d, stats.MonthlyField("2024-03"))
}

func TestBookingDelta_UpdateRevenueOnly(t *testing.T) {
	before := &models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-03-10")}
	after := &models.Booking{ID: "b1", TotalAmount: f64(650), CheckIn: str("2024-03-10")}

	d := stats.BookingDelta(before, after)

	require.Len(t, d, 1)
	assert.Equal(t, 150.0, d[stats.FieldTotalRevenue])
}

func TestBookingDelta_NoOpUpdateIsEmpty(t *testing.T) {
	before := &models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-03-10"), GuestName: "Ada"}
	after := &models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-03-10"), GuestName: "Ada Lovelace"}

	assert.True(t, stats.BookingDelta(before, after).Empty())
}

func TestBookingDelta_CreateWithoutArrivalDate(t *testing.T) {
	// No resolvable arrival date: totals move, buckets stay untouched.
	// Unknown arrivals must not pollute the monthly trend.
	after := &models.Booking{ID: "b1", Amount: f64(200)}

	d := stats.BookingDelta(nil, after)

	assert.Equal(t, 1.0, d[stats.FieldTotalBookings])
	assert.Equal(t, 200.0, d[stats.FieldTotalRevenue])
	for path := range d {
		assert.False(t, strings.HasPrefix(path, "monthly."), "unexpected monthly bucket %s", path)
		assert.False(t, strings.HasPrefix(path, "arrivals."), "unexpected arrivals bucket %s", path)
	}
}

func TestBookingDelta_UpdateGainsArrivalDate(t *testing.T) {
	before := &models.Booking{ID: "b1"}
	after := &models.Booking{ID: "b1", CheckIn: str("2024-06-01")}

	d := stats.BookingDelta(before, after)

	assert.Equal(t, 1.0, d[stats.ArrivalsField("2024-06-01")])
	assert.Equal(t, 1.0, d[stats.MonthlyField("2024-06")])
	assert.NotContains(t, d, stats.FieldTotalBookings)
}

func TestRoomDelta_CreateAndDelete(t *testing.T) {
	room := &models.Room{ID: "r1", Status: "available"}

	d := stats.RoomDelta(nil, room)
	assert.Equal(t, 1.0, d[stats.FieldTotalRooms])
	assert.Equal(t, 1.0, d[stats.FieldAvailableRooms])

	d = stats.RoomDelta(room, nil)
	assert.Equal(t, -1.0, d[stats.FieldTotalRooms])
	assert.Equal(t, -1.0, d[stats.FieldAvailableRooms])

	// An unavailable room only moves the total.
	d = stats.RoomDelta(nil, &models.Room{ID: "r2", Status: "occupied"})
	require.Len(t, d, 1)
	assert.Equal(t, 1.0, d[stats.FieldTotalRooms])
}

func TestRoomDelta_AvailabilityToggle(t *testing.T) {
	before := &models.Room{ID: "r1", Status: "available"}
	after := &models.Room{ID: "r1", Status: "occupied"}

	d := stats.RoomDelta(before, after)
	require.Len(t, d, 1)
	assert.Equal(t, -1.0, d[stats.FieldAvailableRooms])

	// Between two non-available statuses nothing moves.
	d = stats.RoomDelta(
		&models.Room{ID: "r1", Status: "occupied"},
		&models.Room{ID: "r1", Status: "maintenance"},
	)
	assert.True(t, d.Empty())
}

func TestStaffDelta_BooleanPrecedence(t *testing.T) {
	// isActive=false wins over status="active": counted as inactive.
	st := &models.Staff{ID: "s1", IsActive: boolp(false), Status: "active"}

	d := stats.StaffDelta(nil, st)
	require.Len(t, d, 1)
	assert.Equal(t, 1.0, d[stats.FieldTotalStaff])
}

func TestStaffDelta_ActivationToggle(t *testing.T) {
	before := &models.Staff{ID: "s1", Status: "active"}
	after := &models.Staff{ID: "s1", Status: "on_leave"}

	d := stats.StaffDelta(before, after)
	require.Len(t, d, 1)
	assert.Equal(t, -1.0, d[stats.FieldActiveStaff])

	// No activity change, no delta.
	assert.True(t, stats.StaffDelta(before, before).Empty())
}

func TestInventoryDelta_LowStockTransitions(t *testing.T) {
	healthy := &models.InventoryItem{ID: "i1", Quantity: 20, ReorderLevel: 5}
	low := &models.InventoryItem{ID: "i1", Quantity: 4, ReorderLevel: 5}

	d := stats.InventoryDelta(nil, healthy)
	require.Len(t, d, 1)
	assert.Equal(t, 1.0, d[stats.FieldTotalInventoryItems])

	d = stats.InventoryDelta(healthy, low)
	require.Len(t, d, 1)
	assert.Equal(t, 1.0, d[stats.FieldLowStockItems])

	d = stats.InventoryDelta(low, nil)
	assert.Equal(t, -1.0, d[stats.FieldTotalInventoryItems])
	assert.Equal(t, -1.0, d[stats.FieldLowStockItems])
}

func TestDelta_AddPrunesZeroEntries(t *testing.T) {
	d := stats.Delta{}
	d.Add("totalBookings", 1)
	d.Add("totalBookings", -1)
	assert.True(t, d.Empty())
}
