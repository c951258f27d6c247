package models

// DashboardStats is the single denormalized counters document the admin
// dashboard reads (stats collection, _id "dashboard"). It is mutated only
// through merge-increments from the live aggregation pipeline; the offline
// reconciliation job is the one writer allowed to overwrite its fields.
type DashboardStats struct {
	TotalBookings       int            `bson:"totalBookings" json:"totalBookings"`
	TotalRevenue        float64        `bson:"totalRevenue" json:"totalRevenue"`
	Monthly             map[string]int `bson:"monthly" json:"monthly"`   // YYYY-MM -> bookings arriving that month
	Arrivals            map[string]int `bson:"arrivals" json:"arrivals"` // YYYY-MM-DD -> bookings arriving that day
	TotalRooms          int            `bson:"totalRooms" json:"totalRooms"`
	AvailableRooms      int            `bson:"availableRooms" json:"availableRooms"`
	TotalStaff          int            `bson:"totalStaff" json:"totalStaff"`
	ActiveStaff         int            `bson:"activeStaff" json:"activeStaff"`
	TotalInventoryItems int            `bson:"totalInventoryItems" json:"totalInventoryItems"`
	LowStockItems       int            `bson:"lowStockItems" json:"lowStockItems"`
}

// NewDashboardStats returns an empty stats document with initialized maps.
func NewDashboardStats() *DashboardStats {
	return &DashboardStats{
		Monthly:  make(map[string]int),
		Arrivals: make(map[string]int),
	}
}
