package stats

// Field paths on the dashboard stats document. Monthly and arrival buckets
// use dotted paths so a merge-increment creates the nested key when absent.
const (
	FieldTotalBookings       = "totalBookings"
	FieldTotalRevenue        = "totalRevenue"
	FieldTotalRooms          = "totalRooms"
	FieldAvailableRooms      = "availableRooms"
	FieldTotalStaff          = "totalStaff"
	FieldActiveStaff         = "activeStaff"
	FieldTotalInventoryItems = "totalInventoryItems"
	FieldLowStockItems       = "lowStockItems"

	monthlyPrefix  = "monthly."
	arrivalsPrefix = "arrivals."
)

// MonthlyField returns the delta path for a YYYY-MM bucket.
func MonthlyField(month string) string { return monthlyPrefix + month }

// ArrivalsField returns the delta path for a YYYY-MM-DD bucket.
func ArrivalsField(day string) string { return arrivalsPrefix + day }

// Delta is the signed change to apply to the stats document for one source
// write: field path -> increment. Entries that net out to zero are removed,
// so an empty Delta means the write must not touch the stats document at all.
type Delta map[string]float64

// Add accumulates amount into the path, dropping the entry when it cancels.
func (d Delta) Add(path string, amount float64) {
	d[path] += amount
	if d[path] == 0 {
		delete(d, path)
	}
}

// Empty reports whether applying the delta would be a no-op.
func (d Delta) Empty() bool { return len(d) == 0 }
