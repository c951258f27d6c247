package cron_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hotelops/cron"
	"hotelops/models"
	"hotelops/services/stats"
	"hotelops/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func f64(v float64) *float64 { return &v }
func str(v string) *string   { return &v }

func mustEvent(t *testing.T, collection string, before, after interface{}) models.SourceWriteEvent {
	t.Helper()
	evt, err := models.NewSourceWriteEvent(collection, before, after)
	require.NoError(t, err)
	return evt
}

func TestDeltaForEvent_BookingCreate(t *testing.T) {
	evt := mustEvent(t, models.CollectionBookings, nil,
		&models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-03-10")})

	d, err := cron.DeltaForEvent(evt)
	require.NoError(t, err)

	assert.Equal(t, 1.0, d[stats.FieldTotalBookings])
	assert.Equal(t, 500.0, d[stats.FieldTotalRevenue])
	assert.Equal(t, 1.0, d[stats.MonthlyField("2024-03")])
	assert.Equal(t, 1.0, d[stats.ArrivalsField("2024-03-10")])
}

func TestDeltaForEvent_BookingDelete(t *testing.T) {
	evt := mustEvent(t, models.CollectionBookings,
		&models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-03-10")}, nil)

	d, err := cron.DeltaForEvent(evt)
	require.NoError(t, err)

	assert.Equal(t, -1.0, d[stats.FieldTotalBookings])
	assert.Equal(t, -500.0, d[stats.FieldTotalRevenue])
}

func TestDeltaForEvent_BookingUpdateDateChange(t *testing.T) {
	evt := mustEvent(t, models.CollectionBookings,
		&models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-03-10")},
		&models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-04-01")})

	d, err := cron.DeltaForEvent(evt)
	require.NoError(t, err)

	assert.NotContains(t, d, stats.FieldTotalBookings)
	assert.Equal(t, -1.0, d[stats.MonthlyField("2024-03")])
	assert.Equal(t, 1.0, d[stats.MonthlyField("2024-04")])
}

func TestDeltaForEvent_RoomAndStaffDispatch(t *testing.T) {
	evt := mustEvent(t, models.CollectionRooms, nil,
		&models.Room{ID: "r1", Status: "available"})
	d, err := cron.DeltaForEvent(evt)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d[stats.FieldTotalRooms])
	assert.Equal(t, 1.0, d[stats.FieldAvailableRooms])

	evt = mustEvent(t, models.CollectionStaff,
		&models.Staff{ID: "s1", Status: "active"}, nil)
	d, err = cron.DeltaForEvent(evt)
	require.NoError(t, err)
	assert.Equal(t, -1.0, d[stats.FieldTotalStaff])
	assert.Equal(t, -1.0, d[stats.FieldActiveStaff])
}

func TestDeltaForEvent_InventoryDispatch(t *testing.T) {
	evt := mustEvent(t, models.CollectionInventory, nil,
		&models.InventoryItem{ID: "i1", Quantity: 2, ReorderLevel: 5})

	d, err := cron.DeltaForEvent(evt)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d[stats.FieldTotalInventoryItems])
	assert.Equal(t, 1.0, d[stats.FieldLowStockItems])
}

func TestDeltaForEvent_UnknownCollectionYieldsEmptyDelta(t *testing.T) {
	evt := mustEvent(t, "audit_log", nil, map[string]string{"action": "login"})

	d, err := cron.DeltaForEvent(evt)
	require.NoError(t, err)
	assert.True(t, d.Empty())
}

func TestDeltaForEvent_MalformedSnapshot(t *testing.T) {
	evt := models.SourceWriteEvent{
		EventID:    "evt-1",
		Collection: models.CollectionBookings,
		After:      json.RawMessage(`{"totalAmount": "not a number"`),
	}

	_, err := cron.DeltaForEvent(evt)
	assert.Error(t, err)
}

type countingStatsService struct {
	applyCalls int
	applyErr   error
	last       stats.Delta
}

func (s *countingStatsService) ApplyDelta(_ context.Context, d stats.Delta) error {
	s.applyCalls++
	s.last = d
	return s.applyErr
}

func (s *countingStatsService) Dashboard(context.Context) (*models.DashboardStats, error) {
	return models.NewDashboardStats(), nil
}

func sourceWriteTask(t *testing.T, evt models.SourceWriteEvent) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(evt)
	require.NoError(t, err)
	return asynq.NewTask(tasks.TypeSourceWrite, payload)
}

func TestSourceWriteHandler_RedeliveryDoesNotDoubleApply(t *testing.T) {
	svc := &countingStatsService{}
	handler := cron.NewSourceWriteHandler(svc, cron.NewMemoryDeduper(), zap.NewNop())
	ctx := context.Background()

	task := sourceWriteTask(t, mustEvent(t, models.CollectionBookings, nil,
		&models.Booking{ID: "b1", TotalAmount: f64(500), CheckIn: str("2024-03-10")}))

	// Same task delivered twice: both succeed, the delta lands once.
	require.NoError(t, handler(ctx, task))
	require.NoError(t, handler(ctx, task))

	assert.Equal(t, 1, svc.applyCalls)
	assert.Equal(t, 1.0, svc.last[stats.FieldTotalBookings])
}

func TestSourceWriteHandler_ApplyFailureIsAbsorbed(t *testing.T) {
	svc := &countingStatsService{applyErr: errors.New("mongo down")}
	handler := cron.NewSourceWriteHandler(svc, cron.NewMemoryDeduper(), zap.NewNop())

	task := sourceWriteTask(t, mustEvent(t, models.CollectionBookings, nil,
		&models.Booking{ID: "b1", TotalAmount: f64(500)}))

	// The write failed, but the task must not be redelivered; the drift is
	// reconciliation's problem.
	assert.NoError(t, handler(context.Background(), task))
	assert.Equal(t, 1, svc.applyCalls)
}

func TestSourceWriteHandler_EmptyDeltaSkipsApply(t *testing.T) {
	svc := &countingStatsService{}
	handler := cron.NewSourceWriteHandler(svc, cron.NewMemoryDeduper(), zap.NewNop())

	task := sourceWriteTask(t, mustEvent(t, models.CollectionRooms,
		&models.Room{ID: "r1", Status: "occupied"},
		&models.Room{ID: "r1", Status: "maintenance"}))

	require.NoError(t, handler(context.Background(), task))
	assert.Equal(t, 0, svc.applyCalls)
}

func TestSourceWriteHandler_MalformedPayloadErrors(t *testing.T) {
	svc := &countingStatsService{}
	handler := cron.NewSourceWriteHandler(svc, cron.NewMemoryDeduper(), zap.NewNop())

	task := asynq.NewTask(tasks.TypeSourceWrite, []byte(`{"eventId":`))

	assert.Error(t, handler(context.Background(), task))
	assert.Equal(t, 0, svc.applyCalls)
}

func TestMemoryDeduper_ClaimsOnce(t *testing.T) {
	d := cron.NewMemoryDeduper()
	ctx := context.Background()

	first, err := d.Claim(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := d.Claim(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, again)

	other, err := d.Claim(ctx, "evt-2")
	require.NoError(t, err)
	assert.True(t, other)
}
