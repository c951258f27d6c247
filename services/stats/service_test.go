package stats_test

import (
	"context"
	"errors"
	"testing"

	"hotelops/models"
	"hotelops/services/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStatsRepo records every call so tests can assert on write behavior.
type fakeStatsRepo struct {
	doc        *models.DashboardStats
	applyCalls int
	applyErr   error
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{doc: models.NewDashboardStats()}
}

func (r *fakeStatsRepo) ApplyDelta(_ context.Context, d stats.Delta) error {
	r.applyCalls++
	if r.applyErr != nil {
		return r.applyErr
	}
	applyToDoc(r.doc, d)
	return nil
}

func (r *fakeStatsRepo) MergeSnapshot(context.Context, map[string]interface{}) error {
	return nil
}

func (r *fakeStatsRepo) Get(context.Context) (*models.DashboardStats, error) {
	return r.doc, nil
}

func TestService_ApplyDelta_EmptyDeltaSkipsWrite(t *testing.T) {
	repo := newFakeStatsRepo()
	svc := &stats.DefaultService{Repo: repo, Logger: zap.NewNop()}

	// A no-op source write must produce zero stats writes.
	err := svc.ApplyDelta(context.Background(), stats.Delta{})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.applyCalls)
}

func TestService_ApplyDelta_WritesNonEmptyDelta(t *testing.T) {
	repo := newFakeStatsRepo()
	svc := &stats.DefaultService{Repo: repo, Logger: zap.NewNop()}

	d := stats.Delta{}
	d.Add(stats.FieldTotalBookings, 1)
	require.NoError(t, svc.ApplyDelta(context.Background(), d))

	assert.Equal(t, 1, repo.applyCalls)
	assert.Equal(t, 1, repo.doc.TotalBookings)
}

func TestService_ApplyDelta_SurfacesRepoError(t *testing.T) {
	repo := newFakeStatsRepo()
	repo.applyErr = errors.New("connection reset")
	svc := &stats.DefaultService{Repo: repo, Logger: zap.NewNop()}

	d := stats.Delta{}
	d.Add(stats.FieldTotalBookings, 1)
	err := svc.ApplyDelta(context.Background(), d)
	assert.Error(t, err)
}

func TestService_Dashboard_ReadsRepoWithoutCache(t *testing.T) {
	repo := newFakeStatsRepo()
	repo.doc.TotalRooms = 12
	svc := &stats.DefaultService{Repo: repo, Logger: zap.NewNop()}

	doc, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, doc.TotalRooms)
}
