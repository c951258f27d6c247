package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelops/handlers"
	"hotelops/models"
	"hotelops/services/stats"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStatsService struct {
	doc *models.DashboardStats
	err error
}

func (s *fakeStatsService) ApplyDelta(context.Context, stats.Delta) error { return nil }

func (s *fakeStatsService) Dashboard(context.Context) (*models.DashboardStats, error) {
	return s.doc, s.err
}

func setupStatsRouter(svc stats.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewStatsHandler(svc, zap.NewNop())
	router.GET("/api/stats/dashboard", h.GetDashboardHandler)
	return router
}

func TestGetDashboardHandler_ReturnsDocument(t *testing.T) {
	doc := models.NewDashboardStats()
	doc.TotalBookings = 3
	doc.TotalRevenue = 850
	doc.Monthly["2024-03"] = 2
	router := setupStatsRouter(&fakeStatsService{doc: doc})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/dashboard", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 3, got.TotalBookings)
	assert.Equal(t, 850.0, got.TotalRevenue)
	assert.Equal(t, 2, got.Monthly["2024-03"])
}

func TestGetDashboardHandler_ServiceError(t *testing.T) {
	router := setupStatsRouter(&fakeStatsService{err: errors.New("mongo down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/dashboard", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
