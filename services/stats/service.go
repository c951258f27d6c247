package stats

import (
	"context"
	"encoding/json"
	"time"

	"hotelops/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const dashboardCacheKey = "stats:dashboard"

// Repository is the storage contract for the stats document. ApplyDelta is
// a merge-increment: untouched fields survive, absent bucket keys are
// created. MergeSnapshot overwrites exactly the given fields and is reserved
// for the offline reconciliation job.
type Repository interface {
	ApplyDelta(ctx context.Context, d Delta) error
	MergeSnapshot(ctx context.Context, fields map[string]interface{}) error
	Get(ctx context.Context) (*models.DashboardStats, error)
}

// Service owns all mutation of the dashboard stats document. Centralizing
// the merge-increment invariant here keeps the per-collection aggregators
// from each talking to storage on their own.
type Service interface {
	ApplyDelta(ctx context.Context, d Delta) error
	Dashboard(ctx context.Context) (*models.DashboardStats, error)
}

// DefaultService applies deltas through the repository and serves dashboard
// reads through a short-TTL Redis cache. Cache is optional; with a nil
// client every read goes to the repository.
type DefaultService struct {
	Repo     Repository
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

func (s *DefaultService) ApplyDelta(ctx context.Context, d Delta) error {
	if d.Empty() {
		return nil
	}
	if err := s.Repo.ApplyDelta(ctx, d); err != nil {
		s.Logger.Error("failed to apply stats delta",
			zap.Any("delta", d), zap.Error(err))
		return err
	}
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
			s.Logger.Warn("failed to invalidate stats cache", zap.Error(err))
		}
	}
	return nil
}

func (s *DefaultService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var cached models.DashboardStats
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			s.Logger.Warn("discarding unreadable stats cache entry")
		}
	}

	doc, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, err := json.Marshal(doc); err == nil {
			if err := s.Cache.Set(ctx, dashboardCacheKey, raw, s.CacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache dashboard stats", zap.Error(err))
			}
		}
	}
	return doc, nil
}
