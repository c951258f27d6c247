package statsRepo

import (
	"context"
	"fmt"
	"math"
	"time"

	"hotelops/database"
	"hotelops/models"
	"hotelops/services/stats"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dashboardID = "dashboard"

// MongoStatsRepo implements stats.Repository on the stats collection.
// The dashboard document is upserted on first touch and never deleted.
type MongoStatsRepo struct {
	coll *mongo.Collection
}

// NewMongoStatsRepo returns a stats.Repository backed by MongoDB.
func NewMongoStatsRepo() stats.Repository {
	return &MongoStatsRepo{
		coll: database.DB().Collection("stats"),
	}
}

// ApplyDelta merge-increments the given field paths. Counter deltas land as
// int64 so the stored counters stay integers; revenue stays a double.
func (r *MongoStatsRepo) ApplyDelta(ctx context.Context, d stats.Delta) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	inc := bson.M{}
	for path, amount := range d {
		if path != stats.FieldTotalRevenue && amount == math.Trunc(amount) {
			inc[path] = int64(amount)
		} else {
			inc[path] = amount
		}
	}

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": dashboardID},
		bson.M{"$inc": inc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to apply stats delta: %w", err)
	}
	return nil
}

// MergeSnapshot overwrites exactly the given fields, leaving everything else
// on the document untouched. Reconciliation-only.
func (r *MongoStatsRepo) MergeSnapshot(ctx context.Context, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	set := bson.M{}
	for path, value := range fields {
		set[path] = value
	}

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": dashboardID},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to merge stats snapshot: %w", err)
	}
	return nil
}

// Get returns the dashboard document; a missing document reads as all-zero.
func (r *MongoStatsRepo) Get(ctx context.Context) (*models.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.DashboardStats
	err := r.coll.FindOne(ctx, bson.M{"_id": dashboardID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.NewDashboardStats(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dashboard stats: %w", err)
	}
	if doc.Monthly == nil {
		doc.Monthly = make(map[string]int)
	}
	if doc.Arrivals == nil {
		doc.Arrivals = make(map[string]int)
	}
	return &doc, nil
}
