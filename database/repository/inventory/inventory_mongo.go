package inventoryRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelops/database"
	"hotelops/models"
	"hotelops/services/stats"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when an inventory item does not exist.
var ErrNotFound = errors.New("inventory item not found")

type mongoInventoryRepo struct {
	coll *mongo.Collection
}

// NewMongoInventoryRepo returns a Repository backed by MongoDB.
func NewMongoInventoryRepo() Repository {
	repo := &mongoInventoryRepo{coll: database.DB().Collection("inventory")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create inventory indexes: %v\n", err)
	}
	return repo
}

func (r *mongoInventoryRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new inventory item and returns its ID.
func (r *mongoInventoryRepo) Create(ctx context.Context, item *models.InventoryItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return "", fmt.Errorf("error creating inventory item: %w", err)
	}
	return item.ID, nil
}

// GetByID retrieves an inventory item by its ID.
func (r *mongoInventoryRepo) GetByID(ctx context.Context, id string) (*models.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var item models.InventoryItem
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching inventory item %s: %w", id, err)
	}
	return &item, nil
}

// Update replaces the stored document wholesale so the stored item always
// matches the after-image published for the write.
func (r *mongoInventoryRepo) Update(ctx context.Context, id string, item *models.InventoryItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	item.ID = id
	item.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, item)
	if err != nil {
		return fmt.Errorf("error updating inventory item %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an inventory item.
func (r *mongoInventoryRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting inventory item %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every inventory document.
func (r *mongoInventoryRepo) List(ctx context.Context) ([]models.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing inventory: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding inventory: %w", err)
	}
	return items, nil
}

// CountAll counts the inventory collection.
func (r *mongoInventoryRepo) CountAll(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if n, err := r.coll.CountDocuments(ctx, bson.M{}); err == nil {
		return int(n), nil
	}
	items, err := r.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("count fallback failed: %w", err)
	}
	return len(items), nil
}

// CountLowStock counts items at or below their reorder level.
func (r *mongoInventoryRepo) CountLowStock(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	filter := bson.M{"$expr": bson.M{"$lte": bson.A{"$quantity", "$reorderLevel"}}}
	if n, err := r.coll.CountDocuments(ctx, filter); err == nil {
		return int(n), nil
	}

	items, err := r.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("count fallback failed: %w", err)
	}
	count := 0
	for i := range items {
		if stats.IsLowStock(&items[i]) {
			count++
		}
	}
	return count, nil
}
