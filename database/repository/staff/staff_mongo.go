package staffRepo

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

// ErrNotFound is returned when a staff record does not exist.
var ErrNotFound = errors.New("staff record not found")

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo returns a Repository backed by MongoDB.
func NewMongoStaffRepo() Repository {
	repo := &mongoStaffRepo{coll: database.DB().Collection("staff")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create staff indexes: %v\n", err)
	}
	return repo
}

func (r *mongoStaffRepo) ensureIndexes() error {
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

// Create inserts a new staff record and returns its ID.
func (r *mongoStaffRepo) Create(ctx context.Context, st *models.Staff) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	st.CreatedAt = time.Now()
	st.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, st); err != nil {
		return "", fmt.Errorf("error creating staff record: %w", err)
	}
	return st.ID, nil
}

// GetByID retrieves a staff record by its ID.
func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var st models.Staff
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&st)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching staff record %s: %w", id, err)
	}
	return &st, nil
}

// Update replaces the stored document wholesale so the stored record always
// matches the after-image published for the write.
func (r *mongoStaffRepo) Update(ctx context.Context, id string, st *models.Staff) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	st.ID = id
	st.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, st)
	if err != nil {
		return fmt.Errorf("error updating staff record %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a staff record.
func (r *mongoStaffRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting staff record %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every staff document.
func (r *mongoStaffRepo) List(ctx context.Context) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("error decoding staff: %w", err)
	}
	return staff, nil
}

// CountAll counts the staff collection.
func (r *mongoStaffRepo) CountAll(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if n, err := r.coll.CountDocuments(ctx, bson.M{}); err == nil {
		return int(n), nil
	}
	staff, err := r.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("count fallback failed: %w", err)
	}
	return len(staff), nil
}

// CountActive counts active staff with the boolean-over-status precedence.
func (r *mongoStaffRepo) CountActive(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// isActive wins when present; records without it fall back to status.
	filter := bson.M{"$or": bson.A{
		bson.M{"isActive": true},
		bson.M{"isActive": bson.M{"$exists": false}, "status": models.StaffStatusActive},
	}}
	if n, err := r.coll.CountDocuments(ctx, filter); err == nil {
		return int(n), nil
	}

	staff, err := r.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("count fallback failed: %w", err)
	}
	count := 0
	for i := range staff {
		if stats.IsActive(&staff[i]) {
			count++
		}
	}
	return count, nil
}
