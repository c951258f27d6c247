package roomRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelops/database"
	"hotelops/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a room does not exist.
var ErrNotFound = errors.New("room not found")

type mongoRoomRepo struct {
	coll *mongo.Collection
}

// NewMongoRoomRepo returns a Repository backed by MongoDB.
func NewMongoRoomRepo() Repository {
	repo := &mongoRoomRepo{coll: database.DB().Collection("rooms")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create room indexes: %v\n", err)
	}
	return repo
}

func (r *mongoRoomRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new room and returns its ID.
func (r *mongoRoomRepo) Create(ctx context.Context, room *models.Room) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	room.CreatedAt = time.Now()
	room.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return "", fmt.Errorf("error creating room: %w", err)
	}
	return room.ID, nil
}

// GetByID retrieves a room by its ID.
func (r *mongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching room %s: %w", id, err)
	}
	return &room, nil
}

// Update replaces the stored document wholesale so the stored room always
// matches the after-image published for the write.
func (r *mongoRoomRepo) Update(ctx context.Context, id string, room *models.Room) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	room.ID = id
	room.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": id}, room)
	if err != nil {
		return fmt.Errorf("error updating room %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a room record.
func (r *mongoRoomRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting room %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every room document.
func (r *mongoRoomRepo) List(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

// CountAll counts the rooms collection.
func (r *mongoRoomRepo) CountAll(ctx context.Context) (int, error) {
	return r.countWithFallback(ctx, bson.M{}, func(*models.Room) bool { return true })
}

// CountAvailable counts rooms whose status is "available".
func (r *mongoRoomRepo) CountAvailable(ctx context.Context) (int, error) {
	return r.countWithFallback(ctx,
		bson.M{"status": models.RoomStatusAvailable},
		func(room *models.Room) bool { return room.Status == models.RoomStatusAvailable },
	)
}

// countWithFallback tries a server-side count first and enumerates the
// collection with a client-side predicate when the count query fails.
func (r *mongoRoomRepo) countWithFallback(ctx context.Context, filter bson.M, match func(*models.Room) bool) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if n, err := r.coll.CountDocuments(ctx, filter); err == nil {
		return int(n), nil
	}

	rooms, err := r.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("count fallback failed: %w", err)
	}
	count := 0
	for i := range rooms {
		if match(&rooms[i]) {
			count++
		}
	}
	return count, nil
}
