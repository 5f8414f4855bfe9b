package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nvales/watchdex/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const watchCollection = "watches"

// WatchRepository stores catalog records in MongoDB
type WatchRepository struct {
	coll *mongo.Collection
}

// NewWatchRepository creates a new watch repository
func NewWatchRepository(client *Client) *WatchRepository {
	return &WatchRepository{coll: client.Database().Collection(watchCollection)}
}

// EnsureIndexes creates the catalog query indexes
func (r *WatchRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "brand", Value: 1}, {Key: "model", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "movement", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create watch indexes: %w", err)
	}
	return nil
}

func (r *WatchRepository) Create(ctx context.Context, watch *domain.Watch) error {
	res, err := r.coll.InsertOne(ctx, watch)
	if err != nil {
		return fmt.Errorf("failed to create watch: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		watch.ID = id
	}
	return nil
}

// GetByID returns nil, nil when no watch has the given id
func (r *WatchRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Watch, error) {
	var watch domain.Watch
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&watch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get watch: %w", err)
	}
	return &watch, nil
}

// List returns one page of records matching the filter, newest first,
// along with the total match count.
func (r *WatchRepository) List(ctx context.Context, filter domain.WatchFilter) ([]domain.Watch, int64, error) {
	query := bson.M{}
	if filter.Brand != "" {
		query["brand"] = filter.Brand
	}
	if filter.Movement != "" {
		query["movement"] = filter.Movement
	}
	if filter.PriceMin != nil || filter.PriceMax != nil {
		price := bson.M{}
		if filter.PriceMin != nil {
			price["$gte"] = *filter.PriceMin
		}
		if filter.PriceMax != nil {
			price["$lte"] = *filter.PriceMax
		}
		query["price"] = price
	}

	findOpts := options.Find().
		SetLimit(filter.Limit).
		SetSkip((filter.Page - 1) * filter.Limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list watches: %w", err)
	}
	defer cursor.Close(ctx)

	watches := []domain.Watch{}
	if err := cursor.All(ctx, &watches); err != nil {
		return nil, 0, fmt.Errorf("failed to decode watches: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count watches: %w", err)
	}

	return watches, total, nil
}

func (r *WatchRepository) Update(ctx context.Context, watch *domain.Watch) error {
	watch.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": watch.ID}, watch)
	if err != nil {
		return fmt.Errorf("failed to update watch: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrWatchNotFound
	}
	return nil
}

// Delete removes a watch and returns the deleted record
func (r *WatchRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Watch, error) {
	var watch domain.Watch
	err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&watch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWatchNotFound
		}
		return nil, fmt.Errorf("failed to delete watch: %w", err)
	}
	return &watch, nil
}

// PushReview appends a review and returns the updated record
func (r *WatchRepository) PushReview(ctx context.Context, id primitive.ObjectID, review domain.Review) (*domain.Watch, error) {
	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var watch domain.Watch
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&watch)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWatchNotFound
		}
		return nil, fmt.Errorf("failed to add review: %w", err)
	}
	return &watch, nil
}
