package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nvales/watchdex/internal/domain"
	"github.com/nvales/watchdex/internal/security"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// WatchRepository is the persistence surface the watch service needs
type WatchRepository interface {
	Create(ctx context.Context, watch *domain.Watch) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Watch, error)
	List(ctx context.Context, filter domain.WatchFilter) ([]domain.Watch, int64, error)
	Update(ctx context.Context, watch *domain.Watch) error
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Watch, error)
	PushReview(ctx context.Context, id primitive.ObjectID, review domain.Review) (*domain.Watch, error)
}

// WatchCache caches watch detail lookups
type WatchCache interface {
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Watch, error)
	Set(ctx context.Context, watch *domain.Watch) error
	Invalidate(ctx context.Context, id primitive.ObjectID) error
}

// WatchService handles catalog operations
type WatchService struct {
	watches     WatchRepository
	cache       WatchCache
	updateGuard *security.UpdateValidator
}

// NewWatchService creates a new watch service
func NewWatchService(watches WatchRepository, cache WatchCache) *WatchService {
	return &WatchService{
		watches: watches,
		cache:   cache,
		updateGuard: security.NewUpdateValidator(
			"brand",
			"model",
			"reference",
			"price",
			"movement",
			"caseSize",
			"waterResistance",
			"images",
			"specifications",
		),
	}
}

// List returns one page of catalog records matching the filter
func (s *WatchService) List(ctx context.Context, filter domain.WatchFilter) (*domain.WatchPage, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	watches, total, err := s.watches.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pages := total / filter.Limit
	if total%filter.Limit != 0 {
		pages++
	}

	return &domain.WatchPage{
		Watches: watches,
		Pagination: domain.Pagination{
			Total: total,
			Page:  filter.Page,
			Limit: filter.Limit,
			Pages: pages,
		},
	}, nil
}

// Get returns a single catalog record, served from cache when possible
func (s *WatchService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Watch, error) {
	if cached, err := s.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	watch, err := s.watches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if watch == nil {
		return nil, domain.ErrWatchNotFound
	}

	if err := s.cache.Set(ctx, watch); err != nil {
		log.Warn().Err(err).Str("watch_id", id.Hex()).Msg("failed to cache watch")
	}

	return watch, nil
}

// Create persists a new catalog record
func (s *WatchService) Create(ctx context.Context, watch *domain.Watch) (*domain.Watch, error) {
	now := time.Now()
	watch.ID = primitive.NilObjectID
	watch.Reviews = []domain.Review{}
	watch.CreatedAt = now
	watch.UpdatedAt = now

	if watch.Images == nil {
		watch.Images = []string{}
	}

	if err := s.watches.Create(ctx, watch); err != nil {
		return nil, err
	}

	return watch, nil
}

// Update applies a partial update through the field allow-list.
// An unknown key rejects the whole payload before anything is applied.
func (s *WatchService) Update(ctx context.Context, id primitive.ObjectID, payload map[string]json.RawMessage) (*domain.Watch, error) {
	if err := s.updateGuard.Validate(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidUpdate, err)
	}

	watch, err := s.watches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if watch == nil {
		return nil, domain.ErrWatchNotFound
	}

	if err := applyWatchUpdate(watch, payload); err != nil {
		return nil, err
	}

	if err := validate.Struct(watch); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidUpdate, err)
	}

	if err := s.watches.Update(ctx, watch); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	return watch, nil
}

// Delete removes a catalog record and returns it
func (s *WatchService) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Watch, error) {
	watch, err := s.watches.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	return watch, nil
}

// AddReview appends a review by the given user to a catalog record
func (s *WatchService) AddReview(ctx context.Context, id, userID primitive.ObjectID, input domain.ReviewCreate) (*domain.Watch, error) {
	review := domain.Review{
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	watch, err := s.watches.PushReview(ctx, id, review)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	return watch, nil
}

func (s *WatchService) invalidate(ctx context.Context, id primitive.ObjectID) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		log.Warn().Err(err).Str("watch_id", id.Hex()).Msg("failed to invalidate watch cache")
	}
}

func applyWatchUpdate(watch *domain.Watch, payload map[string]json.RawMessage) error {
	for key, raw := range payload {
		var err error
		switch key {
		case "brand":
			err = json.Unmarshal(raw, &watch.Brand)
		case "model":
			err = json.Unmarshal(raw, &watch.Model)
		case "reference":
			err = json.Unmarshal(raw, &watch.Reference)
		case "price":
			err = json.Unmarshal(raw, &watch.Price)
		case "movement":
			err = json.Unmarshal(raw, &watch.Movement)
		case "caseSize":
			err = json.Unmarshal(raw, &watch.CaseSize)
		case "waterResistance":
			err = json.Unmarshal(raw, &watch.WaterResistance)
		case "images":
			err = json.Unmarshal(raw, &watch.Images)
		case "specifications":
			err = json.Unmarshal(raw, &watch.Specifications)
		}
		if err != nil {
			return fmt.Errorf("%w: invalid value for %s", domain.ErrInvalidUpdate, key)
		}
	}
	return nil
}
