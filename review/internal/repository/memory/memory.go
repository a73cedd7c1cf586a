package memory

import (
	"context"
	"mfilmrate/pkg/logging"
	"mfilmrate/review/internal/repository"
	"mfilmrate/review/pkg/model"
	"sync"

	"go.uber.org/zap"
)

// Repository defines an in-memory review repository.
type Repository struct {
	sync.RWMutex
	reviews map[model.ReviewId]*model.Review
	nextId  model.ReviewId
	logger  *zap.Logger
}

// New creates a new in-memory review repository.
func New(logger *zap.Logger) *Repository {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "memory"),
	)
	return &Repository{
		reviews: map[model.ReviewId]*model.Review{},
		nextId:  1,
		logger:  logger,
	}
}

// Create stores a new review and assigns its id.
func (r *Repository) Create(_ context.Context, review *model.Review) (model.ReviewId, error) {
	r.Lock()
	defer r.Unlock()
	review.ReviewId = r.nextId
	r.nextId++
	r.reviews[review.ReviewId] = review
	return review.ReviewId, nil
}

// Get retrieves a review by id.
func (r *Repository) Get(_ context.Context, id model.ReviewId) (*model.Review, error) {
	r.RLock()
	defer r.RUnlock()
	review, ok := r.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return review, nil
}

// Update replaces the mutable fields of an existing review.
func (r *Repository) Update(_ context.Context, review *model.Review) error {
	r.Lock()
	defer r.Unlock()
	stored, ok := r.reviews[review.ReviewId]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Content = review.Content
	stored.IsPositive = review.IsPositive
	return nil
}

// Delete removes a review by id.
func (r *Repository) Delete(_ context.Context, id model.ReviewId) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.reviews[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.reviews, id)
	return nil
}

// ByFilm returns the reviews of the given film, all reviews when filmId is 0.
func (r *Repository) ByFilm(_ context.Context, filmId int64, count int) ([]model.Review, error) {
	r.RLock()
	defer r.RUnlock()
	res := make([]model.Review, 0)
	for _, review := range r.reviews {
		if filmId != 0 && int64(review.FilmId) != filmId {
			continue
		}
		res = append(res, *review)
		if len(res) == count {
			break
		}
	}
	return res, nil
}
