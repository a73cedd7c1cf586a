package review

import (
	"context"
	"errors"
	filmmodel "mfilmrate/film/pkg/model"
	"mfilmrate/pkg/logging"
	"mfilmrate/review/internal/gateway"
	"mfilmrate/review/internal/repository"
	"mfilmrate/review/pkg/model"

	usermodel "mfilmrate/user/pkg/model"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a referenced review, user or film does not exist.
var ErrNotFound = errors.New("review not found")

type reviewRepository interface {
	Create(ctx context.Context, review *model.Review) (model.ReviewId, error)
	Get(ctx context.Context, id model.ReviewId) (*model.Review, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id model.ReviewId) error
	ByFilm(ctx context.Context, filmId int64, count int) ([]model.Review, error)
}

type userGateway interface {
	CheckUser(ctx context.Context, id usermodel.UserId) error
}

type filmGateway interface {
	CheckFilm(ctx context.Context, id filmmodel.FilmId) error
}

type eventGateway interface {
	RecordEvent(ctx context.Context, userId usermodel.UserId, eventType usermodel.EventType, operation usermodel.Operation, entityId int64) error
}

// Controller defines a review service controller.
type Controller struct {
	repo   reviewRepository
	users  userGateway
	films  filmGateway
	events eventGateway
	logger *zap.Logger
}

// New creates a review service controller.
func New(repo reviewRepository, users userGateway, films filmGateway, events eventGateway, logger *zap.Logger) *Controller {
	logger = logger.With(zap.String(logging.FieldComponent, "controller"))
	return &Controller{repo: repo, users: users, films: films, events: events, logger: logger}
}

// Create validates and stores a review, then records a REVIEW/ADD event
// carrying the new review id in the author's feed.
func (c *Controller) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	if review == nil {
		return nil, errors.New("review is nil")
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}
	if err := c.checkReferences(ctx, review); err != nil {
		return nil, err
	}
	id, err := c.repo.Create(ctx, review)
	if err != nil {
		return nil, err
	}
	c.logger.Info("Review created", zap.Int64("reviewId", int64(id)))
	c.recordEvent(ctx, review.UserId, usermodel.OperationAdd, int64(id))
	return review, nil
}

// Get returns a review by id or ErrNotFound.
func (c *Controller) Get(ctx context.Context, id model.ReviewId) (*model.Review, error) {
	review, err := c.repo.Get(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return review, err
}

// Update validates and replaces an existing review, then records a
// REVIEW/UPDATE event carrying the reviewed film id in the author's feed.
func (c *Controller) Update(ctx context.Context, review *model.Review) error {
	if review == nil {
		return errors.New("review is nil")
	}
	if err := review.Validate(); err != nil {
		return err
	}
	stored, err := c.Get(ctx, review.ReviewId)
	if err != nil {
		return err
	}
	if err := c.repo.Update(ctx, review); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	c.logger.Info("Review updated", zap.Int64("reviewId", int64(review.ReviewId)))
	c.recordEvent(ctx, stored.UserId, usermodel.OperationUpdate, int64(stored.FilmId))
	return nil
}

// Delete removes a review, then records a REVIEW/REMOVE event carrying
// the reviewed film id in the author's feed.
func (c *Controller) Delete(ctx context.Context, id model.ReviewId) error {
	stored, err := c.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	c.logger.Info("Review deleted", zap.Int64("reviewId", int64(id)))
	c.recordEvent(ctx, stored.UserId, usermodel.OperationRemove, int64(stored.FilmId))
	return nil
}

// ByFilm returns up to count reviews of the given film, all reviews when
// filmId is 0.
func (c *Controller) ByFilm(ctx context.Context, filmId int64, count int) ([]model.Review, error) {
	return c.repo.ByFilm(ctx, filmId, count)
}

func (c *Controller) checkReferences(ctx context.Context, review *model.Review) error {
	if err := c.users.CheckUser(ctx, review.UserId); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := c.films.CheckFilm(ctx, review.FilmId); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// recordEvent is best effort: the review write has already been applied
// and a failed feed append never rolls it back.
func (c *Controller) recordEvent(ctx context.Context, userId usermodel.UserId, operation usermodel.Operation, entityId int64) {
	if err := c.events.RecordEvent(ctx, userId, usermodel.EventTypeReview, operation, entityId); err != nil {
		c.logger.Warn("Failed to record feed event",
			zap.Int64("userId", int64(userId)),
			zap.String("operation", string(operation)),
			zap.Error(err),
		)
	}
}
