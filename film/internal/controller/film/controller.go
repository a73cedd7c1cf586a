package film

import (
	"context"
	"errors"
	"mfilmrate/film/internal/gateway"
	"mfilmrate/film/internal/repository"
	"mfilmrate/film/pkg/model"
	"mfilmrate/pkg/logging"

	usermodel "mfilmrate/user/pkg/model"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a referenced film or user does not exist.
var ErrNotFound = errors.New("film not found")

type filmRepository interface {
	Get(ctx context.Context, id model.FilmId) (*model.Film, error)
	Put(ctx context.Context, id model.FilmId, f *model.Film) error
	Delete(ctx context.Context, id model.FilmId) error
	All(ctx context.Context) ([]model.Film, error)
	Exists(ctx context.Context, id model.FilmId) (bool, error)
	AddLike(ctx context.Context, id model.FilmId, userId usermodel.UserId) error
	RemoveLike(ctx context.Context, id model.FilmId, userId usermodel.UserId) error
	Likers(ctx context.Context, id model.FilmId) ([]usermodel.UserId, error)
	LikedFilms(ctx context.Context, userId usermodel.UserId) ([]model.FilmId, error)
	TopFilms(ctx context.Context, count int) ([]model.Film, error)
}

type likeIngester interface {
	Ingest(ctx context.Context) (chan model.LikeEvent, error)
}

type userGateway interface {
	CheckUser(ctx context.Context, id usermodel.UserId) error
}

type eventGateway interface {
	RecordEvent(ctx context.Context, userId usermodel.UserId, eventType usermodel.EventType, operation usermodel.Operation, entityId int64) error
}

// Controller defines a film service controller.
type Controller struct {
	repo     filmRepository
	ingester likeIngester
	users    userGateway
	events   eventGateway
	logger   *zap.Logger
}

// New creates a film service controller.
func New(repo filmRepository, ingester likeIngester, users userGateway, events eventGateway, logger *zap.Logger) *Controller {
	logger = logger.With(zap.String(logging.FieldComponent, "controller"))
	return &Controller{repo: repo, ingester: ingester, users: users, events: events, logger: logger}
}

// Get returns a film by id or ErrNotFound.
func (c *Controller) Get(ctx context.Context, id model.FilmId) (*model.Film, error) {
	f, err := c.repo.Get(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return f, err
}

// Put validates and stores a film.
func (c *Controller) Put(ctx context.Context, id model.FilmId, f *model.Film) error {
	if f == nil {
		return errors.New("film is nil")
	}
	if err := f.Validate(); err != nil {
		return err
	}
	return c.repo.Put(ctx, id, f)
}

// Delete removes a film by id.
func (c *Controller) Delete(ctx context.Context, id model.FilmId) error {
	err := c.repo.Delete(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// All returns every stored film.
func (c *Controller) All(ctx context.Context) ([]model.Film, error) {
	return c.repo.All(ctx)
}

// TopFilms returns up to count films ordered by like count descending.
func (c *Controller) TopFilms(ctx context.Context, count int) ([]model.Film, error) {
	return c.repo.TopFilms(ctx, count)
}

// AddLike creates a like edge between userId and filmId, then records a
// LIKE/ADD event in the actor's feed. The edge is unique: liking a film
// twice leaves one edge.
func (c *Controller) AddLike(ctx context.Context, id model.FilmId, userId usermodel.UserId) error {
	if err := c.checkUser(ctx, userId); err != nil {
		return err
	}
	if err := c.repo.AddLike(ctx, id, userId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	c.logger.Info("Film liked",
		zap.Int64("filmId", int64(id)),
		zap.Int64("userId", int64(userId)),
	)
	c.recordEvent(ctx, userId, usermodel.OperationAdd, int64(id))
	return nil
}

// RemoveLike destroys a like edge, then records a LIKE/REMOVE event in
// the actor's feed.
func (c *Controller) RemoveLike(ctx context.Context, id model.FilmId, userId usermodel.UserId) error {
	if err := c.checkUser(ctx, userId); err != nil {
		return err
	}
	if err := c.repo.RemoveLike(ctx, id, userId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	c.logger.Info("Film unliked",
		zap.Int64("filmId", int64(id)),
		zap.Int64("userId", int64(userId)),
	)
	c.recordEvent(ctx, userId, usermodel.OperationRemove, int64(id))
	return nil
}

// Likers returns the set of users who liked the given film. An empty set
// is a normal result.
func (c *Controller) Likers(ctx context.Context, id model.FilmId) ([]usermodel.UserId, error) {
	ok, err := c.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return c.repo.Likers(ctx, id)
}

// LikedFilms returns the set of films the given user liked. An empty set
// is a normal result.
func (c *Controller) LikedFilms(ctx context.Context, userId usermodel.UserId) ([]model.FilmId, error) {
	return c.repo.LikedFilms(ctx, userId)
}

// StartIngestion starts the ingestion of like events.
func (c *Controller) StartIngestion(ctx context.Context) error {
	ch, err := c.ingester.Ingest(ctx)
	if err != nil {
		return err
	}
	for e := range ch {
		c.logger.Info("Consumed a like event", zap.Stringer("event", &e))
		var err error
		switch e.EventType {
		case model.LikeEventTypePut:
			err = c.AddLike(ctx, e.FilmId, e.UserId)
		case model.LikeEventTypeDelete:
			err = c.RemoveLike(ctx, e.FilmId, e.UserId)
		default:
			c.logger.Warn("Unknown like event type", zap.String("eventType", string(e.EventType)))
			continue
		}
		if err != nil {
			c.logger.Warn("Failed to apply like event", zap.Stringer("event", &e), zap.Error(err))
		}
	}
	return nil
}

func (c *Controller) checkUser(ctx context.Context, userId usermodel.UserId) error {
	err := c.users.CheckUser(ctx, userId)
	if err != nil && errors.Is(err, gateway.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// recordEvent is best effort: the like has already been applied and a
// failed feed append never rolls it back.
func (c *Controller) recordEvent(ctx context.Context, userId usermodel.UserId, operation usermodel.Operation, entityId int64) {
	if err := c.events.RecordEvent(ctx, userId, usermodel.EventTypeLike, operation, entityId); err != nil {
		c.logger.Warn("Failed to record feed event",
			zap.Int64("userId", int64(userId)),
			zap.String("operation", string(operation)),
			zap.Error(err),
		)
	}
}
