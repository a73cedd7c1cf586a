package user

import (
	"context"
	"errors"
	"mfilmrate/pkg/logging"
	"mfilmrate/user/internal/repository"
	"mfilmrate/user/pkg/model"

	"go.uber.org/zap"
)

// ErrNotFound is returned when a referenced user or friendship edge does not exist.
var ErrNotFound = errors.New("user not found")

// ErrAlreadyExists is returned when a friendship edge is added twice.
// A duplicate add is reported, not treated as an idempotent success.
var ErrAlreadyExists = errors.New("friendship already exists")

type userRepository interface {
	Get(ctx context.Context, id model.UserId) (*model.User, error)
	Put(ctx context.Context, id model.UserId, u *model.User) error
	Delete(ctx context.Context, id model.UserId) error
	All(ctx context.Context) ([]model.User, error)
	Exists(ctx context.Context, id model.UserId) (bool, error)
	AddFriend(ctx context.Context, id model.UserId, friendId model.UserId) error
	RemoveFriend(ctx context.Context, id model.UserId, friendId model.UserId) error
	Friends(ctx context.Context, id model.UserId) ([]model.User, error)
	CommonFriends(ctx context.Context, id model.UserId, otherId model.UserId) ([]model.User, error)
	AddEvent(ctx context.Context, userId model.UserId, eventType model.EventType, operation model.Operation, entityId int64) error
	Feed(ctx context.Context, userId model.UserId) ([]model.Event, error)
}

// Controller defines a user service controller.
type Controller struct {
	repo   userRepository
	logger *zap.Logger
}

// New creates a user service controller.
func New(repo userRepository, logger *zap.Logger) *Controller {
	logger = logger.With(zap.String(logging.FieldComponent, "controller"))
	return &Controller{repo: repo, logger: logger}
}

// Get returns a user by id or ErrNotFound.
func (c *Controller) Get(ctx context.Context, id model.UserId) (*model.User, error) {
	u, err := c.repo.Get(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

// Put validates and stores a user. A blank display name falls back to the login.
func (c *Controller) Put(ctx context.Context, id model.UserId, u *model.User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	if err := u.Validate(); err != nil {
		return err
	}
	if u.Name == "" {
		u.Name = u.Login
	}
	return c.repo.Put(ctx, id, u)
}

// Delete removes a user by id.
func (c *Controller) Delete(ctx context.Context, id model.UserId) error {
	err := c.repo.Delete(ctx, id)
	if err != nil && errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// All returns every registered user.
func (c *Controller) All(ctx context.Context) ([]model.User, error) {
	return c.repo.All(ctx)
}

// AddFriend creates a directed friendship edge from id to friendId and
// records a FRIEND/ADD event in the actor's feed. A duplicate edge is
// surfaced as ErrAlreadyExists.
func (c *Controller) AddFriend(ctx context.Context, id model.UserId, friendId model.UserId) error {
	if err := c.checkUserExists(ctx, id); err != nil {
		return err
	}
	if err := c.checkUserExists(ctx, friendId); err != nil {
		return err
	}
	if err := c.repo.AddFriend(ctx, id, friendId); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return ErrAlreadyExists
		}
		return err
	}
	c.logger.Info("Friend added",
		zap.Int64("userId", int64(id)),
		zap.Int64("friendId", int64(friendId)),
	)
	c.recordEvent(ctx, id, model.EventTypeFriend, model.OperationAdd, int64(friendId))
	return nil
}

// RemoveFriend destroys a directed friendship edge and records a
// FRIEND/REMOVE event in the actor's feed. A missing edge is ErrNotFound.
func (c *Controller) RemoveFriend(ctx context.Context, id model.UserId, friendId model.UserId) error {
	if err := c.checkUserExists(ctx, id); err != nil {
		return err
	}
	if err := c.checkUserExists(ctx, friendId); err != nil {
		return err
	}
	if err := c.repo.RemoveFriend(ctx, id, friendId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	c.logger.Info("Friend removed",
		zap.Int64("userId", int64(id)),
		zap.Int64("friendId", int64(friendId)),
	)
	c.recordEvent(ctx, id, model.EventTypeFriend, model.OperationRemove, int64(friendId))
	return nil
}

// Friends returns the users the given user added as friends.
func (c *Controller) Friends(ctx context.Context, id model.UserId) ([]model.User, error) {
	if err := c.checkUserExists(ctx, id); err != nil {
		return nil, err
	}
	return c.repo.Friends(ctx, id)
}

// CommonFriends returns the users both given users added as friends.
// Friendship edges are directed, so mutuality is never assumed.
func (c *Controller) CommonFriends(ctx context.Context, id model.UserId, otherId model.UserId) ([]model.User, error) {
	if err := c.checkUserExists(ctx, id); err != nil {
		return nil, err
	}
	if err := c.checkUserExists(ctx, otherId); err != nil {
		return nil, err
	}
	return c.repo.CommonFriends(ctx, id, otherId)
}

// RecordEvent appends an event to the actor's feed. Used by the film and
// review services for LIKE and REVIEW events.
func (c *Controller) RecordEvent(ctx context.Context, userId model.UserId, eventType model.EventType, operation model.Operation, entityId int64) error {
	if err := c.checkUserExists(ctx, userId); err != nil {
		return err
	}
	return c.repo.AddEvent(ctx, userId, eventType, operation, entityId)
}

// Feed returns the activity events of the given user ordered by timestamp
// ascending, ties broken by event id. An empty feed is a normal result.
func (c *Controller) Feed(ctx context.Context, userId model.UserId) ([]model.Event, error) {
	if err := c.checkUserExists(ctx, userId); err != nil {
		return nil, err
	}
	return c.repo.Feed(ctx, userId)
}

func (c *Controller) checkUserExists(ctx context.Context, id model.UserId) error {
	ok, err := c.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// recordEvent is best effort: a failed feed append never rolls back the
// write that triggered it.
func (c *Controller) recordEvent(ctx context.Context, userId model.UserId, eventType model.EventType, operation model.Operation, entityId int64) {
	if err := c.repo.AddEvent(ctx, userId, eventType, operation, entityId); err != nil {
		c.logger.Warn("Failed to record feed event",
			zap.Int64("userId", int64(userId)),
			zap.String("eventType", string(eventType)),
			zap.Error(err),
		)
	}
}
