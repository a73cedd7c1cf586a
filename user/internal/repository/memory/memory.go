package memory

import (
	"context"
	"mfilmrate/pkg/logging"
	"mfilmrate/user/internal/repository"
	"mfilmrate/user/pkg/model"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Repository defines an in-memory user repository holding users,
// directed friendship edges and the activity event log.
type Repository struct {
	sync.RWMutex
	users       map[model.UserId]*model.User
	friends     map[model.UserId]map[model.UserId]struct{}
	events      []model.Event
	nextEventId int64
	logger      *zap.Logger
}

// New creates a new in-memory user repository.
func New(logger *zap.Logger) *Repository {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "memory"),
	)
	return &Repository{
		users:       map[model.UserId]*model.User{},
		friends:     map[model.UserId]map[model.UserId]struct{}{},
		nextEventId: 1,
		logger:      logger,
	}
}

// Get retrieves a user by id.
func (r *Repository) Get(_ context.Context, id model.UserId) (*model.User, error) {
	r.RLock()
	defer r.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

// Put adds or replaces a user for a given user id.
func (r *Repository) Put(_ context.Context, id model.UserId, u *model.User) error {
	r.Lock()
	defer r.Unlock()
	r.users[id] = u
	return nil
}

// Delete removes a user along with its friendship edges.
func (r *Repository) Delete(_ context.Context, id model.UserId) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	delete(r.friends, id)
	return nil
}

// All returns every registered user.
func (r *Repository) All(_ context.Context) ([]model.User, error) {
	r.RLock()
	defer r.RUnlock()
	res := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		res = append(res, *u)
	}
	return res, nil
}

// Exists reports whether a user with the given id is registered.
func (r *Repository) Exists(_ context.Context, id model.UserId) (bool, error) {
	r.RLock()
	defer r.RUnlock()
	_, ok := r.users[id]
	return ok, nil
}

// AddFriend creates a directed friendship edge. A duplicate edge is a conflict.
func (r *Repository) AddFriend(_ context.Context, id model.UserId, friendId model.UserId) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.friends[id]; !ok {
		r.friends[id] = map[model.UserId]struct{}{}
	}
	if _, ok := r.friends[id][friendId]; ok {
		return repository.ErrAlreadyExists
	}
	r.friends[id][friendId] = struct{}{}
	return nil
}

// RemoveFriend destroys a directed friendship edge.
func (r *Repository) RemoveFriend(_ context.Context, id model.UserId, friendId model.UserId) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.friends[id][friendId]; !ok {
		return repository.ErrNotFound
	}
	delete(r.friends[id], friendId)
	return nil
}

// Friends returns the users the given user added as friends.
func (r *Repository) Friends(_ context.Context, id model.UserId) ([]model.User, error) {
	r.RLock()
	defer r.RUnlock()
	var res []model.User
	for friendId := range r.friends[id] {
		if u, ok := r.users[friendId]; ok {
			res = append(res, *u)
		}
	}
	return res, nil
}

// CommonFriends returns the users both given users added as friends.
func (r *Repository) CommonFriends(_ context.Context, id model.UserId, otherId model.UserId) ([]model.User, error) {
	r.RLock()
	defer r.RUnlock()
	var res []model.User
	for friendId := range r.friends[id] {
		if _, ok := r.friends[otherId][friendId]; !ok {
			continue
		}
		if u, ok := r.users[friendId]; ok {
			res = append(res, *u)
		}
	}
	return res, nil
}

// AddEvent appends an immutable activity event with a repository-assigned
// timestamp and event id.
func (r *Repository) AddEvent(_ context.Context, userId model.UserId, eventType model.EventType, operation model.Operation, entityId int64) error {
	r.Lock()
	defer r.Unlock()
	r.events = append(r.events, model.Event{
		Timestamp: time.Now().UnixMilli(),
		UserId:    userId,
		EventType: eventType,
		Operation: operation,
		EventId:   r.nextEventId,
		EntityId:  entityId,
	})
	r.nextEventId++
	return nil
}

// Feed returns the events of the given user ordered by timestamp,
// then by event id for events sharing a timestamp.
func (r *Repository) Feed(_ context.Context, userId model.UserId) ([]model.Event, error) {
	r.RLock()
	defer r.RUnlock()
	res := make([]model.Event, 0)
	for _, e := range r.events {
		if e.UserId == userId {
			res = append(res, e)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Timestamp != res[j].Timestamp {
			return res[i].Timestamp < res[j].Timestamp
		}
		return res[i].EventId < res[j].EventId
	})
	return res, nil
}
