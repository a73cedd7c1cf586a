package memory

import (
	"context"
	"mfilmrate/film/internal/repository"
	"mfilmrate/film/pkg/model"
	"mfilmrate/pkg/logging"
	"sort"
	"sync"

	usermodel "mfilmrate/user/pkg/model"

	"go.uber.org/zap"
)

// Repository defines an in-memory film repository holding films and
// the like edges between users and films.
type Repository struct {
	sync.RWMutex
	films  map[model.FilmId]*model.Film
	likes  map[model.FilmId]map[usermodel.UserId]struct{}
	logger *zap.Logger
}

// New creates a new in-memory film repository.
func New(logger *zap.Logger) *Repository {
	logger = logger.With(
		zap.String(logging.FieldComponent, "repository"),
		zap.String(logging.FieldType, "memory"),
	)
	return &Repository{
		films:  map[model.FilmId]*model.Film{},
		likes:  map[model.FilmId]map[usermodel.UserId]struct{}{},
		logger: logger,
	}
}

// Get retrieves a film by id.
func (r *Repository) Get(_ context.Context, id model.FilmId) (*model.Film, error) {
	r.RLock()
	defer r.RUnlock()
	f, ok := r.films[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return f, nil
}

// Put adds or replaces a film for a given film id.
func (r *Repository) Put(_ context.Context, id model.FilmId, f *model.Film) error {
	r.Lock()
	defer r.Unlock()
	r.films[id] = f
	return nil
}

// Delete removes a film along with its like edges.
func (r *Repository) Delete(_ context.Context, id model.FilmId) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.films[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.films, id)
	delete(r.likes, id)
	return nil
}

// All returns every stored film.
func (r *Repository) All(_ context.Context) ([]model.Film, error) {
	r.RLock()
	defer r.RUnlock()
	res := make([]model.Film, 0, len(r.films))
	for _, f := range r.films {
		res = append(res, *f)
	}
	return res, nil
}

// Exists reports whether a film with the given id is stored.
func (r *Repository) Exists(_ context.Context, id model.FilmId) (bool, error) {
	r.RLock()
	defer r.RUnlock()
	_, ok := r.films[id]
	return ok, nil
}

// AddLike creates a like edge. A user likes a film at most once, so a
// duplicate like leaves the edge set unchanged.
func (r *Repository) AddLike(_ context.Context, id model.FilmId, userId usermodel.UserId) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.films[id]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := r.likes[id]; !ok {
		r.likes[id] = map[usermodel.UserId]struct{}{}
	}
	r.likes[id][userId] = struct{}{}
	return nil
}

// RemoveLike destroys a like edge. Removing an absent edge is a no-op.
func (r *Repository) RemoveLike(_ context.Context, id model.FilmId, userId usermodel.UserId) error {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.films[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.likes[id], userId)
	return nil
}

// Likers returns the set of users who liked the given film. A film
// nobody liked yields an empty set, not an error.
func (r *Repository) Likers(_ context.Context, id model.FilmId) ([]usermodel.UserId, error) {
	r.RLock()
	defer r.RUnlock()
	res := make([]usermodel.UserId, 0, len(r.likes[id]))
	for userId := range r.likes[id] {
		res = append(res, userId)
	}
	return res, nil
}

// LikedFilms returns the set of films the given user liked. A user with
// no likes yields an empty set, not an error.
func (r *Repository) LikedFilms(_ context.Context, userId usermodel.UserId) ([]model.FilmId, error) {
	r.RLock()
	defer r.RUnlock()
	res := make([]model.FilmId, 0)
	for filmId, likers := range r.likes {
		if _, ok := likers[userId]; ok {
			res = append(res, filmId)
		}
	}
	return res, nil
}

// TopFilms returns up to count films ordered by like count descending.
func (r *Repository) TopFilms(_ context.Context, count int) ([]model.Film, error) {
	r.RLock()
	defer r.RUnlock()
	films := make([]model.Film, 0, len(r.films))
	for _, f := range r.films {
		films = append(films, *f)
	}
	sort.Slice(films, func(i, j int) bool {
		li, lj := len(r.likes[films[i].Id]), len(r.likes[films[j].Id])
		if li != lj {
			return li > lj
		}
		return films[i].Id < films[j].Id
	})
	if count < len(films) {
		films = films[:count]
	}
	return films, nil
}
