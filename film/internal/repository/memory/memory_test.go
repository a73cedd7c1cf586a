package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"mfilmrate/film/internal/repository"
	"mfilmrate/film/pkg/model"
	usermodel "mfilmrate/user/pkg/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testFilm(id model.FilmId) *model.Film {
	return &model.Film{
		Id:          id,
		Name:        fmt.Sprintf("Film %d", id),
		Duration:    100,
		ReleaseDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestFilms(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())

	_, err := r.Get(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	f := testFilm(1)
	assert.NoError(t, r.Put(ctx, 1, f))
	got, err := r.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, f, got)

	all, err := r.All(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	assert.NoError(t, r.Delete(ctx, 1))
	assert.ErrorIs(t, r.Delete(ctx, 1), repository.ErrNotFound)
}

func TestLikes(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())
	assert.NoError(t, r.Put(ctx, 1, testFilm(1)))
	assert.NoError(t, r.Put(ctx, 2, testFilm(2)))

	assert.ErrorIs(t, r.AddLike(ctx, 99, 1), repository.ErrNotFound)

	assert.NoError(t, r.AddLike(ctx, 1, 7))
	// A user likes a film at most once.
	assert.NoError(t, r.AddLike(ctx, 1, 7))
	likers, err := r.Likers(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, []usermodel.UserId{7}, likers)

	assert.NoError(t, r.AddLike(ctx, 2, 7))
	liked, err := r.LikedFilms(ctx, 7)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []model.FilmId{1, 2}, liked)

	assert.NoError(t, r.RemoveLike(ctx, 1, 7))
	// Removing an absent edge is a no-op.
	assert.NoError(t, r.RemoveLike(ctx, 1, 7))
	likers, err = r.Likers(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, likers)

	liked, err = r.LikedFilms(ctx, 99)
	assert.NoError(t, err)
	assert.Empty(t, liked)
}

func TestTopFilms(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())
	for id := model.FilmId(1); id <= 3; id++ {
		assert.NoError(t, r.Put(ctx, id, testFilm(id)))
	}
	assert.NoError(t, r.AddLike(ctx, 2, 1))
	assert.NoError(t, r.AddLike(ctx, 2, 2))
	assert.NoError(t, r.AddLike(ctx, 3, 1))

	top, err := r.TopFilms(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, top, 2)
	assert.Equal(t, model.FilmId(2), top[0].Id)
	assert.Equal(t, model.FilmId(3), top[1].Id)

	top, err = r.TopFilms(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, top, 3)
}
