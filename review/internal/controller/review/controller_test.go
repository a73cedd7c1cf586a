package review

import (
	"context"
	"errors"
	"testing"

	filmmodel "mfilmrate/film/pkg/model"
	gen "mfilmrate/gen/mock/review/gateway"
	"mfilmrate/review/internal/gateway"
	"mfilmrate/review/internal/repository/memory"
	"mfilmrate/review/pkg/model"
	usermodel "mfilmrate/user/pkg/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testReview() *model.Review {
	positive := true
	return &model.Review{
		Content:    "Worth watching",
		IsPositive: &positive,
		UserId:     7,
		FilmId:     1,
	}
}

func newController(t *testing.T) (*Controller, *gen.MockuserGateway, *gen.MockfilmGateway, *gen.MockeventGateway) {
	ctrl := gomock.NewController(t)
	users := gen.NewMockuserGateway(ctrl)
	films := gen.NewMockfilmGateway(ctrl)
	events := gen.NewMockeventGateway(ctrl)
	c := New(memory.New(zap.NewNop()), users, films, events, zap.NewNop())
	return c, users, films, events
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	c, users, films, events := newController(t)

	users.EXPECT().CheckUser(ctx, usermodel.UserId(7)).Return(nil)
	films.EXPECT().CheckFilm(ctx, filmmodel.FilmId(1)).Return(nil)
	events.EXPECT().RecordEvent(ctx, usermodel.UserId(7), usermodel.EventTypeReview, usermodel.OperationAdd, gomock.Any()).Return(nil)

	created, err := c.Create(ctx, testReview())
	assert.NoError(t, err)
	assert.NotZero(t, created.ReviewId)

	got, err := c.Get(ctx, created.ReviewId)
	assert.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	c, _, _, _ := newController(t)

	r := testReview()
	r.Content = ""
	_, err := c.Create(ctx, r)
	assert.Error(t, err)

	r = testReview()
	r.IsPositive = nil
	_, err = c.Create(ctx, r)
	assert.Error(t, err)
}

func TestCreateUnknownReferences(t *testing.T) {
	ctx := context.Background()

	c, users, _, _ := newController(t)
	users.EXPECT().CheckUser(ctx, usermodel.UserId(7)).Return(gateway.ErrNotFound)
	_, err := c.Create(ctx, testReview())
	assert.ErrorIs(t, err, ErrNotFound)

	c, users, films, _ := newController(t)
	users.EXPECT().CheckUser(ctx, usermodel.UserId(7)).Return(nil)
	films.EXPECT().CheckFilm(ctx, filmmodel.FilmId(1)).Return(gateway.ErrNotFound)
	_, err = c.Create(ctx, testReview())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRecordsFilmId(t *testing.T) {
	ctx := context.Background()
	c, users, films, events := newController(t)

	users.EXPECT().CheckUser(ctx, usermodel.UserId(7)).Return(nil)
	films.EXPECT().CheckFilm(ctx, filmmodel.FilmId(1)).Return(nil)
	events.EXPECT().RecordEvent(ctx, usermodel.UserId(7), usermodel.EventTypeReview, usermodel.OperationAdd, gomock.Any()).Return(nil)
	created, err := c.Create(ctx, testReview())
	assert.NoError(t, err)

	// Update and delete events carry the reviewed film id, not the
	// review id.
	events.EXPECT().RecordEvent(ctx, usermodel.UserId(7), usermodel.EventTypeReview, usermodel.OperationUpdate, int64(1)).Return(nil)
	updated := *created
	updated.Content = "Changed my mind"
	assert.NoError(t, c.Update(ctx, &updated))

	events.EXPECT().RecordEvent(ctx, usermodel.UserId(7), usermodel.EventTypeReview, usermodel.OperationRemove, int64(1)).Return(nil)
	assert.NoError(t, c.Delete(ctx, created.ReviewId))

	_, err = c.Get(ctx, created.ReviewId)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUnknownReview(t *testing.T) {
	ctx := context.Background()
	c, _, _, _ := newController(t)

	r := testReview()
	r.ReviewId = 99
	assert.ErrorIs(t, c.Update(ctx, r), ErrNotFound)
	assert.ErrorIs(t, c.Delete(ctx, 99), ErrNotFound)
}

func TestCreateSucceedsWhenEventRecordingFails(t *testing.T) {
	ctx := context.Background()
	c, users, films, events := newController(t)

	users.EXPECT().CheckUser(ctx, usermodel.UserId(7)).Return(nil)
	films.EXPECT().CheckFilm(ctx, filmmodel.FilmId(1)).Return(nil)
	events.EXPECT().RecordEvent(ctx, usermodel.UserId(7), usermodel.EventTypeReview, usermodel.OperationAdd, gomock.Any()).
		Return(errors.New("user service unavailable"))

	created, err := c.Create(ctx, testReview())
	assert.NoError(t, err)

	got, err := c.Get(ctx, created.ReviewId)
	assert.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestByFilm(t *testing.T) {
	ctx := context.Background()
	c, users, films, events := newController(t)

	users.EXPECT().CheckUser(ctx, gomock.Any()).Return(nil).AnyTimes()
	films.EXPECT().CheckFilm(ctx, gomock.Any()).Return(nil).AnyTimes()
	events.EXPECT().RecordEvent(ctx, gomock.Any(), usermodel.EventTypeReview, usermodel.OperationAdd, gomock.Any()).Return(nil).AnyTimes()

	for _, filmId := range []filmmodel.FilmId{1, 1, 2} {
		r := testReview()
		r.FilmId = filmId
		_, err := c.Create(ctx, r)
		assert.NoError(t, err)
	}

	reviews, err := c.ByFilm(ctx, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, reviews, 2)

	reviews, err = c.ByFilm(ctx, 1, 1)
	assert.NoError(t, err)
	assert.Len(t, reviews, 1)
}
