package film

import (
	"context"
	"errors"
	"testing"
	"time"

	"mfilmrate/film/internal/gateway"
	"mfilmrate/film/internal/repository/memory"
	"mfilmrate/film/pkg/model"
	gen "mfilmrate/gen/mock/film/gateway"
	usermodel "mfilmrate/user/pkg/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testFilm(id model.FilmId) *model.Film {
	return &model.Film{
		Id:          id,
		Name:        "Film",
		Duration:    100,
		ReleaseDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// chanIngester replays a fixed sequence of like events.
type chanIngester struct {
	events []model.LikeEvent
}

func (i chanIngester) Ingest(_ context.Context) (chan model.LikeEvent, error) {
	ch := make(chan model.LikeEvent, len(i.events))
	for _, e := range i.events {
		ch <- e
	}
	close(ch)
	return ch, nil
}

func newController(t *testing.T, ingester likeIngester) (*Controller, *gen.MockuserGateway, *gen.MockeventGateway) {
	ctrl := gomock.NewController(t)
	users := gen.NewMockuserGateway(ctrl)
	events := gen.NewMockeventGateway(ctrl)
	c := New(memory.New(zap.NewNop()), ingester, users, events, zap.NewNop())
	return c, users, events
}

func TestPutValidation(t *testing.T) {
	tests := []struct {
		name    string
		film    *model.Film
		wantErr bool
	}{
		{
			name: "valid film",
			film: testFilm(1),
		},
		{
			name:    "empty name",
			film:    &model.Film{Id: 1, Duration: 100, ReleaseDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
			wantErr: true,
		},
		{
			name:    "non-positive duration",
			film:    &model.Film{Id: 1, Name: "Film", Duration: 0, ReleaseDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
			wantErr: true,
		},
		{
			name:    "release before first film screening",
			film:    &model.Film{Id: 1, Name: "Film", Duration: 100, ReleaseDate: time.Date(1895, 12, 27, 0, 0, 0, 0, time.UTC)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newController(t, chanIngester{})
			err := c.Put(context.Background(), tt.film.Id, tt.film)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddLike(t *testing.T) {
	ctx := context.Background()
	c, users, events := newController(t, chanIngester{})
	assert.NoError(t, c.Put(ctx, 1, testFilm(1)))

	users.EXPECT().CheckUser(ctx, usermodel.UserId(7)).Return(nil).Times(2)
	events.EXPECT().RecordEvent(ctx, usermodel.UserId(7), usermodel.EventTypeLike, usermodel.OperationAdd, int64(1)).Return(nil).Times(2)

	assert.NoError(t, c.AddLike(ctx, 1, 7))
	// Liking twice leaves a single edge.
	assert.NoError(t, c.AddLike(ctx, 1, 7))

	likers, err := c.Likers(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, []usermodel.UserId{7}, likers)
}

func TestAddLikeUnknownUser(t *testing.T) {
	ctx := context.Background()
	c, users, _ := newController(t, chanIngester{})
	assert.NoError(t, c.Put(ctx, 1, testFilm(1)))

	users.EXPECT().CheckUser(ctx, usermodel.UserId(7)).Return(gateway.ErrNotFound)
	assert.ErrorIs(t, c.AddLike(ctx, 1, 7), ErrNotFound)
}

func TestAddLikeUnknownFilm(t *testing.T) {
	ctx := context.Background()
	c, users, _ := newController(t, chanIngester{})

	users.EXPECT().CheckUser(ctx, usermodel.UserId(7)).Return(nil)
	assert.ErrorIs(t, c.AddLike(ctx, 99, 7), ErrNotFound)
}

func TestRemoveLike(t *testing.T) {
	ctx := context.Background()
	c, users, events := newController(t, chanIngester{})
	assert.NoError(t, c.Put(ctx, 1, testFilm(1)))

	users.EXPECT().CheckUser(ctx, usermodel.UserId(7)).Return(nil).AnyTimes()
	events.EXPECT().RecordEvent(ctx, usermodel.UserId(7), usermodel.EventTypeLike, usermodel.OperationAdd, int64(1)).Return(nil)
	events.EXPECT().RecordEvent(ctx, usermodel.UserId(7), usermodel.EventTypeLike, usermodel.OperationRemove, int64(1)).Return(nil)

	assert.NoError(t, c.AddLike(ctx, 1, 7))
	assert.NoError(t, c.RemoveLike(ctx, 1, 7))

	liked, err := c.LikedFilms(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, liked)
}

func TestAddLikeSucceedsWhenEventRecordingFails(t *testing.T) {
	ctx := context.Background()
	c, users, events := newController(t, chanIngester{})
	assert.NoError(t, c.Put(ctx, 1, testFilm(1)))

	users.EXPECT().CheckUser(ctx, usermodel.UserId(7)).Return(nil)
	events.EXPECT().RecordEvent(ctx, usermodel.UserId(7), usermodel.EventTypeLike, usermodel.OperationAdd, int64(1)).
		Return(errors.New("user service unavailable"))

	assert.NoError(t, c.AddLike(ctx, 1, 7))
	likers, err := c.Likers(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, []usermodel.UserId{7}, likers)
}

func TestLikersUnknownFilm(t *testing.T) {
	c, _, _ := newController(t, chanIngester{})
	_, err := c.Likers(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStartIngestion(t *testing.T) {
	ctx := context.Background()
	ingester := chanIngester{events: []model.LikeEvent{
		{UserId: 7, FilmId: 1, EventType: model.LikeEventTypePut},
		{UserId: 8, FilmId: 1, EventType: model.LikeEventTypePut},
		{UserId: 7, FilmId: 1, EventType: model.LikeEventTypeDelete},
		{UserId: 9, FilmId: 99, EventType: model.LikeEventTypePut},
		{UserId: 9, FilmId: 1, EventType: model.LikeEventType("bogus")},
	}}
	c, users, events := newController(t, ingester)
	assert.NoError(t, c.Put(ctx, 1, testFilm(1)))

	users.EXPECT().CheckUser(ctx, gomock.Any()).Return(nil).AnyTimes()
	events.EXPECT().RecordEvent(ctx, gomock.Any(), usermodel.EventTypeLike, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Events against missing films and of unknown types are logged and
	// skipped, never aborting the ingestion loop.
	assert.NoError(t, c.StartIngestion(ctx))

	likers, err := c.Likers(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, []usermodel.UserId{8}, likers)
}
