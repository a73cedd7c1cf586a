package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	filmmodel "mfilmrate/film/pkg/model"
	gen "mfilmrate/gen/mock/recommend/gateway"
	"mfilmrate/recommend/internal/gateway"
	usermodel "mfilmrate/user/pkg/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testFilm(id filmmodel.FilmId) filmmodel.Film {
	return filmmodel.Film{
		Id:          id,
		Name:        fmt.Sprintf("Film %d", id),
		Duration:    100,
		ReleaseDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// stubLikeIndex backs the like index mock with a fixed user-to-films map
// so scenario tests do not have to predict call counts.
func stubLikeIndex(m *gen.MocklikeIndex, likes map[usermodel.UserId][]filmmodel.FilmId) {
	m.EXPECT().LikedFilms(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, userId usermodel.UserId) ([]filmmodel.FilmId, error) {
			return likes[userId], nil
		}).AnyTimes()
	m.EXPECT().Likers(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filmId filmmodel.FilmId) ([]usermodel.UserId, error) {
			var res []usermodel.UserId
			for userId, liked := range likes {
				for _, id := range liked {
					if id == filmId {
						res = append(res, userId)
						break
					}
				}
			}
			return res, nil
		}).AnyTimes()
	m.EXPECT().Film(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filmId filmmodel.FilmId) (*filmmodel.Film, error) {
			f := testFilm(filmId)
			return &f, nil
		}).AnyTimes()
}

func TestGetRecommendations(t *testing.T) {
	tests := []struct {
		name   string
		userId usermodel.UserId
		likes  map[usermodel.UserId][]filmmodel.FilmId
		want   []filmmodel.FilmId
	}{
		{
			name:   "single closest peer",
			userId: 1,
			likes: map[usermodel.UserId][]filmmodel.FilmId{
				1: {10},
				2: {10, 20, 30},
				3: {10, 20},
			},
			want: []filmmodel.FilmId{20, 30},
		},
		{
			name:   "user liked nothing",
			userId: 1,
			likes: map[usermodel.UserId][]filmmodel.FilmId{
				1: {},
				2: {10, 20},
			},
			want: []filmmodel.FilmId{},
		},
		{
			name:   "no overlap with anybody",
			userId: 1,
			likes: map[usermodel.UserId][]filmmodel.FilmId{
				1: {10},
				2: {20, 30},
			},
			want: []filmmodel.FilmId{},
		},
		{
			name:   "peers tied at maximum both contribute",
			userId: 1,
			likes: map[usermodel.UserId][]filmmodel.FilmId{
				1: {10, 20},
				2: {10, 20, 30},
				3: {10, 20, 40},
			},
			want: []filmmodel.FilmId{30, 40},
		},
		{
			name:   "weaker peer excluded",
			userId: 1,
			likes: map[usermodel.UserId][]filmmodel.FilmId{
				1: {10, 20, 30},
				2: {10, 20, 30, 40},
				3: {10, 50},
			},
			want: []filmmodel.FilmId{40},
		},
		{
			name:   "closest peer liked nothing new",
			userId: 1,
			likes: map[usermodel.UserId][]filmmodel.FilmId{
				1: {10, 20},
				2: {10, 20},
			},
			want: []filmmodel.FilmId{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			likesMock := gen.NewMocklikeIndex(ctrl)
			usersMock := gen.NewMockuserGateway(ctrl)
			stubLikeIndex(likesMock, tt.likes)
			usersMock.EXPECT().CheckUser(gomock.Any(), tt.userId).Return(nil)

			c := New(likesMock, usersMock, zap.NewNop())
			res, err := c.GetRecommendations(context.Background(), tt.userId)
			assert.NoError(t, err)

			want := make([]filmmodel.Film, 0, len(tt.want))
			for _, id := range tt.want {
				want = append(want, testFilm(id))
			}
			assert.ElementsMatch(t, want, res, tt.name)
		})
	}
}

func TestGetRecommendationsNeverContainsOwnLikes(t *testing.T) {
	likes := map[usermodel.UserId][]filmmodel.FilmId{
		1: {10, 20},
		2: {10, 20, 30, 40},
	}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	likesMock := gen.NewMocklikeIndex(ctrl)
	usersMock := gen.NewMockuserGateway(ctrl)
	stubLikeIndex(likesMock, likes)
	usersMock.EXPECT().CheckUser(gomock.Any(), usermodel.UserId(1)).Return(nil)

	c := New(likesMock, usersMock, zap.NewNop())
	res, err := c.GetRecommendations(context.Background(), 1)
	assert.NoError(t, err)
	for _, f := range res {
		assert.NotContains(t, likes[1], f.Id)
	}
}

func TestGetRecommendationsUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	likesMock := gen.NewMocklikeIndex(ctrl)
	usersMock := gen.NewMockuserGateway(ctrl)
	usersMock.EXPECT().CheckUser(gomock.Any(), usermodel.UserId(42)).Return(gateway.ErrNotFound)

	c := New(likesMock, usersMock, zap.NewNop())
	res, err := c.GetRecommendations(context.Background(), 42)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRecommendationsGatewayFailure(t *testing.T) {
	wantErr := errors.New("film service unavailable")
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	likesMock := gen.NewMocklikeIndex(ctrl)
	usersMock := gen.NewMockuserGateway(ctrl)
	usersMock.EXPECT().CheckUser(gomock.Any(), usermodel.UserId(1)).Return(nil)
	likesMock.EXPECT().LikedFilms(gomock.Any(), usermodel.UserId(1)).Return(nil, wantErr)

	c := New(likesMock, usersMock, zap.NewNop())
	res, err := c.GetRecommendations(context.Background(), 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, wantErr)
}
