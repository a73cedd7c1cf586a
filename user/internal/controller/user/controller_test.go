package user

import (
	"context"
	"testing"
	"time"

	"mfilmrate/user/internal/repository/memory"
	"mfilmrate/user/pkg/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testUser(id model.UserId) *model.User {
	return &model.User{
		Id:       id,
		Email:    "user@example.com",
		Login:    "login",
		Name:     "Name",
		Birthday: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPutValidation(t *testing.T) {
	tests := []struct {
		name    string
		user    *model.User
		wantErr bool
	}{
		{
			name: "valid user",
			user: testUser(1),
		},
		{
			name:    "bad email",
			user:    &model.User{Id: 1, Email: "not-an-email", Login: "login"},
			wantErr: true,
		},
		{
			name:    "empty login",
			user:    &model.User{Id: 1, Email: "user@example.com", Login: ""},
			wantErr: true,
		},
		{
			name:    "login with spaces",
			user:    &model.User{Id: 1, Email: "user@example.com", Login: "bad login"},
			wantErr: true,
		},
		{
			name: "birthday in the future",
			user: &model.User{
				Id:       1,
				Email:    "user@example.com",
				Login:    "login",
				Birthday: time.Now().Add(24 * time.Hour),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(memory.New(zap.NewNop()), zap.NewNop())
			err := c.Put(context.Background(), tt.user.Id, tt.user)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPutNameFallsBackToLogin(t *testing.T) {
	ctx := context.Background()
	c := New(memory.New(zap.NewNop()), zap.NewNop())

	u := testUser(1)
	u.Name = ""
	assert.NoError(t, c.Put(ctx, 1, u))

	got, err := c.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "login", got.Name)
}

func TestFriendship(t *testing.T) {
	ctx := context.Background()
	c := New(memory.New(zap.NewNop()), zap.NewNop())
	assert.NoError(t, c.Put(ctx, 1, testUser(1)))
	assert.NoError(t, c.Put(ctx, 2, testUser(2)))

	assert.ErrorIs(t, c.AddFriend(ctx, 1, 99), ErrNotFound)
	assert.ErrorIs(t, c.AddFriend(ctx, 99, 1), ErrNotFound)

	assert.NoError(t, c.AddFriend(ctx, 1, 2))
	assert.ErrorIs(t, c.AddFriend(ctx, 1, 2), ErrAlreadyExists)

	friends, err := c.Friends(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, friends, 1)

	assert.NoError(t, c.RemoveFriend(ctx, 1, 2))
	assert.ErrorIs(t, c.RemoveFriend(ctx, 1, 2), ErrNotFound)
}

func TestFriendshipEvents(t *testing.T) {
	ctx := context.Background()
	c := New(memory.New(zap.NewNop()), zap.NewNop())
	assert.NoError(t, c.Put(ctx, 1, testUser(1)))
	assert.NoError(t, c.Put(ctx, 2, testUser(2)))

	assert.NoError(t, c.AddFriend(ctx, 1, 2))
	assert.NoError(t, c.RemoveFriend(ctx, 1, 2))

	feed, err := c.Feed(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, feed, 2)
	assert.Equal(t, model.EventTypeFriend, feed[0].EventType)
	assert.Equal(t, model.OperationAdd, feed[0].Operation)
	assert.Equal(t, int64(2), feed[0].EntityId)
	assert.Equal(t, model.OperationRemove, feed[1].Operation)

	// The passive side sees nothing: feeds are scoped to the actor.
	feed, err = c.Feed(ctx, 2)
	assert.NoError(t, err)
	assert.Empty(t, feed)
}

func TestFailedFriendAddLeavesNoEvent(t *testing.T) {
	ctx := context.Background()
	c := New(memory.New(zap.NewNop()), zap.NewNop())
	assert.NoError(t, c.Put(ctx, 1, testUser(1)))
	assert.NoError(t, c.Put(ctx, 2, testUser(2)))
	assert.NoError(t, c.AddFriend(ctx, 1, 2))

	assert.ErrorIs(t, c.AddFriend(ctx, 1, 2), ErrAlreadyExists)

	feed, err := c.Feed(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, feed, 1)
}

func TestRecordEventAndFeed(t *testing.T) {
	ctx := context.Background()
	c := New(memory.New(zap.NewNop()), zap.NewNop())
	assert.NoError(t, c.Put(ctx, 1, testUser(1)))

	assert.ErrorIs(t, c.RecordEvent(ctx, 99, model.EventTypeLike, model.OperationAdd, 10), ErrNotFound)
	_, err := c.Feed(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, c.RecordEvent(ctx, 1, model.EventTypeLike, model.OperationAdd, 10))
	assert.NoError(t, c.RecordEvent(ctx, 1, model.EventTypeReview, model.OperationAdd, 7))

	feed, err := c.Feed(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, feed, 2)
	assert.Equal(t, model.EventTypeLike, feed[0].EventType)
	assert.Equal(t, int64(10), feed[0].EntityId)
	assert.Equal(t, model.EventTypeReview, feed[1].EventType)
}

func TestCommonFriends(t *testing.T) {
	ctx := context.Background()
	c := New(memory.New(zap.NewNop()), zap.NewNop())
	for id := model.UserId(1); id <= 4; id++ {
		assert.NoError(t, c.Put(ctx, id, testUser(id)))
	}
	assert.NoError(t, c.AddFriend(ctx, 1, 3))
	assert.NoError(t, c.AddFriend(ctx, 1, 4))
	assert.NoError(t, c.AddFriend(ctx, 2, 3))

	common, err := c.CommonFriends(ctx, 1, 2)
	assert.NoError(t, err)
	assert.Len(t, common, 1)
	assert.Equal(t, model.UserId(3), common[0].Id)

	_, err = c.CommonFriends(ctx, 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
