package memory

import (
	"context"
	"testing"

	"mfilmrate/user/internal/repository"
	"mfilmrate/user/pkg/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestUsers(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())

	_, err := r.Get(ctx, 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	u := &model.User{Id: 1, Email: "a@example.com", Login: "a", Name: "Alice"}
	assert.NoError(t, r.Put(ctx, 1, u))

	got, err := r.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, u, got)

	ok, err := r.Exists(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, r.Delete(ctx, 1))
	assert.ErrorIs(t, r.Delete(ctx, 1), repository.ErrNotFound)
	ok, err = r.Exists(ctx, 1)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFriends(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())
	for id := model.UserId(1); id <= 3; id++ {
		assert.NoError(t, r.Put(ctx, id, &model.User{Id: id, Login: "u"}))
	}

	assert.NoError(t, r.AddFriend(ctx, 1, 2))
	assert.ErrorIs(t, r.AddFriend(ctx, 1, 2), repository.ErrAlreadyExists)

	// The edge is directed: 2 did not add 1 back.
	friends, err := r.Friends(ctx, 2)
	assert.NoError(t, err)
	assert.Empty(t, friends)

	friends, err = r.Friends(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, friends, 1)
	assert.Equal(t, model.UserId(2), friends[0].Id)

	assert.NoError(t, r.AddFriend(ctx, 1, 3))
	assert.NoError(t, r.AddFriend(ctx, 2, 3))
	common, err := r.CommonFriends(ctx, 1, 2)
	assert.NoError(t, err)
	assert.Len(t, common, 1)
	assert.Equal(t, model.UserId(3), common[0].Id)

	assert.NoError(t, r.RemoveFriend(ctx, 1, 2))
	assert.ErrorIs(t, r.RemoveFriend(ctx, 1, 2), repository.ErrNotFound)
}

func TestFeed(t *testing.T) {
	ctx := context.Background()
	r := New(zap.NewNop())

	assert.NoError(t, r.AddEvent(ctx, 1, model.EventTypeFriend, model.OperationAdd, 2))
	assert.NoError(t, r.AddEvent(ctx, 2, model.EventTypeLike, model.OperationAdd, 10))
	assert.NoError(t, r.AddEvent(ctx, 1, model.EventTypeLike, model.OperationAdd, 10))
	assert.NoError(t, r.AddEvent(ctx, 1, model.EventTypeLike, model.OperationRemove, 10))

	feed, err := r.Feed(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, feed, 3)
	for _, e := range feed {
		assert.Equal(t, model.UserId(1), e.UserId)
	}
	for i := 1; i < len(feed); i++ {
		prev, cur := feed[i-1], feed[i]
		if prev.Timestamp == cur.Timestamp {
			assert.Less(t, prev.EventId, cur.EventId)
		} else {
			assert.Less(t, prev.Timestamp, cur.Timestamp)
		}
	}
	assert.Equal(t, model.OperationAdd, feed[0].Operation)
	assert.Equal(t, model.EventTypeFriend, feed[0].EventType)
	assert.Equal(t, model.OperationRemove, feed[2].Operation)

	feed, err = r.Feed(ctx, 3)
	assert.NoError(t, err)
	assert.Empty(t, feed)
}
