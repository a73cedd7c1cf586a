package model

import (
	"fmt"
	usermodel "mfilmrate/user/pkg/model"
)

// LikeEvent defines an event containing a like or unlike of a film by a user.
type LikeEvent struct {
	UserId    usermodel.UserId `json:"userId"`
	FilmId    FilmId           `json:"filmId"`
	EventType LikeEventType    `json:"eventType"`
}

func (ev *LikeEvent) String() string {
	return fmt.Sprintf("LikeEvent{UserId=%d, FilmId=%d, EventType=%s}", ev.UserId, ev.FilmId, ev.EventType)
}

// LikeEventType defines the type of a like event.
type LikeEventType string

// Like event types.
const (
	LikeEventTypePut    = LikeEventType("put")
	LikeEventTypeDelete = LikeEventType("delete")
)
