package model

import "fmt"

// EventType defines the kind of entity an activity feed event concerns.
type EventType string

// Existing event types.
const (
	EventTypeLike   = EventType("LIKE")
	EventTypeReview = EventType("REVIEW")
	EventTypeFriend = EventType("FRIEND")
)

// Operation defines what happened to the entity of an activity feed event.
type Operation string

// Existing operations.
const (
	OperationAdd    = Operation("ADD")
	OperationRemove = Operation("REMOVE")
	OperationUpdate = Operation("UPDATE")
)

// Event defines a single immutable activity feed record. Timestamp and
// EventId are assigned by the repository on insert; EventId breaks ties
// between events sharing a timestamp.
type Event struct {
	Timestamp int64     `json:"timestamp"`
	UserId    UserId    `json:"userId"`
	EventType EventType `json:"eventType"`
	Operation Operation `json:"operation"`
	EventId   int64     `json:"eventId"`
	EntityId  int64     `json:"entityId"`
}

func (e *Event) String() string {
	return fmt.Sprintf("Event{id=%d, userId=%d, type=%s, operation=%s, entityId=%d, timestamp=%d}",
		e.EventId, e.UserId, e.EventType, e.Operation, e.EntityId, e.Timestamp)
}
