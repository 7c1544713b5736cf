package queue

import (
	"time"

	"github.com/google/uuid"
)

// EntityEvent describes one committed mutation, published after the
// transaction that produced it.
type EntityEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	EntityID   int       `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEntityEvent(kind string, entityID int) EntityEvent {
	return EntityEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}
