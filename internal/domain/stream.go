package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamRidesSynced = "stream:rides:synced"
)

// RideSyncedEvent - событие о новых сохранённых поездках
type RideSyncedEvent struct {
	EventID  uuid.UUID `json:"event_id"`
	RideIDs  []int64   `json:"ride_ids"`
	Source   string    `json:"source"`
	SyncedAt time.Time `json:"synced_at"`
}

// NewRideSyncedEvent creates an event for the given rides.
func NewRideSyncedEvent(source string, rideIDs []int64) *RideSyncedEvent {
	return &RideSyncedEvent{
		EventID:  uuid.New(),
		RideIDs:  rideIDs,
		Source:   source,
		SyncedAt: time.Now().UTC(),
	}
}

// IsEmpty проверяет, есть ли в событии поездки
func (e *RideSyncedEvent) IsEmpty() bool {
	return len(e.RideIDs) == 0
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
