package seq

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	Created  EventKind = "created"
	Extended EventKind = "extended"
	Borrowed EventKind = "borrowed"
	Released EventKind = "released"
	Moved    EventKind = "moved"
)

// Event is one step in the life of a Vec's storage
type Event struct {
	Kind  EventKind `json:"kind"`
	Owner uuid.UUID `json:"owner"`
	Len   int       `json:"len"`
	Cap   int       `json:"cap"`
	At    time.Time `json:"at"`
}

func (e Event) String() string {
	return fmt.Sprintf("%s owner=%s len=%d cap=%d", e.Kind, e.Owner, e.Len, e.Cap)
}

// history is a circular buffer holding the last capacity events
type history struct {
	buffer   []Event
	capacity int
	head     int
	size     int
}

func newHistory(capacity int) *history {
	capacity = max(capacity, 1)
	return &history{
		buffer:   make([]Event, capacity),
		capacity: capacity,
	}
}

func (h *history) add(e Event) {
	h.buffer[h.head] = e
	h.head = (h.head + 1) % h.capacity
	if h.size < h.capacity {
		h.size++
	}
}

// all returns the buffered events in insertion order
func (h *history) all() []Event {
	result := make([]Event, h.size)
	for i := 0; i < h.size; i++ {
		index := (h.head - h.size + i + h.capacity) % h.capacity
		result[i] = h.buffer[index]
	}
	return result
}
