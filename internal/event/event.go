package event

import (
	"time"

	"github.com/collab-notes-api/internal/pkg/id"
)

// Type identifies the kind of entity event carried on the bus.
type Type string

const (
	// TypeNoteCreated fires once per note written to a candidate's stream.
	TypeNoteCreated Type = "NoteCreated"
)

// Event is a one-shot, in-process entity event. Delivery is at-most-once:
// there is no persistence and no redelivery beyond what the publisher does.
type Event struct {
	ID         string
	Type       Type
	OccurredAt time.Time
	Data       any
}

// NoteCreatedData is the payload of a TypeNoteCreated event. Note is nil when
// the event carries no document data (malformed invocation); subscribers must
// treat that as a no-op rather than an error.
type NoteCreatedData struct {
	CandidateID string
	NoteID      string
	Note        *NoteSnapshot
}

// NoteSnapshot is the created note's field values at event time.
type NoteSnapshot struct {
	Text       string
	AuthorID   string
	AuthorName string
}

// NewNoteCreated builds a TypeNoteCreated event with a fresh ID.
func NewNoteCreated(data NoteCreatedData) Event {
	return Event{
		ID:         id.New(),
		Type:       TypeNoteCreated,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}
