package domain

import "time"

// Note is a timestamped comment attached to exactly one candidate.
// Notes are immutable once written; there is no update or delete path.
type Note struct {
	NoteID      string    `json:"id" dynamodbav:"note_id"`
	CandidateID string    `json:"candidate_id" dynamodbav:"candidate_id"`
	Text        string    `json:"text" dynamodbav:"text"`
	AuthorID    string    `json:"author_id" dynamodbav:"author_id"`
	AuthorName  string    `json:"author_name" dynamodbav:"author_name"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
}

type CreateNoteRequest struct {
	Text string `json:"text" validate:"required"`
}
