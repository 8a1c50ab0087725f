package domain

import "time"

// Notification is written once by the mention fanout and afterwards only
// flipped to read. CandidateName is denormalized at creation time and is not
// kept in sync with later candidate renames.
type Notification struct {
	NotificationID string    `json:"id" dynamodbav:"notification_id"`
	RecipientID    string    `json:"recipient_id" dynamodbav:"recipient_id"`
	SenderName     string    `json:"sender_name" dynamodbav:"sender_name"`
	CandidateID    string    `json:"candidate_id" dynamodbav:"candidate_id"`
	CandidateName  string    `json:"candidate_name" dynamodbav:"candidate_name"`
	NoteID         string    `json:"note_id" dynamodbav:"note_id"`
	MessagePreview string    `json:"message_preview" dynamodbav:"message_preview"`
	IsRead         bool      `json:"is_read" dynamodbav:"is_read"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}
