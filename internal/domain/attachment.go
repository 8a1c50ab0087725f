package domain

import "time"

// Attachment is a document (resume, cover letter, ...) stored in S3 and
// linked to a candidate record.
type Attachment struct {
	AttachmentID     string    `json:"id" dynamodbav:"attachment_id"`
	CandidateID      string    `json:"candidate_id" dynamodbav:"candidate_id"`
	Object           string    `json:"-" dynamodbav:"object"`
	Name             string    `json:"name" dynamodbav:"name"`
	Size             int64     `json:"size" dynamodbav:"size"`
	Type             string    `json:"type" dynamodbav:"type"`
	Hash             string    `json:"hash" dynamodbav:"hash"`
	UploadedByUserID string    `json:"uploaded_by_user_id" dynamodbav:"uploaded_by_user_id"`
	Enable           bool      `json:"enable" dynamodbav:"enable"`
	CreatedAt        time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt        time.Time `json:"updated" dynamodbav:"updated_at"`
}
