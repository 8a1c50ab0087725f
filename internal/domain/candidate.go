package domain

import "time"

type Candidate struct {
	CandidateID string    `json:"id" dynamodbav:"candidate_id"`
	Name        string    `json:"name" dynamodbav:"name"`
	Email       string    `json:"email" dynamodbav:"email"`
	StatusID    *string   `json:"status_id,omitempty" dynamodbav:"status_id"`
	Enable      int       `json:"enable" dynamodbav:"enable"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreateCandidateRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateCandidateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	StatusID *string `json:"status_id"`
}
