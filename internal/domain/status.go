package domain

// Status is an admin-managed pipeline stage a candidate can be in
// (e.g. "screening", "interview", "hired").
type Status struct {
	StatusID    string `json:"id" dynamodbav:"status_id"`
	Description string `json:"description" dynamodbav:"description"`
}

type StatusInput struct {
	Description string `json:"description" validate:"required"`
}
