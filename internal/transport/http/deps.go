package http

import (
	"github.com/collab-notes-api/internal/event"
	"github.com/collab-notes-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/collab-notes-api/internal/infrastructure/jwt"
	s3infra "github.com/collab-notes-api/internal/infrastructure/s3"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo         *dynamo.UserRepo
	SessionRepo      *dynamo.SessionRepo
	CandidateRepo    *dynamo.CandidateRepo
	NoteRepo         *dynamo.NoteRepo
	NotificationRepo *dynamo.NotificationRepo
	AttachmentRepo   *dynamo.AttachmentRepo
	StatusRepo       *dynamo.StatusRepo
	S3Store          *s3infra.Store
	JWTProvider      *jwtinfra.Provider
	Bus              *event.Bus
}
