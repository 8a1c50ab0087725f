package note

import (
	"context"
	"fmt"

	"github.com/collab-notes-api/internal/domain"
	"github.com/collab-notes-api/internal/event"
)

type Service interface {
	Create(ctx context.Context, candidateID, authorID string, req domain.CreateNoteRequest) (*domain.Note, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]domain.Note, error)
}

type noteStore interface {
	Put(ctx context.Context, n *domain.Note) error
	ListByCandidate(ctx context.Context, candidateID string) ([]domain.Note, error)
}

type candidateStore interface {
	Get(ctx context.Context, candidateID string) (*domain.Candidate, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	repo          noteStore
	candidateRepo candidateStore
	userRepo      userStore
	bus           *event.Bus
}

type ServiceDeps struct {
	NoteRepo      noteStore
	CandidateRepo candidateStore
	UserRepo      userStore
	Bus           *event.Bus
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:          deps.NoteRepo,
		candidateRepo: deps.CandidateRepo,
		userRepo:      deps.UserRepo,
		bus:           deps.Bus,
	}
}

// Create stores the note and then announces it on the bus. Notification
// fanout happens after the write, off the request path: a note is never lost
// because a downstream handler failed.
func (s *service) Create(ctx context.Context, candidateID, authorID string, req domain.CreateNoteRequest) (*domain.Note, error) {
	if _, err := s.candidateRepo.Get(ctx, candidateID); err != nil {
		return nil, fmt.Errorf("candidate %s: %w", candidateID, err)
	}
	author, err := s.userRepo.Get(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("author %s: %w", authorID, err)
	}

	n := &domain.Note{
		CandidateID: candidateID,
		Text:        req.Text,
		AuthorID:    author.UserID,
		AuthorName:  author.Name,
	}
	// The store assigns NoteID and CreatedAt at write time.
	if err := s.repo.Put(ctx, n); err != nil {
		return nil, err
	}

	s.bus.Publish(event.NewNoteCreated(event.NoteCreatedData{
		CandidateID: n.CandidateID,
		NoteID:      n.NoteID,
		Note: &event.NoteSnapshot{
			Text:       n.Text,
			AuthorID:   n.AuthorID,
			AuthorName: n.AuthorName,
		},
	}))
	return n, nil
}

func (s *service) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Note, error) {
	if _, err := s.candidateRepo.Get(ctx, candidateID); err != nil {
		return nil, fmt.Errorf("candidate %s: %w", candidateID, err)
	}
	return s.repo.ListByCandidate(ctx, candidateID)
}
