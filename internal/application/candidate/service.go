package candidate

import (
	"context"
	"fmt"
	"time"

	"github.com/collab-notes-api/internal/domain"
	"github.com/collab-notes-api/internal/pkg/id"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldName     = "name"
	fieldEmail    = "email"
	fieldStatusID = "status_id"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateCandidateRequest) (*domain.Candidate, error)
	List(ctx context.Context) ([]domain.Candidate, error)
	Get(ctx context.Context, candidateID string) (*domain.Candidate, error)
	Update(ctx context.Context, candidateID string, req domain.UpdateCandidateRequest) (*domain.Candidate, error)
	Delete(ctx context.Context, candidateID string) error
}

type candidateStore interface {
	Put(ctx context.Context, c *domain.Candidate) error
	Get(ctx context.Context, candidateID string) (*domain.Candidate, error)
	Scan(ctx context.Context) ([]domain.Candidate, error)
	Update(ctx context.Context, candidateID string, updates map[string]interface{}) error
	SoftDelete(ctx context.Context, candidateID string) error
}

type statusStore interface {
	Get(ctx context.Context, statusID string) (*domain.Status, error)
}

type service struct {
	repo       candidateStore
	statusRepo statusStore
}

func NewService(repo candidateStore, statusRepo statusStore) Service {
	return &service{repo: repo, statusRepo: statusRepo}
}

func (s *service) Create(ctx context.Context, req domain.CreateCandidateRequest) (*domain.Candidate, error) {
	now := time.Now().UTC()
	c := &domain.Candidate{
		CandidateID: id.New(),
		Name:        req.Name,
		Email:       req.Email,
		Enable:      1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]domain.Candidate, error) {
	return s.repo.Scan(ctx)
}

func (s *service) Get(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	return s.repo.Get(ctx, candidateID)
}

func (s *service) Update(ctx context.Context, candidateID string, req domain.UpdateCandidateRequest) (*domain.Candidate, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates[fieldName] = *req.Name
	}
	if req.Email != nil {
		updates[fieldEmail] = *req.Email
	}
	if req.StatusID != nil {
		if _, err := s.statusRepo.Get(ctx, *req.StatusID); err != nil {
			return nil, fmt.Errorf("unknown status %s: %w", *req.StatusID, domain.ErrBadRequest)
		}
		updates[fieldStatusID] = *req.StatusID
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, candidateID)
	}
	if err := s.repo.Update(ctx, candidateID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, candidateID)
}

func (s *service) Delete(ctx context.Context, candidateID string) error {
	return s.repo.SoftDelete(ctx, candidateID)
}
