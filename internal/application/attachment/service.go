package attachment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/collab-notes-api/internal/domain"
)

type UploadInput struct {
	CandidateID string
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
	UploaderID  string
}

type Service interface {
	Upload(ctx context.Context, input UploadInput) (*domain.Attachment, error)
	Download(ctx context.Context, attachmentID string) (io.ReadCloser, *domain.Attachment, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]domain.Attachment, error)
	Delete(ctx context.Context, attachmentID string) error
}

type attachmentStore interface {
	Put(ctx context.Context, a *domain.Attachment) error
	Get(ctx context.Context, attachmentID string) (*domain.Attachment, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]domain.Attachment, error)
	SoftDelete(ctx context.Context, attachmentID string) error
}

type candidateStore interface {
	Get(ctx context.Context, candidateID string) (*domain.Candidate, error)
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	objects       objectStore
	repo          attachmentStore
	candidateRepo candidateStore
}

func NewService(objects objectStore, repo attachmentStore, candidateRepo candidateStore) Service {
	return &service{objects: objects, repo: repo, candidateRepo: candidateRepo}
}

func (s *service) Upload(ctx context.Context, input UploadInput) (*domain.Attachment, error) {
	if _, err := s.candidateRepo.Get(ctx, input.CandidateID); err != nil {
		return nil, fmt.Errorf("candidate %s: %w", input.CandidateID, err)
	}
	safeName := sanitizeFilename(input.Filename)
	key := fmt.Sprintf("candidates/%s/%s", input.CandidateID, safeName)
	hasher := sha256.New()
	tee := io.TeeReader(input.Reader, hasher)
	if _, err := s.objects.Upload(ctx, key, tee, input.ContentType); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a := &domain.Attachment{
		CandidateID:      input.CandidateID,
		Object:           key,
		Name:             safeName,
		Size:             input.Size,
		Type:             input.ContentType,
		Hash:             hex.EncodeToString(hasher.Sum(nil)),
		UploadedByUserID: input.UploaderID,
		Enable:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.repo.Put(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Download(ctx context.Context, attachmentID string) (io.ReadCloser, *domain.Attachment, error) {
	a, err := s.repo.Get(ctx, attachmentID)
	if err != nil {
		return nil, nil, err
	}
	if !a.Enable {
		return nil, nil, fmt.Errorf("attachment not found: %w", domain.ErrNotFound)
	}
	rc, err := s.objects.Download(ctx, a.Object)
	if err != nil {
		return nil, nil, err
	}
	return rc, a, nil
}

func (s *service) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Attachment, error) {
	if _, err := s.candidateRepo.Get(ctx, candidateID); err != nil {
		return nil, fmt.Errorf("candidate %s: %w", candidateID, err)
	}
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *service) Delete(ctx context.Context, attachmentID string) error {
	a, err := s.repo.Get(ctx, attachmentID)
	if err != nil {
		return err
	}
	if !a.Enable {
		return fmt.Errorf("attachment not found: %w", domain.ErrNotFound)
	}
	if err := s.objects.Delete(ctx, a.Object); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, attachmentID)
}

// sanitizeFilename strips directory components and keeps only safe characters
// (alphanumeric, dot, dash, underscore) to prevent path traversal in S3 keys.
func sanitizeFilename(name string) string {
	name = path.Base(name)
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	if result := b.String(); result != "" && result != "." {
		return result
	}
	return "_"
}
