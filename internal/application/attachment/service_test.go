package attachment

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/collab-notes-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAttachmentStore struct{ mock.Mock }

func (m *mockAttachmentStore) Put(ctx context.Context, a *domain.Attachment) error {
	return m.Called(ctx, a).Error(0)
}
func (m *mockAttachmentStore) Get(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if a, _ := args.Get(0).(*domain.Attachment); a != nil {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAttachmentStore) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Attachment, error) {
	args := m.Called(ctx, candidateID)
	if as, _ := args.Get(0).([]domain.Attachment); as != nil {
		return as, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAttachmentStore) SoftDelete(ctx context.Context, attachmentID string) error {
	return m.Called(ctx, attachmentID).Error(0)
}

type mockCandidateStore struct{ mock.Mock }

func (m *mockCandidateStore) Get(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	args := m.Called(ctx, candidateID)
	if c, _ := args.Get(0).(*domain.Candidate); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	// Drain the reader so the tee hash is computed, as the real client does.
	_, _ = io.Copy(io.Discard, r)
	args := m.Called(ctx, key, contentType)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if rc, _ := args.Get(0).(io.ReadCloser); rc != nil {
		return rc, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestUpload_KeysUnderCandidate(t *testing.T) {
	cs := &mockCandidateStore{}
	cs.On("Get", mock.Anything, "c1").Return(&domain.Candidate{CandidateID: "c1"}, nil)
	os := &mockObjectStore{}
	os.On("Upload", mock.Anything, "candidates/c1/resume.pdf", "application/pdf").Return("candidates/c1/resume.pdf", nil)
	repo := &mockAttachmentStore{}
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Attachment")).Return(nil)

	svc := NewService(os, repo, cs)
	a, err := svc.Upload(context.Background(), UploadInput{
		CandidateID: "c1",
		Reader:      strings.NewReader("pdf bytes"),
		Filename:    "resume.pdf",
		ContentType: "application/pdf",
		Size:        9,
		UploaderID:  "u1",
	})

	require.NoError(t, err)
	assert.Equal(t, "candidates/c1/resume.pdf", a.Object)
	assert.Equal(t, "resume.pdf", a.Name)
	assert.Equal(t, "u1", a.UploadedByUserID)
	assert.NotEmpty(t, a.Hash)
	assert.True(t, a.Enable)
	os.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUpload_UnknownCandidate(t *testing.T) {
	cs := &mockCandidateStore{}
	cs.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := NewService(&mockObjectStore{}, &mockAttachmentStore{}, cs)
	_, err := svc.Upload(context.Background(), UploadInput{CandidateID: "missing", Reader: strings.NewReader("x"), Filename: "f"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpload_SanitizesTraversalFilename(t *testing.T) {
	cs := &mockCandidateStore{}
	cs.On("Get", mock.Anything, "c1").Return(&domain.Candidate{CandidateID: "c1"}, nil)
	os := &mockObjectStore{}
	os.On("Upload", mock.Anything, "candidates/c1/passwd", mock.Anything).Return("candidates/c1/passwd", nil)
	repo := &mockAttachmentStore{}
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(os, repo, cs)
	a, err := svc.Upload(context.Background(), UploadInput{
		CandidateID: "c1",
		Reader:      strings.NewReader("x"),
		Filename:    "../../etc/passwd",
	})

	require.NoError(t, err)
	assert.Equal(t, "passwd", a.Name)
	os.AssertExpectations(t)
}

func TestDelete_RemovesObjectThenRecord(t *testing.T) {
	repo := &mockAttachmentStore{}
	repo.On("Get", mock.Anything, "a1").Return(&domain.Attachment{AttachmentID: "a1", Object: "candidates/c1/resume.pdf", Enable: true}, nil)
	repo.On("SoftDelete", mock.Anything, "a1").Return(nil)
	os := &mockObjectStore{}
	os.On("Delete", mock.Anything, "candidates/c1/resume.pdf").Return(nil)

	svc := NewService(os, repo, &mockCandidateStore{})
	require.NoError(t, svc.Delete(context.Background(), "a1"))
	os.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestDownload_DisabledAttachment(t *testing.T) {
	repo := &mockAttachmentStore{}
	repo.On("Get", mock.Anything, "a1").Return(&domain.Attachment{AttachmentID: "a1", Enable: false}, nil)

	svc := NewService(&mockObjectStore{}, repo, &mockCandidateStore{})
	_, _, err := svc.Download(context.Background(), "a1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"../../etc/passwd", "passwd"},
		{"my resume (final).pdf", "my_resume__final_.pdf"},
		{"", "_"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFilename(tt.in), "input %q", tt.in)
	}
}
