package candidate

import (
	"context"
	"errors"
	"testing"

	"github.com/collab-notes-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCandidateStore struct{ mock.Mock }

func (m *mockCandidateStore) Put(ctx context.Context, c *domain.Candidate) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCandidateStore) Get(ctx context.Context, candidateID string) (*domain.Candidate, error) {
	args := m.Called(ctx, candidateID)
	if c, _ := args.Get(0).(*domain.Candidate); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCandidateStore) Scan(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if cs, _ := args.Get(0).([]domain.Candidate); cs != nil {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCandidateStore) Update(ctx context.Context, candidateID string, updates map[string]interface{}) error {
	return m.Called(ctx, candidateID, updates).Error(0)
}
func (m *mockCandidateStore) SoftDelete(ctx context.Context, candidateID string) error {
	return m.Called(ctx, candidateID).Error(0)
}

type mockStatusStore struct{ mock.Mock }

func (m *mockStatusStore) Get(ctx context.Context, statusID string) (*domain.Status, error) {
	args := m.Called(ctx, statusID)
	if s, _ := args.Get(0).(*domain.Status); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreate_NewCandidate(t *testing.T) {
	repo := &mockCandidateStore{}
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil)

	svc := NewService(repo, &mockStatusStore{})
	c, err := svc.Create(context.Background(), domain.CreateCandidateRequest{Name: "Jane Doe", Email: "jane@example.com"})

	require.NoError(t, err)
	assert.NotEmpty(t, c.CandidateID)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, 1, c.Enable)
	assert.Nil(t, c.StatusID)
	repo.AssertExpectations(t)
}

func TestUpdate_UnknownStatusRejected(t *testing.T) {
	statusID := "bogus"
	ss := &mockStatusStore{}
	ss.On("Get", mock.Anything, "bogus").Return(nil, domain.ErrNotFound)

	svc := NewService(&mockCandidateStore{}, ss)
	_, err := svc.Update(context.Background(), "c1", domain.UpdateCandidateRequest{StatusID: &statusID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestUpdate_MovesPipelineStage(t *testing.T) {
	statusID := "st1"
	ss := &mockStatusStore{}
	ss.On("Get", mock.Anything, "st1").Return(&domain.Status{StatusID: "st1", Description: "interview"}, nil)

	repo := &mockCandidateStore{}
	repo.On("Update", mock.Anything, "c1", map[string]interface{}{fieldStatusID: "st1"}).Return(nil)
	repo.On("Get", mock.Anything, "c1").Return(&domain.Candidate{CandidateID: "c1", StatusID: &statusID}, nil)

	svc := NewService(repo, ss)
	c, err := svc.Update(context.Background(), "c1", domain.UpdateCandidateRequest{StatusID: &statusID})

	require.NoError(t, err)
	require.NotNil(t, c.StatusID)
	assert.Equal(t, "st1", *c.StatusID)
	repo.AssertExpectations(t)
}

func TestUpdate_NoFieldsReturnsCurrent(t *testing.T) {
	repo := &mockCandidateStore{}
	repo.On("Get", mock.Anything, "c1").Return(&domain.Candidate{CandidateID: "c1"}, nil)

	svc := NewService(repo, &mockStatusStore{})
	c, err := svc.Update(context.Background(), "c1", domain.UpdateCandidateRequest{})

	require.NoError(t, err)
	assert.Equal(t, "c1", c.CandidateID)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
