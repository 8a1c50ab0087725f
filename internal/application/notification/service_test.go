package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/collab-notes-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNotificationStore struct{ mock.Mock }

func (m *mockNotificationStore) ListUnread(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	args := m.Called(ctx, recipientID)
	if ns, _ := args.Get(0).([]domain.Notification); ns != nil {
		return ns, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNotificationStore) Get(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNotificationStore) MarkAsRead(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestMarkAsRead_OwnNotification(t *testing.T) {
	repo := &mockNotificationStore{}
	repo.On("Get", mock.Anything, "nf1").Return(&domain.Notification{NotificationID: "nf1", RecipientID: "u1"}, nil)
	repo.On("MarkAsRead", mock.Anything, "nf1").Return(&domain.Notification{NotificationID: "nf1", RecipientID: "u1", IsRead: true}, nil)

	n, err := NewService(repo).MarkAsRead(context.Background(), "nf1", "u1")

	require.NoError(t, err)
	assert.True(t, n.IsRead)
	repo.AssertExpectations(t)
}

func TestMarkAsRead_OtherUsersNotification(t *testing.T) {
	repo := &mockNotificationStore{}
	repo.On("Get", mock.Anything, "nf1").Return(&domain.Notification{NotificationID: "nf1", RecipientID: "u2"}, nil)

	_, err := NewService(repo).MarkAsRead(context.Background(), "nf1", "u1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	repo.AssertNotCalled(t, "MarkAsRead", mock.Anything, mock.Anything)
}

func TestMarkAsRead_NotFound(t *testing.T) {
	repo := &mockNotificationStore{}
	repo.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	_, err := NewService(repo).MarkAsRead(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestListUnread(t *testing.T) {
	repo := &mockNotificationStore{}
	repo.On("ListUnread", mock.Anything, "u1").Return([]domain.Notification{{NotificationID: "nf1"}}, nil)

	ns, err := NewService(repo).ListUnread(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, ns, 1)
}
