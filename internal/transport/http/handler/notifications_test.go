package handler

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/collab-notes-api/internal/config"
	"github.com/collab-notes-api/internal/domain"
	jwtinfra "github.com/collab-notes-api/internal/infrastructure/jwt"
	"github.com/collab-notes-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockNotificationSvc struct{ mock.Mock }

func (m *mockNotificationSvc) ListUnread(ctx context.Context, userID string) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if ns, _ := args.Get(0).([]domain.Notification); ns != nil {
		return ns, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationSvc) MarkAsRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID, userID)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

// newTestJWTProvider generates a fresh RSA key pair and returns a *jwtinfra.Provider.
func newTestJWTProvider(t *testing.T) *jwtinfra.Provider {
	t.Helper()
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privKey)})
	require.NoError(t, os.WriteFile(privPath, privPEM, 0600))

	pubBytes, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0600))

	p, err := jwtinfra.NewProvider(&config.Config{
		JWTPrivateKeyPath: privPath,
		JWTPublicKeyPath:  pubPath,
		JWTExpiry:         24 * time.Hour,
	})
	require.NoError(t, err)
	return p
}

// bearerReq builds a request with a signed Bearer token for the given userID and role.
func bearerReq(t *testing.T, p *jwtinfra.Provider, method, target, userID, role string, body []byte) *http.Request {
	t.Helper()
	token, err := p.Sign(userID, role, "sess1")
	require.NoError(t, err)
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

// withChiID injects a chi URL param "id" into the request context.
func withChiID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// serveAuthed wraps the handler with middleware.Auth before serving.
func serveAuthed(p *jwtinfra.Provider, h http.Handler, w http.ResponseWriter, r *http.Request) {
	middleware.Auth(p)(h).ServeHTTP(w, r)
}

// --- ListUnread tests ---

func TestListUnread_ReturnsRecipientsNotifications(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockNotificationSvc{}
	svc.On("ListUnread", mock.Anything, "u1").Return([]domain.Notification{
		{NotificationID: "nf1", RecipientID: "u1", SenderName: "Carol", CandidateName: "Jane Doe"},
	}, nil)

	h := NewNotificationHandler(svc)
	r := bearerReq(t, p, http.MethodGet, "/v1/notifications", "u1", "user", nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.ListUnread), rr, r)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []domain.Notification
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Carol", got[0].SenderName)
	svc.AssertExpectations(t)
}

func TestListUnread_NoToken(t *testing.T) {
	p := newTestJWTProvider(t)
	h := NewNotificationHandler(&mockNotificationSvc{})

	r := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.ListUnread), rr, r)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// --- MarkAsRead tests ---

func TestMarkAsRead_OK(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockNotificationSvc{}
	svc.On("MarkAsRead", mock.Anything, "nf1", "u1").Return(&domain.Notification{NotificationID: "nf1", RecipientID: "u1", IsRead: true}, nil)

	h := NewNotificationHandler(svc)
	r := withChiID(bearerReq(t, p, http.MethodPut, "/v1/notifications/nf1/read", "u1", "user", nil), "nf1")
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.MarkAsRead), rr, r)

	require.Equal(t, http.StatusOK, rr.Code)
	var got domain.Notification
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.IsRead)
}

func TestMarkAsRead_OtherUsersNotification(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockNotificationSvc{}
	svc.On("MarkAsRead", mock.Anything, "nf1", "u1").Return(nil, domain.ErrForbidden)

	h := NewNotificationHandler(svc)
	r := withChiID(bearerReq(t, p, http.MethodPut, "/v1/notifications/nf1/read", "u1", "user", nil), "nf1")
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.MarkAsRead), rr, r)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestMarkAsRead_NotFound(t *testing.T) {
	p := newTestJWTProvider(t)
	svc := &mockNotificationSvc{}
	svc.On("MarkAsRead", mock.Anything, "missing", "u1").Return(nil, domain.ErrNotFound)

	h := NewNotificationHandler(svc)
	r := withChiID(bearerReq(t, p, http.MethodPut, "/v1/notifications/missing/read", "u1", "user", nil), "missing")
	rr := httptest.NewRecorder()
	serveAuthed(p, http.HandlerFunc(h.MarkAsRead), rr, r)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
