package alert

import (
	"context"
	"errors"
	"testing"

	"github.com/collab-notes-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

type mockSMS struct{ mock.Mock }

func (m *mockSMS) SendSMS(ctx context.Context, to, message string) error {
	return m.Called(ctx, to, message).Error(0)
}

func sampleNotification() *domain.Notification {
	return &domain.Notification{
		RecipientID:    "u2",
		SenderName:     "Carol",
		CandidateName:  "Jane Doe",
		MessagePreview: "hi @bob",
	}
}

func TestMentionAlert_BothChannels(t *testing.T) {
	phone := "+15550001111"
	recipient := &domain.User{UserID: "u2", Email: "bob@example.com", Phone: &phone}

	mailer := &mockMailer{}
	mailer.On("SendEmail", "bob@example.com", mock.Anything, mock.Anything).Return(nil)
	sms := &mockSMS{}
	sms.On("SendSMS", mock.Anything, phone, mock.Anything).Return(nil)

	New(Deps{Mailer: mailer, SMS: sms}).MentionAlert(context.Background(), recipient, sampleNotification())

	mailer.AssertExpectations(t)
	sms.AssertExpectations(t)
}

func TestMentionAlert_NilChannelsAreNoop(t *testing.T) {
	recipient := &domain.User{UserID: "u2", Email: "bob@example.com"}
	// Must not panic with neither channel configured.
	New(Deps{}).MentionAlert(context.Background(), recipient, sampleNotification())
}

func TestMentionAlert_NoPhoneSkipsSMS(t *testing.T) {
	recipient := &domain.User{UserID: "u2", Email: "bob@example.com"}

	sms := &mockSMS{}
	New(Deps{SMS: sms}).MentionAlert(context.Background(), recipient, sampleNotification())

	sms.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything, mock.Anything)
}

func TestMentionAlert_DeliveryErrorIsSwallowed(t *testing.T) {
	recipient := &domain.User{UserID: "u2", Email: "bob@example.com"}

	mailer := &mockMailer{}
	mailer.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	// Must not panic or propagate.
	New(Deps{Mailer: mailer}).MentionAlert(context.Background(), recipient, sampleNotification())
	mailer.AssertExpectations(t)
}
