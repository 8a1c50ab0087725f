package alert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/collab-notes-api/internal/domain"
	"github.com/collab-notes-api/internal/infrastructure/smtp"
	"github.com/collab-notes-api/internal/infrastructure/sns"
)

// Notifier delivers out-of-band mention alerts over email and SMS. Either
// channel may be nil, and delivery errors are logged and swallowed: the
// stored notification is the source of truth, alerts are best effort.
type Notifier struct {
	mailer smtp.Mailer
	sms    sns.SMSSender
}

type Deps struct {
	Mailer smtp.Mailer
	SMS    sns.SMSSender
}

func New(deps Deps) *Notifier {
	return &Notifier{mailer: deps.Mailer, sms: deps.SMS}
}

func (n *Notifier) MentionAlert(ctx context.Context, recipient *domain.User, notif *domain.Notification) {
	subject := fmt.Sprintf("%s mentioned you in a note", notif.SenderName)
	body := fmt.Sprintf("%s mentioned you in a note on %s:\n\n%s", notif.SenderName, notif.CandidateName, notif.MessagePreview)

	if n.mailer != nil && recipient.Email != "" {
		if err := n.mailer.SendEmail(recipient.Email, subject, body); err != nil {
			slog.Warn("mention email alert failed", "recipient_id", recipient.UserID, "err", err)
		}
	}

	if n.sms != nil && recipient.Phone != nil && *recipient.Phone != "" {
		msg := fmt.Sprintf("%s mentioned you in a note on %s", notif.SenderName, notif.CandidateName)
		if err := n.sms.SendSMS(ctx, *recipient.Phone, msg); err != nil {
			slog.Warn("mention sms alert failed", "recipient_id", recipient.UserID, "err", err)
		}
	}
}
