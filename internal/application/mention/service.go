package mention

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/collab-notes-api/internal/domain"
	"github.com/collab-notes-api/internal/event"
)

const (
	// fallbackCandidateName stands in when the parent candidate record is
	// missing; degraded output is preferred over aborting the fanout.
	fallbackCandidateName = "A candidate"

	// previewLimit is the number of characters of note text carried on a
	// notification, cut verbatim with no trimming.
	previewLimit = 100
)

// Outcome classifies what happened to one mention token during fanout.
type Outcome string

const (
	OutcomeCreated        Outcome = "created"
	OutcomeSkippedUnknown Outcome = "skipped_unknown_user"
	OutcomeSkippedSelf    Outcome = "skipped_self_mention"
	OutcomeFailed         Outcome = "failed"
)

// Result is the per-recipient record of one fanout invocation. Callers decide
// what a partial fanout means; the fanout itself never rolls back earlier
// writes.
type Result struct {
	Username string
	Outcome  Outcome
	Err      error
}

type userStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type candidateStore interface {
	Get(ctx context.Context, candidateID string) (*domain.Candidate, error)
}

type notificationStore interface {
	Put(ctx context.Context, n *domain.Notification) error
}

// AlertSender delivers best-effort out-of-band alerts (email, SMS) for a
// stored notification. Implementations must not fail the fanout.
type AlertSender interface {
	MentionAlert(ctx context.Context, recipient *domain.User, n *domain.Notification)
}

// Fanout turns one note-created event into at most one notification per
// distinct mentioned user. It is stateless across invocations; the bus may
// run many invocations concurrently for different notes.
type Fanout struct {
	users         userStore
	candidates    candidateStore
	notifications notificationStore
	alerts        AlertSender // optional, may be nil
}

type FanoutDeps struct {
	Users         userStore
	Candidates    candidateStore
	Notifications notificationStore
	Alerts        AlertSender
}

func NewFanout(deps FanoutDeps) *Fanout {
	return &Fanout{
		users:         deps.Users,
		candidates:    deps.Candidates,
		notifications: deps.Notifications,
		alerts:        deps.Alerts,
	}
}

// Register subscribes the fanout to note-created events on bus.
func (f *Fanout) Register(bus *event.Bus) {
	bus.Subscribe(event.TypeNoteCreated, func(ctx context.Context, evt event.Event) {
		data, ok := evt.Data.(event.NoteCreatedData)
		if !ok {
			slog.Warn("note-created event with unexpected payload type", "event_id", evt.ID)
			return
		}
		if _, err := f.Process(ctx, data); err != nil {
			slog.Error("mention fanout aborted", "event_id", evt.ID, "candidate_id", data.CandidateID, "err", err)
		}
	})
}

// Process runs one fanout invocation. Recipients are handled sequentially and
// independently: an unresolved username or a single failed write is recorded
// in the result list and processing continues. The returned error is non-nil
// only when the invocation as a whole could not run (candidate lookup fault).
func (f *Fanout) Process(ctx context.Context, data event.NoteCreatedData) ([]Result, error) {
	if data.Note == nil {
		slog.Info("note-created event carried no note data, skipping", "candidate_id", data.CandidateID, "note_id", data.NoteID)
		return nil, nil
	}
	note := data.Note

	tokens := Extract(note.Text)
	if len(tokens) == 0 {
		slog.Debug("no mentions found in note", "note_id", data.NoteID)
		return nil, nil
	}

	// One candidate lookup per event, not per mention.
	candidateName := fallbackCandidateName
	c, err := f.candidates.Get(ctx, data.CandidateID)
	switch {
	case err == nil:
		candidateName = c.Name
	case errors.Is(err, domain.ErrNotFound):
		slog.Warn("candidate missing, using placeholder name", "candidate_id", data.CandidateID)
	default:
		return nil, fmt.Errorf("lookup candidate %s: %w", data.CandidateID, err)
	}

	results := make([]Result, 0, len(tokens))
	for _, username := range tokens {
		results = append(results, f.notify(ctx, username, note, data, candidateName))
	}
	return results, nil
}

func (f *Fanout) notify(ctx context.Context, username string, note *event.NoteSnapshot, data event.NoteCreatedData, candidateName string) Result {
	u, err := f.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			slog.Info("mentioned user not found, skipping", "username", username, "note_id", data.NoteID)
			return Result{Username: username, Outcome: OutcomeSkippedUnknown}
		}
		slog.Warn("mention lookup failed", "username", username, "note_id", data.NoteID, "err", err)
		return Result{Username: username, Outcome: OutcomeFailed, Err: err}
	}

	if u.UserID == note.AuthorID {
		slog.Info("skipping self-notification", "username", username, "note_id", data.NoteID)
		return Result{Username: username, Outcome: OutcomeSkippedSelf}
	}

	n := &domain.Notification{
		RecipientID:    u.UserID,
		SenderName:     note.AuthorName,
		CandidateID:    data.CandidateID,
		CandidateName:  candidateName,
		NoteID:         data.NoteID,
		MessagePreview: preview(note.Text),
		IsRead:         false,
	}
	if err := f.notifications.Put(ctx, n); err != nil {
		slog.Warn("notification write failed", "username", username, "note_id", data.NoteID, "err", err)
		return Result{Username: username, Outcome: OutcomeFailed, Err: err}
	}

	if f.alerts != nil {
		f.alerts.MentionAlert(ctx, u, n)
	}
	return Result{Username: username, Outcome: OutcomeCreated}
}

// preview returns the first previewLimit characters of text, verbatim.
func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLimit {
		return text
	}
	return string(runes[:previewLimit])
}
