package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/leighmacdonald/folio/internal/store"
	"golang.org/x/sync/semaphore"
)

const (
	StatusSuccess = "success"
	StatusFailure = "error"
)

// History persists finished submissions.
type History interface {
	AddSubmission(ctx context.Context, submission store.Submission) (int64, error)
}

// Submitter guarantees at most one in-flight submission and records each finished attempt.
type Submitter struct {
	client  *Client
	history History
	slot    *semaphore.Weighted
	now     func() time.Time
}

// NewSubmitter wraps client. history may be nil.
func NewSubmitter(client *Client, history History) *Submitter {
	return &Submitter{
		client:  client,
		history: history,
		slot:    semaphore.NewWeighted(1),
		now:     time.Now,
	}
}

// Submit sends the form, returning ErrInFlight without sending anything when another
// submission has not completed yet. There is no cancellation beyond ctx; once sent a request
// runs until it completes or the transport fails.
func (s *Submitter) Submit(ctx context.Context, form Form) error {
	if !s.slot.TryAcquire(1) {
		return ErrInFlight
	}
	defer s.slot.Release(1)

	started := s.now()
	errSubmit := s.client.Submit(ctx, form)
	if errSubmit != nil {
		slog.Error("Contact submission failed", slog.String("endpoint", s.client.Endpoint()),
			slog.String("error", errSubmit.Error()))
	} else {
		slog.Info("Contact submission sent", slog.String("email", form.Email),
			slog.Duration("elapsed", s.now().Sub(started)))
	}

	s.record(ctx, form, started, errSubmit)

	return errSubmit
}

func (s *Submitter) record(ctx context.Context, form Form, started time.Time, errSubmit error) {
	if s.history == nil {
		return
	}

	submission := store.Submission{
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		Status:    StatusSuccess,
		CreatedOn: started,
	}

	if errSubmit != nil {
		submission.Status = StatusFailure
		submission.Error = errSubmit.Error()
	}

	var statusErr StatusError
	if errors.As(errSubmit, &statusErr) {
		submission.HTTPStatus = statusErr.Code
	}

	// Recording must not change the outcome the user sees.
	if _, err := s.history.AddSubmission(context.WithoutCancel(ctx), submission); err != nil {
		slog.Error("Failed to record submission", slog.String("error", err.Error()))
	}
}
