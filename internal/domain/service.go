// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"
	"time"

	"example.com/signup/internal/observability"
)

var (
	// ErrActivityNotFound is returned when the named activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already on the participant list.
	ErrAlreadySignedUp = errors.New("student already signed up")
	// ErrNotSignedUp indicates the student is not on the participant list.
	ErrNotSignedUp = errors.New("student not signed up")
)

// Registry captures the membership operations backing the service. Every
// method must perform its check and mutation inside one critical section.
type Registry interface {
	Snapshot(ctx context.Context) (map[string]Activity, error)
	SignUp(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}

// Notifier receives best-effort notifications after successful mutations.
type Notifier interface {
	StudentSignedUp(ctx context.Context, activity, email string)
	StudentUnregistered(ctx context.Context, activity, email string)
}

// Service orchestrates registry mutations with notifications and metrics.
type Service struct {
	registry Registry
	notifier Notifier
}

// NewService constructs a Service.
func NewService(registry Registry, notifier Notifier) *Service {
	return &Service{registry: registry, notifier: notifier}
}

// ListActivities returns a snapshot of every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.registry.Snapshot(ctx)
}

// SignUp adds the student to the activity's participant list.
func (s *Service) SignUp(ctx context.Context, activity, email string) error {
	if err := s.registry.SignUp(ctx, activity, email); err != nil {
		observability.RecordRejection("signup", rejectionReason(err))
		return err
	}
	observability.RecordSignUp(activity, time.Now().UTC())
	s.notifier.StudentSignedUp(ctx, activity, email)
	return nil
}

// Unregister removes the student from the activity's participant list.
func (s *Service) Unregister(ctx context.Context, activity, email string) error {
	if err := s.registry.Unregister(ctx, activity, email); err != nil {
		observability.RecordRejection("unregister", rejectionReason(err))
		return err
	}
	observability.RecordUnregister(activity)
	s.notifier.StudentUnregistered(ctx, activity, email)
	return nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "activity_not_found"
	case errors.Is(err, ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, ErrNotSignedUp):
		return "not_signed_up"
	default:
		return "internal"
	}
}
