// Package registry stores activities in memory for the signup service.
package registry

import (
	"context"
	"slices"
	"sync"

	"example.com/signup/internal/domain"
)

// InMemory holds all activity records behind a single lock. Each mutation
// performs its membership check and the mutation under the same lock hold,
// so concurrent signups for the same student cannot both pass the check.
type InMemory struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewInMemory constructs a registry populated with a copy of seed.
func NewInMemory(seed map[string]domain.Activity) *InMemory {
	return &InMemory{activities: copyActivities(seed)}
}

// Snapshot implements domain.Registry. The returned mapping shares nothing
// with the registry's internal state.
func (r *InMemory) Snapshot(ctx context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyActivities(r.activities), nil
}

// SignUp appends the email to the activity's participant list, preserving
// insertion order. Capacity is advisory and deliberately not checked.
func (r *InMemory) SignUp(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return domain.ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	return nil
}

// Unregister removes the email from the activity's participant list. The
// relative order of the remaining participants is unchanged.
func (r *InMemory) Unregister(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	idx := slices.Index(activity.Participants, email)
	if idx < 0 {
		return domain.ErrNotSignedUp
	}

	activity.Participants = slices.Delete(activity.Participants, idx, idx+1)
	r.activities[name] = activity
	return nil
}

func copyActivities(src map[string]domain.Activity) map[string]domain.Activity {
	out := make(map[string]domain.Activity, len(src))
	for name, activity := range src {
		// Non-nil copies keep empty lists serializing as [] rather than null.
		activity.Participants = append([]string{}, activity.Participants...)
		out[name] = activity
	}
	return out
}
