// Package events publishes membership change notifications for downstream
// consumers (rosters, email digests). Publishing is best effort and never
// affects the outcome of the HTTP request that triggered it.
package events

import "time"

// Event type names carried in the event_type message header.
const (
	TypeStudentSignedUp     = "student.signed_up"
	TypeStudentUnregistered = "student.unregistered"
)

// StudentSignedUp is emitted after a successful signup.
type StudentSignedUp struct {
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StudentUnregistered is emitted after a successful unregistration.
type StudentUnregistered struct {
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
