package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

func TestPublisherWritesSignedUpEvent(t *testing.T) {
	writer := &stubWriter{}
	publisher := NewPublisher(writer, WithLogger(log.New(testWriter{t}, "", 0)))
	now := time.Date(2026, time.March, 2, 15, 30, 0, 0, time.UTC)
	publisher.now = func() time.Time { return now }

	publisher.StudentSignedUp(context.Background(), "Chess Club", "test@mergington.edu")

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	require.Equal(t, "Chess Club", string(msg.Key))
	require.Equal(t, now, msg.Time)
	require.Len(t, msg.Headers, 1)
	require.Equal(t, "event_type", msg.Headers[0].Key)
	require.Equal(t, TypeStudentSignedUp, string(msg.Headers[0].Value))

	var payload StudentSignedUp
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	require.Equal(t, "Chess Club", payload.Activity)
	require.Equal(t, "test@mergington.edu", payload.Email)
	require.Equal(t, now, payload.OccurredAt)
}

func TestPublisherWritesUnregisteredEvent(t *testing.T) {
	writer := &stubWriter{}
	publisher := NewPublisher(writer, WithLogger(log.New(testWriter{t}, "", 0)))

	publisher.StudentUnregistered(context.Background(), "Gym Class", "john@mergington.edu")

	require.Len(t, writer.messages, 1)
	require.Equal(t, TypeStudentUnregistered, string(writer.messages[0].Headers[0].Value))

	var payload StudentUnregistered
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &payload))
	require.Equal(t, "Gym Class", payload.Activity)
	require.Equal(t, "john@mergington.edu", payload.Email)
}

func TestPublisherSwallowsBrokerErrors(t *testing.T) {
	writer := &stubWriter{err: errors.New("broker down")}
	publisher := NewPublisher(writer, WithLogger(log.New(testWriter{t}, "", 0)))

	publisher.StudentSignedUp(context.Background(), "Chess Club", "test@mergington.edu")

	require.Equal(t, 1, writer.calls)
}

func TestPublisherCloseClosesWriter(t *testing.T) {
	writer := &stubWriter{}
	publisher := NewPublisher(writer)

	require.NoError(t, publisher.Close())
	require.True(t, writer.closed)
}

type stubWriter struct {
	messages []kafka.Message
	calls    int
	err      error
	closed   bool
}

func (w *stubWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *stubWriter) Close() error {
	w.closed = true
	return nil
}

type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (int, error) {
	tw.t.Log(string(p))
	return len(p), nil
}
