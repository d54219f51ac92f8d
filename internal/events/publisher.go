package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Writer exposes the minimal kafka.Writer interface needed by the publisher.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Option configures optional behaviour for the Publisher.
type Option func(*Publisher)

// WithLogger overrides the logger used to report publish failures.
func WithLogger(logger *log.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// Publisher writes membership events to a broker topic.
type Publisher struct {
	writer Writer
	logger *log.Logger
	now    func() time.Time
}

// NewPublisher constructs a Publisher over the provided writer.
func NewPublisher(writer Writer, opts ...Option) *Publisher {
	p := &Publisher{
		writer: writer,
		logger: log.New(log.Writer(), "[events] ", log.LstdFlags|log.Lshortfile),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewKafkaWriter builds a kafka.Writer for the membership topic.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
}

// StudentSignedUp implements domain.Notifier.
func (p *Publisher) StudentSignedUp(ctx context.Context, activity, email string) {
	p.publish(ctx, TypeStudentSignedUp, activity, StudentSignedUp{
		Activity:   activity,
		Email:      email,
		OccurredAt: p.now(),
	})
}

// StudentUnregistered implements domain.Notifier.
func (p *Publisher) StudentUnregistered(ctx context.Context, activity, email string) {
	p.publish(ctx, TypeStudentUnregistered, activity, StudentUnregistered{
		Activity:   activity,
		Email:      email,
		OccurredAt: p.now(),
	})
}

func (p *Publisher) publish(ctx context.Context, eventType, activity string, payload any) {
	value, err := json.Marshal(payload)
	if err != nil {
		p.logger.Printf("encode error (event_type=%s): %v", eventType, err)
		recordPublishError(eventType)
		return
	}

	msg := kafka.Message{
		Key:   []byte(activity),
		Value: value,
		Time:  p.now(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Printf("publish error (event_type=%s, activity=%s): %v", eventType, activity, err)
		recordPublishError(eventType)
		return
	}
	recordPublished(eventType)
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Nop discards all notifications. It is the default when no broker is
// configured.
type Nop struct{}

func (Nop) StudentSignedUp(context.Context, string, string)     {}
func (Nop) StudentUnregistered(context.Context, string, string) {}
