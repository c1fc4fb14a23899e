package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"learnhub_checkout/internal/config"
	"learnhub_checkout/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

const (
	defaultBatchSize    = 1
	defaultBatchTimeout = 10 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewWriter returns nil when no brokers are configured.
func NewWriter(cfg config.Kafka) *kafka.Writer {
	brokers := splitBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.ReferenceHash{},
		BatchSize:              defaultBatchSize,
		RequiredAcks:           kafka.RequireAll,
		BatchTimeout:           defaultBatchTimeout,
		Async:                  false,
		AllowAutoTopicCreation: false,
	}
}

// AccessGrantedPublisher publishes access_granted events keyed by intent id.
type AccessGrantedPublisher struct {
	writer messageWriter
	logger *slog.Logger
}

var _ interfaces.IEventPublisher = (*AccessGrantedPublisher)(nil)

func NewAccessGrantedPublisher(writer *kafka.Writer, logger *slog.Logger) *AccessGrantedPublisher {
	return &AccessGrantedPublisher{writer: writer, logger: logger}
}

func (p *AccessGrantedPublisher) PublishAccessGranted(ctx context.Context, event interfaces.AccessGrantedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.IntentID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("access_granted")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, "[checkout][events] publish failed", "intent_id", event.IntentID, "err", err)
		return err
	}
	p.logger.InfoContext(ctx, "[checkout][events] access_granted published", "intent_id", event.IntentID)
	return nil
}

func (p *AccessGrantedPublisher) Close() error {
	return p.writer.Close()
}

func splitBrokers(raw string) []string {
	var out []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
