package eventpublisher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/iho/paymentsengine/internal/domain"
	"github.com/iho/paymentsengine/internal/usecase"
)

// EventPublisher exports the fact log to an external sink.
type EventPublisher struct {
	factLog   usecase.FactLog
	publisher Publisher
	logger    zerolog.Logger
}

// Publisher defines the interface for publishing facts to external systems.
type Publisher interface {
	Publish(ctx context.Context, record domain.FactRecord) error
}

// Config for EventPublisher.
type Config struct {
	FactLog   usecase.FactLog
	Publisher Publisher
	Logger    *zerolog.Logger
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(cfg Config) *EventPublisher {
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &EventPublisher{
		factLog:   cfg.FactLog,
		publisher: cfg.Publisher,
		logger:    logger,
	}
}

// PublishAll publishes every client's facts, clients in id order and each
// stream in arrival order. It stops at the first failure.
func (ep *EventPublisher) PublishAll(ctx context.Context) (int, error) {
	published := 0

	for _, clientID := range ep.factLog.Clients() {
		for _, record := range ep.factLog.Stream(clientID) {
			if err := ctx.Err(); err != nil {
				return published, err
			}

			if err := ep.publisher.Publish(ctx, record); err != nil {
				ep.logger.Error().
					Str("fact_id", record.ID).
					Str("fact_type", string(record.Fact.Type())).
					Err(err).
					Msg("failed to publish fact")
				return published, fmt.Errorf("publish fact %s: %w", record.ID, err)
			}
			published++
		}
	}

	ep.logger.Info().Int("count", published).Msg("facts published")
	return published, nil
}

// JSONLinesPublisher writes one JSON document per fact.
type JSONLinesPublisher struct {
	enc *json.Encoder
}

// NewJSONLinesPublisher creates a new JSONLinesPublisher writing to w.
func NewJSONLinesPublisher(w io.Writer) *JSONLinesPublisher {
	return &JSONLinesPublisher{enc: json.NewEncoder(w)}
}

// Publish encodes the fact as a single line.
func (p *JSONLinesPublisher) Publish(_ context.Context, record domain.FactRecord) error {
	return p.enc.Encode(record.Payload())
}

// LogPublisher is a simple publisher that logs facts.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the fact.
func (p *LogPublisher) Publish(_ context.Context, record domain.FactRecord) error {
	payload := record.Payload()

	p.logger.Info().
		Str("fact_id", payload.ID).
		Uint64("seq", payload.Sequence).
		Str("fact_type", payload.Type).
		Uint16("client", payload.ClientID).
		Uint32("tx", payload.TransactionID).
		Str("amount", payload.Amount).
		Msg("fact published")

	return nil
}
