package eventpublisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/iho/paymentsengine/internal/adapter/repository/memory"
	"github.com/iho/paymentsengine/internal/domain"
)

func seededLog() *memory.FactLog {
	log := memory.NewFactLog()
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	log.Append(domain.FactRecord{ID: "b1", ClientID: 2, TransactionID: 1, Fact: domain.AmountDeposited{Amount: decimal.RequireFromString("1.5")}, RecordedAt: at})
	log.Append(domain.FactRecord{ID: "a1", ClientID: 1, TransactionID: 9, Fact: domain.AmountDeposited{Amount: decimal.RequireFromString("4")}, RecordedAt: at})
	log.Append(domain.FactRecord{ID: "a2", ClientID: 1, TransactionID: 9, Fact: domain.DisputeRaised{Amount: decimal.RequireFromString("4")}, RecordedAt: at})
	return log
}

func TestPublishAll_JSONLines(t *testing.T) {
	var buf bytes.Buffer
	ep := NewEventPublisher(Config{
		FactLog:   seededLog(),
		Publisher: NewJSONLinesPublisher(&buf),
	})

	n, err := ep.PublishAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, n)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first domain.FactPayload
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, "a1", first.ID)
	require.Equal(t, uint64(1), first.Sequence)
	require.Equal(t, "amount.deposited", first.Type)
	require.Equal(t, uint16(1), first.ClientID)
	require.Equal(t, uint32(9), first.TransactionID)
	require.Equal(t, "4", first.Amount)
	require.Equal(t, "2024-01-02T03:04:05Z", first.RecordedAt)

	var second domain.FactPayload
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Equal(t, "dispute.raised", second.Type)
	require.Equal(t, uint64(2), second.Sequence)
}

type failingPublisher struct{ after int }

func (p *failingPublisher) Publish(context.Context, domain.FactRecord) error {
	if p.after == 0 {
		return errors.New("sink closed")
	}
	p.after--
	return nil
}

func TestPublishAll_StopsOnFailure(t *testing.T) {
	ep := NewEventPublisher(Config{
		FactLog:   seededLog(),
		Publisher: &failingPublisher{after: 1},
	})

	n, err := ep.PublishAll(context.Background())
	require.Error(t, err)
	require.Equal(t, 1, n)
}

func TestPublishAll_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ep := NewEventPublisher(Config{
		FactLog:   seededLog(),
		Publisher: NewJSONLinesPublisher(&bytes.Buffer{}),
	})

	n, err := ep.PublishAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, n)
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ep := NewEventPublisher(Config{
		FactLog:   seededLog(),
		Publisher: NewLogPublisher(logger),
	})

	_, err := ep.PublishAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(buf.String(), `"message":"fact published"`))
	require.Contains(t, buf.String(), `"fact_type":"dispute.raised"`)
}
