package usecase

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/paymentsengine/internal/infrastructure/metrics"
)

// IngestStats summarizes a run.
type IngestStats struct {
	Read     int
	Accepted int
	Rejected int
	// Skipped counts input the source dropped before it became an instruction.
	// It stays zero for sources that do not report it.
	Skipped  int
	Duration time.Duration
}

// skipCounter is implemented by sources that drop malformed input.
type skipCounter interface {
	Skipped() int
}

// IngestUseCase feeds an instruction source through the engine, one
// instruction at a time and in arrival order.
type IngestUseCase struct {
	engine  *EngineUseCase
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewIngestUseCase creates a new IngestUseCase. m may be nil.
func NewIngestUseCase(engine *EngineUseCase, logger zerolog.Logger, m *metrics.Metrics) *IngestUseCase {
	return &IngestUseCase{
		engine:  engine,
		logger:  logger,
		metrics: m,
	}
}

// Run drains source. It stops early only when the source fails to read.
func (uc *IngestUseCase) Run(source InstructionSource) (IngestStats, error) {
	start := time.Now()
	var stats IngestStats

	for {
		instr, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			stats.Duration = time.Since(start)
			return stats, fmt.Errorf("read instruction: %w", err)
		}

		stats.Read++
		if uc.engine.Apply(instr).Accepted {
			stats.Accepted++
		} else {
			stats.Rejected++
		}
	}

	stats.Duration = time.Since(start)
	if sc, ok := source.(skipCounter); ok {
		stats.Skipped = sc.Skipped()
	}
	if uc.metrics != nil {
		uc.metrics.IngestDuration.Observe(stats.Duration.Seconds())
	}

	uc.logger.Info().
		Int("read", stats.Read).
		Int("accepted", stats.Accepted).
		Int("rejected", stats.Rejected).
		Int("skipped", stats.Skipped).
		Dur("duration", stats.Duration).
		Msg("ingest completed")

	return stats, nil
}
