package memory

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates fact ids that sort in generation order, even when
// many facts are recorded within the same millisecond.
type ULIDGenerator struct {
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}
