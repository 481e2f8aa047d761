package memory

import (
	"slices"

	"github.com/iho/paymentsengine/internal/domain"
)

// FactLog implements usecase.FactLog as one slice per client.
type FactLog struct {
	streams map[domain.ClientID][]domain.FactRecord
}

// NewFactLog creates a new FactLog.
func NewFactLog() *FactLog {
	return &FactLog{streams: make(map[domain.ClientID][]domain.FactRecord)}
}

// Append stores record at the end of its client's stream.
func (l *FactLog) Append(record domain.FactRecord) domain.FactRecord {
	stream := l.streams[record.ClientID]
	record.Sequence = uint64(len(stream)) + 1
	l.streams[record.ClientID] = append(stream, record)
	return record
}

// Stream returns a copy of the client's facts in arrival order.
func (l *FactLog) Stream(clientID domain.ClientID) []domain.FactRecord {
	return slices.Clone(l.streams[clientID])
}

// Clients returns every client with at least one fact, ordered by id.
func (l *FactLog) Clients() []domain.ClientID {
	clients := make([]domain.ClientID, 0, len(l.streams))
	for id := range l.streams {
		clients = append(clients, id)
	}
	slices.Sort(clients)
	return clients
}
