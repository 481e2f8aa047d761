package usecase

import (
	"github.com/iho/paymentsengine/internal/domain"
)

// AccountRepository holds the live account projections.
type AccountRepository interface {
	// GetOrCreate returns the client's account, creating an empty one on first use.
	GetOrCreate(clientID domain.ClientID) *domain.Account
	Get(clientID domain.ClientID) (*domain.Account, bool)
	List() []*domain.Account
}

// TransactionLedger maps (client, transaction) to the original money-moving
// transaction.
type TransactionLedger interface {
	// Record stores entry under key. It returns false and leaves the existing
	// entry untouched if key is already present.
	Record(key domain.LedgerKey, entry domain.LedgerEntry) bool
	Lookup(key domain.LedgerKey) (domain.LedgerEntry, bool)
	// SetDisputeState updates the dispute state of an existing entry.
	SetDisputeState(key domain.LedgerKey, state domain.DisputeState) bool
}

// FactLog is the append-only, per-client record of accepted facts.
type FactLog interface {
	// Append assigns the next per-client sequence number and stores the record.
	Append(record domain.FactRecord) domain.FactRecord
	Stream(clientID domain.ClientID) []domain.FactRecord
	Clients() []domain.ClientID
}

// InstructionSource yields instructions in arrival order.
// Next returns io.EOF once the source is exhausted.
type InstructionSource interface {
	Next() (domain.Instruction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
