package memory

import (
	"github.com/iho/paymentsengine/internal/domain"
)

// LedgerRepository implements usecase.TransactionLedger with a map keyed by
// (client, transaction). Entries are never removed.
type LedgerRepository struct {
	entries map[domain.LedgerKey]domain.LedgerEntry
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{entries: make(map[domain.LedgerKey]domain.LedgerEntry)}
}

// Record stores entry unless key is already taken.
func (r *LedgerRepository) Record(key domain.LedgerKey, entry domain.LedgerEntry) bool {
	if _, exists := r.entries[key]; exists {
		return false
	}
	if entry.State == "" {
		entry.State = domain.StateUndisputed
	}
	r.entries[key] = entry
	return true
}

// Lookup returns a copy of the entry stored under key.
func (r *LedgerRepository) Lookup(key domain.LedgerKey) (domain.LedgerEntry, bool) {
	entry, ok := r.entries[key]
	return entry, ok
}

// SetDisputeState changes only the dispute state of an existing entry.
func (r *LedgerRepository) SetDisputeState(key domain.LedgerKey, state domain.DisputeState) bool {
	entry, ok := r.entries[key]
	if !ok {
		return false
	}
	entry.State = state
	r.entries[key] = entry
	return true
}

// Len returns the number of recorded entries.
func (r *LedgerRepository) Len() int {
	return len(r.entries)
}
