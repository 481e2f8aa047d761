package domain

import "github.com/shopspring/decimal"

// TransactionKind is the kind of a money-moving transaction.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

// DisputeState tracks where a ledger entry is in the dispute lifecycle.
type DisputeState string

const (
	StateUndisputed  DisputeState = "undisputed"
	StateDisputed    DisputeState = "disputed"
	StateChargedBack DisputeState = "charged_back"
)

// LedgerKey addresses a transaction in the ledger.
type LedgerKey struct {
	ClientID      ClientID
	TransactionID TransactionID
}

// LedgerEntry is the original amount and kind of an accepted deposit or
// withdrawal. Amount and Kind never change once recorded; State follows the
// dispute lifecycle.
type LedgerEntry struct {
	Amount decimal.Decimal
	Kind   TransactionKind
	State  DisputeState
}

// CanDispute reports whether a dispute may be raised on the entry.
func (e LedgerEntry) CanDispute() error {
	switch e.State {
	case StateDisputed:
		return ErrAlreadyDisputed
	case StateChargedBack:
		return ErrChargedBack
	}
	return nil
}

// CanSettle reports whether an open dispute exists that a resolve or
// chargeback may close.
func (e LedgerEntry) CanSettle() error {
	switch e.State {
	case StateDisputed:
		return nil
	case StateChargedBack:
		return ErrChargedBack
	}
	return ErrNotDisputed
}
