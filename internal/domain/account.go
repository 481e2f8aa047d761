package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account is the projected balance of a single client.
// Available always equals Total minus Held. Locked never goes back to false.
type Account struct {
	ClientID  ClientID
	Total     decimal.Decimal
	Held      decimal.Decimal
	Available decimal.Decimal
	Locked    bool
}

// NewAccount returns an empty, unlocked account.
func NewAccount(clientID ClientID) *Account {
	return &Account{
		ClientID:  clientID,
		Total:     decimal.Zero,
		Held:      decimal.Zero,
		Available: decimal.Zero,
	}
}

// ValidateDebit checks if the available funds cover amount.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if amount.GreaterThan(a.Available) {
		return ErrInsufficientFunds
	}
	return nil
}

// Apply folds a fact into the account. It is the single definition of how
// facts change balances; live processing and replay both go through it.
func (a *Account) Apply(fact Fact) {
	switch f := fact.(type) {
	case AmountDeposited:
		a.Total = a.Total.Add(f.Amount)
	case AmountWithdrawn:
		a.Total = a.Total.Sub(f.Amount)
	case DisputeRaised:
		a.Held = a.Held.Add(f.Amount)
	case DisputeResolved:
		a.Held = a.Held.Sub(f.Amount)
	case ChargebackIssued:
		a.Held = a.Held.Sub(f.Amount)
		a.Total = a.Total.Sub(f.Amount)
		a.Locked = true
	default:
		panic(fmt.Sprintf("domain: unhandled fact %T", fact))
	}
	a.Available = a.Total.Sub(a.Held)
}

// Equal reports whether both accounts hold the same balances and lock state.
func (a *Account) Equal(other *Account) bool {
	return a.ClientID == other.ClientID &&
		a.Total.Equal(other.Total) &&
		a.Held.Equal(other.Held) &&
		a.Available.Equal(other.Available) &&
		a.Locked == other.Locked
}

// Replay rebuilds an account from its facts, in order, starting from zero.
func Replay(clientID ClientID, records []FactRecord) *Account {
	acc := NewAccount(clientID)
	for _, r := range records {
		acc.Apply(r.Fact)
	}
	return acc
}
