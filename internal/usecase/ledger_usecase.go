package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrInconsistentLedger is returned when an account breaks a balance invariant.
	ErrInconsistentLedger = errors.New("ledger is inconsistent")
)

// LedgerUseCase handles ledger-wide checks across all accounts.
type LedgerUseCase struct {
	accountRepo AccountRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(accountRepo AccountRepository) *LedgerUseCase {
	return &LedgerUseCase{
		accountRepo: accountRepo,
	}
}

// CheckConsistency verifies that every account satisfies
// available == total - held. With allowNegativeHeld false it also requires
// held to be non-negative, which holds whenever disputes are guarded.
func (uc *LedgerUseCase) CheckConsistency(allowNegativeHeld bool) (bool, error) {
	for _, acc := range uc.accountRepo.List() {
		if !acc.Available.Equal(acc.Total.Sub(acc.Held)) {
			return false, fmt.Errorf("%w: client %d available %s != total %s - held %s",
				ErrInconsistentLedger, acc.ClientID, acc.Available, acc.Total, acc.Held)
		}

		if !allowNegativeHeld && acc.Held.IsNegative() {
			return false, fmt.Errorf("%w: client %d held %s is negative",
				ErrInconsistentLedger, acc.ClientID, acc.Held)
		}
	}

	return true, nil
}
