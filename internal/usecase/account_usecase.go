package usecase

import (
	"github.com/iho/paymentsengine/internal/domain"
)

// AccountUseCase exposes read access to account projections.
type AccountUseCase struct {
	accountRepo AccountRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// GetAccount returns a snapshot of the client's account.
func (uc *AccountUseCase) GetAccount(clientID domain.ClientID) (*domain.Account, bool) {
	acc, ok := uc.accountRepo.Get(clientID)
	if !ok {
		return nil, false
	}
	cp := *acc
	return &cp, true
}

// ListAccounts returns snapshots of every account.
func (uc *AccountUseCase) ListAccounts() []*domain.Account {
	accounts := uc.accountRepo.List()
	out := make([]*domain.Account, 0, len(accounts))
	for _, acc := range accounts {
		cp := *acc
		out = append(out, &cp)
	}
	return out
}
