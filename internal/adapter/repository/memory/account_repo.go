package memory

import (
	"sort"

	"github.com/iho/paymentsengine/internal/domain"
)

// AccountRepository implements usecase.AccountRepository with a map.
// It is not safe for concurrent use.
type AccountRepository struct {
	accounts map[domain.ClientID]*domain.Account
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[domain.ClientID]*domain.Account)}
}

// GetOrCreate returns the live account for clientID, creating it on first use.
func (r *AccountRepository) GetOrCreate(clientID domain.ClientID) *domain.Account {
	acc, ok := r.accounts[clientID]
	if !ok {
		acc = domain.NewAccount(clientID)
		r.accounts[clientID] = acc
	}
	return acc
}

// Get returns the live account for clientID.
func (r *AccountRepository) Get(clientID domain.ClientID) (*domain.Account, bool) {
	acc, ok := r.accounts[clientID]
	return acc, ok
}

// List returns every account ordered by client id.
func (r *AccountRepository) List() []*domain.Account {
	out := make([]*domain.Account, 0, len(r.accounts))
	for _, acc := range r.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClientID < out[j].ClientID })
	return out
}
