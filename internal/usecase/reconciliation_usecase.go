package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/iho/paymentsengine/internal/domain"
)

// ErrReplayMismatch is returned when a replayed fact log does not reproduce the
// live projection.
var ErrReplayMismatch = errors.New("replayed balances differ from live balances")

// ReconciliationUseCase checks live projections against their fact logs.
type ReconciliationUseCase struct {
	accountRepo AccountRepository
	factLog     FactLog
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase(accountRepo AccountRepository, factLog FactLog) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		accountRepo: accountRepo,
		factLog:     factLog,
	}
}

// ReconciliationResult represents the result of a reconciliation check
type ReconciliationResult struct {
	ClientID     domain.ClientID
	Recorded     domain.Account
	Replayed     domain.Account
	Facts        int
	IsReconciled bool
	// BalanceConsistent is false when available != total - held.
	BalanceConsistent bool
}

// ReconcileAccount replays the client's fact log and compares the result with
// the live account.
func (uc *ReconciliationUseCase) ReconcileAccount(clientID domain.ClientID) (*ReconciliationResult, error) {
	live, ok := uc.accountRepo.Get(clientID)
	if !ok {
		return nil, fmt.Errorf("client %d: account not found", clientID)
	}

	stream := uc.factLog.Stream(clientID)
	replayed := domain.Replay(clientID, stream)

	return &ReconciliationResult{
		ClientID:          clientID,
		Recorded:          *live,
		Replayed:          *replayed,
		Facts:             len(stream),
		IsReconciled:      replayed.Equal(live),
		BalanceConsistent: live.Available.Equal(live.Total.Sub(live.Held)),
	}, nil
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	TotalAccounts      int
	ReconciledAccounts int
	Discrepancies      []*ReconciliationResult
	CheckedAt          time.Time
}

// Consistent reports whether every account reconciled.
func (r *ReconciliationReport) Consistent() bool {
	return len(r.Discrepancies) == 0
}

// GenerateReconciliationReport reconciles every known account.
func (uc *ReconciliationUseCase) GenerateReconciliationReport() (*ReconciliationReport, error) {
	accounts := uc.accountRepo.List()

	report := &ReconciliationReport{
		TotalAccounts: len(accounts),
		Discrepancies: make([]*ReconciliationResult, 0),
		CheckedAt:     time.Now().UTC(),
	}

	for _, acc := range accounts {
		result, err := uc.ReconcileAccount(acc.ClientID)
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile client %d: %w", acc.ClientID, err)
		}
		if result.IsReconciled && result.BalanceConsistent {
			report.ReconciledAccounts++
		} else {
			report.Discrepancies = append(report.Discrepancies, result)
		}
	}

	return report, nil
}

// Verify returns ErrReplayMismatch when any account fails to reconcile.
func (uc *ReconciliationUseCase) Verify() (*ReconciliationReport, error) {
	report, err := uc.GenerateReconciliationReport()
	if err != nil {
		return nil, err
	}
	if !report.Consistent() {
		first := report.Discrepancies[0]
		return report, fmt.Errorf("%w: %d of %d accounts, first client %d",
			ErrReplayMismatch, len(report.Discrepancies), report.TotalAccounts, first.ClientID)
	}
	return report, nil
}
