package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/paymentsengine/internal/domain"
	"github.com/iho/paymentsengine/internal/infrastructure/metrics"
)

// Outcome is the result of deciding on one instruction. An accepted outcome
// carries the fact record that was appended; a rejected one carries the reason.
type Outcome struct {
	Accepted bool
	Record   domain.FactRecord
	Reason   error
}

func accepted(record domain.FactRecord) Outcome {
	return Outcome{Accepted: true, Record: record}
}

func rejected(reason error) Outcome {
	return Outcome{Reason: reason}
}

// EngineOptions tunes the decision rules.
type EngineOptions struct {
	// StrictDisputes requires resolve and chargeback to close an open dispute
	// and refuses a second dispute on a transaction already under dispute.
	StrictDisputes bool
	// RejectLocked refuses every instruction for a locked account.
	RejectLocked bool

	Logger  *zerolog.Logger
	Metrics *metrics.Metrics
}

// EngineUseCase decides on instructions and keeps accounts, ledger and fact
// log in step. It is not safe for concurrent use.
type EngineUseCase struct {
	accountRepo AccountRepository
	ledger      TransactionLedger
	factLog     FactLog
	idGen       IDGenerator
	opts        EngineOptions
	logger      zerolog.Logger
	now         func() time.Time
}

// NewEngineUseCase creates a new EngineUseCase.
func NewEngineUseCase(
	accountRepo AccountRepository,
	ledger TransactionLedger,
	factLog FactLog,
	idGen IDGenerator,
	opts EngineOptions,
) *EngineUseCase {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &EngineUseCase{
		accountRepo: accountRepo,
		ledger:      ledger,
		factLog:     factLog,
		idGen:       idGen,
		opts:        opts,
		logger:      logger,
		now:         time.Now,
	}
}

// Apply decides on a single instruction. Rejected instructions leave every
// table untouched apart from the lazily created account.
func (uc *EngineUseCase) Apply(instr domain.Instruction) Outcome {
	account := uc.accountRepo.GetOrCreate(instr.Client())
	wasLocked := account.Locked

	outcome := uc.decide(account, instr)

	uc.observe(instr, outcome, !wasLocked && account.Locked)
	return outcome
}

func (uc *EngineUseCase) decide(account *domain.Account, instr domain.Instruction) Outcome {
	if uc.opts.RejectLocked && account.Locked {
		return rejected(domain.ErrAccountLocked)
	}

	key := domain.LedgerKey{ClientID: instr.Client(), TransactionID: instr.Transaction()}

	switch in := instr.(type) {
	case domain.Deposit:
		entry := domain.LedgerEntry{Amount: in.Amount, Kind: domain.KindDeposit, State: domain.StateUndisputed}
		if !uc.ledger.Record(key, entry) {
			return rejected(domain.ErrDuplicateTransaction)
		}
		return uc.commit(account, key, domain.AmountDeposited{Amount: in.Amount})

	case domain.Withdrawal:
		if _, exists := uc.ledger.Lookup(key); exists {
			return rejected(domain.ErrDuplicateTransaction)
		}
		if err := account.ValidateDebit(in.Amount); err != nil {
			return rejected(err)
		}
		uc.ledger.Record(key, domain.LedgerEntry{Amount: in.Amount, Kind: domain.KindWithdrawal, State: domain.StateUndisputed})
		return uc.commit(account, key, domain.AmountWithdrawn{Amount: in.Amount})

	case domain.Dispute:
		entry, ok := uc.ledger.Lookup(key)
		if !ok {
			return rejected(domain.ErrTransactionNotFound)
		}
		if uc.opts.StrictDisputes {
			if err := entry.CanDispute(); err != nil {
				return rejected(err)
			}
		}
		uc.ledger.SetDisputeState(key, domain.StateDisputed)
		return uc.commit(account, key, domain.DisputeRaised{Amount: entry.Amount})

	case domain.Resolve:
		entry, ok := uc.ledger.Lookup(key)
		if !ok {
			return rejected(domain.ErrTransactionNotFound)
		}
		if uc.opts.StrictDisputes {
			if err := entry.CanSettle(); err != nil {
				return rejected(err)
			}
		}
		uc.ledger.SetDisputeState(key, domain.StateUndisputed)
		return uc.commit(account, key, domain.DisputeResolved{Amount: entry.Amount})

	case domain.Chargeback:
		entry, ok := uc.ledger.Lookup(key)
		if !ok {
			return rejected(domain.ErrTransactionNotFound)
		}
		if uc.opts.StrictDisputes {
			if err := entry.CanSettle(); err != nil {
				return rejected(err)
			}
		}
		uc.ledger.SetDisputeState(key, domain.StateChargedBack)
		return uc.commit(account, key, domain.ChargebackIssued{Amount: entry.Amount})

	default:
		return rejected(fmt.Errorf("%w: %T", domain.ErrUnknownType, instr))
	}
}

// commit applies fact to the live projection and appends it to the fact log.
func (uc *EngineUseCase) commit(account *domain.Account, key domain.LedgerKey, fact domain.Fact) Outcome {
	account.Apply(fact)

	record := uc.factLog.Append(domain.FactRecord{
		ID:            uc.idGen.Generate(),
		ClientID:      key.ClientID,
		TransactionID: key.TransactionID,
		Fact:          fact,
		RecordedAt:    uc.now().UTC(),
	})

	return accepted(record)
}

func (uc *EngineUseCase) observe(instr domain.Instruction, outcome Outcome, locked bool) {
	m := uc.opts.Metrics

	if outcome.Accepted {
		uc.logger.Debug().
			Str("type", string(instr.Type())).
			Uint16("client", uint16(instr.Client())).
			Uint32("tx", uint32(instr.Transaction())).
			Str("fact_id", outcome.Record.ID).
			Uint64("seq", outcome.Record.Sequence).
			Msg("instruction accepted")

		if m != nil {
			m.Instructions.WithLabelValues(string(instr.Type()), "accepted").Inc()
			m.FactsAppended.Inc()
			if locked {
				m.AccountsLocked.Inc()
			}
		}
		return
	}

	event := uc.logger.Debug()
	if errors.Is(outcome.Reason, domain.ErrDuplicateTransaction) {
		event = uc.logger.Warn()
	}
	event.
		Str("type", string(instr.Type())).
		Uint16("client", uint16(instr.Client())).
		Uint32("tx", uint32(instr.Transaction())).
		Err(outcome.Reason).
		Msg("instruction rejected")

	if m != nil {
		m.Instructions.WithLabelValues(string(instr.Type()), "rejected").Inc()
		m.Rejections.WithLabelValues(RejectionReason(outcome.Reason)).Inc()
	}
}

// RejectionReason maps a rejection to a short, stable label.
func RejectionReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrTransactionNotFound):
		return "transaction_not_found"
	case errors.Is(err, domain.ErrDuplicateTransaction):
		return "duplicate_transaction"
	case errors.Is(err, domain.ErrAlreadyDisputed):
		return "already_disputed"
	case errors.Is(err, domain.ErrNotDisputed):
		return "not_disputed"
	case errors.Is(err, domain.ErrChargedBack):
		return "charged_back"
	case errors.Is(err, domain.ErrAccountLocked):
		return "account_locked"
	default:
		return "other"
	}
}
