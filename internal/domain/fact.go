package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FactType names a fact variant.
type FactType string

const (
	FactAmountDeposited  FactType = "amount.deposited"
	FactAmountWithdrawn  FactType = "amount.withdrawn"
	FactDisputeRaised    FactType = "dispute.raised"
	FactDisputeResolved  FactType = "dispute.resolved"
	FactChargebackIssued FactType = "chargeback.issued"
)

// Fact is an immutable record of something that happened to an account.
// Every fact carries the amount it moved; for dispute facts this is the amount
// of the original transaction at decision time.
type Fact interface {
	Type() FactType
	FactAmount() decimal.Decimal
	isFact()
}

type AmountDeposited struct{ Amount decimal.Decimal }

type AmountWithdrawn struct{ Amount decimal.Decimal }

type DisputeRaised struct{ Amount decimal.Decimal }

type DisputeResolved struct{ Amount decimal.Decimal }

type ChargebackIssued struct{ Amount decimal.Decimal }

func (AmountDeposited) Type() FactType                { return FactAmountDeposited }
func (f AmountDeposited) FactAmount() decimal.Decimal { return f.Amount }
func (AmountDeposited) isFact()                       {}

func (AmountWithdrawn) Type() FactType                { return FactAmountWithdrawn }
func (f AmountWithdrawn) FactAmount() decimal.Decimal { return f.Amount }
func (AmountWithdrawn) isFact()                       {}

func (DisputeRaised) Type() FactType                { return FactDisputeRaised }
func (f DisputeRaised) FactAmount() decimal.Decimal { return f.Amount }
func (DisputeRaised) isFact()                       {}

func (DisputeResolved) Type() FactType                { return FactDisputeResolved }
func (f DisputeResolved) FactAmount() decimal.Decimal { return f.Amount }
func (DisputeResolved) isFact()                       {}

func (ChargebackIssued) Type() FactType                { return FactChargebackIssued }
func (f ChargebackIssued) FactAmount() decimal.Decimal { return f.Amount }
func (ChargebackIssued) isFact()                       {}

// FactRecord is a fact as stored in a client's fact log.
type FactRecord struct {
	ID            string
	Sequence      uint64
	ClientID      ClientID
	TransactionID TransactionID
	Fact          Fact
	RecordedAt    time.Time
}

// FactPayload is the serialized form of a FactRecord.
type FactPayload struct {
	ID            string `json:"id"`
	Sequence      uint64 `json:"seq"`
	Type          string `json:"type"`
	ClientID      uint16 `json:"client"`
	TransactionID uint32 `json:"tx"`
	Amount        string `json:"amount"`
	RecordedAt    string `json:"recorded_at"`
}

// Payload returns the serialized form of the record.
func (r FactRecord) Payload() FactPayload {
	return FactPayload{
		ID:            r.ID,
		Sequence:      r.Sequence,
		Type:          string(r.Fact.Type()),
		ClientID:      uint16(r.ClientID),
		TransactionID: uint32(r.TransactionID),
		Amount:        r.Fact.FactAmount().String(),
		RecordedAt:    r.RecordedAt.UTC().Format(time.RFC3339Nano),
	}
}
