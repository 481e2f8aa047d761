package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ClientID identifies a client account.
type ClientID uint16

// TransactionID identifies a transaction. It is unique per client, not globally.
type TransactionID uint32

// InstructionType names an instruction variant the way it appears in input rows.
type InstructionType string

const (
	InstructionDeposit    InstructionType = "deposit"
	InstructionWithdrawal InstructionType = "withdrawal"
	InstructionDispute    InstructionType = "dispute"
	InstructionResolve    InstructionType = "resolve"
	InstructionChargeback InstructionType = "chargeback"
)

// ParseInstructionType maps an input type name to its InstructionType.
func ParseInstructionType(s string) (InstructionType, error) {
	switch t := InstructionType(s); t {
	case InstructionDeposit, InstructionWithdrawal, InstructionDispute,
		InstructionResolve, InstructionChargeback:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Instruction is a parsed request to change a client's account.
// The set of implementations is closed: Deposit, Withdrawal, Dispute, Resolve
// and Chargeback.
type Instruction interface {
	Client() ClientID
	Transaction() TransactionID
	Type() InstructionType
	isInstruction()
}

// Deposit credits the client's account.
type Deposit struct {
	ClientID      ClientID
	TransactionID TransactionID
	Amount        decimal.Decimal
}

// Withdrawal debits the client's account.
type Withdrawal struct {
	ClientID      ClientID
	TransactionID TransactionID
	Amount        decimal.Decimal
}

// Dispute claims that an earlier transaction was erroneous.
type Dispute struct {
	ClientID      ClientID
	TransactionID TransactionID
}

// Resolve closes a dispute and releases the held funds.
type Resolve struct {
	ClientID      ClientID
	TransactionID TransactionID
}

// Chargeback closes a dispute by reversing the transaction and locking the account.
type Chargeback struct {
	ClientID      ClientID
	TransactionID TransactionID
}

func (d Deposit) Client() ClientID           { return d.ClientID }
func (d Deposit) Transaction() TransactionID { return d.TransactionID }
func (Deposit) Type() InstructionType        { return InstructionDeposit }
func (Deposit) isInstruction()               {}

func (w Withdrawal) Client() ClientID           { return w.ClientID }
func (w Withdrawal) Transaction() TransactionID { return w.TransactionID }
func (Withdrawal) Type() InstructionType        { return InstructionWithdrawal }
func (Withdrawal) isInstruction()               {}

func (d Dispute) Client() ClientID           { return d.ClientID }
func (d Dispute) Transaction() TransactionID { return d.TransactionID }
func (Dispute) Type() InstructionType        { return InstructionDispute }
func (Dispute) isInstruction()               {}

func (r Resolve) Client() ClientID           { return r.ClientID }
func (r Resolve) Transaction() TransactionID { return r.TransactionID }
func (Resolve) Type() InstructionType        { return InstructionResolve }
func (Resolve) isInstruction()               {}

func (c Chargeback) Client() ClientID           { return c.ClientID }
func (c Chargeback) Transaction() TransactionID { return c.TransactionID }
func (Chargeback) Type() InstructionType        { return InstructionChargeback }
func (Chargeback) isInstruction()               {}
