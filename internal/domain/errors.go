package domain

import "errors"

var (
	// Decision errors. They describe why an instruction was rejected and are
	// carried inside an Outcome, never returned as a failure.
	ErrInsufficientFunds    = errors.New("insufficient available funds")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
	ErrAlreadyDisputed      = errors.New("transaction is already disputed")
	ErrNotDisputed          = errors.New("transaction is not under dispute")
	ErrChargedBack          = errors.New("transaction was charged back")
	ErrAccountLocked        = errors.New("account is locked")

	// Validation errors
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrAmountTooLarge = errors.New("amount exceeds maximum allowed")
	ErrUnknownType    = errors.New("unknown instruction type")
)
