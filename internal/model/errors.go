package model

import "errors"

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrValidationFailed   = errors.New("bet validation failed")
	ErrWageringIncomplete = errors.New("deposit wagering requirement not met")
	// ErrLedgerConflict is transient: a concurrent mutation was detected and
	// the ledger operation should be retried.
	ErrLedgerConflict = errors.New("ledger conflict")
	// ErrPartialSettlement means the stake was deducted but a later critical
	// step failed; money has already moved.
	ErrPartialSettlement       = errors.New("partial settlement")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	ErrPlayerNotFound          = errors.New("player not found")
	ErrGrantNotFound           = errors.New("bonus grant not found")
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidPolicy           = errors.New("invalid funding policy")
	ErrInvalidOrigin           = errors.New("invalid bet origin")
	ErrUnauthorized            = errors.New("unauthorized")
)
