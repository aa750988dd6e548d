package domain

import "errors"

// Kinds. Every domain error below wraps exactly one of them.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	ErrUserNotFound        = newError(ErrNotFound, "User not found")
	ErrAccountNotFound     = newError(ErrNotFound, "Account not found")
	ErrTransactionNotFound = newError(ErrNotFound, "Transaction not found")

	ErrInsufficientBalance    = newError(ErrInvalidArgument, "Insufficient account balance")
	ErrInvalidAmount          = newError(ErrInvalidArgument, "Transaction amount must be positive")
	ErrInvalidAmountScale     = newError(ErrInvalidArgument, "Transaction amount must have at most 2 decimal places")
	ErrInvalidTransactionType = newError(ErrInvalidArgument, "Transaction type must be CREDIT or DEBIT")
)

// ErrCurrentUserMissing means seed data was never loaded; it is a startup failure.
var ErrCurrentUserMissing = errors.New("current user is not provisioned")

type kindError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
