package ledger

import "errors"

var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAccountNotFound     = errors.New("account not found or inactive")
	ErrSameAccount         = errors.New("self transfer is reserved for admin funding")
	ErrInvalidTransition   = errors.New("invalid state transition")
)
