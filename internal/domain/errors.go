package domain

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidDateRange = errors.New("end date is before begin date")
	ErrInvalidAmount    = errors.New("invalid amount")
)

var (
	ErrDuplicateIdentity = errors.New("business code is already registered")
	ErrNoAvailability    = errors.New("no available resource")
	ErrNotFound          = errors.New("reference not found")
	ErrAlreadyCancelled  = errors.New("reservation is already cancelled")
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
