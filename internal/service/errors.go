package service

import (
	"errors"

	"go-bengkel-api/internal/repository"
)

// Sentinel errors so handlers can map failures onto the right status class
// (bad input vs not found vs server fault).
var (
	ErrNotFound               = errors.New("record not found")
	ErrDuplicateCode          = errors.New("code already exists")
	ErrDuplicateInvoice       = errors.New("invoice number already exists")
	ErrInvalidAmount          = errors.New("payment amount must be greater than zero")
	ErrAmountExceedsRemaining = errors.New("payment amount exceeds remaining balance")
	ErrTotalsMismatch         = errors.New("transaction totals do not match line items")
)

// ErrInsufficientStock is the repository sentinel re-exported so the whole
// module shares one error value for the oversell case.
var ErrInsufficientStock = repository.ErrInsufficientStock
