package service

import (
	"errors"
	"fmt"
)

var (
	// ErrDataConsistency marks store corruption detected while assembling a
	// block. It fails the request instead of yielding a partial block.
	ErrDataConsistency = errors.New("chain data inconsistency")
	// ErrMissingReceipt is returned when an embedded transaction has no receipt.
	ErrMissingReceipt = fmt.Errorf("%w: missing receipt", ErrDataConsistency)
	// ErrReceiptMismatch is returned when a receipt belongs to another transaction.
	ErrReceiptMismatch = fmt.Errorf("%w: receipt transaction hash mismatch", ErrDataConsistency)
)
