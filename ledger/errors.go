package ledger

import (
	"errors"
	"fmt"

	"payments-engine/models"
)

// Apply rejections. Each one names the precondition the event failed.
var (
	ErrAccountLocked        = errors.New("account is locked")
	ErrMissingAmount        = errors.New("amount is required")
	ErrUnknownClient        = errors.New("client does not exist")
	ErrDuplicateTransaction = errors.New("deposit transaction already exists")
	ErrInsufficientFunds    = errors.New("insufficient available funds")
	ErrUnknownTransaction   = errors.New("deposit transaction does not exist")
	ErrAlreadyDisputed      = errors.New("deposit is already disputed")
	ErrNotDisputed          = errors.New("deposit is not disputed")
)

// ApplyError reports a rejected event. The account it targeted is unchanged.
type ApplyError struct {
	Kind   models.Kind
	Client models.ClientID
	Tx     models.TxID
	Err    error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("%s client=%d tx=%d: %v", e.Kind, e.Client, e.Tx, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

func reject(ev models.Event, err error) error {
	return &ApplyError{
		Kind:   ev.Kind(),
		Client: ev.ClientID(),
		Tx:     ev.TxID(),
		Err:    err,
	}
}

// Reason returns a short label for the sentinel behind err, for counters and log fields.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, ErrMissingAmount):
		return "missing_amount"
	case errors.Is(err, ErrUnknownClient):
		return "unknown_client"
	case errors.Is(err, ErrDuplicateTransaction):
		return "duplicate_transaction"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrUnknownTransaction):
		return "unknown_transaction"
	case errors.Is(err, ErrAlreadyDisputed):
		return "already_disputed"
	case errors.Is(err, ErrNotDisputed):
		return "not_disputed"
	default:
		return "other"
	}
}
