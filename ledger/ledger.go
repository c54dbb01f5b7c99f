// Package ledger applies deposit, withdrawal and dispute events to client
// accounts and reports the resulting balances.
//
// A Ledger is single-writer: events are applied one at a time, in input
// order, and each one either fully succeeds or leaves every account exactly
// as it was. Callers wanting parallel ingestion should shard by client id and
// run one Ledger per shard.
package ledger

import (
	"fmt"

	"payments-engine/models"
	"payments-engine/store"

	"go.uber.org/zap"
)

// Ledger owns the account table for one run.
type Ledger struct {
	store  *store.Store
	logger *zap.Logger
	stats  Stats
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used for accepted-event tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithStore seeds the ledger with an existing account table.
func WithStore(s *store.Store) Option {
	return func(l *Ledger) {
		if s != nil {
			l.store = s
		}
	}
}

// New returns an empty ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		store:  store.New(),
		logger: zap.NewNop(),
		stats:  newStats(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Apply validates ev against the current state and, if every precondition
// holds, applies it. A returned error is always an *ApplyError.
func (l *Ledger) Apply(ev models.Event) error {
	if err := l.apply(ev); err != nil {
		l.stats.reject(err)
		return reject(ev, err)
	}
	l.stats.Applied++
	l.logger.Debug("event applied",
		zap.String("kind", string(ev.Kind())),
		zap.Uint16("client", uint16(ev.ClientID())),
		zap.Uint32("tx", uint32(ev.TxID())),
	)
	return nil
}

func (l *Ledger) apply(ev models.Event) error {
	account, exists := l.store.GetAccountByID(ev.ClientID())
	if exists && account.Locked {
		return ErrAccountLocked
	}

	switch ev := ev.(type) {
	case models.Deposit:
		return l.deposit(account, ev)
	case models.Withdrawal:
		if !exists {
			return ErrUnknownClient
		}
		return withdraw(account, ev)
	case models.Incomplete:
		if ev.Of == models.KindWithdrawal && !exists {
			return ErrUnknownClient
		}
		return ErrMissingAmount
	case models.Dispute:
		if !exists {
			return ErrUnknownClient
		}
		return dispute(account, ev.Tx)
	case models.Resolve:
		if !exists {
			return ErrUnknownClient
		}
		return resolve(account, ev.Tx)
	case models.Chargeback:
		if !exists {
			return ErrUnknownClient
		}
		return chargeback(account, ev.Tx)
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}
}

// deposit credits available funds and remembers the deposit for later
// disputes. The account is created here and nowhere else.
func (l *Ledger) deposit(account *models.Account, ev models.Deposit) error {
	if account != nil {
		if _, seen := account.Deposits[ev.Tx]; seen {
			return ErrDuplicateTransaction
		}
	} else {
		account = l.store.GetOrCreateAccount(ev.Client)
	}
	account.Available = account.Available.Add(ev.Amount)
	account.Deposits[ev.Tx] = &models.DepositRecord{Amount: ev.Amount}
	return nil
}

func withdraw(account *models.Account, ev models.Withdrawal) error {
	if account.Available.LessThan(ev.Amount) {
		return ErrInsufficientFunds
	}
	account.Available = account.Available.Sub(ev.Amount)
	return nil
}

// dispute moves the deposit amount from available to held. Available may go
// negative when the disputed funds were already withdrawn.
func dispute(account *models.Account, tx models.TxID) error {
	record, ok := account.Deposits[tx]
	if !ok {
		return ErrUnknownTransaction
	}
	if record.Disputed {
		return ErrAlreadyDisputed
	}
	account.Held = account.Held.Add(record.Amount)
	account.Available = account.Available.Sub(record.Amount)
	record.Disputed = true
	return nil
}

func resolve(account *models.Account, tx models.TxID) error {
	record, err := disputedRecord(account, tx)
	if err != nil {
		return err
	}
	account.Held = account.Held.Sub(record.Amount)
	account.Available = account.Available.Add(record.Amount)
	record.Disputed = false
	return nil
}

// chargeback settles the dispute against the client. The record stays in
// place with Disputed cleared so the same tx cannot be disputed into held
// funds twice, and the account is frozen for good.
func chargeback(account *models.Account, tx models.TxID) error {
	record, err := disputedRecord(account, tx)
	if err != nil {
		return err
	}
	account.Held = account.Held.Sub(record.Amount)
	record.Disputed = false
	account.Locked = true
	return nil
}

func disputedRecord(account *models.Account, tx models.TxID) (*models.DepositRecord, error) {
	record, ok := account.Deposits[tx]
	if !ok {
		return nil, ErrUnknownTransaction
	}
	if !record.Disputed {
		return nil, ErrNotDisputed
	}
	return record, nil
}

// Snapshot returns one summary per known client, ordered by client id.
func (l *Ledger) Snapshot() []models.ClientSummary {
	accounts := l.store.Accounts()
	summaries := make([]models.ClientSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, account.Summary())
	}
	return summaries
}

// Stats returns a copy of the run counters.
func (l *Ledger) Stats() Stats {
	return l.stats.clone()
}
