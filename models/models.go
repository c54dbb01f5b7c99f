package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ClientID identifies a client account
type ClientID uint16

// TxID identifies a transaction. Deposit ids are unique per client.
type TxID uint32

// Kind is the type of a ledger event
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
	KindDispute    Kind = "dispute"
	KindResolve    Kind = "resolve"
	KindChargeback Kind = "chargeback"
)

// ParseKind matches s against the known kinds, ignoring case and surrounding whitespace
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindDeposit, KindWithdrawal, KindDispute, KindResolve, KindChargeback:
		return k, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Event is one decoded input record. The concrete types below are the only
// implementations; amounts exist only where the kind carries one.
type Event interface {
	Kind() Kind
	ClientID() ClientID
	TxID() TxID
	event()
}

// Deposit credits Amount to the client's available funds
type Deposit struct {
	Client ClientID
	Tx     TxID
	Amount decimal.Decimal
}

// Withdrawal debits Amount from the client's available funds
type Withdrawal struct {
	Client ClientID
	Tx     TxID
	Amount decimal.Decimal
}

// Dispute opens a dispute against an earlier deposit Tx
type Dispute struct {
	Client ClientID
	Tx     TxID
}

// Resolve closes a dispute in the client's favour
type Resolve struct {
	Client ClientID
	Tx     TxID
}

// Chargeback closes a dispute against the client and locks the account
type Chargeback struct {
	Client ClientID
	Tx     TxID
}

// Incomplete is a deposit or withdrawal row that arrived without an amount.
type Incomplete struct {
	Of     Kind
	Client ClientID
	Tx     TxID
}

func (e Deposit) Kind() Kind         { return KindDeposit }
func (e Deposit) ClientID() ClientID { return e.Client }
func (e Deposit) TxID() TxID         { return e.Tx }
func (Deposit) event()               {}

func (e Withdrawal) Kind() Kind         { return KindWithdrawal }
func (e Withdrawal) ClientID() ClientID { return e.Client }
func (e Withdrawal) TxID() TxID         { return e.Tx }
func (Withdrawal) event()               {}

func (e Dispute) Kind() Kind         { return KindDispute }
func (e Dispute) ClientID() ClientID { return e.Client }
func (e Dispute) TxID() TxID         { return e.Tx }
func (Dispute) event()               {}

func (e Resolve) Kind() Kind         { return KindResolve }
func (e Resolve) ClientID() ClientID { return e.Client }
func (e Resolve) TxID() TxID         { return e.Tx }
func (Resolve) event()               {}

func (e Chargeback) Kind() Kind         { return KindChargeback }
func (e Chargeback) ClientID() ClientID { return e.Client }
func (e Chargeback) TxID() TxID         { return e.Tx }
func (Chargeback) event()               {}

func (e Incomplete) Kind() Kind         { return e.Of }
func (e Incomplete) ClientID() ClientID { return e.Client }
func (e Incomplete) TxID() TxID         { return e.Tx }
func (Incomplete) event()               {}

// DepositRecord remembers a past deposit so disputes can refer back to it
type DepositRecord struct {
	Amount   decimal.Decimal
	Disputed bool
}

// Account represents one client's running balances
type Account struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
	Deposits  map[TxID]*DepositRecord
}

// NewAccount returns an empty, unlocked account for client
func NewAccount(client ClientID) *Account {
	return &Account{
		Client:    client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Deposits:  make(map[TxID]*DepositRecord),
	}
}

// Total is available plus held funds
func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// Summary projects the account into its output row
func (a *Account) Summary() ClientSummary {
	return ClientSummary{
		Client:    a.Client,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Total(),
		Locked:    a.Locked,
	}
}

// ClientSummary is the final reported state of one client
type ClientSummary struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}
