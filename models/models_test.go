package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"deposit":       KindDeposit,
		" Withdrawal ":  KindWithdrawal,
		"DISPUTE":       KindDispute,
		"\tresolve":     KindResolve,
		"ChargeBack   ": KindChargeback,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKind("transfer")
	assert.Error(t, err)
	_, err = ParseKind("")
	assert.Error(t, err)
}

func TestIncompleteReportsUnderlyingKind(t *testing.T) {
	var ev Event = Incomplete{Of: KindWithdrawal, Client: 3, Tx: 8}
	assert.Equal(t, KindWithdrawal, ev.Kind())
	assert.Equal(t, ClientID(3), ev.ClientID())
	assert.Equal(t, TxID(8), ev.TxID())
}

func TestAccountSummary(t *testing.T) {
	a := NewAccount(2)
	a.Available = decimal.RequireFromString("-1.5")
	a.Held = decimal.RequireFromString("4")
	a.Locked = true

	s := a.Summary()
	assert.Equal(t, ClientID(2), s.Client)
	assert.True(t, s.Total.Equal(decimal.RequireFromString("2.5")), "total %s", s.Total)
	assert.True(t, s.Locked)
}
