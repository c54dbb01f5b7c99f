package store_test

import (
	"testing"

	"payments-engine/models"
	"payments-engine/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAccountByIDMissing(t *testing.T) {
	s := store.New()
	_, found := s.GetAccountByID(1)
	assert.False(t, found)
	assert.Equal(t, 0, s.Len())
}

func TestGetOrCreateAccount(t *testing.T) {
	s := store.New()

	created := s.GetOrCreateAccount(4)
	require.NotNil(t, created)
	assert.Equal(t, models.ClientID(4), created.Client)
	assert.True(t, created.Available.IsZero())
	assert.True(t, created.Held.IsZero())
	assert.NotNil(t, created.Deposits)

	again := s.GetOrCreateAccount(4)
	assert.Same(t, created, again)
	assert.Equal(t, 1, s.Len())
}

func TestAddAccountReplaces(t *testing.T) {
	s := store.New()
	first := models.NewAccount(1)
	second := models.NewAccount(1)
	second.Locked = true

	s.AddAccount(first)
	s.AddAccount(second)

	got, found := s.GetAccountByID(1)
	require.True(t, found)
	assert.Same(t, second, got)
}

func TestAccountsSorted(t *testing.T) {
	s := store.New()
	for _, id := range []models.ClientID{9, 2, 5} {
		s.AddAccount(models.NewAccount(id))
	}

	var ids []models.ClientID
	for _, account := range s.Accounts() {
		ids = append(ids, account.Client)
	}
	assert.Equal(t, []models.ClientID{2, 5, 9}, ids)
}
