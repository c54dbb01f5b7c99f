package store

import (
	"payments-engine/models"
	"sort"
)

// Store holds the in-memory account table for a single ledger run.
// It is owned by one ledger and is not safe for concurrent use.
type Store struct {
	accounts map[models.ClientID]*models.Account
}

// New returns an empty store
func New() *Store {
	return &Store{
		accounts: make(map[models.ClientID]*models.Account),
	}
}

// AddAccount adds an account to the store, replacing any account with the same client id
func (s *Store) AddAccount(account *models.Account) {
	s.accounts[account.Client] = account
}

// GetAccountByID retrieves an account by client id
func (s *Store) GetAccountByID(id models.ClientID) (*models.Account, bool) {
	account, exists := s.accounts[id]
	return account, exists
}

// GetOrCreateAccount returns the account for id, creating an empty one if needed
func (s *Store) GetOrCreateAccount(id models.ClientID) *models.Account {
	if account, exists := s.accounts[id]; exists {
		return account
	}
	account := models.NewAccount(id)
	s.accounts[id] = account
	return account
}

// Len returns the number of known accounts
func (s *Store) Len() int {
	return len(s.accounts)
}

// Accounts retrieves all accounts ordered by client id
func (s *Store) Accounts() []*models.Account {
	accounts := make([]*models.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Client < accounts[j].Client
	})
	return accounts
}
