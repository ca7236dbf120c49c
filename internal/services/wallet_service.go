package services

import (
	"context"
	"sync"
	"time"

	apperrors "skyvoyager/internal/errors"
	"skyvoyager/internal/metrics"
	"skyvoyager/internal/models"
	"skyvoyager/internal/store"
)

// walletService handles the mock wallet.
type walletService struct {
	mu             sync.Mutex
	store          store.Store
	metrics        *metrics.Metrics
	now            Clock
	initialBalance int64
}

// NewWalletService creates a new WalletServicer. A wallet that has never been
// stored starts at initialBalance.
func NewWalletService(s store.Store, m *metrics.Metrics, now Clock, initialBalance int64) WalletServicer {
	return &walletService{store: s, metrics: m, now: now, initialBalance: initialBalance}
}

// GetWallet returns the stored wallet, or the default one.
func (s *walletService) GetWallet(ctx context.Context) (*models.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Debit takes amount from the wallet and logs a debit transaction.
func (s *walletService) Debit(ctx context.Context, amount int64, description string) (*models.Wallet, error) {
	return s.apply(ctx, models.TransactionTypeDebit, amount, description)
}

// Credit adds amount to the wallet and logs a credit transaction.
func (s *walletService) Credit(ctx context.Context, amount int64, description string) (*models.Wallet, error) {
	return s.apply(ctx, models.TransactionTypeCredit, amount, description)
}

func (s *walletService) apply(ctx context.Context, txType models.TransactionType, amount int64, description string) (*models.Wallet, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wallet, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if txType == models.TransactionTypeDebit {
		if wallet.Balance < amount {
			return nil, apperrors.ErrInsufficientBalance
		}
		wallet.Balance -= amount
	} else {
		wallet.Balance += amount
	}

	entry := models.WalletTransaction{
		Amount:      amount,
		Type:        txType,
		Description: description,
		Date:        s.now().UTC().Format(time.RFC3339),
	}
	wallet.Transactions = append([]models.WalletTransaction{entry}, wallet.Transactions...)

	if err := store.SetJSON(ctx, s.store, store.KeyWallet, wallet); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	s.metrics.WalletMovement.WithLabelValues(string(txType)).Add(float64(amount))
	return wallet, nil
}

func (s *walletService) load(ctx context.Context) (*models.Wallet, error) {
	wallet := &models.Wallet{Balance: s.initialBalance}
	found, err := store.GetJSON(ctx, s.store, store.KeyWallet, wallet)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !found {
		wallet = &models.Wallet{Balance: s.initialBalance}
	}
	if wallet.Transactions == nil {
		wallet.Transactions = []models.WalletTransaction{}
	}
	return wallet, nil
}
