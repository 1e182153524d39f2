package service

import (
	"context"
	"fmt"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"
	"custodial-payment-platform/pkg/apperror"

	"github.com/rs/zerolog"
)

// RegistryServiceImpl implements ports.RegistryService. It owns the mapping
// from owner ids to custodial accounts; authorization secrets never leave
// this boundary.
type RegistryServiceImpl struct {
	accounts ports.AccountRepository
	network  ports.LedgerNetwork
	log      zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(accounts ports.AccountRepository, network ports.LedgerNetwork, log zerolog.Logger) *RegistryServiceImpl {
	return &RegistryServiceImpl{
		accounts: accounts,
		network:  network,
		log:      log,
	}
}

// CreateAccount allocates a ledger identity for the owner and stores the
// custodial record. One external account-creation call per owner, ever.
func (s *RegistryServiceImpl) CreateAccount(ctx context.Context, ownerID string) (*domain.CustodialAccount, error) {
	if ownerID == "" {
		return nil, apperror.Validation("owner id is required")
	}

	existing, err := s.accounts.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup account: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAccountExists(ownerID)
	}

	identity, err := s.network.CreateAccount(ctx)
	if err != nil {
		return nil, apperror.ErrNetwork(fmt.Errorf("create ledger account: %w", err))
	}

	account := &domain.CustodialAccount{
		OwnerID:             ownerID,
		AccountID:           identity.AccountID,
		AuthorizationSecret: identity.AuthorizationSecret,
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		// A concurrent create for the same owner may have won the race.
		return nil, err
	}

	s.log.Info().
		Str("owner_id", ownerID).
		Str("account_id", account.AccountID).
		Msg("custodial account created")

	return account, nil
}

// Get returns the owner's custodial account.
func (s *RegistryServiceImpl) Get(ctx context.Context, ownerID string) (*domain.CustodialAccount, error) {
	account, err := s.accounts.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound(ownerID)
	}
	return account, nil
}

// GetBalance delegates to the ledger network for the owner's account.
func (s *RegistryServiceImpl) GetBalance(ctx context.Context, ownerID string) (int64, error) {
	account, err := s.Get(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	balance, err := s.network.GetBalance(ctx, account.AccountID)
	if err != nil {
		return 0, apperror.ErrNetwork(fmt.Errorf("get balance: %w", err))
	}
	return balance, nil
}

// Transfer resolves both owners and delegates to the ledger network. Network
// failures propagate without retry; the network's idempotency is undefined.
func (s *RegistryServiceImpl) Transfer(ctx context.Context, fromOwnerID, toOwnerID string, amount int64, kind domain.TokenKind) (string, error) {
	if amount <= 0 {
		return "", apperror.ErrInvalidAmount()
	}

	from, err := s.Get(ctx, fromOwnerID)
	if err != nil {
		return "", err
	}
	to, err := s.Get(ctx, toOwnerID)
	if err != nil {
		return "", err
	}

	txID, err := s.network.Transfer(ctx, from.AccountID, to.AccountID, amount, kind)
	if err != nil {
		return "", apperror.ErrTransferFailed(err)
	}

	s.log.Info().
		Str("from_owner", fromOwnerID).
		Str("to_owner", toOwnerID).
		Int64("amount", amount).
		Str("token_kind", string(kind)).
		Str("transaction_id", txID).
		Msg("ledger transfer executed")

	return txID, nil
}
