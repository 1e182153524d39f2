package postgres

import (
	"context"
	"errors"
	"fmt"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new custodial account. The owner_id primary key carries
// the one-account-per-owner invariant.
func (r *AccountRepo) Create(ctx context.Context, account *domain.CustodialAccount) error {
	query := `INSERT INTO custodial_accounts (owner_id, account_id, authorization_secret, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		account.OwnerID, account.AccountID, account.AuthorizationSecret, account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert custodial account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrAccountExists(account.OwnerID)
	}
	return nil
}

// GetByOwner fetches the owner's custodial account, (nil, nil) when absent.
func (r *AccountRepo) GetByOwner(ctx context.Context, ownerID string) (*domain.CustodialAccount, error) {
	query := `SELECT owner_id, account_id, authorization_secret, created_at
		FROM custodial_accounts WHERE owner_id = $1`

	a := &domain.CustodialAccount{}
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&a.OwnerID, &a.AccountID, &a.AuthorizationSecret, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get custodial account by owner: %w", err)
	}
	return a, nil
}
