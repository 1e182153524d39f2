package postgres

import (
	"context"
	"errors"
	"fmt"

	"custodial-payment-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InvestmentStore implements ports.InvestmentStore.
type InvestmentStore struct {
	pool Pool
}

// NewInvestmentStore creates a new InvestmentStore.
func NewInvestmentStore(pool Pool) *InvestmentStore {
	return &InvestmentStore{pool: pool}
}

const investmentColumns = `id, opportunity_id, investor_owner_id, amount,
	expected_return, status, transaction_id, created_at`

func (r *InvestmentStore) Create(ctx context.Context, i *domain.Investment) error {
	query := `INSERT INTO investments (id, opportunity_id, investor_owner_id, amount,
		expected_return, status, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		i.ID, i.OpportunityID, i.InvestorOwnerID, i.Amount,
		i.ExpectedReturn, i.Status, i.TransactionID, i.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert investment: %w", err)
	}
	return nil
}

func (r *InvestmentStore) Get(ctx context.Context, id uuid.UUID) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE id = $1`

	i := &domain.Investment{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&i.ID, &i.OpportunityID, &i.InvestorOwnerID, &i.Amount,
		&i.ExpectedReturn, &i.Status, &i.TransactionID, &i.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get investment: %w", err)
	}
	return i, nil
}

func (r *InvestmentStore) ListByOpportunity(ctx context.Context, opportunityID uuid.UUID) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments
		WHERE opportunity_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, opportunityID)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()

	var out []domain.Investment
	for rows.Next() {
		var i domain.Investment
		if err := rows.Scan(
			&i.ID, &i.OpportunityID, &i.InvestorOwnerID, &i.Amount,
			&i.ExpectedReturn, &i.Status, &i.TransactionID, &i.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan investment: %w", err)
		}
		out = append(out, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate investments: %w", err)
	}
	return out, nil
}

// UpdateStatus swaps the status when it matches `from`.
func (r *InvestmentStore) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.InvestmentStatus) (bool, error) {
	query := `UPDATE investments SET status = $3 WHERE id = $1 AND status = $2`

	tag, err := r.pool.Exec(ctx, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("update investment status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
