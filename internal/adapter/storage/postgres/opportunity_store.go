package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"
	"custodial-payment-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OpportunityStore implements ports.OpportunityStore and
// ports.OpportunitySweepSource on PostgreSQL. Reserve is a single conditional
// UPDATE, so the remaining-amount check and the decrement happen in one
// statement and the database serializes concurrent reservations.
type OpportunityStore struct {
	pool Pool
}

// NewOpportunityStore creates a new OpportunityStore.
func NewOpportunityStore(pool Pool) *OpportunityStore {
	return &OpportunityStore{pool: pool}
}

const opportunityColumns = `id, invoice_id, merchant_owner_id, total_investment_amount,
	minimum_investment, remaining_amount, investor_count, status, created_at, expires_at`

func (r *OpportunityStore) Create(ctx context.Context, o *domain.InvestmentOpportunity) error {
	query := `INSERT INTO opportunities (id, invoice_id, merchant_owner_id, total_investment_amount,
		minimum_investment, remaining_amount, investor_count, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		o.ID, o.InvoiceID, o.MerchantOwnerID, o.TotalInvestmentAmount,
		o.MinimumInvestment, o.RemainingAmount, o.InvestorCount,
		o.Status, o.CreatedAt, o.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert opportunity: %w", err)
	}
	return nil
}

// Get fetches an opportunity, (nil, nil) when absent. Investment ids come
// from the investments table; the opportunities row never stores them.
func (r *OpportunityStore) Get(ctx context.Context, id uuid.UUID) (*domain.InvestmentOpportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE id = $1`

	o := &domain.InvestmentOpportunity{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.InvoiceID, &o.MerchantOwnerID, &o.TotalInvestmentAmount,
		&o.MinimumInvestment, &o.RemainingAmount, &o.InvestorCount,
		&o.Status, &o.CreatedAt, &o.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opportunity: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id FROM investments WHERE opportunity_id = $1 ORDER BY created_at`, id)
	if err != nil {
		return nil, fmt.Errorf("list opportunity investment ids: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var investmentID uuid.UUID
		if err := rows.Scan(&investmentID); err != nil {
			return nil, fmt.Errorf("scan investment id: %w", err)
		}
		o.InvestmentIDs = append(o.InvestmentIDs, investmentID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate investment ids: %w", err)
	}
	return o, nil
}

func (r *OpportunityStore) List(ctx context.Context, filter ports.OpportunityFilter) ([]domain.InvestmentOpportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE 1=1`
	args := []any{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.InvoiceID != nil {
		args = append(args, *filter.InvoiceID)
		query += fmt.Sprintf(" AND invoice_id = $%d", len(args))
	}
	query += " ORDER BY created_at"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	defer rows.Close()

	var out []domain.InvestmentOpportunity
	for rows.Next() {
		var o domain.InvestmentOpportunity
		if err := rows.Scan(
			&o.ID, &o.InvoiceID, &o.MerchantOwnerID, &o.TotalInvestmentAmount,
			&o.MinimumInvestment, &o.RemainingAmount, &o.InvestorCount,
			&o.Status, &o.CreatedAt, &o.ExpiresAt,
		); err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate opportunities: %w", err)
	}
	return out, nil
}

// Reserve decrements the pool in one conditional statement. When no row
// matches, the current row is re-read to surface the precise failure.
func (r *OpportunityStore) Reserve(ctx context.Context, id uuid.UUID, amount int64) (int64, error) {
	query := `UPDATE opportunities
		SET remaining_amount = remaining_amount - $2, investor_count = investor_count + 1
		WHERE id = $1 AND status = $3 AND remaining_amount >= $2
		RETURNING remaining_amount`

	var remaining int64
	err := r.pool.QueryRow(ctx, query, id, amount, domain.OpportunityStatusActive).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("reserve opportunity: %w", err)
	}

	current, err := r.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	switch {
	case current == nil:
		return 0, apperror.ErrOpportunityNotFound()
	case current.Status == domain.OpportunityStatusFunded:
		return 0, apperror.ErrFullyFunded()
	case current.Status == domain.OpportunityStatusExpired:
		return 0, apperror.ErrOpportunityExpired()
	default:
		return 0, apperror.ErrExceedsRemaining(current.RemainingAmount)
	}
}

// Release undoes a reservation.
func (r *OpportunityStore) Release(ctx context.Context, id uuid.UUID, amount int64) error {
	query := `UPDATE opportunities
		SET remaining_amount = remaining_amount + $2, investor_count = investor_count - 1
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("release opportunity reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOpportunityNotFound()
	}
	return nil
}

// CommitInvestment marks the opportunity funded when the pool just hit zero.
// The investment row itself already lives in the investments table, which is
// where Get collects the ids from.
func (r *OpportunityStore) CommitInvestment(ctx context.Context, id uuid.UUID, _ uuid.UUID, markFunded bool) error {
	if !markFunded {
		return nil
	}
	query := `UPDATE opportunities SET status = $2
		WHERE id = $1 AND status = $3 AND remaining_amount = 0`

	if _, err := r.pool.Exec(ctx, query, id,
		domain.OpportunityStatusFunded, domain.OpportunityStatusActive); err != nil {
		return fmt.Errorf("mark opportunity funded: %w", err)
	}
	return nil
}

// SetStatus swaps the status when it matches `from`.
func (r *OpportunityStore) SetStatus(ctx context.Context, id uuid.UUID, from, to domain.OpportunityStatus) (bool, error) {
	query := `UPDATE opportunities SET status = $3 WHERE id = $1 AND status = $2`

	tag, err := r.pool.Exec(ctx, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("set opportunity status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListActiveExpired implements ports.OpportunitySweepSource.
func (r *OpportunityStore) ListActiveExpired(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	query := `SELECT id FROM opportunities
		WHERE status = $1 AND expires_at < $2
		ORDER BY expires_at LIMIT $3`

	rows, err := r.pool.Query(ctx, query, domain.OpportunityStatusActive, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list expired opportunities: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan opportunity id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expired opportunities: %w", err)
	}
	return ids, nil
}
