package memory

import (
	"context"
	"testing"
	"time"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStore_CreateAndGet(t *testing.T) {
	s := NewAccountStore()
	ctx := context.Background()

	acct := &domain.CustodialAccount{
		OwnerID:             "alice",
		AccountID:           "0.0.1001",
		AuthorizationSecret: "secret",
		CreatedAt:           time.Now().UTC(),
	}
	require.NoError(t, s.Create(ctx, acct))

	got, err := s.GetByOwner(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0.0.1001", got.AccountID)
}

func TestAccountStore_Create_Duplicate(t *testing.T) {
	s := NewAccountStore()
	ctx := context.Background()

	acct := &domain.CustodialAccount{OwnerID: "alice", AccountID: "0.0.1001"}
	require.NoError(t, s.Create(ctx, acct))

	err := s.Create(ctx, &domain.CustodialAccount{OwnerID: "alice", AccountID: "0.0.1002"})
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACC_001", appErr.Code)
}

func TestAccountStore_GetByOwner_Unknown(t *testing.T) {
	s := NewAccountStore()
	got, err := s.GetByOwner(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}
