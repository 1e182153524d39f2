package ledger

import (
	"context"
	"fmt"
	"testing"

	"custodial-payment-platform/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedNetwork_CreateAccount(t *testing.T) {
	n := NewSimulatedNetwork()
	ctx := context.Background()

	a, err := n.CreateAccount(ctx)
	require.NoError(t, err)
	b, err := n.CreateAccount(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, a.AccountID, b.AccountID)
	assert.Len(t, a.AuthorizationSecret, 64, "32 bytes hex-encoded")

	balance, err := n.GetBalance(ctx, a.AccountID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestSimulatedNetwork_GetBalance_Unknown(t *testing.T) {
	n := NewSimulatedNetwork()
	_, err := n.GetBalance(context.Background(), "0.0.9999")
	require.Error(t, err)
}

func TestSimulatedNetwork_Transfer(t *testing.T) {
	n := NewSimulatedNetwork()
	ctx := context.Background()

	a, _ := n.CreateAccount(ctx)
	b, _ := n.CreateAccount(ctx)
	require.NoError(t, n.Credit(a.AccountID, 50))

	txID, err := n.Transfer(ctx, a.AccountID, b.AccountID, 10, domain.DefaultTokenKind)
	require.NoError(t, err)
	assert.NotEmpty(t, txID)

	fromBalance, _ := n.GetBalance(ctx, a.AccountID)
	toBalance, _ := n.GetBalance(ctx, b.AccountID)
	assert.Equal(t, int64(40), fromBalance)
	assert.Equal(t, int64(10), toBalance)
}

func TestSimulatedNetwork_Transfer_InsufficientBalance(t *testing.T) {
	n := NewSimulatedNetwork()
	ctx := context.Background()

	a, _ := n.CreateAccount(ctx)
	b, _ := n.CreateAccount(ctx)

	_, err := n.Transfer(ctx, a.AccountID, b.AccountID, 10, domain.DefaultTokenKind)
	require.Error(t, err)
}

func TestSimulatedNetwork_FailNext(t *testing.T) {
	n := NewSimulatedNetwork()
	ctx := context.Background()

	a, _ := n.CreateAccount(ctx)
	b, _ := n.CreateAccount(ctx)
	require.NoError(t, n.Credit(a.AccountID, 100))

	n.FailNext(fmt.Errorf("node unreachable"))

	_, err := n.Transfer(ctx, a.AccountID, b.AccountID, 10, domain.DefaultTokenKind)
	require.EqualError(t, err, "node unreachable")

	// One-shot: the following transfer succeeds.
	_, err = n.Transfer(ctx, a.AccountID, b.AccountID, 10, domain.DefaultTokenKind)
	require.NoError(t, err)

	balance, _ := n.GetBalance(ctx, a.AccountID)
	assert.Equal(t, int64(90), balance, "the failed transfer must not move funds")
}
