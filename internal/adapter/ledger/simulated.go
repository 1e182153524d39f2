package ledger

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"custodial-payment-platform/internal/core/domain"
	"custodial-payment-platform/internal/core/ports"
)

// SimulatedNetwork is an in-process LedgerNetwork for demos and tests. It
// keeps per-account balances, allocates shard-style account ids, and can be
// told to fail the next transfer to exercise failure paths.
type SimulatedNetwork struct {
	mu       sync.Mutex
	seq      int64
	txSeq    int64
	balances map[string]int64
	failNext error
}

// NewSimulatedNetwork creates an empty simulated ledger.
func NewSimulatedNetwork() *SimulatedNetwork {
	return &SimulatedNetwork{balances: make(map[string]int64)}
}

func (n *SimulatedNetwork) CreateAccount(_ context.Context) (*ports.AccountIdentity, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generating account secret: %w", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.seq++
	id := fmt.Sprintf("0.0.%d", 1000+n.seq)
	n.balances[id] = 0
	return &ports.AccountIdentity{
		AccountID:           id,
		AuthorizationSecret: hex.EncodeToString(secret),
	}, nil
}

func (n *SimulatedNetwork) GetBalance(_ context.Context, accountID string) (int64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	balance, ok := n.balances[accountID]
	if !ok {
		return 0, fmt.Errorf("ledger: unknown account %s", accountID)
	}
	return balance, nil
}

func (n *SimulatedNetwork) Transfer(_ context.Context, fromAccountID, toAccountID string, amount int64, _ domain.TokenKind) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.failNext; err != nil {
		n.failNext = nil
		return "", err
	}
	from, ok := n.balances[fromAccountID]
	if !ok {
		return "", fmt.Errorf("ledger: unknown account %s", fromAccountID)
	}
	if _, ok := n.balances[toAccountID]; !ok {
		return "", fmt.Errorf("ledger: unknown account %s", toAccountID)
	}
	if amount <= 0 {
		return "", fmt.Errorf("ledger: non-positive transfer amount %d", amount)
	}
	if from < amount {
		return "", fmt.Errorf("ledger: insufficient balance on %s", fromAccountID)
	}
	n.balances[fromAccountID] -= amount
	n.balances[toAccountID] += amount
	n.txSeq++
	return fmt.Sprintf("sim-tx-%d", n.txSeq), nil
}

// Credit is the faucet used to seed balances in demos and tests.
func (n *SimulatedNetwork) Credit(accountID string, amount int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.balances[accountID]; !ok {
		return fmt.Errorf("ledger: unknown account %s", accountID)
	}
	n.balances[accountID] += amount
	return nil
}

// FailNext makes the next Transfer call fail with err, then clears itself.
func (n *SimulatedNetwork) FailNext(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failNext = err
}
