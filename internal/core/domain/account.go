package domain

import "time"

// CustodialAccount is a ledger account whose authorization key is held by the
// platform on behalf of a user. The authorization secret never leaves the
// registry boundary; accounts are immutable after creation.
type CustodialAccount struct {
	OwnerID             string    `json:"owner_id"`
	AccountID           string    `json:"account_id"`
	AuthorizationSecret string    `json:"-"` // Never expose
	CreatedAt           time.Time `json:"created_at"`
}
