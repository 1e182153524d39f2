package domain

import (
	"time"
)

// TokenKind identifies the token a payment is denominated in.
type TokenKind string

// DefaultTokenKind is used when the merchant does not name a token.
const DefaultTokenKind TokenKind = "HBAR"

// RequestStatus represents the lifecycle state of a payment request.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending_payment"
	RequestStatusProcessing RequestStatus = "processing"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusFailed     RequestStatus = "failed"
	RequestStatusExpired    RequestStatus = "expired"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// SettlementRecord is the terminal outcome of a settlement attempt.
type SettlementRecord struct {
	PayerOwnerID  string    `json:"payer_owner_id"`
	Amount        int64     `json:"amount"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Error         string    `json:"error,omitempty"`
	SettledAt     time.Time `json:"settled_at"`
}

// PaymentRequest is a nonce-keyed payment intent issued to a merchant.
// Amount is nil when the payer decides the amount at settlement time.
type PaymentRequest struct {
	Nonce           string            `json:"nonce"`
	MerchantOwnerID string            `json:"merchant_owner_id"`
	Amount          *int64            `json:"amount,omitempty"`
	TokenKind       TokenKind         `json:"token_kind"`
	Status          RequestStatus     `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	ExpiresAt       time.Time         `json:"expires_at"`
	Settlement      *SettlementRecord `json:"settlement,omitempty"`
}

// EffectiveStatus derives the read-time status: a request still
// pending_payment past its deadline reads as expired without mutation.
func (r *PaymentRequest) EffectiveStatus(now time.Time) RequestStatus {
	if r.Status == RequestStatusPending && now.After(r.ExpiresAt) {
		return RequestStatusExpired
	}
	return r.Status
}

// IsTerminal returns true if the stored status is final.
func (r *PaymentRequest) IsTerminal() bool {
	switch r.Status {
	case RequestStatusCompleted, RequestStatusFailed, RequestStatusCancelled:
		return true
	}
	return false
}

// PaymentURL renders the URL encoded into the merchant's QR code.
func (r *PaymentRequest) PaymentURL(base string) string {
	return base + "/pay?nonce=" + r.Nonce
}

// NonceLength is the number of hex characters in a payment nonce (128 bits).
const NonceLength = 32

// IsValidNonce reports whether s is 32 lowercase hex characters.
func IsValidNonce(s string) bool {
	if len(s) != NonceLength {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
