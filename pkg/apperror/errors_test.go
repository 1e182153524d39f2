package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("REQ_003", "Insufficient funds", http.StatusPaymentRequired),
			expected: "[REQ_003] Insufficient funds",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("NET_002", "Ledger error", http.StatusBadGateway, fmt.Errorf("connection refused")),
			expected: "[NET_002] Ledger error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("VAL_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", Validation("bad field"), "VAL_001", 400},
		{"InvalidAmount", ErrInvalidAmount(), "VAL_002", 400},
		{"InvalidNonce", ErrInvalidNonce(), "VAL_003", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestAccountErrors(t *testing.T) {
	exists := ErrAccountExists("alice")
	assert.Equal(t, "ACC_001", exists.Code)
	assert.Equal(t, 409, exists.HTTPStatus)
	assert.Contains(t, exists.Message, "alice")

	notFound := ErrAccountNotFound("bob")
	assert.Equal(t, "ACC_002", notFound.Code)
	assert.Equal(t, 404, notFound.HTTPStatus)
	assert.Contains(t, notFound.Message, "bob")
}

func TestRequestErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"RequestNotFound", ErrRequestNotFound(), "REQ_001", 404},
		{"InvalidRequestState", ErrInvalidRequestState("completed"), "REQ_002", 409},
		{"InsufficientFunds", ErrInsufficientFunds(), "REQ_003", 402},
		{"NonceCollision", ErrNonceCollision(), "REQ_004", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestInvalidRequestState_IncludesState(t *testing.T) {
	err := ErrInvalidRequestState("cancelled")
	assert.Contains(t, err.Message, "cancelled")
}

func TestInvestmentErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"OpportunityNotFound", ErrOpportunityNotFound(), "INV_001", 404},
		{"InvestmentNotFound", ErrInvestmentNotFound(), "INV_002", 404},
		{"InvoiceNotFound", ErrInvoiceNotFound(), "INV_003", 404},
		{"InvoiceNotActive", ErrInvoiceNotActive(), "INV_004", 422},
		{"BelowMinimum", ErrBelowMinimum(10), "INV_005", 400},
		{"ExceedsRemaining", ErrExceedsRemaining(200), "INV_006", 409},
		{"FullyFunded", ErrFullyFunded(), "INV_007", 409},
		{"OpportunityExpired", ErrOpportunityExpired(), "INV_008", 410},
		{"InvestmentNotCompleted", ErrInvestmentNotCompleted(), "INV_009", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestNetworkErrors(t *testing.T) {
	inner := fmt.Errorf("ledger unavailable")

	transferErr := ErrTransferFailed(inner)
	assert.Equal(t, "NET_001", transferErr.Code)
	assert.Equal(t, 502, transferErr.HTTPStatus)
	assert.True(t, errors.Is(transferErr, inner))

	netErr := ErrNetwork(inner)
	assert.Equal(t, "NET_002", netErr.Code)
	assert.Equal(t, 502, netErr.HTTPStatus)
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")

	intErr := InternalError(inner)
	assert.Equal(t, "SYS_001", intErr.Code)
	assert.Equal(t, 500, intErr.HTTPStatus)
	assert.True(t, errors.Is(intErr, inner))

	storErr := ErrStorage(inner)
	assert.Equal(t, "SYS_002", storErr.Code)
	assert.Equal(t, 500, storErr.HTTPStatus)
}
