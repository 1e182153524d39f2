package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a caller-fixable bad-input error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Amount must be a positive integer", http.StatusBadRequest)
}

func ErrInvalidNonce() *AppError {
	return New("VAL_003", "Nonce must be 32 lowercase hex characters", http.StatusBadRequest)
}

// ---- Account Registry (ACC) ----

func ErrAccountExists(ownerID string) *AppError {
	return New("ACC_001", fmt.Sprintf("Account already exists for owner %s", ownerID), http.StatusConflict)
}

func ErrAccountNotFound(ownerID string) *AppError {
	return New("ACC_002", fmt.Sprintf("No account registered for owner %s", ownerID), http.StatusNotFound)
}

// ---- Payment Requests & Settlement (REQ) ----

func ErrRequestNotFound() *AppError {
	return New("REQ_001", "Payment request not found", http.StatusNotFound)
}

// ErrInvalidRequestState rejects an operation that is illegal for the
// request's current lifecycle state, including a second settlement attempt.
func ErrInvalidRequestState(state string) *AppError {
	return New("REQ_002", fmt.Sprintf("Operation not allowed while payment request is %s", state), http.StatusConflict)
}

func ErrInsufficientFunds() *AppError {
	return New("REQ_003", "Insufficient balance in payer account", http.StatusPaymentRequired)
}

func ErrNonceCollision() *AppError {
	return New("REQ_004", "Nonce already in use", http.StatusConflict)
}

// ---- Investment Funding (INV) ----

func ErrOpportunityNotFound() *AppError {
	return New("INV_001", "Investment opportunity not found", http.StatusNotFound)
}

func ErrInvestmentNotFound() *AppError {
	return New("INV_002", "Investment not found", http.StatusNotFound)
}

func ErrInvoiceNotFound() *AppError {
	return New("INV_003", "Invoice not found", http.StatusNotFound)
}

func ErrInvoiceNotActive() *AppError {
	return New("INV_004", "Invoice is not active", http.StatusUnprocessableEntity)
}

func ErrBelowMinimum(minimum int64) *AppError {
	return New("INV_005", fmt.Sprintf("Investment below the minimum of %d", minimum), http.StatusBadRequest)
}

// ErrExceedsRemaining rejects an investment larger than the pool's
// unfunded capacity at the instant of the reservation attempt.
func ErrExceedsRemaining(remaining int64) *AppError {
	return New("INV_006", fmt.Sprintf("Investment exceeds remaining capacity of %d", remaining), http.StatusConflict)
}

func ErrFullyFunded() *AppError {
	return New("INV_007", "Opportunity is fully funded", http.StatusConflict)
}

func ErrOpportunityExpired() *AppError {
	return New("INV_008", "Opportunity has expired", http.StatusGone)
}

func ErrInvestmentNotCompleted() *AppError {
	return New("INV_009", "Investment is not in a completed state", http.StatusConflict)
}

// ---- Collaborator Network (NET) ----

func ErrTransferFailed(err error) *AppError {
	return Wrap("NET_001", "Ledger transfer failed", http.StatusBadGateway, err)
}

func ErrNetwork(err error) *AppError {
	return Wrap("NET_002", "Ledger network error", http.StatusBadGateway, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrStorage(err error) *AppError {
	return Wrap("SYS_002", "Internal storage error", http.StatusInternalServerError, err)
}
