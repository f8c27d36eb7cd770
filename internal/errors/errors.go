// Package errors provides custom error types for the Patrimoine API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Advisor errors.
var (
	ErrAdvisorNotFound = &AppError{Code: "ADVISOR_NOT_FOUND", Message: "Advisor not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail  = &AppError{Code: "DUPLICATE_EMAIL", Message: "An advisor with this email already exists", StatusCode: http.StatusConflict}
)

// Company & customer errors.
var (
	ErrCompanyNotFound  = &AppError{Code: "COMPANY_NOT_FOUND", Message: "Company not found", StatusCode: http.StatusNotFound}
	ErrCustomerNotFound = &AppError{Code: "CUSTOMER_NOT_FOUND", Message: "Customer not found", StatusCode: http.StatusNotFound}
)

// Budget errors.
var (
	ErrBudgetItemNotFound = &AppError{Code: "BUDGET_ITEM_NOT_FOUND", Message: "Budget item not found", StatusCode: http.StatusNotFound}
	ErrUnknownSubCategory = &AppError{Code: "UNKNOWN_SUBCATEGORY", Message: "Sub-category does not belong to any budget category", StatusCode: http.StatusBadRequest}
	ErrCategoryMismatch   = &AppError{Code: "CATEGORY_MISMATCH", Message: "Sub-category does not belong to the given category", StatusCode: http.StatusBadRequest}
)

// Fiscality errors.
var (
	ErrFiscalityNotFound = &AppError{Code: "FISCALITY_NOT_FOUND", Message: "Fiscality record not found", StatusCode: http.StatusNotFound}
)

// Investor profile errors.
var (
	ErrInvestorProfileNotFound = &AppError{Code: "INVESTOR_PROFILE_NOT_FOUND", Message: "Investor profile not found", StatusCode: http.StatusNotFound}
)
