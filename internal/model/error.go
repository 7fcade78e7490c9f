package model

import "errors"

// ErrorKind classifies domain errors so the HTTP layer can pick a status code.
type ErrorKind int

const (
	// KindValidation is a missing or malformed required field.
	KindValidation ErrorKind = iota + 1
	// KindConflict is a duplicate value of a unique field.
	KindConflict
	// KindAuth is a credential mismatch.
	KindAuth
)

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeDuplicateEmail  = "DUPLICATE_EMAIL"
	ErrCodeInvalidCreds    = "INVALID_CREDENTIALS"
	ErrCodeInvalidOrder    = "INVALID_ORDER"
	ErrCodeInvalidDelivery = "INVALID_DELIVERY_TYPE"
	ErrCodeTotalMismatch   = "TOTAL_MISMATCH"
	ErrCodeMissingInquiry  = "MISSING_INQUIRY_FIELD"
)

// DomainError is a business rule violation. Anything that is not a DomainError
// is treated as a store failure.
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// AsDomainError reports whether err wraps a DomainError and returns it.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Common domain errors
var (
	ErrMissingFields      = NewDomainError(KindValidation, ErrCodeMissingField, "Missing fields")
	ErrEmailRegistered    = NewDomainError(KindConflict, ErrCodeDuplicateEmail, "Email already registered")
	ErrInvalidCredentials = NewDomainError(KindAuth, ErrCodeInvalidCreds, "Invalid credentials")
	ErrInvalidOrder       = NewDomainError(KindValidation, ErrCodeInvalidOrder, "Invalid order data")
	ErrInvalidDelivery    = NewDomainError(KindValidation, ErrCodeInvalidDelivery, "Invalid delivery type")
	ErrTotalMismatch      = NewDomainError(KindValidation, ErrCodeTotalMismatch, "Order total does not match items")
	ErrMissingInquiry     = NewDomainError(KindValidation, ErrCodeMissingInquiry, "Please provide name, email and message")
	ErrInvalidJSON        = NewDomainError(KindValidation, ErrCodeInvalidJSON, "Invalid request body")
)

// ErrDuplicateKey is returned by repositories when a unique index rejects a write.
var ErrDuplicateKey = errors.New("duplicate key")
