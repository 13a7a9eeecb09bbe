package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError reports malformed input or a business-rule violation.
// Recoverable: the caller can correct the input and retry.
type ValidationError struct {
	Code   ErrorCode
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a validation error with the code's default message
func NewValidationError(code ErrorCode) *ValidationError {
	return &ValidationError{Code: code, Reason: GetErrorMessage(code)}
}

// NewValidationErrorf builds a validation error with a custom reason
func NewValidationErrorf(code ErrorCode, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// AccountNotFoundError reports that no account or admin matched the lookup key
type AccountNotFoundError struct {
	Key string
}

func (e *AccountNotFoundError) Error() string {
	if e.Key == "" {
		return GetErrorMessage(AccountNotFound)
	}
	return fmt.Sprintf("no account found with number: %s", e.Key)
}

// InsufficientFundsError reports a balance too low for the requested debit.
// It carries the current balance so callers can show it to the user.
type InsufficientFundsError struct {
	Balance decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds. Your balance is: %s", e.Balance.StringFixed(2))
}

// DeliveryFailedError reports an OTP transport failure, distinct from a
// wrong-code mismatch.
type DeliveryFailedError struct {
	Cause error
}

func (e *DeliveryFailedError) Error() string {
	return GetErrorMessage(OTPDeliveryFailed)
}

func (e *DeliveryFailedError) Unwrap() error {
	return e.Cause
}

// StorageError reports an underlying store failure. It is always surfaced to
// the caller, never swallowed inside the core.
type StorageError struct {
	Op    string
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewStorageError wraps a store failure with the operation it interrupted
func NewStorageError(op string, cause error) *StorageError {
	return &StorageError{Op: op, Cause: cause}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) an AccountNotFoundError
func IsNotFound(err error) bool {
	var nf *AccountNotFoundError
	return stderrors.As(err, &nf)
}

// IsInsufficientFunds reports whether err is (or wraps) an InsufficientFundsError
func IsInsufficientFunds(err error) bool {
	var ife *InsufficientFundsError
	return stderrors.As(err, &ife)
}

// IsStorage reports whether err is (or wraps) a StorageError
func IsStorage(err error) bool {
	var se *StorageError
	return stderrors.As(err, &se)
}
