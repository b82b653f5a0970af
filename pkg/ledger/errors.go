package ledger

import (
	"errors"
	"fmt"
)

// Domain-level error values returned by the ledger service.
var (
	ErrUnknownAccount         = errors.New("unknown account")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrRecipientNotFound      = errors.New("recipient not found")
	ErrSelfTransferNotAllowed = errors.New("self transfer not allowed")
	ErrDuplicateHandle        = errors.New("duplicate handle")
	ErrNotAuthorized          = errors.New("not authorized")
	ErrRequestNotPending      = errors.New("request not pending")
	ErrAlreadyReversed        = errors.New("already reversed")
	ErrLockTimeout            = errors.New("lock timeout")
	ErrDuplicateID            = errors.New("duplicate id")
	ErrUnknownGamertag        = errors.New("unknown gamertag")

	ErrUnknownIdentity      = errors.New("unknown identity")
	ErrIdentityInactive     = errors.New("identity inactive")
	ErrIdentityExists       = errors.New("identity already registered")
	ErrUnknownTransaction   = errors.New("unknown transaction")
	ErrUnknownRequest       = errors.New("unknown request")
	ErrNotReversible        = errors.New("transaction not reversible")
	ErrInvalidIdentityID    = errors.New("invalid identity id")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidGamertag      = errors.New("invalid gamertag")
	ErrInvalidDisplayName   = errors.New("invalid display name")
	ErrInvalidMessage       = errors.New("invalid message")
	ErrInvalidMetadataJSON  = errors.New("invalid metadata json")
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidCursor        = errors.New("invalid cursor")
	ErrInvalidServiceConfig = errors.New("invalid service config")
)

var errorCodes = []struct {
	err  error
	code string
}{
	{ErrUnknownAccount, "unknown_account"},
	{ErrInvalidAmount, "invalid_amount"},
	{ErrInsufficientBalance, "insufficient_balance"},
	{ErrRecipientNotFound, "recipient_not_found"},
	{ErrSelfTransferNotAllowed, "self_transfer_not_allowed"},
	{ErrDuplicateHandle, "duplicate_handle"},
	{ErrNotAuthorized, "not_authorized"},
	{ErrRequestNotPending, "request_not_pending"},
	{ErrAlreadyReversed, "already_reversed"},
	{ErrLockTimeout, "lock_timeout"},
	{ErrDuplicateID, "duplicate_id"},
	{ErrUnknownGamertag, "unknown_gamertag"},
	{ErrUnknownIdentity, "unknown_identity"},
	{ErrIdentityInactive, "identity_inactive"},
	{ErrIdentityExists, "identity_exists"},
	{ErrUnknownTransaction, "unknown_transaction"},
	{ErrUnknownRequest, "unknown_request"},
	{ErrNotReversible, "not_reversible"},
	{ErrInvalidIdentityID, "invalid_identity_id"},
	{ErrInvalidUserID, "invalid_user_id"},
	{ErrInvalidGamertag, "invalid_gamertag"},
	{ErrInvalidDisplayName, "invalid_display_name"},
	{ErrInvalidMessage, "invalid_message"},
	{ErrInvalidMetadataJSON, "invalid_metadata_json"},
	{ErrInvalidTransactionID, "invalid_transaction_id"},
	{ErrInvalidRequestID, "invalid_request_id"},
	{ErrInvalidStatus, "invalid_status"},
	{ErrInvalidCursor, "invalid_cursor"},
}

// ErrorCodeInternal is reported for errors outside the ledger taxonomy.
const ErrorCodeInternal = "internal"

// ErrorCode returns the stable snake_case code for a ledger error kind.
func ErrorCode(err error) string {
	for _, candidate := range errorCodes {
		if errors.Is(err, candidate.err) {
			return candidate.code
		}
	}
	return ErrorCodeInternal
}

// IsRetryable reports whether the caller may retry the operation unchanged.
// Only lock contention qualifies; every other kind needs corrective action.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrLockTimeout)
}

// OperationError wraps a failure with a stable operation code.
type OperationError struct {
	operation string
	subject   string
	code      string
	err       error
}

// Error returns the formatted error message.
func (operationError OperationError) Error() string {
	return fmt.Sprintf("%s.%s.%s: %v", operationError.operation, operationError.subject, operationError.code, operationError.err)
}

// Unwrap returns the underlying error.
func (operationError OperationError) Unwrap() error {
	return operationError.err
}

// Operation returns the operation segment.
func (operationError OperationError) Operation() string {
	return operationError.operation
}

// Subject returns the subject segment.
func (operationError OperationError) Subject() string {
	return operationError.subject
}

// Code returns the stable error code segment.
func (operationError OperationError) Code() string {
	return operationError.code
}

// WrapError wraps an error with operation, subject, and code metadata.
func WrapError(operation string, subject string, code string, err error) error {
	if err == nil {
		return nil
	}
	return OperationError{
		operation: operation,
		subject:   subject,
		code:      code,
		err:       err,
	}
}
