// internal/common/errors/errors.go

// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeNotLoggedIn             ErrorCode = "NOT_LOGGED_IN"
	ErrCodeRecordNotFound          ErrorCode = "RECORD_NOT_FOUND"
	ErrCodeMalformedStoredData     ErrorCode = "MALFORMED_STORED_DATA"
	ErrCodeInvalidCredentials      ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeNoAccount               ErrorCode = "NO_ACCOUNT"
	ErrCodeInvalidStatusTransition ErrorCode = "INVALID_STATUS_TRANSITION"
	ErrCodeDuplicateApplication    ErrorCode = "DUPLICATE_APPLICATION"
	ErrCodeDecisionInProgress      ErrorCode = "DECISION_IN_PROGRESS"
	ErrCodeValidationFailed        ErrorCode = "VALIDATION_FAILED"

	ErrCodeWalletUnavailable ErrorCode = "WALLET_UNAVAILABLE"
	ErrCodeUserRejected      ErrorCode = "USER_REJECTED"
	ErrCodeTransactionFailed ErrorCode = "TRANSACTION_FAILED"
	ErrCodeInvalidAmount     ErrorCode = "INVALID_AMOUNT"

	ErrCodeStorageFailed          ErrorCode = "STORAGE_FAILED"
	ErrCodeNotificationSendFailed ErrorCode = "NOTIFICATION_SEND_FAILED"
	ErrCodeInternal               ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata attaches a key to the error's metadata and returns the error.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = map[string]interface{}{}
	}
	e.Metadata[key] = value
	return e
}

// CodeOf returns the code of the first StandardError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	for k, v := range e.ErrorVariables {
		vars[k] = v
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

func newError(code ErrorCode, message, details string, retryable bool) *StandardError {
	return &StandardError{
		Code:      code,
		Message:   message,
		Details:   details,
		Retryable: retryable,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotLoggedInError is returned when a role's session flag or identity is missing.
func NewNotLoggedInError(role string) *StandardError {
	return newError(ErrCodeNotLoggedIn, "Not logged in", fmt.Sprintf("role: %s", role), false)
}

func NewRecordNotFoundError(kind, id string) *StandardError {
	return newError(ErrCodeRecordNotFound, fmt.Sprintf("%s not found", kind), fmt.Sprintf("id: %s", id), false)
}

// NewMalformedStoredDataError is logged, never returned to callers of the records package.
func NewMalformedStoredDataError(key string, err error) *StandardError {
	return newError(ErrCodeMalformedStoredData, "Stored record could not be decoded",
		fmt.Sprintf("key: %s, error: %s", key, err.Error()), false)
}

func NewInvalidCredentialsError() *StandardError {
	return newError(ErrCodeInvalidCredentials, "Invalid email or password", "", false)
}

func NewNoAccountError(role string) *StandardError {
	return newError(ErrCodeNoAccount, "User not found", fmt.Sprintf("role: %s", role), false)
}

func NewInvalidStatusTransitionError(from, to string) *StandardError {
	return newError(ErrCodeInvalidStatusTransition, "Application already decided",
		fmt.Sprintf("from: %s, to: %s", from, to), false)
}

// NewDecisionInProgressError reports that another approve or deny for the
// same applicant has not finished yet.
func NewDecisionInProgressError(scholarshipID, applicantID string) *StandardError {
	return newError(ErrCodeDecisionInProgress, "Decision already in progress",
		fmt.Sprintf("scholarshipId: %s, applicantId: %s", scholarshipID, applicantID), false)
}

func NewDuplicateApplicationError(scholarshipID string) *StandardError {
	return newError(ErrCodeDuplicateApplication, "Application already exists",
		fmt.Sprintf("scholarshipId: %s", scholarshipID), false)
}

func NewValidationFailedError(details string) *StandardError {
	return newError(ErrCodeValidationFailed, "Input validation failed", details, false)
}

func NewWalletUnavailableError(err error) *StandardError {
	return newError(ErrCodeWalletUnavailable, "No wallet provider available", err.Error(), false)
}

func NewUserRejectedError(err error) *StandardError {
	return newError(ErrCodeUserRejected, "Payment rejected in wallet", err.Error(), false)
}

func NewTransactionFailedError(err error) *StandardError {
	return newError(ErrCodeTransactionFailed, "Payment transaction failed", err.Error(), false)
}

func NewInvalidAmountError(amount string) *StandardError {
	return newError(ErrCodeInvalidAmount, "Invalid payment amount", fmt.Sprintf("amount: %q", amount), false)
}

// NewStorageFailedError is the only retryable record error.
func NewStorageFailedError(op, key string, err error) *StandardError {
	return newError(ErrCodeStorageFailed, "Record store operation failed",
		fmt.Sprintf("op: %s, key: %s, error: %s", op, key, err.Error()), true)
}

func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return newError(ErrCodeNotificationSendFailed, "Notification delivery failed",
		fmt.Sprintf("channel: %s, error: %s", channel, err.Error()), true)
}

// ==========================
// 4. BPMN Mapping & Retries
// ==========================

// BPMNErrorMapping maps internal codes to the error codes modeled on boundary events.
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeNotLoggedIn:             "NOT_LOGGED_IN",
	ErrCodeRecordNotFound:          "RECORD_NOT_FOUND",
	ErrCodeInvalidCredentials:      "INVALID_CREDENTIALS",
	ErrCodeNoAccount:               "NO_ACCOUNT",
	ErrCodeInvalidStatusTransition: "INVALID_STATUS_TRANSITION",
	ErrCodeDuplicateApplication:    "DUPLICATE_APPLICATION",
	ErrCodeDecisionInProgress:      "DECISION_IN_PROGRESS",
	ErrCodeValidationFailed:        "VALIDATION_FAILED",
	ErrCodeWalletUnavailable:       "PAYMENT_FAILED",
	ErrCodeUserRejected:            "PAYMENT_FAILED",
	ErrCodeTransactionFailed:       "PAYMENT_FAILED",
	ErrCodeInvalidAmount:           "PAYMENT_FAILED",
	ErrCodeStorageFailed:           "STORAGE_FAILED",
	ErrCodeNotificationSendFailed:  "NOTIFICATION_SEND_FAILED",
}

func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeStorageFailed,
		ErrCodeNotificationSendFailed:
		return 3
	default:
		return 0 // Business errors: no retry
	}
}

func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code)
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           bpmnCode,
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		Retries:        retries,
		ErrorVariables: vars,
	}
}

func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeNotLoggedIn, ErrCodeInvalidCredentials, ErrCodeNoAccount:
		return "AUTH"
	case ErrCodeWalletUnavailable, ErrCodeUserRejected, ErrCodeTransactionFailed, ErrCodeInvalidAmount:
		return "PAYMENT"
	case ErrCodeStorageFailed, ErrCodeMalformedStoredData:
		return "STORAGE"
	case ErrCodeNotificationSendFailed:
		return "NOTIFICATION"
	}
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION"):
		return "VALIDATION"
	case strings.Contains(codeStr, "NOT_FOUND") || strings.Contains(codeStr, "DUPLICATE"):
		return "RECORD"
	default:
		return "OTHER"
	}
}
