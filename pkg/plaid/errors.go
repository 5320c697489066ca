// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"errors"
	"fmt"
)

// Configuration errors returned by New and FromEnv.
var (
	ErrMissingClientID = errors.New("plaid: missing client ID")
	ErrMissingSecret   = errors.New("plaid: missing secret")
)

// ErrorType is Plaid's broad categorization of an API error. Safe for
// programmatic use, unlike ErrorMessage.
type ErrorType string

const (
	ErrorTypeInvalidRequest          ErrorType = "INVALID_REQUEST"
	ErrorTypeInvalidInput            ErrorType = "INVALID_INPUT"
	ErrorTypeInvalidResult           ErrorType = "INVALID_RESULT"
	ErrorTypeInstitutionError        ErrorType = "INSTITUTION_ERROR"
	ErrorTypeRateLimitExceeded       ErrorType = "RATE_LIMIT_EXCEEDED"
	ErrorTypeAPIError                ErrorType = "API_ERROR"
	ErrorTypeItemError               ErrorType = "ITEM_ERROR"
	ErrorTypeAssetReportError        ErrorType = "ASSET_REPORT_ERROR"
	ErrorTypeRecaptchaError          ErrorType = "RECAPTCHA_ERROR"
	ErrorTypeOAuthError              ErrorType = "OAUTH_ERROR"
	ErrorTypePaymentError            ErrorType = "PAYMENT_ERROR"
	ErrorTypeBankTransferError       ErrorType = "BANK_TRANSFER_ERROR"
	ErrorTypeDepositSwitchError      ErrorType = "DEPOSIT_SWITCH_ERROR"
	ErrorTypeIncomeVerificationError ErrorType = "INCOME_VERIFICATION_ERROR"
	ErrorTypeSandboxError            ErrorType = "SANDBOX_ERROR"
)

// Error is the structured error payload Plaid returns on failed requests.
// See https://plaid.com/docs/errors/#error-schema
type Error struct {
	// ErrorType is a broad categorization of the error.
	ErrorType ErrorType `json:"error_type"`

	// ErrorCode is the particular error. Safe for programmatic use.
	ErrorCode string `json:"error_code"`

	// ErrorMessage is a developer-friendly representation of the error code.
	// Not safe for programmatic use.
	ErrorMessage string `json:"error_message"`

	// DisplayMessage is a user-friendly representation of the error code,
	// absent if the error is not related to user action.
	DisplayMessage *string `json:"display_message,omitempty"`

	// RequestID identifies the request for troubleshooting. Absent in errors
	// delivered via webhooks.
	RequestID *string `json:"request_id,omitempty"`

	// DocumentationURL points at a Plaid documentation page with more
	// information about the error.
	DocumentationURL *string `json:"documentation_url,omitempty"`

	// SuggestedAction describes steps for resolving the error.
	SuggestedAction *string `json:"suggested_action,omitempty"`

	// StatusCode is the HTTP status the error arrived with. Zero when the
	// error was parsed from a webhook payload rather than an HTTP response.
	StatusCode int `json:"-"`
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("plaid: %s (%s): %s", e.ErrorType, e.ErrorCode, e.ErrorMessage)
	if e.RequestID != nil {
		msg += fmt.Sprintf(" request_id=%s", *e.RequestID)
	}
	return msg
}

// TransportError reports a network-level failure (connect, TLS, timeout) from
// the underlying HTTP client. No response was decoded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("plaid: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that couldn't be decoded into the
// expected schema, or a failure status whose body wasn't a recognizable Plaid
// error. The original status and body are kept so callers can diagnose what
// the server actually sent (e.g. an HTML gateway timeout page).
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("plaid: decoding response (status=%d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("plaid: unexpected response (status=%d)", e.StatusCode)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
