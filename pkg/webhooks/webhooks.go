// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package webhooks parses and verifies Plaid webhook deliveries.
//
// This package only handles payloads; receiving them over HTTP is the
// caller's job. Hand the raw body to Parse for a typed view of the
// notification and, when signature checking matters, to a Verifier first.
package webhooks

import (
	"encoding/json"
	"fmt"

	"github.com/moov-io/plaid/pkg/plaid"
)

// Webhook type discriminators Plaid currently sends.
const (
	TypeItem         = "ITEM"
	TypeTransactions = "TRANSACTIONS"
	TypeAuth         = "AUTH"
)

// Item webhook codes.
const (
	CodeError                     = "ERROR"
	CodePendingExpiration         = "PENDING_EXPIRATION"
	CodeUserPermissionRevoked     = "USER_PERMISSION_REVOKED"
	CodeWebhookUpdateAcknowledged = "WEBHOOK_UPDATE_ACKNOWLEDGED"
	CodeNewAccountsAvailable      = "NEW_ACCOUNTS_AVAILABLE"
)

// Transactions webhook codes.
const (
	CodeInitialUpdate       = "INITIAL_UPDATE"
	CodeHistoricalUpdate    = "HISTORICAL_UPDATE"
	CodeDefaultUpdate       = "DEFAULT_UPDATE"
	CodeTransactionsRemoved = "TRANSACTIONS_REMOVED"
)

// Auth webhook codes.
const (
	CodeAutomaticallyVerified = "AUTOMATICALLY_VERIFIED"
	CodeVerificationExpired   = "VERIFICATION_EXPIRED"
)

// Webhook is one parsed delivery. Concrete types are *ItemWebhook,
// *TransactionsWebhook, *AuthWebhook and *UnknownWebhook.
type Webhook interface {
	// Type is the webhook_type discriminator, e.g. TRANSACTIONS.
	Type() string

	// Code is the webhook_code within the type, e.g. DEFAULT_UPDATE.
	Code() string
}

// ItemWebhook communicates changes to an Item: errors needing user action,
// consent expiring, permission revoked or an updated webhook address.
type ItemWebhook struct {
	WebhookType string `json:"webhook_type"`
	WebhookCode string `json:"webhook_code"`

	// ItemID of the Item this webhook concerns.
	ItemID string `json:"item_id"`

	// Error is set on ERROR webhooks; resolving it usually requires the
	// user to go through Link's update mode.
	Error *plaid.Error `json:"error,omitempty"`

	// ConsentExpirationTime accompanies PENDING_EXPIRATION, sent 7 days
	// before the Item's consent expires.
	ConsentExpirationTime *string `json:"consent_expiration_time,omitempty"`

	// NewWebhookURL accompanies WEBHOOK_UPDATE_ACKNOWLEDGED and is delivered
	// to the newly registered address.
	NewWebhookURL *string `json:"new_webhook_url,omitempty"`
}

func (w *ItemWebhook) Type() string { return w.WebhookType }
func (w *ItemWebhook) Code() string { return w.WebhookCode }

// TransactionsWebhook announces transaction data ready to fetch or removed.
type TransactionsWebhook struct {
	WebhookType string `json:"webhook_type"`
	WebhookCode string `json:"webhook_code"`

	ItemID string       `json:"item_id"`
	Error  *plaid.Error `json:"error,omitempty"`

	// NewTransactions is how many transactions the update made available.
	NewTransactions int `json:"new_transactions,omitempty"`

	// RemovedTransactions lists transaction IDs deleted upstream, on
	// TRANSACTIONS_REMOVED.
	RemovedTransactions []string `json:"removed_transactions,omitempty"`
}

func (w *TransactionsWebhook) Type() string { return w.WebhookType }
func (w *TransactionsWebhook) Code() string { return w.WebhookCode }

// AuthWebhook reports micro-deposit verification results.
type AuthWebhook struct {
	WebhookType string `json:"webhook_type"`
	WebhookCode string `json:"webhook_code"`

	ItemID    string       `json:"item_id"`
	AccountID string       `json:"account_id,omitempty"`
	Error     *plaid.Error `json:"error,omitempty"`
}

func (w *AuthWebhook) Type() string { return w.WebhookType }
func (w *AuthWebhook) Code() string { return w.WebhookCode }

// UnknownWebhook preserves deliveries whose webhook_type this package
// doesn't model yet, so new upstream categories don't fail parsing. Raw
// holds the entire original payload.
type UnknownWebhook struct {
	WebhookType string          `json:"webhook_type"`
	WebhookCode string          `json:"webhook_code"`
	Raw         json.RawMessage `json:"-"`
}

func (w *UnknownWebhook) Type() string { return w.WebhookType }
func (w *UnknownWebhook) Code() string { return w.WebhookCode }

type envelope struct {
	WebhookType string `json:"webhook_type"`
	WebhookCode string `json:"webhook_code"`
}

// Parse decodes one webhook delivery into its category's type. Bodies
// missing the webhook_type discriminator are a decoding error; recognized
// JSON with an unrecognized type parses into *UnknownWebhook.
func Parse(data []byte) (Webhook, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("webhooks: parse: %v", err)
	}
	if env.WebhookType == "" {
		return nil, fmt.Errorf("webhooks: parse: missing webhook_type")
	}

	var out Webhook
	switch env.WebhookType {
	case TypeItem:
		out = &ItemWebhook{}
	case TypeTransactions:
		out = &TransactionsWebhook{}
	case TypeAuth:
		out = &AuthWebhook{}
	default:
		unknown := &UnknownWebhook{Raw: append([]byte(nil), data...)}
		out = unknown
	}
	if err := json.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("webhooks: parse %s: %v", env.WebhookType, err)
	}
	return out, nil
}
