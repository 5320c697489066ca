// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package webhooks

import (
	"strings"
	"testing"
)

func TestWebhooks__parseTransactions(t *testing.T) {
	hook, err := Parse([]byte(`{
  "webhook_type": "TRANSACTIONS",
  "webhook_code": "DEFAULT_UPDATE",
  "item_id": "item-123",
  "new_transactions": 3
}`))
	if err != nil {
		t.Fatal(err)
	}

	if hook.Type() != TypeTransactions {
		t.Errorf("got %q", hook.Type())
	}
	if hook.Code() != CodeDefaultUpdate {
		t.Errorf("got %q", hook.Code())
	}

	update, ok := hook.(*TransactionsWebhook)
	if !ok {
		t.Fatalf("got %T", hook)
	}
	if update.ItemID != "item-123" {
		t.Errorf("got %q", update.ItemID)
	}
	if update.NewTransactions != 3 {
		t.Errorf("got %d", update.NewTransactions)
	}
	if update.Error != nil {
		t.Errorf("got %v", update.Error)
	}
}

func TestWebhooks__parseTransactionsRemoved(t *testing.T) {
	hook, err := Parse([]byte(`{
  "webhook_type": "TRANSACTIONS",
  "webhook_code": "TRANSACTIONS_REMOVED",
  "item_id": "item-123",
  "removed_transactions": ["yBVBEwrPyJs8GvR77N7QTxnGg6wG74H7dEDN6", "kgygNvAVPzSX9KkddNdWHaVGRVex1MtXdVtK3"]
}`))
	if err != nil {
		t.Fatal(err)
	}

	removed, ok := hook.(*TransactionsWebhook)
	if !ok {
		t.Fatalf("got %T", hook)
	}
	if removed.Code() != CodeTransactionsRemoved {
		t.Errorf("got %q", removed.Code())
	}
	if len(removed.RemovedTransactions) != 2 {
		t.Errorf("got %v", removed.RemovedTransactions)
	}
}

func TestWebhooks__parseItem(t *testing.T) {
	hook, err := Parse([]byte(`{
  "webhook_type": "ITEM",
  "webhook_code": "PENDING_EXPIRATION",
  "item_id": "item-123",
  "consent_expiration_time": "2020-01-15T13:25:17.766Z"
}`))
	if err != nil {
		t.Fatal(err)
	}

	item, ok := hook.(*ItemWebhook)
	if !ok {
		t.Fatalf("got %T", hook)
	}
	if item.Code() != CodePendingExpiration {
		t.Errorf("got %q", item.Code())
	}
	if item.ConsentExpirationTime == nil || !strings.HasPrefix(*item.ConsentExpirationTime, "2020-01-15") {
		t.Errorf("got %v", item.ConsentExpirationTime)
	}
}

func TestWebhooks__parseItemError(t *testing.T) {
	hook, err := Parse([]byte(`{
  "webhook_type": "ITEM",
  "webhook_code": "ERROR",
  "item_id": "item-123",
  "error": {
    "error_type": "ITEM_ERROR",
    "error_code": "ITEM_LOGIN_REQUIRED",
    "error_message": "the login details of this item have changed"
  }
}`))
	if err != nil {
		t.Fatal(err)
	}

	item, ok := hook.(*ItemWebhook)
	if !ok {
		t.Fatalf("got %T", hook)
	}
	if item.Error == nil {
		t.Fatal("expected error payload")
	}
	if item.Error.ErrorCode != "ITEM_LOGIN_REQUIRED" {
		t.Errorf("got %q", item.Error.ErrorCode)
	}
	// webhook errors don't arrive with an HTTP status
	if item.Error.StatusCode != 0 {
		t.Errorf("got %d", item.Error.StatusCode)
	}
}

func TestWebhooks__parseAuth(t *testing.T) {
	hook, err := Parse([]byte(`{
  "webhook_type": "AUTH",
  "webhook_code": "AUTOMATICALLY_VERIFIED",
  "item_id": "item-123",
  "account_id": "BxBXxLj1m4HMXBm9WZZmCWVbPjX16EHwv99vp"
}`))
	if err != nil {
		t.Fatal(err)
	}

	auth, ok := hook.(*AuthWebhook)
	if !ok {
		t.Fatalf("got %T", hook)
	}
	if auth.Code() != CodeAutomaticallyVerified {
		t.Errorf("got %q", auth.Code())
	}
	if auth.AccountID == "" {
		t.Error("expected account_id")
	}
}

func TestWebhooks__parseUnknownType(t *testing.T) {
	payload := `{
  "webhook_type": "INCOME",
  "webhook_code": "PRODUCT_READY",
  "item_id": "item-123"
}`
	hook, err := Parse([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}

	unknown, ok := hook.(*UnknownWebhook)
	if !ok {
		t.Fatalf("got %T", hook)
	}
	if unknown.Type() != "INCOME" {
		t.Errorf("got %q", unknown.Type())
	}
	if unknown.Code() != "PRODUCT_READY" {
		t.Errorf("got %q", unknown.Code())
	}
	if !strings.Contains(string(unknown.Raw), `"item_id": "item-123"`) {
		t.Errorf("got %s", string(unknown.Raw))
	}
}

func TestWebhooks__parseErrors(t *testing.T) {
	if _, err := Parse([]byte(`not json`)); err == nil {
		t.Error("expected error")
	}
	if _, err := Parse([]byte(`{"webhook_code": "DEFAULT_UPDATE"}`)); err == nil {
		t.Error("expected error for missing webhook_type")
	}
	if _, err := Parse([]byte(`{}`)); err == nil {
		t.Error("expected error for missing webhook_type")
	}
}
