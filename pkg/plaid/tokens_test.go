// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/moov-io/base"
	"github.com/stretchr/testify/require"
)

func TestTokens__exchangePublicToken(t *testing.T) {
	var captured []byte
	client, server := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("POST").Path("/item/public_token/exchange").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = ioutil.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token": "access-sandbox-xyz", "item_id": "item-123", "request_id": "Aim3b"}`))
		})
	})
	defer server.Close()

	resp, err := client.ExchangePublicToken(context.Background(), "public-sandbox-abc")
	if err != nil {
		t.Fatal(err)
	}
	if resp.AccessToken != "access-sandbox-xyz" {
		t.Errorf("got %q", resp.AccessToken)
	}
	if resp.ItemID != "item-123" {
		t.Errorf("got %q", resp.ItemID)
	}

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(captured, &body))
	require.Equal(t, "public-sandbox-abc", body["public_token"])
	require.Equal(t, "test_id", body["client_id"])
	require.Equal(t, "test_secret", body["secret"])
}

func TestTokens__createLinkToken(t *testing.T) {
	var captured []byte
	client, server := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("POST").Path("/link/token/create").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = ioutil.ReadAll(r.Body)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
  "link_token": "link-sandbox-af1a0311-da53-4636-b754-dd15cc058176",
  "expiration": "2020-03-27T12:56:34Z",
  "request_id": "XQVgFigpGHXkb0b"
}`))
		})
	})
	defer server.Close()

	userID := base.ID()
	resp, err := client.CreateLinkToken(context.Background(), LinkTokenConfigs{
		ClientName:   "Great App",
		Language:     "en",
		CountryCodes: []string{"US"},
		User:         &LinkTokenUser{ClientUserID: userID},
		Products:     []string{"auth", "transactions"},
		Webhook:      "https://example.com/plaid/webhook",
		AccountFilters: map[string]AccountFilter{
			"depository": {AccountSubtypes: []string{"checking", "savings"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.LinkToken != "link-sandbox-af1a0311-da53-4636-b754-dd15cc058176" {
		t.Errorf("got %q", resp.LinkToken)
	}
	if resp.Expiration.IsZero() {
		t.Error("expected expiration")
	}

	// The configs flatten into the request body next to the credentials.
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(captured, &body))
	require.Equal(t, "Great App", body["client_name"])
	require.Equal(t, "test_id", body["client_id"])

	user, ok := body["user"].(map[string]interface{})
	require.True(t, ok, "user object missing: %s", string(captured))
	require.Equal(t, userID, user["client_user_id"])

	filters, ok := body["account_filters"].(map[string]interface{})
	require.True(t, ok, "account_filters missing: %s", string(captured))
	require.Contains(t, filters, "depository")

	// Optional configs that were never set stay out of the body.
	require.NotContains(t, body, "access_token")
	require.NotContains(t, body, "payment_initiation")
}

func TestTokens__createPublicToken(t *testing.T) {
	client, server := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("POST").Path("/item/public_token/create").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"public_token": "public-sandbox-abc", "request_id": "U9L0j"}`))
		})
	})
	defer server.Close()

	resp, err := client.CreatePublicToken(context.Background(), "access-sandbox-xyz")
	if err != nil {
		t.Fatal(err)
	}
	if resp.PublicToken != "public-sandbox-abc" {
		t.Errorf("got %q", resp.PublicToken)
	}
}
