// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
)

func TestIdentity__get(t *testing.T) {
	client, server := newClientWithServer(t, func(r *mux.Router) {
		r.Methods("POST").Path("/identity/get").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
  "accounts": [
    {
      "account_id": "blgvvBlXw3cq5GMPwqB6s6q4dLKB9WcVqGDGo",
      "balances": {"available": 100, "current": 110, "iso_currency_code": "USD"},
      "name": "Plaid Checking",
      "type": "depository",
      "subtype": "checking",
      "owners": [
        {
          "names": ["Alberta Bobbeth Charleson"],
          "phone_numbers": [
            {"data": "1112223333", "primary": false, "type": "home"}
          ],
          "emails": [
            {"data": "accountholder0@example.com", "primary": true, "type": "primary"}
          ],
          "addresses": [
            {
              "data": {
                "city": "Malakoff",
                "region": "NY",
                "street": "2992 Cameron Road",
                "postal_code": "14236",
                "country": "US"
              },
              "primary": true
            }
          ]
        }
      ]
    }
  ],
  "item": {"item_id": "item-123"},
  "request_id": "3nARps6TOYtbACO"
}`))
		})
	})
	defer server.Close()

	resp, err := client.GetIdentity(context.Background(), "access-sandbox-xyz")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Accounts) != 1 {
		t.Fatalf("got %d accounts", len(resp.Accounts))
	}

	owners := resp.Accounts[0].Owners
	if len(owners) != 1 {
		t.Fatalf("got %d owners", len(owners))
	}
	owner := owners[0]
	if len(owner.Names) != 1 || owner.Names[0] != "Alberta Bobbeth Charleson" {
		t.Errorf("got %v", owner.Names)
	}
	if len(owner.Emails) != 1 || !owner.Emails[0].Primary {
		t.Errorf("got %v", owner.Emails)
	}
	if len(owner.Addresses) != 1 {
		t.Fatalf("got %v", owner.Addresses)
	}
	details := owner.Addresses[0].Data
	if details.Street != "2992 Cameron Road" {
		t.Errorf("got %q", details.Street)
	}
	if details.City == nil || *details.City != "Malakoff" {
		t.Errorf("got %v", details.City)
	}
}
