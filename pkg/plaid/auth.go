// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
)

// AuthOptions are optional parameters to GetAuth.
type AuthOptions struct {
	// AccountIDs restricts the response to the given accounts.
	AccountIDs []string `json:"account_ids,omitempty"`
}

type authRequest struct {
	ClientID    string       `json:"client_id"`
	Secret      Secret       `json:"secret"`
	AccessToken string       `json:"access_token"`
	Options     *AuthOptions `json:"options,omitempty"`
}

// AuthResponse is returned by /auth/get.
type AuthResponse struct {
	Accounts  []Account      `json:"accounts"`
	Numbers   AccountNumbers `json:"numbers"`
	Item      Item           `json:"item"`
	RequestID string         `json:"request_id"`
}

// AccountNumbers holds identifying numbers for moving money in and out of
// accounts. Which lists are populated depends on the account's country; an
// account can appear under more than one scheme.
type AccountNumbers struct {
	ACH           []ACHNumbers           `json:"ach,omitempty"`
	EFT           []EFTNumbers           `json:"eft,omitempty"`
	International []InternationalNumbers `json:"international,omitempty"`
	BACS          []BACSNumbers          `json:"bacs,omitempty"`
}

// ACHNumbers identify a US account.
type ACHNumbers struct {
	AccountID string `json:"account_id"`
	Account   string `json:"account"`
	Routing   string `json:"routing"`

	// WireRouting is the wire transfer routing number, if available.
	WireRouting *string `json:"wire_routing,omitempty"`
}

// EFTNumbers identify a Canadian account.
type EFTNumbers struct {
	AccountID   string `json:"account_id"`
	Account     string `json:"account"`
	Institution string `json:"institution"`
	Branch      string `json:"branch"`
}

// InternationalNumbers identify an account by IBAN and BIC.
type InternationalNumbers struct {
	AccountID string `json:"account_id"`
	IBAN      string `json:"iban"`
	BIC       string `json:"bic"`
}

// BACSNumbers identify a UK account.
type BACSNumbers struct {
	AccountID string `json:"account_id"`
	Account   string `json:"account"`
	SortCode  string `json:"sort_code"`
}

// GetAuth retrieves account and routing numbers for an Item's depository
// accounts.
func (c *Client) GetAuth(ctx context.Context, accessToken string, opts *AuthOptions) (*AuthResponse, error) {
	req := authRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Options:     opts,
	}
	var out AuthResponse
	if err := c.post(ctx, "auth.get", "/auth/get", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
