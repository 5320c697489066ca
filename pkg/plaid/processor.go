// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
)

type createProcessorTokenRequest struct {
	ClientID    string `json:"client_id"`
	Secret      Secret `json:"secret"`
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
	Processor   string `json:"processor"`
}

// CreateProcessorTokenResponse is returned by /processor/token/create.
type CreateProcessorTokenResponse struct {
	ProcessorToken string `json:"processor_token"`
	RequestID      string `json:"request_id"`
}

// CreateProcessorToken creates a token granting the named payment processor
// (e.g. "dwolla", "galileo") access to a single linked account.
func (c *Client) CreateProcessorToken(ctx context.Context, accessToken, accountID, processor string) (*CreateProcessorTokenResponse, error) {
	req := createProcessorTokenRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		AccountID:   accountID,
		Processor:   processor,
	}
	var out CreateProcessorTokenResponse
	if err := c.post(ctx, "processor.token.create", "/processor/token/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type createStripeTokenRequest struct {
	ClientID    string `json:"client_id"`
	Secret      Secret `json:"secret"`
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
}

// CreateStripeTokenResponse is returned by
// /processor/stripe/bank_account_token/create.
type CreateStripeTokenResponse struct {
	StripeBankAccountToken string `json:"stripe_bank_account_token"`
	RequestID              string `json:"request_id"`
}

// CreateStripeToken creates a Stripe bank account token for a linked
// account, for use with Stripe's ACH API.
func (c *Client) CreateStripeToken(ctx context.Context, accessToken, accountID string) (*CreateStripeTokenResponse, error) {
	req := createStripeTokenRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		AccountID:   accountID,
	}
	var out CreateStripeTokenResponse
	if err := c.post(ctx, "processor.stripe.bank_account_token.create", "/processor/stripe/bank_account_token/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
