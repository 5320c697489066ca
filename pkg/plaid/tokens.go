// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
	"time"
)

// LinkTokenUser identifies the end user who will link their account.
// Don't put personally identifiable information (email, phone number) in
// ClientUserID.
type LinkTokenUser struct {
	ClientUserID string `json:"client_user_id"`
}

// PaymentInitiationConfig configures Link for the Payment Initiation (UK)
// product.
type PaymentInitiationConfig struct {
	// PaymentID comes from /payment_initiation/payment/create.
	PaymentID string `json:"payment_id"`
}

// LinkTokenConfigs are the parameters to CreateLinkToken.
type LinkTokenConfigs struct {
	// ClientName is your application's name, as displayed in Link.
	ClientName string `json:"client_name"`

	// Language Link is displayed in: en, fr, es or nl.
	Language string `json:"language"`

	// CountryCodes are ISO 3166-1 alpha-2 codes. Launching with a European
	// code shows users the European consent panel.
	CountryCodes []string `json:"country_codes"`

	User *LinkTokenUser `json:"user"`

	// Products to initialize Link with. Omit when launching Link in update
	// mode. In Production each listed product is billed.
	Products []string `json:"products,omitempty"`

	// Webhook is the destination URL for webhooks about the linked Item.
	Webhook string `json:"webhook,omitempty"`

	// AccessToken of the Item to update when launching Link in update mode.
	AccessToken string `json:"access_token,omitempty"`

	// LinkCustomizationName selects a customization from the Dashboard; the
	// default customization applies when omitted.
	LinkCustomizationName string `json:"link_customization_name,omitempty"`

	// RedirectURI is where users are forwarded after completing the Link
	// flow; used for OAuth flows in the browser and must be registered in
	// the Dashboard.
	RedirectURI string `json:"redirect_uri,omitempty"`

	// AndroidPackageName is required when the link token initializes Link on
	// Android.
	AndroidPackageName string `json:"android_package_name,omitempty"`

	// AccountFilters limits the account subtypes shown in Link, keyed by
	// account type, e.g. {"depository": {"account_subtypes": ["checking"]}}.
	AccountFilters map[string]AccountFilter `json:"account_filters,omitempty"`

	// PaymentInitiation is required when Products includes
	// payment_initiation.
	PaymentInitiation *PaymentInitiationConfig `json:"payment_initiation,omitempty"`
}

// AccountFilter restricts which subtypes of an account type Link shows.
// Use ["all"] to show every subtype.
type AccountFilter struct {
	AccountSubtypes []string `json:"account_subtypes"`
}

type createLinkTokenRequest struct {
	ClientID string `json:"client_id"`
	Secret   Secret `json:"secret"`
	LinkTokenConfigs
}

// CreateLinkTokenResponse is returned by /link/token/create.
type CreateLinkTokenResponse struct {
	LinkToken string `json:"link_token"`

	// Expiration is 24 hours for tokens creating new Items, 30 minutes for
	// update-mode tokens.
	Expiration time.Time `json:"expiration"`

	RequestID string `json:"request_id"`
}

// CreateLinkToken creates a token that initializes the Link flow for an end
// user. Link hands back a public token, which ExchangePublicToken turns into
// an access token.
func (c *Client) CreateLinkToken(ctx context.Context, configs LinkTokenConfigs) (*CreateLinkTokenResponse, error) {
	req := createLinkTokenRequest{
		ClientID:         c.clientID,
		Secret:           c.secret,
		LinkTokenConfigs: configs,
	}
	var out CreateLinkTokenResponse
	if err := c.post(ctx, "link.token.create", "/link/token/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type exchangePublicTokenRequest struct {
	ClientID    string `json:"client_id"`
	Secret      Secret `json:"secret"`
	PublicToken string `json:"public_token"`
}

// ExchangePublicTokenResponse is returned by /item/public_token/exchange.
type ExchangePublicTokenResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

// ExchangePublicToken exchanges the short-lived public token produced by the
// Link flow for a long-lived access token.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (*ExchangePublicTokenResponse, error) {
	req := exchangePublicTokenRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		PublicToken: publicToken,
	}
	var out ExchangePublicTokenResponse
	if err := c.post(ctx, "item.public_token.exchange", "/item/public_token/exchange", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type createPublicTokenRequest struct {
	ClientID    string `json:"client_id"`
	Secret      Secret `json:"secret"`
	AccessToken string `json:"access_token"`
}

// CreatePublicTokenResponse is returned by /item/public_token/create.
type CreatePublicTokenResponse struct {
	PublicToken string `json:"public_token"`
	RequestID   string `json:"request_id"`
}

// CreatePublicToken creates a public token for an existing Item, used to
// initialize Link in update mode.
func (c *Client) CreatePublicToken(ctx context.Context, accessToken string) (*CreatePublicTokenResponse, error) {
	req := createPublicTokenRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	}
	var out CreatePublicTokenResponse
	if err := c.post(ctx, "item.public_token.create", "/item/public_token/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
