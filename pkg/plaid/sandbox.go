// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
)

// SandboxPublicTokenOptions are optional parameters to
// CreateSandboxPublicToken.
type SandboxPublicTokenOptions struct {
	// Webhook registers a webhook URL on the created Item.
	Webhook string `json:"webhook,omitempty"`

	// OverrideUsername and OverridePassword select a custom Sandbox test
	// user instead of user_good/pass_good.
	OverrideUsername string `json:"override_username,omitempty"`
	OverridePassword string `json:"override_password,omitempty"`
}

type sandboxPublicTokenCreateRequest struct {
	ClientID        string                     `json:"client_id"`
	Secret          Secret                     `json:"secret"`
	InstitutionID   string                     `json:"institution_id"`
	InitialProducts []string                   `json:"initial_products"`
	Options         *SandboxPublicTokenOptions `json:"options,omitempty"`
}

// CreateSandboxPublicTokenResponse is returned by
// /sandbox/public_token/create.
type CreateSandboxPublicTokenResponse struct {
	PublicToken string `json:"public_token"`
	RequestID   string `json:"request_id"`
}

// CreateSandboxPublicToken mints a public token for a Sandbox test Item
// without going through the Link flow. Sandbox only.
func (c *Client) CreateSandboxPublicToken(ctx context.Context, institutionID string, initialProducts []string, opts *SandboxPublicTokenOptions) (*CreateSandboxPublicTokenResponse, error) {
	req := sandboxPublicTokenCreateRequest{
		ClientID:        c.clientID,
		Secret:          c.secret,
		InstitutionID:   institutionID,
		InitialProducts: initialProducts,
		Options:         opts,
	}
	var out CreateSandboxPublicTokenResponse
	if err := c.post(ctx, "sandbox.public_token.create", "/sandbox/public_token/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type sandboxFireWebhookRequest struct {
	ClientID    string `json:"client_id"`
	Secret      Secret `json:"secret"`
	AccessToken string `json:"access_token"`
	WebhookCode string `json:"webhook_code"`
}

// FireSandboxWebhookResponse is returned by /sandbox/item/fire_webhook.
type FireSandboxWebhookResponse struct {
	WebhookFired bool   `json:"webhook_fired"`
	RequestID    string `json:"request_id"`
}

// FireSandboxWebhook triggers delivery of a webhook (e.g. DEFAULT_UPDATE)
// for a Sandbox Item, to exercise a receiver end to end.
func (c *Client) FireSandboxWebhook(ctx context.Context, accessToken, webhookCode string) (*FireSandboxWebhookResponse, error) {
	req := sandboxFireWebhookRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		WebhookCode: webhookCode,
	}
	var out FireSandboxWebhookResponse
	if err := c.post(ctx, "sandbox.item.fire_webhook", "/sandbox/item/fire_webhook", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type sandboxResetLoginRequest struct {
	ClientID    string `json:"client_id"`
	Secret      Secret `json:"secret"`
	AccessToken string `json:"access_token"`
}

// ResetSandboxItemLoginResponse is returned by /sandbox/item/reset_login.
type ResetSandboxItemLoginResponse struct {
	ResetLogin bool   `json:"reset_login"`
	RequestID  string `json:"request_id"`
}

// ResetSandboxItemLogin forces a Sandbox Item into the ITEM_LOGIN_REQUIRED
// error state, to test update mode.
func (c *Client) ResetSandboxItemLogin(ctx context.Context, accessToken string) (*ResetSandboxItemLoginResponse, error) {
	req := sandboxResetLoginRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	}
	var out ResetSandboxItemLoginResponse
	if err := c.post(ctx, "sandbox.item.reset_login", "/sandbox/item/reset_login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
