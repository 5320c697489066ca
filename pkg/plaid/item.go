// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
	"time"
)

// Item is a login at a financial institution. Linking the same credentials
// twice produces two Items with different IDs.
type Item struct {
	// ItemID uniquely (and case-sensitively) identifies the Item.
	ItemID string `json:"item_id"`

	// InstitutionID is absent for Items created via Same Day Micro-deposits.
	InstitutionID *string `json:"institution_id,omitempty"`

	// Webhook is the URL registered to receive webhooks for the Item.
	Webhook *string `json:"webhook,omitempty"`

	// Error is set when the Item is in an error state, such as
	// ITEM_LOGIN_REQUIRED.
	Error *Error `json:"error,omitempty"`

	// AvailableProducts lists products available for the Item that have not
	// yet been accessed.
	AvailableProducts []string `json:"available_products,omitempty"`

	// BilledProducts lists products that have been billed for the Item.
	BilledProducts []string `json:"billed_products,omitempty"`

	// ConsentExpirationTime is the RFC 3339 timestamp after which the end
	// user's consent expires. Only set for European institutions subject to
	// PSD2's 90-day consent window.
	ConsentExpirationTime *time.Time `json:"consent_expiration_time,omitempty"`
}

type itemRequest struct {
	ClientID    string `json:"client_id"`
	Secret      Secret `json:"secret"`
	AccessToken string `json:"access_token"`
}

// ItemResponse is returned by /item/get and /item/webhook/update.
type ItemResponse struct {
	Item      Item   `json:"item"`
	RequestID string `json:"request_id"`
}

// RemoveItemResponse is returned by /item/remove.
type RemoveItemResponse struct {
	Removed   bool   `json:"removed"`
	RequestID string `json:"request_id"`
}

// GetItem retrieves metadata about an Item.
func (c *Client) GetItem(ctx context.Context, accessToken string) (*ItemResponse, error) {
	req := itemRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	}
	var out ItemResponse
	if err := c.post(ctx, "item.get", "/item/get", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveItem removes an Item and invalidates its access token. Removal
// cannot be undone; a user returning to your application needs a new Item.
func (c *Client) RemoveItem(ctx context.Context, accessToken string) (*RemoveItemResponse, error) {
	req := itemRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	}
	var out RemoveItemResponse
	if err := c.post(ctx, "item.remove", "/item/remove", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type updateItemWebhookRequest struct {
	ClientID    string `json:"client_id"`
	Secret      Secret `json:"secret"`
	AccessToken string `json:"access_token"`
	Webhook     string `json:"webhook"`
}

// UpdateItemWebhook changes the URL webhooks for the Item are delivered to.
// A WEBHOOK_UPDATE_ACKNOWLEDGED webhook is sent to the new address.
func (c *Client) UpdateItemWebhook(ctx context.Context, accessToken, webhookURL string) (*ItemResponse, error) {
	req := updateItemWebhookRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Webhook:     webhookURL,
	}
	var out ItemResponse
	if err := c.post(ctx, "item.webhook.update", "/item/webhook/update", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
