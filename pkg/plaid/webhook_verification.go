// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
)

// WebhookVerificationKey is the JWK Plaid signs webhook deliveries with.
type WebhookVerificationKey struct {
	Alg       string `json:"alg"`
	CreatedAt int64  `json:"created_at"`
	Crv       string `json:"crv"`
	Kid       string `json:"kid"`
	Kty       string `json:"kty"`
	Use       string `json:"use"`

	// X and Y are the base64url encoded P-256 coordinates.
	X string `json:"x"`
	Y string `json:"y"`

	// ExpiredAt is set once the key has been rotated out; signatures from
	// expired keys must be rejected.
	ExpiredAt *int64 `json:"expired_at,omitempty"`
}

type webhookVerificationKeyRequest struct {
	ClientID string `json:"client_id"`
	Secret   Secret `json:"secret"`
	KeyID    string `json:"key_id"`
}

// WebhookVerificationKeyResponse is returned by
// /webhook_verification_key/get.
type WebhookVerificationKeyResponse struct {
	Key       WebhookVerificationKey `json:"key"`
	RequestID string                 `json:"request_id"`
}

// GetWebhookVerificationKey fetches the JWK for the key ID named in a
// webhook's Plaid-Verification header. See the webhooks package for the full
// verification flow.
func (c *Client) GetWebhookVerificationKey(ctx context.Context, keyID string) (*WebhookVerificationKeyResponse, error) {
	req := webhookVerificationKeyRequest{
		ClientID: c.clientID,
		Secret:   c.secret,
		KeyID:    keyID,
	}
	var out WebhookVerificationKeyResponse
	if err := c.post(ctx, "webhook_verification_key.get", "/webhook_verification_key/get", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
