// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package webhooks

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/moov-io/plaid/pkg/plaid"

	"github.com/golang-jwt/jwt/v4"
)

// SignatureHeader is the HTTP header Plaid delivers the detached JWT in.
const SignatureHeader = "Plaid-Verification"

// maxSignatureAge bounds how old a delivery's iat claim may be before it's
// rejected as a possible replay.
const maxSignatureAge = 5 * time.Minute

// KeyGetter fetches webhook verification keys. *plaid.Client satisfies this.
type KeyGetter interface {
	GetWebhookVerificationKey(ctx context.Context, keyID string) (*plaid.WebhookVerificationKeyResponse, error)
}

// Verifier checks webhook deliveries against Plaid's signing keys.
//
// Plaid signs each delivery with an ES256 JWT carried in the
// Plaid-Verification header whose request_body_sha256 claim commits to the
// body. Keys are fetched by kid through the KeyGetter and cached; a mutex
// guards the cache so one Verifier can serve concurrent receivers.
type Verifier struct {
	keys KeyGetter

	mu    sync.Mutex
	cache map[string]plaid.WebhookVerificationKey
}

// NewVerifier returns a Verifier fetching keys through keys.
func NewVerifier(keys KeyGetter) *Verifier {
	return &Verifier{
		keys:  keys,
		cache: make(map[string]plaid.WebhookVerificationKey),
	}
}

// Verify checks that signedJWT (the Plaid-Verification header value) is a
// valid, fresh ES256 signature over body. A nil error means the delivery
// came from Plaid and the body wasn't altered in transit.
func (v *Verifier) Verify(ctx context.Context, body []byte, signedJWT string) error {
	if signedJWT == "" {
		return errors.New("webhooks: verify: empty signature")
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"ES256"}))
	claims := jwt.MapClaims{}
	_, err := parser.ParseWithClaims(signedJWT, claims, func(token *jwt.Token) (interface{}, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("missing kid header")
		}
		return v.publicKey(ctx, kid)
	})
	if err != nil {
		return fmt.Errorf("webhooks: verify: %v", err)
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return errors.New("webhooks: verify: missing iat claim")
	}
	if age := time.Since(time.Unix(int64(iat), 0)); age > maxSignatureAge {
		return fmt.Errorf("webhooks: verify: signature issued %v ago", age)
	}

	claimed, _ := claims["request_body_sha256"].(string)
	sum := sha256.Sum256(body)
	computed := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(claimed), []byte(computed)) != 1 {
		return errors.New("webhooks: verify: body digest mismatch")
	}
	return nil
}

// publicKey resolves kid to an ECDSA public key, fetching and caching the
// JWK on first sight. Expired keys are rejected.
func (v *Verifier) publicKey(ctx context.Context, kid string) (*ecdsa.PublicKey, error) {
	v.mu.Lock()
	key, ok := v.cache[kid]
	v.mu.Unlock()

	if !ok {
		resp, err := v.keys.GetWebhookVerificationKey(ctx, kid)
		if err != nil {
			return nil, fmt.Errorf("fetching key %s: %v", kid, err)
		}
		key = resp.Key

		v.mu.Lock()
		v.cache[kid] = key
		v.mu.Unlock()
	}

	if key.ExpiredAt != nil {
		return nil, fmt.Errorf("key %s is expired", kid)
	}
	return decodeJWK(key)
}

func decodeJWK(key plaid.WebhookVerificationKey) (*ecdsa.PublicKey, error) {
	if key.Kty != "EC" || key.Crv != "P-256" {
		return nil, fmt.Errorf("unsupported key type %s/%s", key.Kty, key.Crv)
	}
	x, err := base64.RawURLEncoding.DecodeString(key.X)
	if err != nil {
		return nil, fmt.Errorf("decoding x coordinate: %v", err)
	}
	y, err := base64.RawURLEncoding.DecodeString(key.Y)
	if err != nil {
		return nil, fmt.Errorf("decoding y coordinate: %v", err)
	}
	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(x),
		Y:     new(big.Int).SetBytes(y),
	}, nil
}
