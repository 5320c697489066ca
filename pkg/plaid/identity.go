// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
)

// Owner is identity data the institution reports for an account's holder(s).
// Joint accounts report every holder inside one Owner.
type Owner struct {
	// Names associated with the account. These should always be names of
	// individuals, even for business accounts.
	Names []string `json:"names,omitempty"`

	PhoneNumbers []PhoneNumber  `json:"phone_numbers,omitempty"`
	Emails       []EmailAddress `json:"emails,omitempty"`
	Addresses    []Address      `json:"addresses,omitempty"`
}

// PhoneNumber associated with an account.
type PhoneNumber struct {
	Data    string `json:"data"`
	Primary *bool  `json:"primary,omitempty"`

	// Type as described by the institution: home, work, office, mobile or
	// another free-form value.
	Type *string `json:"type,omitempty"`
}

// EmailAddress associated with an account.
type EmailAddress struct {
	Data    string `json:"data"`
	Primary bool   `json:"primary"`

	// Type is primary, secondary or other.
	Type string `json:"type"`
}

// Address associated with an account.
type Address struct {
	Data    AddressDetails `json:"data"`
	Primary *bool          `json:"primary,omitempty"`
}

// AddressDetails are the components of an address.
type AddressDetails struct {
	City   *string `json:"city,omitempty"`
	Region *string `json:"region,omitempty"`

	// Street is the full street address, e.g. "564 Main Street, APT 15".
	Street string `json:"street"`

	PostalCode *string `json:"postal_code,omitempty"`

	// Country is the ISO 3166-1 alpha-2 code. Documented as required but
	// observed null in institution data, so modeled as optional.
	Country *string `json:"country,omitempty"`
}

type identityRequest struct {
	ClientID    string `json:"client_id"`
	Secret      Secret `json:"secret"`
	AccessToken string `json:"access_token"`
}

// IdentityResponse is returned by /identity/get. Owner data is attached to
// each account.
type IdentityResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

// GetIdentity retrieves account holder information on file with the
// financial institution for an Item's accounts.
func (c *Client) GetIdentity(ctx context.Context, accessToken string) (*IdentityResponse, error) {
	req := identityRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	}
	var out IdentityResponse
	if err := c.post(ctx, "identity.get", "/identity/get", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
