// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
	"time"
)

// AccountType describes what kind of account Plaid reconciled.
type AccountType string

const (
	AccountTypeDepository AccountType = "depository"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeOther      AccountType = "other"
)

// VerificationStatus is the micro-deposit verification state of an Auth
// Item's account.
type VerificationStatus string

const (
	VerificationStatusPendingAutomatic VerificationStatus = "pending_automatic_verification"
	VerificationStatusPendingManual    VerificationStatus = "pending_manual_verification"
	VerificationStatusAutomatic        VerificationStatus = "automatically_verified"
	VerificationStatusManual           VerificationStatus = "manually_verified"
	VerificationStatusExpired          VerificationStatus = "verification_expired"
)

// Account is a financial institution account associated with an Item.
type Account struct {
	// AccountID is Plaid's unique, case-sensitive identifier for the
	// account. It can change if Plaid can't reconcile the account with the
	// institution's data, or if the access token is deleted and recreated.
	AccountID string `json:"account_id"`

	Balances Balances `json:"balances"`

	// Mask is the last 2-4 alphanumeric characters of the account's official
	// number. It may be non-unique between an Item's accounts.
	Mask *string `json:"mask,omitempty"`

	// Name of the account, assigned by the user or the institution.
	Name string `json:"name"`

	// OfficialName as given by the financial institution.
	OfficialName *string `json:"official_name,omitempty"`

	Type    AccountType `json:"type"`
	Subtype *string     `json:"subtype,omitempty"`

	VerificationStatus *VerificationStatus `json:"verification_status,omitempty"`

	// Owners is only returned by Identity endpoints. Multiple owners of a
	// single account appear in one Owner object, not several.
	Owners []Owner `json:"owners,omitempty"`
}

// Balances describes the funds in an account. Institutions don't all
// calculate every figure, so each amount can be absent. Values may be cached
// upstream and are only guaranteed fresh when returned by
// /accounts/balance/get.
type Balances struct {
	// Available is the amount of funds available for withdrawal. For
	// credit-type accounts this is typically the limit less the current
	// balance and pending outflows.
	Available *float64 `json:"available,omitempty"`

	// Current is the total amount of funds in or owed by the account.
	Current *float64 `json:"current,omitempty"`

	// Limit is the credit limit, or the pre-arranged overdraft limit for
	// European checking accounts.
	Limit *float64 `json:"limit,omitempty"`

	// ISOCurrencyCode is the ISO 4217 code of the balance. Always absent if
	// UnofficialCurrencyCode is set.
	ISOCurrencyCode *string `json:"iso_currency_code,omitempty"`

	// UnofficialCurrencyCode is set for currencies without an ISO 4217 code.
	UnofficialCurrencyCode *string `json:"unofficial_currency_code,omitempty"`
}

// AccountsOptions are optional parameters to GetAccounts.
type AccountsOptions struct {
	// AccountIDs restricts the response to the given accounts. Plaid errors
	// if an ID isn't associated with the Item.
	AccountIDs []string `json:"account_ids,omitempty"`
}

type accountsRequest struct {
	ClientID    string           `json:"client_id"`
	Secret      Secret           `json:"secret"`
	AccessToken string           `json:"access_token"`
	Options     *AccountsOptions `json:"options,omitempty"`
}

// AccountsResponse is returned by /accounts/get and /accounts/balance/get.
type AccountsResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

// GetAccounts retrieves the accounts associated with an Item. Balance data
// may be cached; use GetBalances for real-time figures.
func (c *Client) GetAccounts(ctx context.Context, accessToken string, opts *AccountsOptions) (*AccountsResponse, error) {
	req := accountsRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Options:     opts,
	}
	var out AccountsResponse
	if err := c.post(ctx, "accounts.get", "/accounts/get", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BalanceOptions are optional parameters to GetBalances.
type BalanceOptions struct {
	// AccountIDs restricts the response to the given accounts.
	AccountIDs []string `json:"account_ids,omitempty"`

	// MinLastUpdatedDatetime makes Plaid only return balances refreshed
	// since the given time, forcing an institution fetch otherwise. Left
	// unset, the field is omitted from the request entirely -- Plaid treats
	// an explicit null differently.
	MinLastUpdatedDatetime *time.Time `json:"min_last_updated_datetime,omitempty"`
}

type balancesRequest struct {
	ClientID    string          `json:"client_id"`
	Secret      Secret          `json:"secret"`
	AccessToken string          `json:"access_token"`
	Options     *BalanceOptions `json:"options,omitempty"`
}

// GetBalances retrieves real-time balance information for an Item's
// accounts.
func (c *Client) GetBalances(ctx context.Context, accessToken string, opts *BalanceOptions) (*AccountsResponse, error) {
	req := balancesRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Options:     opts,
	}
	var out AccountsResponse
	if err := c.post(ctx, "accounts.balance.get", "/accounts/balance/get", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
