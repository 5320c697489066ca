// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
)

// TransactionsOptions are optional parameters to GetTransactions.
type TransactionsOptions struct {
	// AccountIDs restricts the response to the given accounts.
	AccountIDs []string `json:"account_ids,omitempty"`

	// Count is how many transactions to fetch, up to 500. Plaid defaults to
	// 100 when omitted.
	Count int `json:"count,omitempty"`

	// Offset skips past transactions already fetched; combine with Count to
	// page through large result sets.
	Offset int `json:"offset,omitempty"`
}

type transactionsRequest struct {
	ClientID    string               `json:"client_id"`
	Secret      Secret               `json:"secret"`
	AccessToken string               `json:"access_token"`
	StartDate   string               `json:"start_date"`
	EndDate     string               `json:"end_date"`
	Options     *TransactionsOptions `json:"options,omitempty"`
}

// Transaction is a settled or pending transaction on an account.
type Transaction struct {
	AccountID     string `json:"account_id"`
	TransactionID string `json:"transaction_id"`

	// Amount is positive for money moving out of the account (debits) and
	// negative for money moving in (credits).
	Amount float64 `json:"amount"`

	// ISOCurrencyCode is the ISO 4217 code of the amount. Always absent if
	// UnofficialCurrencyCode is set.
	ISOCurrencyCode        *string `json:"iso_currency_code,omitempty"`
	UnofficialCurrencyCode *string `json:"unofficial_currency_code,omitempty"`

	// Category is Plaid's hierarchical categorization, e.g.
	// ["Food and Drink", "Restaurants"].
	Category   []string `json:"category,omitempty"`
	CategoryID *string  `json:"category_id,omitempty"`

	// Date the transaction posted (or was authorized, while pending), in
	// YYYY-MM-DD format.
	Date string `json:"date"`

	// AuthorizedDate is when the transaction was authorized, when the
	// institution reports it.
	AuthorizedDate *string `json:"authorized_date,omitempty"`

	// Name is the merchant name or transaction description.
	Name string `json:"name"`

	Location    *Location    `json:"location,omitempty"`
	PaymentMeta *PaymentMeta `json:"payment_meta,omitempty"`

	Pending bool `json:"pending"`

	// PendingTransactionID links a posted transaction back to its pending
	// record.
	PendingTransactionID *string `json:"pending_transaction_id,omitempty"`

	// TransactionType is place, digital, special or unresolved.
	TransactionType *string `json:"transaction_type,omitempty"`
}

// Location is where a transaction occurred.
type Location struct {
	Address     *string  `json:"address,omitempty"`
	City        *string  `json:"city,omitempty"`
	Region      *string  `json:"region,omitempty"`
	PostalCode  *string  `json:"postal_code,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lon         *float64 `json:"lon,omitempty"`
	StoreNumber *string  `json:"store_number,omitempty"`
}

// PaymentMeta carries transaction metadata specific to payments, such as
// check references and ACH details.
type PaymentMeta struct {
	ByOrderOf        *string `json:"by_order_of,omitempty"`
	Payee            *string `json:"payee,omitempty"`
	Payer            *string `json:"payer,omitempty"`
	PaymentMethod    *string `json:"payment_method,omitempty"`
	PaymentProcessor *string `json:"payment_processor,omitempty"`
	PPDID            *string `json:"ppd_id,omitempty"`
	Reason           *string `json:"reason,omitempty"`
	ReferenceNumber  *string `json:"reference_number,omitempty"`
}

// TransactionsResponse is returned by /transactions/get. TotalTransactions
// is the full count matching the query; compare against len(Transactions) to
// decide whether to page further.
type TransactionsResponse struct {
	Accounts          []Account     `json:"accounts"`
	Transactions      []Transaction `json:"transactions"`
	TotalTransactions int           `json:"total_transactions"`
	Item              Item          `json:"item"`
	RequestID         string        `json:"request_id"`
}

// GetTransactions retrieves transactions settled between startDate and
// endDate (both YYYY-MM-DD, inclusive).
func (c *Client) GetTransactions(ctx context.Context, accessToken, startDate, endDate string, opts *TransactionsOptions) (*TransactionsResponse, error) {
	req := transactionsRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		StartDate:   startDate,
		EndDate:     endDate,
		Options:     opts,
	}
	var out TransactionsResponse
	if err := c.post(ctx, "transactions.get", "/transactions/get", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
