// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"context"
	"time"
)

// Institution is a financial institution Plaid connects to.
type Institution struct {
	InstitutionID string `json:"institution_id"`

	// Name is the institution's official name.
	Name string `json:"name"`

	// Products supported by the institution. Only institutions supporting
	// Instant Auth list auth here; others may still support Instant Match or
	// micro-deposit verification (see AuthMetadata).
	Products []string `json:"products"`

	CountryCodes []string `json:"country_codes"`

	URL *string `json:"url,omitempty"`

	// PrimaryColor is the institution's brand color in hexadecimal.
	PrimaryColor *string `json:"primary_color,omitempty"`

	// Logo is a base64 encoded 152x152 PNG.
	Logo *string `json:"logo,omitempty"`

	// RoutingNumbers is a partial list for looking institutions up by
	// routing number; never treat it as complete.
	RoutingNumbers []string `json:"routing_numbers,omitempty"`

	// OAuth indicates the institution uses an OAuth login flow.
	OAuth bool `json:"oauth"`

	// Status is only populated when requested with IncludeStatus and is
	// absent when Plaid lacks the traffic to calculate it. Not available in
	// Sandbox.
	Status *InstitutionStatus `json:"status,omitempty"`

	PaymentInitiationMetadata *PaymentInitiationMetadata `json:"payment_initiation_metadata,omitempty"`
	AuthMetadata              *AuthMetadata              `json:"auth_metadata,omitempty"`
}

// InstitutionStatus reports the health of the institution's Item logins and
// product updates.
type InstitutionStatus struct {
	ItemLogins          RequestStatus `json:"item_logins"`
	TransactionsUpdates RequestStatus `json:"transactions_updates"`
	Auth                RequestStatus `json:"auth"`
	Identity            RequestStatus `json:"identity"`
	InvestmentsUpdates  RequestStatus `json:"investments_updates"`
	LiabilitiesUpdates  RequestStatus `json:"liabilities_updates"`

	HealthIncidents []HealthIncident `json:"health_incidents,omitempty"`
}

// RequestStatus is the health of one request type at an institution.
type RequestStatus struct {
	// Status is HEALTHY, DEGRADED or DOWN. Deprecated upstream in favor of
	// Breakdown.
	Status string `json:"status"`

	LastStatusChange time.Time `json:"last_status_change"`

	Breakdown Breakdown `json:"breakdown"`
}

// Breakdown details an institution's performance for a request type. The
// three rates sum to 1.
type Breakdown struct {
	Success          float64 `json:"success"`
	ErrorPlaid       float64 `json:"error_plaid"`
	ErrorInstitution float64 `json:"error_institution"`

	// RefreshInterval may be DELAYED or STOPPED; only returned for
	// Transactions breakdowns.
	RefreshInterval *string `json:"refresh_interval,omitempty"`
}

// HealthIncident is a recent incident associated with the institution.
type HealthIncident struct {
	StartDate       time.Time        `json:"start_date"`
	EndDate         *time.Time       `json:"end_date,omitempty"`
	Title           string           `json:"title"`
	IncidentUpdates []IncidentUpdate `json:"incident_updates,omitempty"`
}

// IncidentUpdate is one update on a health incident.
type IncidentUpdate struct {
	Description string `json:"description"`

	// Status is INVESTIGATING, IDENTIFIED, SCHEDULED, RESOLVED or UNKNOWN.
	Status string `json:"status"`

	UpdatedDate time.Time `json:"updated_date"`
}

// PaymentInitiationMetadata captures which payment configurations an
// institution supports.
type PaymentInitiationMetadata struct {
	SupportsInternationalPayments bool `json:"supports_international_payments"`
	SupportsSEPAInstant           bool `json:"supports_sepa_instant"`

	// MaximumPaymentAmount maps currency to the maximum payment amount in
	// the currency's smallest unit, e.g. {"GBP": "10000"}.
	MaximumPaymentAmount map[string]string `json:"maximum_payment_amount,omitempty"`

	SupportsRefundDetails bool                   `json:"supports_refund_details"`
	StandingOrderMetadata *StandingOrderMetadata `json:"standing_order_metadata,omitempty"`
}

// StandingOrderMetadata describes valid standing order configurations for
// Payment Initiation.
type StandingOrderMetadata struct {
	SupportsStandingOrderEndDate bool `json:"supports_standing_order_end_date"`

	// SupportsStandingOrderNegativeExecutionDays applies to MONTHLY standing
	// orders scheduled relative to the end of the month.
	SupportsStandingOrderNegativeExecutionDays bool `json:"supports_standing_order_negative_execution_days"`

	// ValidStandingOrderIntervals are WEEKLY and/or MONTHLY.
	ValidStandingOrderIntervals []string `json:"valid_standing_order_intervals"`
}

// AuthMetadata captures information about an institution's Auth features.
type AuthMetadata struct {
	SupportedMethods *SupportedMethods `json:"supported_methods,omitempty"`
}

// SupportedMethods are the auth methods an institution supports.
type SupportedMethods struct {
	InstantAuth            bool `json:"instant_auth"`
	InstantMatch           bool `json:"instant_match"`
	AutomatedMicroDeposits bool `json:"automated_micro_deposits"`
}

// InstitutionOptions are optional parameters to the institution endpoints.
type InstitutionOptions struct {
	// IncludeOptionalMetadata returns the institution's logo, brand color
	// and URL. Plaid doesn't own the logos; usage is at your own risk.
	IncludeOptionalMetadata bool `json:"include_optional_metadata,omitempty"`

	// IncludeStatus returns status information about the institution.
	IncludeStatus bool `json:"include_status,omitempty"`

	// IncludeAuthMetadata returns which auth methods are supported.
	IncludeAuthMetadata bool `json:"include_auth_metadata,omitempty"`

	// IncludePaymentInitiationMetadata returns which payment configurations
	// are supported.
	IncludePaymentInitiationMetadata bool `json:"include_payment_initiation_metadata,omitempty"`
}

type institutionsRequest struct {
	ClientID     string              `json:"client_id"`
	Secret       Secret              `json:"secret"`
	Count        int                 `json:"count"`
	Offset       int                 `json:"offset"`
	CountryCodes []string            `json:"country_codes"`
	Options      *InstitutionOptions `json:"options,omitempty"`
}

// InstitutionsResponse is returned by /institutions/get. Total is the full
// count of institutions matching the query.
type InstitutionsResponse struct {
	Institutions []Institution `json:"institutions"`
	Total        int           `json:"total"`
	RequestID    string        `json:"request_id"`
}

// GetInstitutions pages through institutions supported in the given
// countries, count at a time.
func (c *Client) GetInstitutions(ctx context.Context, count, offset int, countryCodes []string, opts *InstitutionOptions) (*InstitutionsResponse, error) {
	req := institutionsRequest{
		ClientID:     c.clientID,
		Secret:       c.secret,
		Count:        count,
		Offset:       offset,
		CountryCodes: countryCodes,
		Options:      opts,
	}
	var out InstitutionsResponse
	if err := c.post(ctx, "institutions.get", "/institutions/get", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type institutionByIDRequest struct {
	ClientID      string              `json:"client_id"`
	Secret        Secret              `json:"secret"`
	InstitutionID string              `json:"institution_id"`
	CountryCodes  []string            `json:"country_codes"`
	Options       *InstitutionOptions `json:"options,omitempty"`
}

// InstitutionResponse is returned by /institutions/get_by_id.
type InstitutionResponse struct {
	Institution Institution `json:"institution"`
	RequestID   string      `json:"request_id"`
}

// GetInstitutionByID retrieves one institution.
func (c *Client) GetInstitutionByID(ctx context.Context, institutionID string, countryCodes []string, opts *InstitutionOptions) (*InstitutionResponse, error) {
	req := institutionByIDRequest{
		ClientID:      c.clientID,
		Secret:        c.secret,
		InstitutionID: institutionID,
		CountryCodes:  countryCodes,
		Options:       opts,
	}
	var out InstitutionResponse
	if err := c.post(ctx, "institutions.get_by_id", "/institutions/get_by_id", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type institutionSearchRequest struct {
	ClientID     string              `json:"client_id"`
	Secret       Secret              `json:"secret"`
	Query        string              `json:"query"`
	Products     []string            `json:"products,omitempty"`
	CountryCodes []string            `json:"country_codes"`
	Options      *InstitutionOptions `json:"options,omitempty"`
}

// InstitutionSearchResponse is returned by /institutions/search.
type InstitutionSearchResponse struct {
	Institutions []Institution `json:"institutions"`
	RequestID    string        `json:"request_id"`
}

// SearchInstitutions finds institutions by name. products, when set, limits
// results to institutions supporting every listed product.
func (c *Client) SearchInstitutions(ctx context.Context, query string, products, countryCodes []string, opts *InstitutionOptions) (*InstitutionSearchResponse, error) {
	req := institutionSearchRequest{
		ClientID:     c.clientID,
		Secret:       c.secret,
		Query:        query,
		Products:     products,
		CountryCodes: countryCodes,
		Options:      opts,
	}
	var out InstitutionSearchResponse
	if err := c.post(ctx, "institutions.search", "/institutions/search", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
