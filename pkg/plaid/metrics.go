// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package plaid

import (
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	clientRequests = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "plaid_client_requests",
		Help: "Counter of requests made against the Plaid API",
	}, []string{"environment", "operation"})

	clientErrors = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "plaid_client_errors",
		Help: "Counter of errors with the Plaid API",
	}, []string{"environment", "operation"})
)

func (c *Client) trackRequest(operation string) {
	clientRequests.With("environment", string(c.environment), "operation", operation).Add(1)
}

func (c *Client) trackError(operation string) {
	clientErrors.With("environment", string(c.environment), "operation", operation).Add(1)
}
