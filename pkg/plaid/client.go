// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package plaid is a client for the Plaid API (https://plaid.com/docs).
//
// A Client holds credentials and an environment and exposes one method per
// API operation. Every call is a single JSON POST; credentials are embedded
// into the request body and failures come back as one of four kinds:
// configuration errors, *TransportError, *DecodeError or *Error (Plaid's own
// error schema). Nothing is retried or cached and the Client is safe for
// concurrent use.
package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/moov-io/plaid/x/trace"

	"github.com/go-kit/kit/log"
	"github.com/opentracing/opentracing-go"
)

var defaultHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		MaxConnsPerHost:     100,
		IdleConnTimeout:     1 * time.Minute,
	},
}

// Client makes calls against one Plaid environment with one set of
// credentials. All fields are fixed at construction, so a single Client can
// be shared by concurrent goroutines.
type Client struct {
	clientID    string
	secret      Secret
	environment Environment

	client *http.Client
	logger log.Logger
}

// New returns a Client for the given credentials and environment.
//
// httpClient may be nil, in which case a pooled client with a 30s timeout is
// used. The standard transport negotiates gzip response compression on its
// own. Callers needing tighter latency bounds should pass a context with a
// deadline to each call.
func New(logger log.Logger, clientID, secret string, environment Environment, httpClient *http.Client) (*Client, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if clientID == "" {
		return nil, ErrMissingClientID
	}
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if environment.URL() == "" {
		return nil, fmt.Errorf("plaid: unknown environment %q", environment)
	}
	if httpClient == nil {
		httpClient = defaultHTTPClient
	}

	logger.Log("plaid", fmt.Sprintf("using %s for Plaid address", environment.URL()))

	return &Client{
		clientID:    clientID,
		secret:      Secret(secret),
		environment: environment,
		client:      httpClient,
		logger:      logger,
	}, nil
}

// Environment returns which Plaid deployment this Client calls.
func (c *Client) Environment() Environment {
	return c.environment
}

// post runs one operation: marshal body, POST it under the environment's
// base address and resolve the response into out.
//
// Failure responses are decoded into *Error when the body matches Plaid's
// error schema. When it doesn't (gateways occasionally answer with HTML or
// truncated JSON) the original status and body are preserved in a
// *DecodeError instead of being dropped.
func (c *Client) post(ctx context.Context, operation, path string, body, out interface{}) error {
	bs, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("plaid: %s: marshal request: %v", operation, err)
	}

	req, err := http.NewRequest("POST", c.environment.URL()+path, bytes.NewReader(bs))
	if err != nil {
		return fmt.Errorf("plaid: %s: %v", operation, err)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", fmt.Sprintf("moov-plaid/%s", Version))

	if parent := opentracing.SpanFromContext(ctx); parent != nil {
		span := opentracing.GlobalTracer().StartSpan(operation, opentracing.ChildOf(parent.Context()))
		defer span.Finish()
		req = trace.DecorateHttpRequest(req, span)
	}

	c.trackRequest(operation)

	resp, err := c.client.Do(req)
	if err != nil {
		c.trackError(operation)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		c.trackError(operation)
		return &TransportError{Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.trackError(operation)
		var apiErr Error
		if err := json.Unmarshal(respBody, &apiErr); err != nil || apiErr.ErrorType == "" {
			if err == nil {
				err = fmt.Errorf("body is not a Plaid error")
			}
			return &DecodeError{StatusCode: resp.StatusCode, Body: respBody, Err: err}
		}
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		c.trackError(operation)
		return &DecodeError{StatusCode: resp.StatusCode, Body: respBody, Err: err}
	}
	return nil
}
