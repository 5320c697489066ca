// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package trace

import (
	"net/http"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/uber/jaeger-client-go"
)

func TestDecorateHttpRequest(t *testing.T) {
	tracer, closer, err := NewConstantTracer(log.NewNopLogger(), "decorate-http-request")
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	req, err := http.NewRequest("POST", "https://sandbox.plaid.com/accounts/get", nil)
	if err != nil {
		t.Fatal(err)
	}

	span := tracer.StartSpan("accounts.get")
	defer span.Finish()

	req = DecorateHttpRequest(req, span)
	if v := req.Header.Get(jaeger.TraceContextHeaderName); v == "" {
		t.Error("expected trace context header")
	}
}

func TestFromRequest(t *testing.T) {
	tracer, closer, err := NewConstantTracer(log.NewNopLogger(), "from-request")
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	req, err := http.NewRequest("POST", "https://example.com/plaid/webhook", nil)
	if err != nil {
		t.Fatal(err)
	}

	// propagate an upstream span's context into the request
	upstream := tracer.StartSpan("upstream")
	defer upstream.Finish()
	DecorateHttpRequest(req, upstream)

	span := FromRequest("webhook", req)
	if span == nil {
		t.Fatal("nil span")
	}
	span.Finish()
}
