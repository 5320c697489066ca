// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package trace

import (
	"net/http"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

// DecorateHttpRequest tags span as the client side of req and injects the
// span's context into the request headers so the remote side can continue
// the trace.
func DecorateHttpRequest(req *http.Request, span opentracing.Span) *http.Request {
	tracer := opentracing.GlobalTracer()

	ext.SpanKindRPCClient.Set(span)
	ext.HTTPUrl.Set(span, req.URL.String())
	ext.HTTPMethod.Set(span, req.Method)

	tracer.Inject(
		span.Context(),
		opentracing.HTTPHeaders,
		opentracing.HTTPHeadersCarrier(req.Header),
	)

	return req
}

// FromRequest starts a server-side span continuing whatever trace context is
// present in req's headers. Webhook receivers use this to tie a delivery back
// to the flow that caused it.
func FromRequest(name string, req *http.Request) opentracing.Span {
	tracer := opentracing.GlobalTracer()

	ctx, _ := tracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header))
	return tracer.StartSpan(name, ext.RPCServerOption(ctx))
}
