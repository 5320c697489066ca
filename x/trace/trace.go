// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package trace wires Jaeger tracing into Plaid API calls. The client
// decorates outbound requests with span headers and webhook receivers can
// continue a trace from inbound delivery headers.
package trace

import (
	"fmt"
	"io"

	"github.com/go-kit/kit/log"
	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegermetrics "github.com/uber/jaeger-lib/metrics/prometheus"
)

// NewConstantTracer returns an opentracing.Tracer from Jaeger that records
// every span.
//
// This method uses the opentracing singleton and the Prometheus
// DefaultRegisterer singleton.
func NewConstantTracer(logger log.Logger, serviceName string) (opentracing.Tracer, io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1.0,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans: true,
		},
	}
	return setupTracer(logger, cfg)
}

// NewProbabilisticTracer returns an opentracing.Tracer from Jaeger that
// records approximately the given percentage of spans.
//
// This method uses the opentracing singleton and the Prometheus
// DefaultRegisterer singleton.
func NewProbabilisticTracer(logger log.Logger, serviceName string, rate float64) (opentracing.Tracer, io.Closer, error) {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeProbabilistic,
			Param: rate,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans: true,
		},
	}
	return setupTracer(logger, cfg)
}

var (
	// wrappedPrometheusRegisterer is a singleton so we only register opentracing metrics once
	wrappedPrometheusRegisterer = jaegermetrics.New(jaegermetrics.WithRegisterer(prometheus.DefaultRegisterer))
)

func setupTracer(logger log.Logger, cfg jaegercfg.Configuration) (opentracing.Tracer, io.Closer, error) {
	tracer, closer, err := cfg.NewTracer(
		jaegercfg.Logger(&jaegerLogger{inner: logger}),
		jaegercfg.Metrics(wrappedPrometheusRegisterer),
	)

	// Set the singleton opentracing.Tracer with the Jaeger tracer.
	opentracing.SetGlobalTracer(tracer)

	return tracer, closer, err
}

var _ jaeger.Logger = (*jaegerLogger)(nil)

// adapter for jaeger.Logger
type jaegerLogger struct {
	inner log.Logger
}

func (l *jaegerLogger) Error(msg string) {
	l.inner.Log("error", msg)
}

func (l *jaegerLogger) Infof(msg string, args ...interface{}) {
	l.inner.Log("trace", fmt.Sprintf(msg, args...))
}
