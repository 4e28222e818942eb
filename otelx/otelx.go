/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package otelx reports outcomes to OpenTelemetry traces and metrics.
package otelx

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/status"
)

// Attribute keys set on spans and metric points.
const (
	AttrStatus               = attribute.Key("dresult.status")
	AttrCorrelationID        = attribute.Key("dresult.correlation_id")
	AttrErrorCount           = attribute.Key("dresult.error_count")
	AttrValidationErrorCount = attribute.Key("dresult.validation_error_count")
)

// MetricOutcomes is the name of the counter maintained by Recorder.
const MetricOutcomes = "dresult.outcomes"

// Attributes returns the span attributes describing o.
func Attributes(o apis.Outcome) []attribute.KeyValue {
	if o == nil {
		return nil
	}
	kv := []attribute.KeyValue{AttrStatus.String(o.Status().String())}
	if id := o.CorrelationID(); id != "" {
		kv = append(kv, AttrCorrelationID.String(id))
	}
	if n := len(o.Errors()); n > 0 {
		kv = append(kv, AttrErrorCount.Int(n))
	}
	if n := len(o.ValidationErrors()); n > 0 {
		kv = append(kv, AttrValidationErrorCount.Int(n))
	}
	return kv
}

// Annotate records o on span. Failures on the serving side (Error,
// Unavailable, CriticalError) also set the span status to Error; failures
// caused by the caller leave it unset.
func Annotate(span trace.Span, o apis.Outcome) {
	if span == nil || o == nil || !span.IsRecording() {
		return
	}
	span.SetAttributes(Attributes(o)...)
	if serverSide(o.Status()) {
		desc := o.Status().String()
		if msgs := adapter.Messages(o); len(msgs) > 0 {
			desc += ": " + strings.Join(msgs, "; ")
		}
		span.SetStatus(otelcodes.Error, desc)
	}
}

func serverSide(s status.Status) bool {
	switch s {
	case status.Error, status.Unavailable, status.CriticalError:
		return true
	}
	return false
}

// Recorder counts outcomes by status.
type Recorder struct {
	outcomes metric.Int64Counter
}

// NewRecorder creates a Recorder whose instruments come from meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	c, err := meter.Int64Counter(
		MetricOutcomes,
		metric.WithDescription("Number of operation outcomes by status"),
		metric.WithUnit("{outcome}"),
	)
	if err != nil {
		return nil, fmt.Errorf("otelx: create %s counter: %w", MetricOutcomes, err)
	}
	return &Recorder{outcomes: c}, nil
}

// Record increments the outcome counter with the status of o and attrs.
// A nil Recorder is a no-op.
func (r *Recorder) Record(ctx context.Context, o apis.Outcome, attrs ...attribute.KeyValue) {
	if r == nil || o == nil {
		return
	}
	all := make([]attribute.KeyValue, 0, len(attrs)+1)
	all = append(all, AttrStatus.String(o.Status().String()))
	all = append(all, attrs...)
	r.outcomes.Add(ctx, 1, metric.WithAttributes(all...))
}
