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

package otelx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
)

func endSpan(t *testing.T, o apis.Outcome) sdktrace.ReadOnlySpan {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	Annotate(span, o)
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	return ended[0]
}

func attrs(s sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := map[attribute.Key]attribute.Value{}
	for _, kv := range s.Attributes() {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestAnnotate_ServerFailure(t *testing.T) {
	s := endSpan(t, dresult.Error(dresult.NewErrorList("cid-1", "db timeout")))

	a := attrs(s)
	assert.Equal(t, "error", a[AttrStatus].AsString())
	assert.Equal(t, "cid-1", a[AttrCorrelationID].AsString())
	assert.Equal(t, int64(1), a[AttrErrorCount].AsInt64())
	assert.Equal(t, otelcodes.Error, s.Status().Code)
	assert.Equal(t, "error: db timeout", s.Status().Description)
}

func TestAnnotate_ClientFailureKeepsStatusUnset(t *testing.T) {
	s := endSpan(t, dresult.Invalid(
		dresult.ValidationError{Identifier: "a", ErrorMessage: "x"},
		dresult.ValidationError{Identifier: "b", ErrorMessage: "y"},
	))

	a := attrs(s)
	assert.Equal(t, "invalid", a[AttrStatus].AsString())
	assert.Equal(t, int64(2), a[AttrValidationErrorCount].AsInt64())
	assert.Equal(t, otelcodes.Unset, s.Status().Code)
}

func TestAnnotate_Success(t *testing.T) {
	s := endSpan(t, dresult.SuccessValue(1))
	assert.Equal(t, "ok", attrs(s)[AttrStatus].AsString())
	assert.Equal(t, otelcodes.Unset, s.Status().Code)
}

func TestAnnotate_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		Annotate(nil, dresult.NotFound())
	})
}

func TestRecorder(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	r, err := NewRecorder(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	route := attribute.String("route", "/users")
	r.Record(ctx, dresult.SuccessValue(1), route)
	r.Record(ctx, dresult.SuccessValue(2), route)
	r.Record(ctx, dresult.NotFound(), route)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	m := rm.ScopeMetrics[0].Metrics[0]
	assert.Equal(t, MetricOutcomes, m.Name)
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		st, _ := dp.Attributes.Value(AttrStatus)
		rt, _ := dp.Attributes.Value("route")
		assert.Equal(t, "/users", rt.AsString())
		counts[st.AsString()] = dp.Value
	}
	assert.Equal(t, map[string]int64{"ok": 2, "not_found": 1}, counts)
}

func TestRecorder_NilAndNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() { r.Record(context.Background(), dresult.Success()) })

	nr, err := NewRecorder(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	assert.NotPanics(t, func() { nr.Record(context.Background(), dresult.Success()) })
}
