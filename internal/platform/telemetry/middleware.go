package telemetry

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	meterName = "github.com/jsamuelsen/quotebook/telemetry"

	// TraceIDHeader carries the trace id back to the caller.
	TraceIDHeader = "X-Trace-ID"

	unmatchedRoute = "unmatched"
)

// httpInstruments are the otel instruments recorded per request.
type httpInstruments struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newHTTPInstruments(meter metric.Meter) (*httpInstruments, error) {
	var (
		in  httpInstruments
		err error
	)

	if in.duration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Time spent serving a request"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if in.total, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Requests served"),
	); err != nil {
		return nil, err
	}

	if in.inFlight, err = meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Requests currently being served"),
	); err != nil {
		return nil, err
	}

	return &in, nil
}

func (in *httpInstruments) begin(ctx context.Context, method, route string) func(status int) {
	labels := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("http.route", route),
	}
	start := time.Now()

	in.inFlight.Add(ctx, 1, metric.WithAttributes(labels...))

	return func(status int) {
		in.inFlight.Add(ctx, -1, metric.WithAttributes(labels...))

		done := metric.WithAttributes(append(labels, attribute.Int("http.status_code", status))...)
		in.duration.Record(ctx, time.Since(start).Seconds(), done)
		in.total.Add(ctx, 1, done)
	}
}

// Middleware records request metrics against the global meter and echoes the
// trace id in X-Trace-ID. Install it after TracingMiddleware so the request
// already carries a span.
func Middleware() gin.HandlerFunc {
	instruments, err := newHTTPInstruments(otel.Meter(meterName))
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			c.Header(TraceIDHeader, sc.TraceID().String())
		}

		if instruments == nil {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		finish := instruments.begin(c.Request.Context(), c.Request.Method, route)
		c.Next()
		finish(c.Writer.Status())
	}
}

// TracingMiddleware starts a server span per request.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
