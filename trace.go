package coral

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracing is an http.RoundTripper recording one client span per
// outgoing request.
type tracing struct {
	tracer trace.Tracer
	base   http.RoundTripper
}

func (t tracing) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx, span := t.tracer.Start(r.Context(), "coral.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("url.full", r.URL.String()),
		),
	)
	defer span.End()

	resp, err := t.base.RoundTrip(r.Clone(ctx))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		return resp, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	return resp, nil
}
