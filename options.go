package coral

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/yunusuzun/SwiftCoral/throttle"
)

// Option is a functional option for configuring a [Client] via [Build].
type Option func(*options) error

type options struct {
	client            *http.Client
	rt                http.RoundTripper
	timeout           *time.Duration
	userAgent         string
	throttle          *throttle.Config
	tracer            trace.Tracer
	noFollowRedirects bool
	logger            *slog.Logger
}

// WithClient replaces the default [http.Client] used by the [Client].
func WithClient(hc *http.Client) Option {
	return func(c *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		c.client = hc
		return nil
	}
}

// WithTransport sets a custom [http.RoundTripper] as the base transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		c.rt = rt
		return nil
	}
}

// WithTimeout sets the overall request timeout on the underlying [http.Client].
func WithTimeout(d time.Duration) Option {
	return func(c *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		c.timeout = &d
		return nil
	}
}

// WithUserAgent adds a persistent User-Agent header to all outgoing requests.
func WithUserAgent(header string) Option {
	return func(c *options) error {
		c.userAgent = header
		return nil
	}
}

// WithThrottle enables token-bucket rate limiting with the given requests per second and burst capacity.
func WithThrottle(rps, burst int) Option {
	return func(c *options) error {
		if rps <= 0 || burst <= 0 {
			return fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, throttle.ErrMustNotBeZero)
		}
		c.throttle = &throttle.Config{RPS: rps, Burst: burst}
		return nil
	}
}

// WithTracing records one client span per outgoing request on the
// given tracer.
func WithTracing(tracer trace.Tracer) Option {
	return func(c *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		c.tracer = tracer
		return nil
	}
}

// WithNoFollowRedirects prevents the [Client] from following HTTP redirects.
func WithNoFollowRedirects() Option {
	return func(c *options) error {
		c.noFollowRedirects = true
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Client].
func WithLogger(logger *slog.Logger) Option {
	return func(c *options) error {
		c.logger = logger
		return nil
	}
}

// userAgent is an http.RoundTripper, enabling the persistent User-Agent header.
type userAgent struct {
	value string
	base  http.RoundTripper
}

func (ua userAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", ua.value)
	return ua.base.RoundTrip(cpy)
}

// PerformOption is a functional option for [Client.Perform].
type PerformOption func(opts *performOpts) error

type performOpts struct {
	destination   any
	useJSONNumber bool
}

// WithDestination decodes the HTTP response body into dest.
// dest must be a pointer.
func WithDestination[T any](dest *T) PerformOption {
	return func(opts *performOpts) error {
		opts.destination = dest

		return nil
	}
}

// WithJSONNumber tells the JSON decoder to use [json.Decoder.UseNumber],
// preserving number precision as [json.Number] instead of float64.
func WithJSONNumber() PerformOption {
	return func(opts *performOpts) error {
		opts.useJSONNumber = true

		return nil
	}
}
