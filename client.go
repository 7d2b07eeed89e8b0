package coral

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/yunusuzun/SwiftCoral/download"
	"github.com/yunusuzun/SwiftCoral/throttle"
)

// Client executes endpoint descriptions against an injected HTTP
// transport. It holds no per-call state; concurrent calls share only
// the underlying *http.Client.
type Client struct {
	c      *http.Client
	logger *slog.Logger
}

// Build creates a Client. Without options it uses a fresh
// *http.Client and slog.Default(); there is no process-wide shared
// session.
func Build(optFns ...Option) (*Client, error) {
	client := &Client{
		c:      &http.Client{},
		logger: slog.Default(),
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.client != nil {
		client.c = opts.client
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.tracer != nil {
		transport = tracing{tracer: opts.tracer, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(opts.throttle.RPS, opts.throttle.Burst, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	client.c.Transport = transport

	return client, nil
}

// Perform fires the buffered call described by e and, when a
// destination was set via WithDestination, decodes the response body
// into it. Exactly one of a decoded value or a classified error is
// produced.
func (c *Client) Perform(ctx context.Context, e Endpoint, opts ...PerformOption) error {
	var settings performOpts
	for _, opt := range opts {
		if err := opt(&settings); err != nil {
			return err
		}
	}

	doFunc := func(resp *http.Response) error {
		if settings.destination == nil {
			return nil
		}

		d := json.NewDecoder(resp.Body)
		if settings.useJSONNumber {
			d.UseNumber()
		}

		if err := d.Decode(settings.destination); err != nil {
			return &APIError{
				Detail: "decoding response body",
				Err:    fmt.Errorf("%w: %w", ErrJSONParsing, err),
			}
		}

		return nil
	}

	return c.exec(ctx, e, true, doFunc)
}

// Download executes a call that streams the response body to destPath.
// Any body task on the endpoint is ignored. Data streams to a temp
// file in destPath's directory, which is renamed over destPath on
// success (overwrite semantics) or removed on failure, leaving the
// destination untouched.
func (c *Client) Download(ctx context.Context, e Endpoint, destPath string, opts ...download.Option) error {
	if destPath == "" {
		return errors.New("destPath must not be empty")
	}

	dlFunc := func(resp *http.Response) error {
		if resp.Body == nil {
			return &APIError{Detail: "response carried no body", Err: ErrInvalidData}
		}

		if err := download.Handle(ctx, resp.Body, resp.ContentLength, destPath, c.logger, opts...); err != nil {
			return &APIError{Detail: "download to " + destPath, Err: err}
		}

		return nil
	}

	return c.exec(ctx, e, false, dlFunc)
}

// exec materializes the endpoint, fires the request once, classifies
// the outcome, and hands classified-successful responses to fn.
// Classification order: transport failure, non-HTTP response, non-2xx
// status, then whatever fn reports.
func (c *Client) exec(ctx context.Context, e Endpoint, withBody bool, fn execFn) error {
	req, err := c.request(ctx, e, withBody)
	if err != nil {
		return err
	}

	resp, err := c.c.Do(req)
	if err != nil {
		return &APIError{Detail: "executing request", Err: err}
	}
	if resp == nil {
		return &APIError{Detail: "transport returned no http response", Err: ErrResponseUnsuccessful}
	}

	discardBody := true
	defer func() {
		if discardBody {
			if _, err := io.Copy(io.Discard, resp.Body); err != nil {
				c.logger.Error("failed to discard unused body", "error", err)
			}
		}
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Err: ErrRequestFailed}
	}

	if err := fn(resp); err != nil {
		discardBody = false
		return err
	}

	return nil
}

// request builds an *http.Request from the endpoint description.
// The body task is encoded only when withBody is set; downloads carry
// no body.
func (c *Client) request(ctx context.Context, e Endpoint, withBody bool) (*http.Request, error) {
	target, err := BuildURL(e)
	if err != nil {
		return nil, &APIError{Detail: "building url", Err: err}
	}

	var contentType string
	var payload []byte
	if withBody {
		contentType, payload, err = encodeBody(e.Task())
		if err != nil {
			return nil, err
		}
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, e.Method(), target.String(), body)
	if err != nil {
		return nil, &APIError{Detail: "instantiating request", Err: err}
	}

	for k, v := range e.Headers() {
		req.Header.Set(k, v)
	}
	// The encoder's content type wins over a descriptor-supplied one:
	// a multipart boundary in the header must match the payload.
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	return req, nil
}
