// Package coral turns a declarative endpoint description into an
// executed HTTP call built on [net/http].
//
// # Describing Endpoints
//
// Any type implementing [Endpoint] describes one logical call: base
// URL, path, method, optional headers, query parameters, and an
// optional body task. Callers typically define an endpoint catalog:
//
//	type getUser struct{ id string }
//
//	func (e getUser) BaseURL() string                { return "https://api.example.com" }
//	func (e getUser) Path() string                   { return "/v1/users/" + e.id }
//	func (e getUser) Method() string                 { return http.MethodGet }
//	func (e getUser) Headers() map[string]string     { return nil }
//	func (e getUser) QueryParams() map[string]string { return nil }
//	func (e getUser) Task() coral.Task               { return nil }
//
// The ready-made [Descriptor] value covers one-off calls without a
// catalog type.
//
// # Making Requests
//
// Build a [Client] with functional options, then execute:
//
//	c, err := coral.Build(
//		coral.WithTimeout(10 * time.Second),
//		coral.WithUserAgent("myapp/1.0"),
//	)
//
//	var user User
//	err = c.Perform(ctx, getUser{id: "42"}, coral.WithDestination(&user))
//
// Failures are classified into a closed taxonomy; branch with
// [errors.Is] against [ErrRequestFailed], [ErrJSONParsing], and the
// other sentinels in this package.
//
// # Downloading Files
//
// Stream a response body straight to disk, overwriting any existing
// file at the destination:
//
//	err = c.Download(ctx, fetchReport{}, "/tmp/report.pdf",
//		download.WithChecksum(sha256.New(), expectedHex),
//	)
//
// # Asynchronous Calls
//
// [PerformAsync] and [Client.DownloadAsync] return a [Call], a future
// resolving exactly once. Consume it blocking, via callback, or as a
// single-value channel:
//
//	call := coral.PerformAsync[User](ctx, c, getUser{id: "42"})
//	user, err := call.Result()
package coral
