// Package download streams HTTP response bodies to disk with optional
// checksum verification, progress reporting, and batching.
//
// # Single Download
//
// [Handle] writes a response body to a temporary file alongside the
// destination path, then renames it over the destination on success:
//
//	err := download.Handle(ctx, resp.Body, resp.ContentLength, destPath, logger)
//
// On any failure the temporary file is removed and the destination is
// left untouched.
//
// # Batching
//
// [Queue] runs several downloads concurrently under one cap:
//
//	q := download.NewQueue(4)
//	q.Start(ctx, func(ctx context.Context) error { return c.Download(ctx, e1, "/tmp/a") })
//	q.Start(ctx, func(ctx context.Context) error { return c.Download(ctx, e2, "/tmp/b") })
//	err := q.Wait()
//
// Most callers should use the higher-level root package, which invokes
// Handle internally and accepts the options defined here.
package download
