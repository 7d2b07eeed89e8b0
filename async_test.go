package coral_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	coral "github.com/yunusuzun/SwiftCoral"
)

func TestPerformAsync_ResolvesWithValue(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"body":"async"}`)
	}))
	defer ts.Close()

	c, err := coral.Build()
	if err != nil {
		t.Fatalf("building client: %v", err)
	}

	call := coral.PerformAsync[payload](context.Background(), c, endpoint(ts.URL, "/v1/thing"))

	got, err := call.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if got.Body != "async" {
		t.Errorf("value: got %+v", got)
	}

	// A second read observes the same terminal result.
	again, err := call.Result()
	if err != nil || again != got {
		t.Errorf("repeated Result diverged: %+v, %v", again, err)
	}
}

func TestPerformAsync_ResolvesWithError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := coral.Build()
	if err != nil {
		t.Fatalf("building client: %v", err)
	}

	call := coral.PerformAsync[payload](context.Background(), c, endpoint(ts.URL, "/v1/thing"))

	if err := call.Err(); !errors.Is(err, coral.ErrRequestFailed) {
		t.Fatalf("expected ErrRequestFailed, got: %v", err)
	}
}

func TestCall_CallbackDeliversOnce(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"body":"cb"}`)
	}))
	defer ts.Close()

	c, err := coral.Build()
	if err != nil {
		t.Fatalf("building client: %v", err)
	}

	var fired atomic.Int32
	done := make(chan struct{})

	call := coral.PerformAsync[payload](context.Background(), c, endpoint(ts.URL, "/v1/thing"))
	call.Callback(func(got payload, err error) {
		fired.Add(1)
		if err != nil {
			t.Errorf("callback error: %v", err)
		}
		if got.Body != "cb" {
			t.Errorf("callback value: %+v", got)
		}
		close(done)
	})

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callback never fired")
	}

	if n := fired.Load(); n != 1 {
		t.Errorf("callback fired %d times", n)
	}
}

func TestCall_ChanDeliversOneOutcomeThenCloses(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"body":"stream"}`)
	}))
	defer ts.Close()

	c, err := coral.Build()
	if err != nil {
		t.Fatalf("building client: %v", err)
	}

	ch := coral.PerformAsync[payload](context.Background(), c, endpoint(ts.URL, "/v1/thing")).Chan()

	outcome, ok := <-ch
	if !ok {
		t.Fatal("channel closed before delivering an outcome")
	}
	if outcome.Err != nil {
		t.Fatalf("outcome error: %v", outcome.Err)
	}
	if outcome.Value.Body != "stream" {
		t.Errorf("outcome value: %+v", outcome.Value)
	}

	if _, ok := <-ch; ok {
		t.Error("channel must close after its single outcome")
	}
}

func TestDownloadAsync_ResolvesWithDestination(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "file body")
	}))
	defer ts.Close()

	c, err := coral.Build()
	if err != nil {
		t.Fatalf("building client: %v", err)
	}

	dest := filepath.Join(t.TempDir(), "out.bin")

	got, err := c.DownloadAsync(context.Background(), endpoint(ts.URL, "/v1/file"), dest).Result()
	if err != nil {
		t.Fatalf("DownloadAsync: %v", err)
	}
	if got != dest {
		t.Errorf("resolved path: got %q, want %q", got, dest)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "file body" {
		t.Errorf("file content: got %q", content)
	}
}
