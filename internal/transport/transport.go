// Package transport performs the single HTTP GET behind each LegiScan API
// call. One call means one request: no retries, no caching.
package transport

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/legiscan-go/legiscan/api"
)

// Fetcher issues GET requests against the API endpoint.
type Fetcher struct {
	client *http.Client
	log    *slog.Logger
}

func New(client *http.Client, log *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Fetcher{client: client, log: log}
}

// Fetch GETs rawURL and returns the response body. Connection failures,
// timeouts and non-2xx statuses surface as *api.TransportError. The URL is
// never logged since it carries the API key; the request id on the
// X-Request-Id header correlates log lines with upstream records.
func (f *Fetcher) Fetch(ctx context.Context, opName, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &api.TransportError{Op: opName, Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Debug("legiscan request failed", "op", opName, "request_id", reqID, "error", err)
		return nil, &api.TransportError{Op: opName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &api.TransportError{Op: opName, Status: resp.StatusCode, Err: err}
	}
	f.log.Debug("legiscan request",
		"op", opName,
		"request_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(body),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &api.TransportError{
			Op:     opName,
			Status: resp.StatusCode,
			Err:    errors.New(statusMessage(resp.StatusCode, body)),
		}
	}
	return body, nil
}

// statusMessage keeps whatever the upstream said in the error body; it is
// often the only hint about what went wrong.
func statusMessage(status int, body []byte) string {
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if msg == "" {
		return http.StatusText(status)
	}
	return msg
}
