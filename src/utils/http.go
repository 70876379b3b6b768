package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const DefaultHttpTimeout = 30 * time.Second

type HttpStatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *HttpStatusError) Error() string {
	return fmt.Sprintf("unexpected http status %s from %s", e.Status, e.URL)
}

// NewHttpClient returns a client whose requests are traced.
func NewHttpClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// Get fetches url and returns the body of a 2xx response. Any other status is
// returned as an *HttpStatusError.
func Get(ctx context.Context, client *http.Client, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("Get: failed to create request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("Get: request failed: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		io.Copy(io.Discard, res.Body)
		return nil, &HttpStatusError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			URL:        url,
		}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("Get: failed to read body: %w", err)
	}

	return body, nil
}
