package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"carRentalFe/internal/modules/rental/application/port"
)

// BackendHTTPClient implements port.BackendFetcher against the rental REST API.
type BackendHTTPClient struct {
	rest    *RESTClient
	timeout time.Duration
}

func NewBackendHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *BackendHTTPClient {
	return &BackendHTTPClient{rest: NewRESTClient(baseURL, timeout, client), timeout: timeoutOrDefault(timeout)}
}

// Get performs one GET and decodes the body into a loose JSON value. Non-2xx
// responses become errors carrying the server-supplied message when present;
// the caller decides what a failure means for its page.
func (c *BackendHTTPClient) Get(ctx context.Context, path string, query map[string]string) (any, error) {
	trimmedPath := strings.TrimSpace(path)
	if trimmedPath == "" {
		return nil, fmt.Errorf("backend fetch missing path")
	}
	if !strings.HasPrefix(trimmedPath, "/") {
		trimmedPath = "/" + trimmedPath
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.rest.NewRequest(ctx, http.MethodGet, trimmedPath, nil)
	if err != nil {
		slog.Error("backend request build failed", slog.String("path", trimmedPath), slog.Any("error", err))
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	values := url.Values{}
	for key, value := range query {
		trimmedKey := strings.TrimSpace(key)
		trimmedValue := strings.TrimSpace(value)
		if trimmedKey == "" || trimmedValue == "" {
			continue
		}
		values.Set(trimmedKey, trimmedValue)
	}
	if len(values) > 0 {
		req.URL.RawQuery = values.Encode()
	}

	slog.Debug("backend request", slog.String("url", req.URL.String()))

	res, err := c.rest.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer res.Body.Close()

	slog.Debug("backend response", slog.Int("status", res.StatusCode), slog.String("url", req.URL.String()))

	if res.StatusCode == http.StatusNotFound {
		return nil, port.ErrNotFound
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return nil, fmt.Errorf("%s", failureMessage(body, res.StatusCode))
	}

	var payload any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode backend response: %w", err)
	}
	return payload, nil
}

// failureMessage prefers the server-supplied message or error field from an
// error body over a bare status line.
func failureMessage(body []byte, status int) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if msg := strings.TrimSpace(envelope.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(envelope.Error); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("unexpected backend response %d", status)
}

var _ port.BackendFetcher = (*BackendHTTPClient)(nil)
