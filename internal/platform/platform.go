// Package platform is the client for the hosted backend service that
// stores analytics events. The service is addressed by a base URL and a
// public (anon) API key.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured is returned by client operations when the platform
// URL or anon key were absent at construction time. Construction itself
// never fails hard on missing credentials so that non-interactive
// builds and local development keep working; the error surfaces on
// first actual use.
var ErrNotConfigured = errors.New("platform client not configured")

// Client talks to the platform service. Construct it once and inject it
// into whatever needs it - there is no package-level instance.
type Client struct {
	BaseURL string
	AnonKey string

	httpClient *http.Client
}

// New creates a platform client from the service base URL and the
// public anon key. When either value is empty the client is still
// returned, together with an error wrapping ErrNotConfigured, so the
// caller can log a warning and carry on.
func New(baseURL, anonKey string) (*Client, error) {
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		AnonKey:    anonKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	if baseURL == "" || anonKey == "" {
		return c, fmt.Errorf("%w: PLATFORM_URL and PLATFORM_ANON_KEY must be set", ErrNotConfigured)
	}
	return c, nil
}

// Configured reports whether the client was built with both credentials.
func (c *Client) Configured() bool {
	return c.BaseURL != "" && c.AnonKey != ""
}

// Event is a single analytics event as accepted by the platform's
// events endpoint.
type Event struct {
	Name       string            `json:"event"`
	Properties map[string]string `json:"properties,omitempty"`
	SentAt     time.Time         `json:"sent_at"`
}

// SendEvent delivers one analytics event. The event name is an opaque
// key; the platform defines no payload schema beyond it.
func (c *Client) SendEvent(ctx context.Context, name string, properties map[string]string) error {
	if !c.Configured() {
		return fmt.Errorf("send event %q: %w", name, ErrNotConfigured)
	}

	jsonData, err := json.Marshal(Event{
		Name:       name,
		Properties: properties,
		SentAt:     time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	url := fmt.Sprintf("%s/events", c.BaseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", c.AnonKey)
	httpReq.Header.Set("Authorization", "Bearer "+c.AnonKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send event to platform: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("platform returned non-OK status: %s - %s", resp.Status, string(body))
	}
	return nil
}
