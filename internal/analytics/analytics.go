// Package analytics names the product events and delivers them to the
// platform service without ever blocking a request.
package analytics

import (
	"context"
	"log"
	"time"

	"Reportly/internal/platform"
)

// Event keys consumed by the platform. The keys are the contract; no
// payload schema is specified beyond them.
const (
	EventExportAttempt = "export_attempt"
	EventExportSuccess = "export_success"
	EventExportFailed  = "export_failed"
	EventSignupStarted = "signup_started"
	EventSignupSuccess = "signup_success"
	EventLoginSuccess  = "login_success"
)

const deliveryTimeout = 5 * time.Second

// Tracker dispatches events to the platform client it was built with.
type Tracker struct {
	client  *platform.Client
	timeout time.Duration
}

// New creates a tracker around an injected platform client.
func New(client *platform.Client) *Tracker {
	return &Tracker{client: client, timeout: deliveryTimeout}
}

// Track delivers one event, fire-and-forget. Delivery happens on its
// own goroutine with a bounded timeout; failures are logged and never
// reach the caller. Deduplication is the caller's responsibility.
func (t *Tracker) Track(event string, properties map[string]string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()
		if err := t.client.SendEvent(ctx, event, properties); err != nil {
			log.Printf("analytics: event %q not delivered: %v", event, err)
		}
	}()
}
