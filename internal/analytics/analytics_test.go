package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Reportly/internal/platform"
)

func TestTrackDelivers(t *testing.T) {
	var mu sync.Mutex
	var names []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ev platform.Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&ev))
		mu.Lock()
		names = append(names, ev.Name)
		mu.Unlock()
	}))
	defer ts.Close()

	client, err := platform.New(ts.URL, "anon-key")
	require.NoError(t, err)

	tracker := New(client)
	tracker.Track(EventSignupStarted, nil)
	tracker.Track(EventSignupSuccess, map[string]string{"provider": "google"})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(names) == 2
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{EventSignupStarted, EventSignupSuccess}, names)
}

func TestTrackNeverBlocksOrPanicsWhenUnconfigured(t *testing.T) {
	client, err := platform.New("", "")
	require.ErrorIs(t, err, platform.ErrNotConfigured)

	tracker := New(client)

	done := make(chan struct{})
	go func() {
		tracker.Track(EventExportAttempt, nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Track blocked the caller")
	}
}
