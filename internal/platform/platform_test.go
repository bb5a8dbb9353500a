package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMissingCredentials(t *testing.T) {
	c, err := New("", "")
	require.NotNil(t, c, "client must be usable as a value even when unconfigured")
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, c.Configured())

	// Failure is deferred to first use.
	err = c.SendEvent(context.Background(), "login_success", nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	c, err := New("https://platform.example.com/", "anon-key")
	require.NoError(t, err)
	assert.Equal(t, "https://platform.example.com", c.BaseURL)
	assert.True(t, c.Configured())
}

func TestSendEvent(t *testing.T) {
	var got Event
	var gotAPIKey, gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/events", r.URL.Path)
		gotAPIKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	c, err := New(ts.URL, "anon-key")
	require.NoError(t, err)

	err = c.SendEvent(context.Background(), "export_success", map[string]string{"format": "csv"})
	require.NoError(t, err)

	assert.Equal(t, "anon-key", gotAPIKey)
	assert.Equal(t, "Bearer anon-key", gotAuth)
	assert.Equal(t, "export_success", got.Name)
	assert.Equal(t, map[string]string{"format": "csv"}, got.Properties)
	assert.False(t, got.SentAt.IsZero())
}

func TestSendEventNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer ts.Close()

	c, err := New(ts.URL, "anon-key")
	require.NoError(t, err)

	err = c.SendEvent(context.Background(), "export_failed", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
