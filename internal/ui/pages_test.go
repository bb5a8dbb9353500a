package ui

import (
	"bytes"
	"context"
	"testing"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Reportly/internal/db"
)

func TestLandingContainsAllSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Landing().Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "Reports your whole team can read") // hero
	assert.Contains(t, html, `id="features"`)
	assert.Contains(t, html, `id="pricing"`)
	assert.Contains(t, html, "Ready when you are") // call to action
	assert.Contains(t, html, "<footer")
	assert.Contains(t, html, `href="/auth/google?signup=1"`)
}

func TestPricingPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Pricing().Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `id="pricing"`)
	assert.NotContains(t, html, `id="features"`)
}

func TestReportEscapesUserData(t *testing.T) {
	user := &goth.User{Name: `<script>alert("x")</script>`}
	reports := []db.Report{{Title: "Q3 <budget>", Status: "draft"}}

	var buf bytes.Buffer
	require.NoError(t, Report(user, reports).Render(context.Background(), &buf))
	html := buf.String()

	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "Q3 &lt;budget&gt;")
	assert.Contains(t, html, "draft")
}

func TestReportEmptyState(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(nil, nil).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "No reports yet")
	assert.Contains(t, html, `action="/api/report/export"`)
}
