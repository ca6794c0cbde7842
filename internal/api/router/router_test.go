package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathersonandsons/outreach-agent/internal/campaign"
	"github.com/mathersonandsons/outreach-agent/internal/prospecting"
	"github.com/mathersonandsons/outreach-agent/pkg/logging"
)

func TestHealthEndpoint(t *testing.T) {
	handler := New(&Config{Logger: logging.Default()})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCampaignSummaryEndpoint(t *testing.T) {
	state := campaign.NewState()
	state.AddContact(&prospecting.Contact{ID: "c-1", Email: "a@example.com"}, prospecting.Enrichment{})
	state.MarkInterested("a@example.com")
	state.MarkReplied("a@example.com")

	handler := New(&Config{Logger: logging.Default(), State: state})

	req := httptest.NewRequest(http.MethodGet, "/campaign/summary", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary campaign.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.TotalContacts)
	assert.Equal(t, 1, summary.Interested)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := New(&Config{
		Logger:         logging.Default(),
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSummaryNotRoutedWithoutState(t *testing.T) {
	handler := New(&Config{Logger: logging.Default()})

	req := httptest.NewRequest(http.MethodGet, "/campaign/summary", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
