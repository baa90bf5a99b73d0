package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/i3T4AN/Syspulse/report"
)

func testDigest() Digest {
	network := report.MetricSummary{Avg: 15.5554, Min: 10, Max: 21}
	return Digest{
		Timestamp:    time.Date(2021, time.September, 2, 12, 0, 0, 0, time.UTC),
		Period:       "last_24h",
		TotalRecords: 42,
		Summary: report.Summary{
			CPU:     report.MetricSummary{Avg: 45.505, Min: 10.1, Max: 90.9},
			Memory:  report.MetricSummary{Avg: 60, Min: 50, Max: 70},
			Disk:    report.MetricSummary{Avg: 75, Min: 75, Max: 75},
			Network: &network,
		},
	}
}

func TestWebhookConfigValidate(t *testing.T) {
	require.Error(t, WebhookConfig{}.Validate())
	require.Error(t, WebhookConfig{URL: "ftp://example.com/hook"}.Validate())
	require.NoError(t, WebhookConfig{URL: "https://example.com/hook"}.Validate())
}

func TestWebhookSendDigest(t *testing.T) {
	var received map[string]interface{}
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier, err := NewWebhookNotifier(WebhookConfig{URL: server.URL})
	require.NoError(t, err)

	require.NoError(t, notifier.SendDigest(context.Background(), testDigest()))

	require.Equal(t, "application/json", contentType)
	require.Equal(t, "last_24h", received["period"])
	require.EqualValues(t, 42, received["total_records"])

	summary := received["summary"].(map[string]interface{})
	cpu := summary["cpu"].(map[string]interface{})
	require.EqualValues(t, 45.51, cpu["avg"], "payload must carry rounded aggregates")
	network := summary["network"].(map[string]interface{})
	require.EqualValues(t, 15.56, network["avg"])
}

func TestWebhookSendDigestNilNetwork(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))
	defer server.Close()

	notifier, err := NewWebhookNotifier(WebhookConfig{URL: server.URL})
	require.NoError(t, err)

	digest := testDigest()
	digest.Summary.Network = nil
	require.NoError(t, notifier.SendDigest(context.Background(), digest))

	summary := received["summary"].(map[string]interface{})
	require.Contains(t, summary, "network")
	require.Nil(t, summary["network"])
}

func TestWebhookSendDigestServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier, err := NewWebhookNotifier(WebhookConfig{URL: server.URL})
	require.NoError(t, err)

	err = notifier.SendDigest(context.Background(), testDigest())
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}
