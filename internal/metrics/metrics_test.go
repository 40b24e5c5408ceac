package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestMetricsExposure(t *testing.T) {
	IncItem(OutcomeStored)
	IncItem(OutcomeMalformed)
	ObserveIngest(time.Now().Add(-1500*time.Millisecond), nil)
	ObserveIngest(time.Now(), errors.New("boom"))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		`ingest_runs_total{result="ok"}`,
		`ingest_runs_total{result="error"}`,
		`ingest_items_total{outcome="stored"}`,
		`ingest_items_total{outcome="malformed"}`,
		"ingest_duration_seconds",
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}
}
