package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tienhung-ho/my-hotel-merger/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/v1/hotels", "GET", 200, 12*time.Millisecond)
	observability.ObserveExternal("supplier", "acme", 200, 30*time.Millisecond)
	observability.ObserveMergeRun("ok", 3, 1)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, metric := range []string{
		"hotelmerger_http_requests_total",
		"hotelmerger_external_requests_total",
		"hotelmerger_merge_runs_total",
		"hotelmerger_hotels_merged_total",
	} {
		if !strings.Contains(out, metric) {
			t.Fatalf("expected %s in output", metric)
		}
	}
}
