package prometheus

import (
	"testing"

	"buyer-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInitMetricsUsesConfiguredPrefix(t *testing.T) {
	cfg := &config.Config{Metrics: config.MetricsConfig{Prefix: "acme"}}
	InitMetrics(cfg)

	HttpRequestsTotal.WithLabelValues("GET", "/api/products", "200").Inc()
	if n := testutil.CollectAndCount(HttpRequestsTotal, "acme_http_requests_total"); n != 1 {
		t.Fatalf("expected the request counter named under the configured prefix, got %d series", n)
	}

	RecordAuthError("missing_token")
	if n := testutil.CollectAndCount(AuthErrorsCounter, "acme_auth_errors_total"); n != 1 {
		t.Fatalf("expected the auth error counter named under the configured prefix, got %d series", n)
	}
}
