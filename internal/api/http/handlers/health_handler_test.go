package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/content-gateway/internal/api/http/handlers"
	"github.com/spec-kit/content-gateway/internal/config"
	"github.com/spec-kit/content-gateway/internal/upstream"
)

func newHealthApp(t *testing.T, upstreamURL string) *fiber.App {
	t.Helper()

	client, err := upstream.New(config.UpstreamConfig{BaseURL: upstreamURL, TimeoutSeconds: 2}, zap.NewNop())
	if err != nil {
		t.Fatalf("build upstream client: %v", err)
	}
	health := handlers.NewHealthHandler("content-gateway", "test", nil, nil, client)

	app := fiber.New()
	app.Get("/health/live", health.Live)
	app.Get("/health/ready", health.Ready)
	return app
}

func TestReadinessChecksUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	app := newHealthApp(t, srv.URL)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if err != nil {
		t.Fatalf("ready request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"upstream":"ok"`) {
		t.Fatalf("upstream not reported healthy: %s", body)
	}

	// With the upstream gone the gateway must report not ready.
	srv.Close()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if err != nil {
		t.Fatalf("ready request: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
	body, _ = io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "upstream unreachable") {
		t.Fatalf("upstream failure not surfaced: %s", body)
	}
}

func TestLivenessReportsService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()
	app := newHealthApp(t, srv.URL)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if err != nil {
		t.Fatalf("live request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"status":"alive"`) {
		t.Fatalf("liveness body: %s", body)
	}
}
