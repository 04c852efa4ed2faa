package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/content-gateway/internal/config"
	"github.com/spec-kit/content-gateway/internal/observability"
	"github.com/spec-kit/content-gateway/internal/upstream"
	apperrors "github.com/spec-kit/content-gateway/pkg/util"
)

// The request timeout must flow through the user context into
// upstream calls and cut them short.
func TestRequestTimeoutBoundsUpstreamCalls(t *testing.T) {
	slow := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	client, err := upstream.New(config.UpstreamConfig{BaseURL: slow.URL, TimeoutSeconds: 10}, zap.NewNop())
	if err != nil {
		t.Fatalf("build upstream client: %v", err)
	}

	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 100*time.Millisecond)
	app.Get("/slow", func(c *fiber.Ctx) error {
		_, err := client.Get(c.UserContext(), "/resource", upstream.RequestOptions{})
		return err
	})

	start := time.Now()
	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/slow", nil), 5000)
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("upstream call not bounded by the request timeout, took %v", elapsed)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
}

// Failed requests must be counted under the status the error
// middleware actually sent, not the pre-rewrite 200.
func TestFailedRequestsCountedWithFinalStatus(t *testing.T) {
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("resource", nil)
	})

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/missing", nil))
	if err != nil {
		t.Fatalf("test request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	if got := metrics.RequestStats("/missing", nethttp.MethodGet, fiber.StatusNotFound).Count; got != 1 {
		t.Fatalf("404 request count = %d, want 1", got)
	}
	if got := metrics.RequestStats("/missing", nethttp.MethodGet, fiber.StatusOK).Count; got != 0 {
		t.Fatalf("failed request recorded as 200 (%d times)", got)
	}
	if got := metrics.ErrorCount("/missing", nethttp.MethodGet, "NOT_FOUND"); got != 1 {
		t.Fatalf("error count = %d, want 1", got)
	}
}
