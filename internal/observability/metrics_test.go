package observability

import (
	"testing"
	"time"
)

func TestMetricsAccumulatePerRouteAndStatus(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/en/lectures", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/en/lectures", "GET", 200, 30*time.Millisecond)
	m.RecordRequest("/en/lectures", "GET", 404, 5*time.Millisecond)

	ok := m.RequestStats("/en/lectures", "GET", 200)
	if ok.Count != 2 {
		t.Fatalf("200 count = %d, want 2", ok.Count)
	}
	if ok.TotalDuration != 40*time.Millisecond {
		t.Fatalf("200 total duration = %v, want 40ms", ok.TotalDuration)
	}
	if got := m.RequestStats("/en/lectures", "GET", 404).Count; got != 1 {
		t.Fatalf("404 count = %d, want 1", got)
	}

	m.RecordError("/en/lectures", "GET", "NOT_FOUND")
	if got := m.ErrorCount("/en/lectures", "GET", "NOT_FOUND"); got != 1 {
		t.Fatalf("error count = %d, want 1", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "INTERNAL_ERROR")

	if got := m.RequestStats("/", "GET", 200).Count; got != 0 {
		t.Fatalf("nil metrics count = %d, want 0", got)
	}
	if got := m.ErrorCount("/", "GET", "INTERNAL_ERROR"); got != 0 {
		t.Fatalf("nil metrics error count = %d, want 0", got)
	}
}
