package observability

import (
	"strconv"
	"sync"
	"time"
)

// RouteStats accumulates per-route request counts and latency.
type RouteStats struct {
	Count         int64
	TotalDuration time.Duration
}

// Metrics keeps in-memory counters for the gateway's HTTP surface.
// Request keys are path|method|status; error keys are path|method|code
// from the shared error taxonomy.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]*RouteStats
	errors   map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]*RouteStats),
		errors:   make(map[string]int64),
	}
}

// RecordRequest counts one finished request under its final status.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := requestKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	stats, ok := m.requests[key]
	if !ok {
		stats = &RouteStats{}
		m.requests[key] = stats
	}
	stats.Count++
	stats.TotalDuration += duration
}

// RecordError counts one rendered error by taxonomy code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[path+"|"+method+"|"+code]++
}

// RequestStats returns the accumulated stats for one route/status pair.
func (m *Metrics) RequestStats(path, method string, status int) RouteStats {
	if m == nil {
		return RouteStats{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if stats, ok := m.requests[requestKey(path, method, status)]; ok {
		return *stats
	}
	return RouteStats{}
}

// ErrorCount returns how many times the given error code was rendered
// on the route.
func (m *Metrics) ErrorCount(path, method, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[path+"|"+method+"|"+code]
}

func requestKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
