package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is satisfied by database.Database, cache.RedisClient and events.EventBus.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependency is one check reported by the health endpoint. A failing Required
// dependency makes the service unavailable; any other failure only degrades it.
type Dependency struct {
	Name     string
	Pinger   Pinger
	Required bool
}

// DependencyStatus is the check result of a single dependency.
type DependencyStatus struct {
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

// HealthReport is the body of GET /health.
type HealthReport struct {
	Status string                      `json:"status"`
	Checks map[string]DependencyStatus `json:"checks"`
}

// HealthHandler pings every dependency concurrently. Dependencies with a nil
// Pinger are skipped, so optional infrastructure can be listed unconditionally.
// The response is 200 for "ok" and "degraded", 503 for "unavailable".
func HealthHandler(deps ...Dependency) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := checkAll(r.Context(), deps)
		status := http.StatusOK
		if report.Status == "unavailable" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, report)
	}
}

func checkAll(ctx context.Context, deps []Dependency) HealthReport {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	var (
		mu     sync.Mutex
		report = HealthReport{Status: "ok", Checks: make(map[string]DependencyStatus, len(deps))}
		g      errgroup.Group
	)
	for _, d := range deps {
		if d.Pinger == nil {
			continue
		}
		g.Go(func() error {
			start := time.Now()
			err := d.Pinger.Ping(ctx)
			res := DependencyStatus{Status: "ok", LatencyMs: time.Since(start).Milliseconds()}
			if err != nil {
				res.Status = "unreachable"
				res.Error = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()
			report.Checks[d.Name] = res
			switch {
			case err == nil:
			case d.Required:
				report.Status = "unavailable"
			case report.Status == "ok":
				report.Status = "degraded"
			}
			return nil
		})
	}
	_ = g.Wait()
	return report
}
