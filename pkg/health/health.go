// Package health aggregates per-dependency probes into liveness and
// readiness endpoints.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Status is the health state of one component or of the whole service.
type Status string

const (
	StatusUp       Status = "up"
	StatusDegraded Status = "degraded"
	StatusDown     Status = "down"
)

// worse reports whether a outranks b in severity.
func (a Status) worse(b Status) bool {
	rank := map[Status]int{StatusUp: 0, StatusDegraded: 1, StatusDown: 2}
	return rank[a] > rank[b]
}

// Check probes one dependency.
type Check func(ctx context.Context) ComponentHealth

// ComponentHealth is the outcome of a single probe.
type ComponentHealth struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Report aggregates every probe; Status is the worst component status.
type Report struct {
	Status     Status                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
	Timestamp  string                     `json:"timestamp"`
}

// Checker holds the registered probes.
type Checker struct {
	mu     sync.RWMutex
	checks map[string]Check
}

func NewChecker() *Checker {
	return &Checker{checks: make(map[string]Check)}
}

// Register adds a named probe. Registering an existing name replaces it.
func (c *Checker) Register(name string, check Check) {
	c.mu.Lock()
	c.checks[name] = check
	c.mu.Unlock()
}

// Run probes every component concurrently and aggregates the results.
func (c *Checker) Run(ctx context.Context) Report {
	c.mu.RLock()
	snapshot := make(map[string]Check, len(c.checks))
	for name, check := range c.checks {
		snapshot[name] = check
	}
	c.mu.RUnlock()

	results := make(map[string]ComponentHealth, len(snapshot))
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for name, check := range snapshot {
		wg.Add(1)
		go func(name string, check Check) {
			defer wg.Done()
			started := time.Now()
			res := check(ctx)
			res.Latency = time.Since(started).Round(time.Millisecond).String()
			mu.Lock()
			results[name] = res
			mu.Unlock()
		}(name, check)
	}
	wg.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status.worse(overall) {
			overall = res.Status
		}
	}
	return Report{
		Status:     overall,
		Components: results,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

// LiveHandler answers liveness probes: the process is running, nothing more.
func (c *Checker) LiveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "alive"})
	}
}

// ReadyHandler answers readiness probes: 200 only when every registered
// component is up.
func (c *Checker) ReadyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		report := c.Run(ctx)
		w.Header().Set("Content-Type", "application/json")
		if report.Status != StatusUp {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(report)
	}
}
