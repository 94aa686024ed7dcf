package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider fetches,
// dataset loads, HTTP traffic, and report-ledger appends. It mirrors the
// same counters into OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats

	datasetLoads      int
	datasetLoadErrors int
	reportsAdded      int
	httpRequests      int

	otel *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a dataset fetch and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordDatasetLoad tracks one startup load cycle.
func (r *Recorder) RecordDatasetLoad(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.datasetLoads++
	if err != nil {
		r.datasetLoadErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordDatasetLoad(duration, err)
	}
}

// RecordHTTPRequest tracks a served request by method, normalized path, and status.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.httpRequests++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// HTTPRequests returns the total requests recorded.
func (r *Recorder) HTTPRequests() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.httpRequests
}

// RecordReportAdded tracks one successful scouting-report append.
func (r *Recorder) RecordReportAdded() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.reportsAdded++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReportAdded()
	}
}

// ProviderSnapshot is a copy of the counters for one provider.
type ProviderSnapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the counters recorded for a provider.
func (r *Recorder) Snapshot(provider string) ProviderSnapshot {
	if r == nil {
		return ProviderSnapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		return ProviderSnapshot{}
	}
	return ProviderSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ProviderCalls returns the total fetch attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed fetches recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// DatasetLoads returns the total load cycles recorded.
func (r *Recorder) DatasetLoads() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.datasetLoads
}

// DatasetLoadErrors returns the total failed load cycles recorded.
func (r *Recorder) DatasetLoadErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.datasetLoadErrors
}

// ReportsAdded returns the total ledger appends recorded.
func (r *Recorder) ReportsAdded() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reportsAdded
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
