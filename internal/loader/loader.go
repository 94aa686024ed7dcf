package loader

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"draft-board-service/internal/logging"
	"draft-board-service/internal/metrics"
	"draft-board-service/internal/providers"
	"draft-board-service/internal/store"
)

// Loader performs the single startup fetch of the draft dataset and exposes
// readiness. The dataset either loads once or the session is permanently
// degraded; there is no retry and no background refresh.
type Loader struct {
	provider providers.DatasetProvider
	store    *store.MemoryStore
	logger   *slog.Logger
	metrics  *metrics.Recorder

	done     chan struct{}
	doneOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the outcome of the startup load.
type Status struct {
	LastAttempt time.Time
	LastSuccess time.Time
	LastError   string
}

// IsReady reports whether the dataset has been loaded.
func (s Status) IsReady() bool {
	return !s.LastSuccess.IsZero()
}

// New constructs a Loader.
func New(provider providers.DatasetProvider, memoryStore *store.MemoryStore, logger *slog.Logger, recorder *metrics.Recorder) *Loader {
	return &Loader{
		provider: provider,
		store:    memoryStore,
		logger:   logger,
		metrics:  recorder,
		done:     make(chan struct{}),
	}
}

// Start launches the one-shot load in the background. Subsequent calls are
// no-ops.
func (l *Loader) Start(ctx context.Context) {
	l.startMu.Lock()
	if l.started {
		l.startMu.Unlock()
		return
	}
	l.started = true
	l.startMu.Unlock()

	go l.loadOnce(ctx)
}

// Stop satisfies the lifecycle contract; the loader holds nothing to flush.
func (l *Loader) Stop(ctx context.Context) error {
	_ = ctx
	return nil
}

// Done is closed once the load attempt has finished, success or failure.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Status returns a snapshot of the load outcome.
func (l *Loader) Status() Status {
	l.statusMu.RLock()
	defer l.statusMu.RUnlock()
	return l.status
}

func (l *Loader) loadOnce(ctx context.Context) {
	defer l.doneOnce.Do(func() { close(l.done) })

	start := time.Now()
	l.recordAttempt(start)

	ds, err := l.provider.FetchDataset(ctx)
	if l.metrics != nil {
		l.metrics.RecordDatasetLoad(time.Since(start), err)
	}
	if err != nil {
		logging.Error(l.logger, "dataset load failed; service will stay not-ready", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		l.recordFailure(err, start)
		return
	}

	l.store.SetDataset(ds)
	l.recordSuccess(start)

	counts := ds.Counts()
	logging.Info(l.logger, "dataset loaded",
		slog.Int("players", counts["bio"]),
		slog.Int("rankings", counts["scoutRankings"]),
		slog.Int("measurements", counts["measurements"]),
		slog.Int("game_logs", counts["game_logs"]),
		slog.Int("season_logs", counts["seasonLogs"]),
		slog.Int("reports", counts["scoutingReports"]),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (l *Loader) recordAttempt(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.LastAttempt = at
}

func (l *Loader) recordSuccess(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.LastError = ""
	l.status.LastSuccess = at
}

func (l *Loader) recordFailure(err error, at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	if err != nil {
		l.status.LastError = err.Error()
	}
	l.status.LastAttempt = at
}
