package providers

import (
	"context"
	"log/slog"
	"time"

	"draft-board-service/internal/domain"
	"draft-board-service/internal/logging"
	"draft-board-service/internal/metrics"
)

// instrumentedProvider decorates a DatasetProvider with logging and metrics.
type instrumentedProvider struct {
	inner   DatasetProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewInstrumentedProvider wraps the given provider so every fetch attempt is
// logged and recorded under the provider's name.
func NewInstrumentedProvider(inner DatasetProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DatasetProvider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
	}
}

func (p *instrumentedProvider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	start := time.Now()
	ds, err := p.inner.FetchDataset(ctx)
	duration := time.Since(start)

	if p.metrics != nil {
		p.metrics.RecordProviderAttempt(p.name, duration, err)
	}

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logging.Error(logger, "dataset fetch failed", err,
			slog.String(logging.FieldProvider, p.name),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
		return domain.Dataset{}, err
	}

	logging.Info(logger, "dataset fetched",
		slog.String(logging.FieldProvider, p.name),
		slog.Int(logging.FieldCount, len(ds.Bio)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return ds, nil
}
