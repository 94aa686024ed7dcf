package providers

import (
	"context"
	"errors"
	"testing"

	"draft-board-service/internal/domain"
	"draft-board-service/internal/metrics"
)

type stubProvider struct {
	ds    domain.Dataset
	err   error
	calls int
}

func (s *stubProvider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	s.calls++
	return s.ds, s.err
}

func TestInstrumentedProviderRecordsSuccess(t *testing.T) {
	inner := &stubProvider{ds: domain.Dataset{Bio: []domain.PlayerBio{{PlayerID: 1}}}}
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(inner, "fixture", nil, rec)

	ds, err := p.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ds.Bio) != 1 {
		t.Fatalf("expected dataset passthrough")
	}
	if inner.calls != 1 {
		t.Fatalf("expected exactly one inner call, got %d", inner.calls)
	}
	if rec.ProviderCalls("fixture") != 1 || rec.ProviderErrors("fixture") != 0 {
		t.Fatalf("unexpected counters: calls=%d errors=%d", rec.ProviderCalls("fixture"), rec.ProviderErrors("fixture"))
	}
}

func TestInstrumentedProviderRecordsFailure(t *testing.T) {
	inner := &stubProvider{err: errors.New("boom")}
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(inner, "remote", nil, rec)

	if _, err := p.FetchDataset(context.Background()); err == nil {
		t.Fatalf("expected error passthrough")
	}
	if rec.ProviderCalls("remote") != 1 || rec.ProviderErrors("remote") != 1 {
		t.Fatalf("unexpected counters: calls=%d errors=%d", rec.ProviderCalls("remote"), rec.ProviderErrors("remote"))
	}
}

func TestInstrumentedProviderTolerantOfNilRecorder(t *testing.T) {
	inner := &stubProvider{}
	p := NewInstrumentedProvider(inner, "fixture", nil, nil)
	if _, err := p.FetchDataset(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
