package testutil

import (
	"context"

	"draft-board-service/internal/domain"
)

// GoodProvider returns the provided dataset with no error.
type GoodProvider struct {
	Dataset domain.Dataset
}

func (p GoodProvider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	_ = ctx
	return p.Dataset, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	return domain.Dataset{}, p.Err
}

// NotifyingProvider returns the dataset and closes the notify channel on first fetch.
type NotifyingProvider struct {
	Dataset domain.Dataset
	Notify  chan struct{}
}

func (p *NotifyingProvider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	_ = ctx
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Dataset, nil
}
