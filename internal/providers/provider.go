package providers

import (
	"context"

	"draft-board-service/internal/domain"
)

// DatasetProvider fetches the full draft dataset document. The fetch happens
// exactly once at startup: implementations must not retry internally, since a
// failed load is terminal for the session.
type DatasetProvider interface {
	FetchDataset(ctx context.Context) (domain.Dataset, error)
}
