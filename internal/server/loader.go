package server

import (
	"context"

	"draft-board-service/internal/loader"
)

// Loader defines the minimal dataset-loader behavior needed by the server.
type Loader interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() loader.Status
}
