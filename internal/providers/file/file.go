package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"draft-board-service/internal/domain"
)

// Provider loads the draft dataset document from the filesystem.
type Provider struct {
	path string
}

// New constructs a file-backed dataset provider reading from path.
func New(path string) *Provider {
	return &Provider{path: path}
}

// FetchDataset reads and decodes the dataset JSON document.
func (p *Provider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	if p == nil || p.path == "" {
		return domain.Dataset{}, errors.New("dataset path required")
	}
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}

	f, err := os.Open(p.path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var ds domain.Dataset
	if err := json.NewDecoder(f).Decode(&ds); err != nil {
		return domain.Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	return ds, nil
}
