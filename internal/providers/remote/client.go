package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"draft-board-service/internal/domain"
)

const defaultHTTPTimeout = 15 * time.Second

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the remote client reaches the dataset document.
type Config struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches the dataset JSON from a static URL in a single request.
type Client struct {
	url        string
	httpClient httpDoer
}

// NewClient constructs a remote dataset client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        strings.TrimSpace(cfg.URL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchDataset performs a one-shot GET of the dataset document. There is no
// retry and no pagination; a non-200 response is an error carrying a
// truncated body excerpt.
func (c *Client) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	if c.url == "" {
		return domain.Dataset{}, errors.New("dataset url required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.Dataset{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Dataset{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Dataset{}, fmt.Errorf("remote: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var ds domain.Dataset
	if err := json.NewDecoder(resp.Body).Decode(&ds); err != nil {
		return domain.Dataset{}, err
	}
	return ds, nil
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}
