package config

import "time"

// DatasetConfig controls where the draft dataset document is read from.
type DatasetConfig struct {
	Path    string
	URL     string
	Timeout time.Duration
}

func loadDataset() DatasetConfig {
	return DatasetConfig{
		Path:    envOrDefault(envDataPath, defaultDataPath),
		URL:     envOrDefault(envDataURL, ""),
		Timeout: durationEnvOrDefault(envDataTimeout, defaultDataTimeout),
	}
}
