package config

import (
	"net/url"
	"time"
)

// DownloadConfig represents the configuration of the download command.
type DownloadConfig struct {
	Datasets      []string
	DataDirectory string
	IndexUrl      *url.URL
	Force         bool
	Timeout       time.Duration
}
