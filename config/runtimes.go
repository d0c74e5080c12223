package config

import (
	"regexp"
	"time"
)

// RuntimesConfig represents the configuration of the runtimes command.
type RuntimesConfig struct {
	OutputDirectory string
	Start           time.Time
	End             time.Time
	DatasetFilters  []*regexp.Regexp
	MeasureFilters  []*regexp.Regexp
}
