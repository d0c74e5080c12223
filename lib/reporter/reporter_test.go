package reporter_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/reporter"
	"github.com/jaewan01/hypersweep/lib/results"
)

func testEntries() []results.RuntimeEntry {
	return []results.RuntimeEntry{
		{
			Timestamp: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
			Dataset:   "email-eu",
			Measure:   "node_degree",
			Elapsed:   time.Second,
		},
		{
			Timestamp: time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
			Dataset:   "email-enron",
			Measure:   "edge_pagerank",
			Elapsed:   2 * time.Second,
		},
		{
			Timestamp: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
			Dataset:   "diseasome",
			Measure:   "node_pagerank",
			Elapsed:   3 * time.Second,
		},
	}
}

func TestFilterNoConstraints(t *testing.T) {
	entries := testEntries()
	assert.Equal(t, entries, reporter.Filter(entries, &config.RuntimesConfig{}))
}

func TestFilterTimeRange(t *testing.T) {
	entries := testEntries()
	c := &config.RuntimesConfig{
		Start: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
		End:   time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC),
	}
	filtered := reporter.Filter(entries, c)
	assert.Equal(t, entries[1:2], filtered)
}

func TestFilterDatasetPatterns(t *testing.T) {
	entries := testEntries()
	c := &config.RuntimesConfig{
		DatasetFilters: []*regexp.Regexp{regexp.MustCompile(`^email-`)},
	}
	filtered := reporter.Filter(entries, c)
	assert.Len(t, filtered, 2)
	for _, entry := range filtered {
		assert.Contains(t, entry.Dataset, "email-")
	}
}

func TestFilterMeasurePatterns(t *testing.T) {
	entries := testEntries()
	c := &config.RuntimesConfig{
		MeasureFilters: []*regexp.Regexp{regexp.MustCompile(`pagerank$`)},
	}
	filtered := reporter.Filter(entries, c)
	assert.Len(t, filtered, 2)
}

func TestFilterCombined(t *testing.T) {
	entries := testEntries()
	c := &config.RuntimesConfig{
		Start:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC),
		DatasetFilters: []*regexp.Regexp{regexp.MustCompile(`^email-`)},
		MeasureFilters: []*regexp.Regexp{regexp.MustCompile(`^node_`)},
	}
	filtered := reporter.Filter(entries, c)
	assert.Equal(t, entries[:1], filtered)
}
