package results_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaewan01/hypersweep/lib/results"
)

func TestMeasureName(t *testing.T) {
	assert.Equal(t, "node_degree", results.MeasureName("degree", false))
	assert.Equal(t, "edge_degree", results.MeasureName("degree", true))
}

func TestWriteReadValues(t *testing.T) {
	dir := t.TempDir()
	v := &results.Values{
		Dataset:  "email-eu",
		Measure:  "node_degree",
		Computed: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Scores:   map[string]float64{"1": 0.25, "2": 0.75},
	}
	path, err := results.WriteValues(dir, v)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "values", "email-eu", "node_degree.json"), path)

	read, err := results.ReadValues(dir, "email-eu", "node_degree")
	require.NoError(t, err)
	assert.Equal(t, v, read)
}

func TestReadValuesMissing(t *testing.T) {
	_, err := results.ReadValues(t.TempDir(), "email-eu", "node_degree")
	assert.Error(t, err)
}

func TestListDatasetsAndMeasures(t *testing.T) {
	dir := t.TempDir()
	for _, v := range []*results.Values{
		{Dataset: "email-eu", Measure: "node_degree"},
		{Dataset: "email-eu", Measure: "edge_degree"},
		{Dataset: "diseasome", Measure: "node_pagerank"},
	} {
		_, err := results.WriteValues(dir, v)
		require.NoError(t, err)
	}

	datasets, err := results.ListDatasets(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"diseasome", "email-eu"}, datasets)

	measures, err := results.ListMeasures(dir, "email-eu")
	require.NoError(t, err)
	assert.Equal(t, []string{"edge_degree", "node_degree"}, measures)
}

func TestListDatasetsMissingDirectory(t *testing.T) {
	datasets, err := results.ListDatasets(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, datasets)
}

func TestRuntimeEntryString(t *testing.T) {
	e := results.RuntimeEntry{
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Dataset:   "email-eu",
		Measure:   "node_degree",
		Elapsed:   1516 * time.Millisecond,
	}
	assert.Equal(t, "2024-05-01T12:00:00Z email-eu node_degree 1.5160s", e.String())
}

func TestAppendReadRuntimes(t *testing.T) {
	dir := t.TempDir()
	entries := []results.RuntimeEntry{
		{
			Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			Dataset:   "email-eu",
			Measure:   "node_degree",
			Elapsed:   1516 * time.Millisecond,
		},
		{
			Timestamp: time.Date(2024, 5, 1, 12, 1, 0, 0, time.UTC),
			Dataset:   "email-eu",
			Measure:   "edge_pagerank",
			Elapsed:   250 * time.Millisecond,
		},
	}
	for _, e := range entries {
		require.NoError(t, results.AppendRuntime(dir, e))
	}

	read, err := results.ReadRuntimes(dir)
	require.NoError(t, err)
	assert.Equal(t, entries, read)
}

func TestReadRuntimesMissingLog(t *testing.T) {
	entries, err := results.ReadRuntimes(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestReadRuntimesSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	log := "2024-05-01T12:00:00Z email-eu node_degree 1.0000s\n\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, results.RuntimeLogName), []byte(log), 0o644))

	entries, err := results.ReadRuntimes(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadRuntimesRejectsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, results.RuntimeLogName), []byte("not a log line\n"), 0o644))

	_, err := results.ReadRuntimes(dir)
	assert.Error(t, err)
}
