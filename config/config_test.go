package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeValue(t *testing.T) {
	var mode Mode
	v := NewModeValue(NodeMode, &mode)
	assert.Equal(t, "node", v.String())

	require.NoError(t, v.Set("edge"))
	assert.Equal(t, EdgeMode, mode)
	require.NoError(t, v.Set("both"))
	assert.Equal(t, BothMode, mode)
	assert.Error(t, v.Set("neither"))
}

func TestSweepPlanValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
datasets:
  - email-eu
  - diseasome
nodeMeasures:
  - degree
edgeMeasures:
  - pagerank
  - harmonic
`), 0o644))

	var plan SweepPlan
	v := NewSweepPlanValue(&plan)
	assert.Equal(t, "None", v.String())

	require.NoError(t, v.Set(path))
	assert.Equal(t, []string{"email-eu", "diseasome"}, plan.Datasets)
	assert.Equal(t, []string{"degree"}, plan.NodeMeasures)
	assert.Equal(t, []string{"pagerank", "harmonic"}, plan.EdgeMeasures)
	assert.False(t, plan.Empty())
	assert.Equal(t, "2 datasets, 1 node measures, 2 edge measures", v.String())
}

func TestSweepPlanValueMissingFile(t *testing.T) {
	var plan SweepPlan
	assert.Error(t, NewSweepPlanValue(&plan).Set(filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestSweepPlanValueInvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("datasets: {broken"), 0o644))

	var plan SweepPlan
	assert.Error(t, NewSweepPlanValue(&plan).Set(path))
}

func TestFilterValue(t *testing.T) {
	var filter Filter
	v := NewFilterValue(&filter)
	assert.Equal(t, "None", v.String())
	assert.True(t, filter.Empty())

	match, err := filter.Matches("email-eu", "degree", false)
	require.NoError(t, err)
	assert.True(t, match)

	require.NoError(t, v.Set(`measure == "degree" && !edge`))
	assert.False(t, filter.Empty())

	match, err = filter.Matches("email-eu", "degree", false)
	require.NoError(t, err)
	assert.True(t, match)
	match, err = filter.Matches("email-eu", "degree", true)
	require.NoError(t, err)
	assert.False(t, match)
	match, err = filter.Matches("email-eu", "pagerank", false)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestFilterValueRejectsInvalidExpression(t *testing.T) {
	var filter Filter
	assert.Error(t, NewFilterValue(&filter).Set(`dataset ==`))
}

func TestTimeValueUnixMillis(t *testing.T) {
	var ts time.Time
	v := NewTimeValue(&ts, time.Time{})
	require.NoError(t, v.Set("1714564800000"))
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), ts.UTC())
}

func TestTimeValueDate(t *testing.T) {
	var ts time.Time
	v := NewTimeValue(&ts, time.Time{})
	require.NoError(t, v.Set("2024-05-01T12:00:00Z"))
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), ts)
}

func TestTimeValueNaturalLanguage(t *testing.T) {
	var ts time.Time
	v := NewTimeValue(&ts, time.Time{})
	require.NoError(t, v.Set("yesterday"))
	assert.True(t, ts.Before(Now))
}

func TestTimeValueInvalid(t *testing.T) {
	var ts time.Time
	assert.Error(t, NewTimeValue(&ts, time.Time{}).Set("not a time"))
}

func TestEffectiveListsFallBackToFlags(t *testing.T) {
	c := &SweepConfig{
		Datasets:     []string{"a"},
		NodeMeasures: []string{"degree"},
		EdgeMeasures: []string{"pagerank"},
	}
	assert.Equal(t, []string{"a"}, c.EffectiveDatasets())
	assert.Equal(t, []string{"degree"}, c.EffectiveNodeMeasures())
	assert.Equal(t, []string{"pagerank"}, c.EffectiveEdgeMeasures())

	c.Plan = SweepPlan{Datasets: []string{"b"}}
	assert.Equal(t, []string{"b"}, c.EffectiveDatasets())
	assert.Equal(t, []string{"degree"}, c.EffectiveNodeMeasures())
}
