package results

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/jaewan01/hypersweep/lib/errors"
)

const (
	valuesDirName  = "values"
	valuesFileExt  = ".json"
	RuntimeLogName = "runtime.log"
)

var jsonApi = jsoniter.ConfigCompatibleWithStandardLibrary

// Values is one computed centrality result: the normalized score of every
// node or edge in the dataset.
type Values struct {
	Dataset  string             `json:"dataset"`
	Measure  string             `json:"measure"`
	Computed time.Time          `json:"computed"`
	Scores   map[string]float64 `json:"scores"`
}

// MeasureName is the qualified measure name used in file and log records,
// e.g. node_degree or edge_pagerank.
func MeasureName(measure string, edge bool) string {
	if edge {
		return "edge_" + measure
	}
	return "node_" + measure
}

// WriteValues stores v under <outputDirectory>/values/<dataset>/<measure>.json
// and returns the written path.
func WriteValues(outputDirectory string, v *Values) (string, error) {
	dir := filepath.Join(outputDirectory, valuesDirName, v.Dataset)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "could not create values directory %s", dir)
	}
	data, err := jsonApi.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "could not encode values for %s/%s", v.Dataset, v.Measure)
	}
	path := filepath.Join(dir, v.Measure+valuesFileExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "could not write values file %s", path)
	}
	return path, nil
}

func ReadValues(outputDirectory string, dataset string, measure string) (*Values, error) {
	path := filepath.Join(outputDirectory, valuesDirName, dataset, measure+valuesFileExt)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read values file %s", path)
	}
	var v Values
	if err := jsonApi.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "could not parse values file %s", path)
	}
	return &v, nil
}

// ListDatasets returns the datasets that have at least one values file.
func ListDatasets(outputDirectory string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(outputDirectory, valuesDirName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not list values in %s", outputDirectory)
	}
	var datasets []string
	for _, entry := range entries {
		if entry.IsDir() {
			datasets = append(datasets, entry.Name())
		}
	}
	sort.Strings(datasets)
	return datasets, nil
}

// ListMeasures returns the qualified measure names computed for a dataset.
func ListMeasures(outputDirectory string, dataset string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(outputDirectory, valuesDirName, dataset))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not list measures for %s", dataset)
	}
	var measures []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasSuffix(name, valuesFileExt) {
			measures = append(measures, strings.TrimSuffix(name, valuesFileExt))
		}
	}
	sort.Strings(measures)
	return measures, nil
}
