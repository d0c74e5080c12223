package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/results"
)

func testRouter(t *testing.T) (http.Handler, string) {
	outDir := t.TempDir()
	_, err := results.WriteValues(outDir, &results.Values{
		Dataset:  "email-eu",
		Measure:  "node_degree",
		Computed: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Scores:   map[string]float64{"1": 0.4, "2": 0.6},
	})
	require.NoError(t, err)
	require.NoError(t, results.AppendRuntime(outDir, results.RuntimeEntry{
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Dataset:   "email-eu",
		Measure:   "node_degree",
		Elapsed:   1500 * time.Millisecond,
	}))

	s := &server{config: config.WebConfig{OutputDirectory: outDir}}
	return s.createRouter(), outDir
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestListDatasets(t *testing.T) {
	router, _ := testRouter(t)
	resp := get(t, router, "/api/v1/datasets")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"datasets": ["email-eu"]}`, resp.Body.String())
}

func TestListMeasures(t *testing.T) {
	router, _ := testRouter(t)
	resp := get(t, router, "/api/v1/datasets/email-eu/measures")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"measures": ["node_degree"]}`, resp.Body.String())
}

func TestListMeasuresUnknownDataset(t *testing.T) {
	router, _ := testRouter(t)
	resp := get(t, router, "/api/v1/datasets/absent/measures")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetValues(t *testing.T) {
	router, _ := testRouter(t)
	resp := get(t, router, "/api/v1/values/email-eu/node_degree")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"dataset":"email-eu"`)
	assert.Contains(t, resp.Body.String(), `"measure":"node_degree"`)
}

func TestGetValuesMissing(t *testing.T) {
	router, _ := testRouter(t)
	resp := get(t, router, "/api/v1/values/email-eu/node_pagerank")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetRuntimes(t *testing.T) {
	router, _ := testRouter(t)
	resp := get(t, router, "/api/v1/runtimes")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"seconds":1.5`)
}
