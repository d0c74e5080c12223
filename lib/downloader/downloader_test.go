package downloader_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/downloader"
)

func testServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/index.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"toy": {"url": "` + serverURL(r) + `/data/toy.json"}}`))
	})
	mux.HandleFunc("/data/toy.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"edge-dict": {"0": ["a", "b"]}}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func serverURL(r *http.Request) string {
	return "http://" + r.Host
}

func testConfig(t *testing.T, server *httptest.Server) *config.DownloadConfig {
	indexUrl, err := url.Parse(server.URL + "/index.json")
	require.NoError(t, err)
	return &config.DownloadConfig{
		Datasets:      []string{"toy"},
		DataDirectory: t.TempDir(),
		IndexUrl:      indexUrl,
		Timeout:       5 * time.Second,
	}
}

func TestDownload(t *testing.T) {
	c := testConfig(t, testServer(t))
	require.NoError(t, downloader.NewDownload().Run(c))

	data, err := os.ReadFile(filepath.Join(c.DataDirectory, "toy.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "edge-dict")
}

func TestDownloadSkipsExisting(t *testing.T) {
	c := testConfig(t, testServer(t))
	target := filepath.Join(c.DataDirectory, "toy.json")
	require.NoError(t, os.WriteFile(target, []byte("existing"), 0o644))

	require.NoError(t, downloader.NewDownload().Run(c))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
}

func TestDownloadForceOverwrites(t *testing.T) {
	c := testConfig(t, testServer(t))
	c.Force = true
	target := filepath.Join(c.DataDirectory, "toy.json")
	require.NoError(t, os.WriteFile(target, []byte("existing"), 0o644))

	require.NoError(t, downloader.NewDownload().Run(c))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "edge-dict")
}

func TestDownloadUnknownDataset(t *testing.T) {
	c := testConfig(t, testServer(t))
	c.Datasets = []string{"absent"}

	err := downloader.NewDownload().Run(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not in the index")
}
