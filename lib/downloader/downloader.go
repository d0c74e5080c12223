package downloader

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/cenkalti/backoff"
	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"
	"k8s.io/klog/v2"

	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/command"
	"github.com/jaewan01/hypersweep/lib/errors"
)

const tmpDownloadSuffix = ".tmp-for-download"

var jsonApi = jsoniter.ConfigCompatibleWithStandardLibrary

// indexEntry is one dataset in the xgi-data collection index.
type indexEntry struct {
	URL string `json:"url"`
}

func NewDownload() command.Task[config.DownloadConfig] {
	return &download{}
}

type download struct {
}

func (t *download) Run(c *config.DownloadConfig) error {
	client := &http.Client{Timeout: c.Timeout}
	index, err := fetchIndex(client, c.IndexUrl.String())
	if err != nil {
		return errors.Wrap(err, "failed to fetch dataset index")
	}
	if err := os.MkdirAll(c.DataDirectory, 0o755); err != nil {
		return errors.Wrap(err, "could not create data directory %s", c.DataDirectory)
	}

	var failures []error
	for _, dataset := range c.Datasets {
		entry, ok := index[dataset]
		if !ok {
			failures = append(failures, errors.New("dataset %q is not in the index", dataset))
			continue
		}
		target := filepath.Join(c.DataDirectory, dataset+".json")
		if !c.Force {
			if info, err := os.Stat(target); err == nil {
				klog.V(0).Infof("Skipping %s: already downloaded (%s)", dataset, humanize.Bytes(uint64(info.Size())))
				continue
			}
		}
		err := backoff.Retry(func() error {
			return fetchDataset(client, entry.URL, target)
		}, backoff.NewExponentialBackOff())
		if err != nil {
			failures = append(failures, errors.Wrap(err, "failed to download %s", dataset))
			continue
		}
		info, err := os.Stat(target)
		if err != nil {
			failures = append(failures, errors.Wrap(err, "failed to stat %s", target))
			continue
		}
		klog.V(0).Infof("Downloaded %s (%s)", dataset, humanize.Bytes(uint64(info.Size())))
	}
	if len(failures) > 0 {
		return errors.NewMulti(failures, "download completed with %d failures", len(failures))
	}
	return nil
}

func fetchIndex(client *http.Client, url string) (map[string]indexEntry, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("index request returned %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var index map[string]indexEntry
	if err := jsonApi.Unmarshal(data, &index); err != nil {
		return nil, errors.Wrap(err, "invalid index document")
	}
	return index, nil
}

func fetchDataset(client *http.Client, url string, target string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return errors.New("dataset request returned %s", resp.Status)
	}
	tmp := target + tmpDownloadSuffix
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, target)
}
