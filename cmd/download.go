package cmd

import (
	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/command"
	"github.com/jaewan01/hypersweep/lib/downloader"
)

func init() {
	command.NewCommand(
		Root,
		"download",
		"Downloads hypergraph datasets",
		`Downloads the configured datasets from the xgi-data collection into
the data directory.  Existing files are kept unless force is set.`,
		new(config.DownloadConfig),
		downloader.NewDownload()).Configure(func(fb config.FlagBuilder, cfg *config.DownloadConfig) {
		fb.Datasets(&cfg.Datasets, "datasets to download")
		fb.DataDirectory(&cfg.DataDirectory, "directory to store dataset files")
		fb.IndexUrl(&cfg.IndexUrl, "url of the xgi-data collection index")
		fb.Force(&cfg.Force, "re-download datasets that are already present")
		fb.DownloadTimeout(&cfg.Timeout, "timeout for a single download request")
	})
}
