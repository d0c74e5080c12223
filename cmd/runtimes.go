package cmd

import (
	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/command"
	"github.com/jaewan01/hypersweep/lib/reporter"
)

func init() {
	command.NewCommand(
		Root,
		"runtimes",
		"Reports computation runtimes",
		`Reads the runtime log and prints the recorded computation times,
filtered by time range and by dataset/measure patterns.`,
		new(config.RuntimesConfig),
		reporter.NewReport()).Configure(func(fb config.FlagBuilder, cfg *config.RuntimesConfig) {
		fb.OutputDirectory(&cfg.OutputDirectory, "directory containing the runtime log")
		fb.TimeRange(&cfg.Start, &cfg.End, "time to filter runtime entries")
		fb.DatasetFilters(&cfg.DatasetFilters, "dataset filters which determine the entries to report")
		fb.MeasureFilters(&cfg.MeasureFilters, "measure filters which determine the entries to report")
	})
}
