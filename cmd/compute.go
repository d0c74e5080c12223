package cmd

import (
	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/command"
	"github.com/jaewan01/hypersweep/lib/measurer"
)

func init() {
	command.NewCommand(
		Root,
		"compute",
		"Computes a single centrality measure",
		`Loads a hypergraph dataset, computes one node or edge centrality
measure, appends the timing to the runtime log, and writes the
normalized values file.`,
		new(config.ComputeConfig),
		measurer.NewCompute()).Configure(func(fb config.FlagBuilder, cfg *config.ComputeConfig) {
		fb.Dataset(&cfg.Dataset, "dataset to load").Required()
		fb.Measure(&cfg.Measure, "centrality measure to compute").Required()
		fb.Edge(&cfg.Edge, "compute the edge centrality variant of the measure")
		fb.DataDirectory(&cfg.DataDirectory, "directory containing dataset files")
		fb.OutputDirectory(&cfg.OutputDirectory, "directory for value files and the runtime log")
	})
}
