package cmd

import (
	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/command"
	"github.com/jaewan01/hypersweep/lib/sweeper"
)

func init() {
	command.NewCommand(
		Root,
		"sweep",
		"Runs a centrality sweep",
		`Runs the centrality computation once per configured (dataset, measure)
pair by invoking the compute command as a subprocess, sequentially and
in configured order.  Failed pairs are collected and reported at the
end unless fail-fast is set.`,
		new(config.SweepConfig),
		sweeper.NewSweep()).Configure(func(fb config.FlagBuilder, cfg *config.SweepConfig) {
		fb.Datasets(&cfg.Datasets, "datasets to sweep")
		fb.NodeMeasures(&cfg.NodeMeasures, "node centrality measures to sweep")
		fb.EdgeMeasures(&cfg.EdgeMeasures, "edge centrality measures to sweep")
		fb.Mode(&cfg.Mode, `measure battery to run. allowed: "node", "edge", "both"`)
		fb.PlanFile(&cfg.Plan, "YAML file defining the sweep scope (overrides the list flags)")
		fb.Filter(&cfg.Filter, `expression selecting (dataset, measure) pairs, e.g. 'dataset =~ "email-.*"'`)
		fb.Program(&cfg.Program, "program invoked per pair (defaults to this binary)")
		fb.DataDirectory(&cfg.DataDirectory, "directory containing dataset files")
		fb.OutputDirectory(&cfg.OutputDirectory, "directory for value files and the runtime log")
		fb.FailFast(&cfg.FailFast, "halt the sweep on the first failed invocation")
	})
}
