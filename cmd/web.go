package cmd

import (
	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/command"
	"github.com/jaewan01/hypersweep/lib/web"
)

func init() {
	command.NewCommand(
		Root,
		"web",
		"Runs an API server over computed results",
		"Runs an API server exposing computed centrality values and runtimes.",
		new(config.WebConfig),
		web.NewWeb()).Configure(func(fb config.FlagBuilder, cfg *config.WebConfig) {
		fb.ListenAddress(&cfg.ListenAddress, "the listen address")
		fb.OutputDirectory(&cfg.OutputDirectory, "directory containing computed results")
	})
}
