package cmd

import (
	"github.com/jaewan01/hypersweep/lib/command"
	"github.com/jaewan01/hypersweep/version"
)

var (
	Root = command.NewRootCommand(
		"hypergraph centrality utilities",
		version.Name+` provides a set of utilities for computing centrality
measures over xgi-data hypergraph datasets.  It allows dataset
downloading, single centrality computation, dataset/measure sweeps,
runtime reporting, etc.`)
)
