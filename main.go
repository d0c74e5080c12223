package main

import (
	"github.com/jaewan01/hypersweep/cmd"
)

func main() {
	cmd.Root.Execute()
}
