package config

// ComputeConfig represents the configuration of the compute command.
type ComputeConfig struct {
	Dataset         string
	Measure         string
	Edge            bool
	DataDirectory   string
	OutputDirectory string
}
