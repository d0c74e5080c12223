package config

// WebConfig represents the configuration of the web command.
type WebConfig struct {
	ListenAddress   ListenAddress
	OutputDirectory string
}
