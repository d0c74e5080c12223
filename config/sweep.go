package config

// SweepConfig represents the configuration of the sweep command.
type SweepConfig struct {
	Datasets        []string
	NodeMeasures    []string
	EdgeMeasures    []string
	Mode            Mode
	Plan            SweepPlan
	Filter          Filter
	Program         string
	DataDirectory   string
	OutputDirectory string
	FailFast        bool
}

// EffectiveDatasets resolves the plan file against the flag lists.
func (c *SweepConfig) EffectiveDatasets() []string {
	if len(c.Plan.Datasets) > 0 {
		return c.Plan.Datasets
	}
	return c.Datasets
}

func (c *SweepConfig) EffectiveNodeMeasures() []string {
	if len(c.Plan.NodeMeasures) > 0 {
		return c.Plan.NodeMeasures
	}
	return c.NodeMeasures
}

func (c *SweepConfig) EffectiveEdgeMeasures() []string {
	if len(c.Plan.EdgeMeasures) > 0 {
		return c.Plan.EdgeMeasures
	}
	return c.EdgeMeasures
}
