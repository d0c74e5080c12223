package config

import (
	"fmt"
	"github.com/ghodss/yaml"
	"github.com/jaewan01/hypersweep/lib/errors"
	"os"
)

// SweepPlan is the file form of a sweep scope.  Any list left empty falls
// back to the corresponding flag (and ultimately the built-in defaults).
type SweepPlan struct {
	Datasets     []string `json:"datasets"`
	NodeMeasures []string `json:"nodeMeasures"`
	EdgeMeasures []string `json:"edgeMeasures"`
}

func (p SweepPlan) Empty() bool {
	return len(p.Datasets) == 0 && len(p.NodeMeasures) == 0 && len(p.EdgeMeasures) == 0
}

type sweepPlanValue SweepPlan

func NewSweepPlanValue(p *SweepPlan) *sweepPlanValue {
	*p = SweepPlan{}
	return (*sweepPlanValue)(p)
}

// String is used both by fmt.Print and by Cobra in help text
func (e *sweepPlanValue) String() string {
	p := (*SweepPlan)(e)
	if p.Empty() {
		return "None"
	}
	return fmt.Sprintf("%d datasets, %d node measures, %d edge measures",
		len(p.Datasets), len(p.NodeMeasures), len(p.EdgeMeasures))
}

// Set must have pointer receiver, so it doesn't change the value of a copy
func (e *sweepPlanValue) Set(v string) error {
	var plan SweepPlan
	if _, err := os.Stat(v); err != nil {
		return errors.Wrap(err, "could not find file %s", v)
	}
	yamlFile, err := os.ReadFile(v)
	if err != nil {
		return errors.Wrap(err, "could not read file %s", v)
	}
	err = yaml.Unmarshal(yamlFile, &plan)
	if err != nil {
		return errors.Wrap(err, "could not parse file %s", v)
	}
	*e = sweepPlanValue(plan)
	return nil
}

// Type is only used in help text
func (e *sweepPlanValue) Type() string {
	return "sweepPlan"
}
