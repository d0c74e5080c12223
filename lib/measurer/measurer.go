package measurer

import (
	"time"

	"k8s.io/klog/v2"

	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/centrality"
	"github.com/jaewan01/hypersweep/lib/command"
	"github.com/jaewan01/hypersweep/lib/common"
	"github.com/jaewan01/hypersweep/lib/errors"
	"github.com/jaewan01/hypersweep/lib/hypergraph"
	"github.com/jaewan01/hypersweep/lib/results"
)

func NewCompute() command.Task[config.ComputeConfig] {
	return &compute{}
}

type compute struct {
}

func (t *compute) Run(c *config.ComputeConfig) error {
	measure, err := centrality.Lookup(c.Measure, c.Edge)
	if err != nil {
		return err
	}
	h, err := hypergraph.LoadDataset(c.DataDirectory, c.Dataset)
	if err != nil {
		return errors.Wrap(err, "failed to load dataset %s", c.Dataset)
	}
	klog.V(0).Infof("Loaded hypergraph %s: %d nodes, %d edges", c.Dataset, h.NumNodes(), h.NumEdges())

	start := time.Now()
	scores, err := measure(h)
	elapsed := time.Since(start)
	name := results.MeasureName(c.Measure, c.Edge)
	if err != nil {
		return errors.Wrap(err, "failed to compute %s for %s", name, c.Dataset)
	}
	if err := centrality.VerifyNormalized(scores); err != nil {
		return errors.Wrap(err, "%s for %s is not normalized", name, c.Dataset)
	}
	klog.V(0).Infof("Time taken for %s: %s", name, common.FormatSeconds(elapsed))

	if err := results.AppendRuntime(c.OutputDirectory, results.RuntimeEntry{
		Timestamp: start.UTC(),
		Dataset:   c.Dataset,
		Measure:   name,
		Elapsed:   elapsed,
	}); err != nil {
		return err
	}
	path, err := results.WriteValues(c.OutputDirectory, &results.Values{
		Dataset:  c.Dataset,
		Measure:  name,
		Computed: start.UTC(),
		Scores:   scores,
	})
	if err != nil {
		return err
	}
	klog.V(1).Infof("Wrote %d values to %s", len(scores), path)
	return nil
}
