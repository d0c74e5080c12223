package sweeper

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/oklog/ulid"
	"k8s.io/klog/v2"

	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/command"
	"github.com/jaewan01/hypersweep/lib/common"
	"github.com/jaewan01/hypersweep/lib/errors"
)

// Invocation is one planned run of the external computation: a dataset, a
// measure and whether the edge variant is requested.
type Invocation struct {
	Dataset string
	Measure string
	Edge    bool
}

// Args is the argument list passed to the computation program.
func (i Invocation) Args() []string {
	args := []string{"compute", "--dataset", i.Dataset, "--measure", i.Measure}
	if i.Edge {
		args = append(args, "--edge")
	}
	return args
}

func (i Invocation) String() string {
	kind := "node"
	if i.Edge {
		kind = "edge"
	}
	return fmt.Sprintf("%s_%s for '%s'", kind, i.Measure, i.Dataset)
}

// Plan expands the sweep configuration into the ordered invocation list:
// datasets in configured order, and within each dataset the node battery
// followed by the edge battery, subject to the mode and the pair filter.
func Plan(c *config.SweepConfig) ([]Invocation, error) {
	mode := c.Mode
	if mode == "" {
		mode = config.NodeMode
	}
	var plan []Invocation
	for _, dataset := range c.EffectiveDatasets() {
		if mode == config.NodeMode || mode == config.BothMode {
			for _, measure := range c.EffectiveNodeMeasures() {
				match, err := c.Filter.Matches(dataset, measure, false)
				if err != nil {
					return nil, err
				}
				if match {
					plan = append(plan, Invocation{Dataset: dataset, Measure: measure})
				}
			}
		}
		if mode == config.EdgeMode || mode == config.BothMode {
			for _, measure := range c.EffectiveEdgeMeasures() {
				match, err := c.Filter.Matches(dataset, measure, true)
				if err != nil {
					return nil, err
				}
				if match {
					plan = append(plan, Invocation{Dataset: dataset, Measure: measure, Edge: true})
				}
			}
		}
	}
	return plan, nil
}

// Invoker runs one planned invocation to completion.
type Invoker interface {
	Invoke(ctx context.Context, invocation Invocation) error
}

// NewExecInvoker runs invocations as subprocesses of the given program,
// forwarding the data and output directories.
func NewExecInvoker(program string, dataDirectory string, outputDirectory string) Invoker {
	return &execInvoker{
		program:         program,
		dataDirectory:   dataDirectory,
		outputDirectory: outputDirectory,
	}
}

type execInvoker struct {
	program         string
	dataDirectory   string
	outputDirectory string
}

func (e *execInvoker) Invoke(ctx context.Context, invocation Invocation) error {
	args := invocation.Args()
	args = append(args, "--data-directory", e.dataDirectory, "--output-directory", e.outputDirectory)
	cmd := exec.CommandContext(ctx, e.program, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func NewSweep() command.Task[config.SweepConfig] {
	return &sweep{}
}

type sweep struct {
}

func (t *sweep) Run(c *config.SweepConfig) error {
	plan, err := Plan(c)
	if err != nil {
		return errors.Wrap(err, "failed to plan sweep")
	}
	program := c.Program
	if program == "" {
		program, err = os.Executable()
		if err != nil {
			return errors.Wrap(err, "failed to resolve own executable")
		}
	}
	return Execute(c, plan, NewExecInvoker(program, c.DataDirectory, c.OutputDirectory))
}

// Execute runs the planned invocations sequentially, awaiting each before
// starting the next.  Failed invocations are collected and reported at the
// end unless fail-fast is set.
func Execute(c *config.SweepConfig, plan []Invocation, invoker Invoker) error {
	runId := ulid.MustNew(ulid.Now(), rand.Reader)
	klog.V(0).Infof("Starting sweep %s with %d invocations", runId, len(plan))

	canceller := common.NewCanceller()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-canceller.C()
		cancel()
	}()
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)
	go func() {
		select {
		case <-interrupt:
			klog.V(0).Infof("Cancelling sweep %s", runId)
			canceller.Cancel()
		case <-ctx.Done():
		}
	}()

	start := time.Now()
	var failures []error
	completed := 0
	for _, invocation := range plan {
		if canceller.Cancelled() {
			break
		}
		klog.V(0).Infof("Running %v", invocation)
		if err := invoker.Invoke(ctx, invocation); err != nil {
			err = errors.Wrap(err, "%v failed", invocation)
			if c.FailFast {
				return err
			}
			klog.Error(err)
			failures = append(failures, err)
		}
		completed++
	}

	klog.V(0).Infof("Sweep %s ran %d/%d invocations in %s",
		runId, completed, len(plan), common.FormatSeconds(time.Since(start)))
	if canceller.Cancelled() {
		return errors.New("sweep %s cancelled after %d of %d invocations", runId, completed, len(plan))
	}
	if len(failures) > 0 {
		return errors.NewMulti(failures, "sweep %s completed with %d failed invocations", runId, len(failures))
	}
	return nil
}
