package reporter

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"

	"github.com/jaewan01/hypersweep/config"
	"github.com/jaewan01/hypersweep/lib/command"
	"github.com/jaewan01/hypersweep/lib/common"
	"github.com/jaewan01/hypersweep/lib/errors"
	"github.com/jaewan01/hypersweep/lib/results"
)

func NewReport() command.Task[config.RuntimesConfig] {
	return &report{out: os.Stdout}
}

type report struct {
	out *os.File
}

func (t *report) Run(c *config.RuntimesConfig) error {
	entries, err := results.ReadRuntimes(c.OutputDirectory)
	if err != nil {
		return errors.Wrap(err, "failed to read runtime log")
	}
	filtered := Filter(entries, c)
	if len(filtered) == 0 {
		klog.V(0).Infof("No runtime entries match for %s", common.FormatDateRange(c.Start, c.End))
		return nil
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.Before(filtered[j].Timestamp)
	})

	w := tabwriter.NewWriter(t.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TIME\tDATASET\tMEASURE\tDURATION\tAGE")
	total := time.Duration(0)
	for _, entry := range filtered {
		total += entry.Elapsed
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			common.FormatDate(entry.Timestamp),
			entry.Dataset,
			entry.Measure,
			common.FormatSeconds(entry.Elapsed),
			humanize.Time(entry.Timestamp))
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "failed to render runtime report")
	}
	klog.V(0).Infof("%d entries, %s total compute time", len(filtered), common.FormatSeconds(total))
	return nil
}

// Filter restricts runtime entries to the configured time range and to the
// dataset/measure patterns.  A pattern list matches when any of its regexes
// does.
func Filter(entries []results.RuntimeEntry, c *config.RuntimesConfig) []results.RuntimeEntry {
	var filtered []results.RuntimeEntry
	for _, entry := range entries {
		if !c.Start.IsZero() && entry.Timestamp.Before(c.Start) {
			continue
		}
		if !c.End.IsZero() && entry.Timestamp.After(c.End) {
			continue
		}
		if !matchesAny(c.DatasetFilters, entry.Dataset) {
			continue
		}
		if !matchesAny(c.MeasureFilters, entry.Measure) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

func matchesAny(patterns []*regexp.Regexp, value string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}
