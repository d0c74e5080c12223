package config

import (
	"github.com/jaewan01/hypersweep/lib/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"net/url"
	"regexp"
	"time"
)

const (
	dataDirectoryKey   = "data-directory"
	outputDirectoryKey = "output-directory"
	startKey           = "start"
	endKey             = "end"
	datasetKey         = "dataset"
	measureKey         = "measure"
	edgeKey            = "edge"
	datasetsKey        = "datasets"
	nodeMeasuresKey    = "node-measures"
	edgeMeasuresKey    = "edge-measures"
	modeKey            = "mode"
	planFileKey        = "plan-file"
	filterKey          = "filter"
	programKey         = "program"
	failFastKey        = "fail-fast"
	forceKey           = "force"
	indexUrlKey        = "index-url"
	datasetFilterKey   = "dataset-filter"
	measureFilterKey   = "measure-filter"
	listenAddressKey   = "listenAddress"
	timeoutKey         = "timeout"
)

const (
	// DefaultDataDirectory is where downloaded dataset files are looked for.
	DefaultDataDirectory = "datasets/"

	// DefaultOutputDirectory is where value files and the runtime log go.
	DefaultOutputDirectory = "results/"

	DefaultDownloadTimeout = 5 * time.Minute
)

var (
	defaultEnd      = time.Now().UTC()
	defaultStart    = defaultEnd.Add(-24 * time.Hour)
	defaultIndexUrl = MustParseUrl("https://raw.githubusercontent.com/xgi-org/xgi-data/main/index.json")

	defaultDatasetFilters = []*regexp.Regexp{regexp.MustCompile(".+")}
	defaultMeasureFilters = []*regexp.Regexp{regexp.MustCompile(".+")}

	yamlFileExtensions = []string{"yml", "yaml"}

	// DefaultDatasets is the xgi-data collection the sweep covers when no
	// dataset list is given.
	DefaultDatasets = []string{
		"senate-bills",
		"house-bills",
		"email-enron",
		"email-eu",
		"contact-primary-school",
		"contact-high-school",
		"tags-ask-ubuntu",
		"tags-math-sx",
		"coauth-mag-history",
		"coauth-dblp",
	}

	// DefaultNodeMeasures is the node centrality battery.
	DefaultNodeMeasures = []string{
		"degree",
		"neighbor_degree",
		"closeness",
		"betweenness",
		"harmonic",
		"eigenvector",
		"pagerank",
		"uplift_eigenvector",
		"hypercoreness",
	}

	// DefaultEdgeMeasures is the edge centrality battery.
	DefaultEdgeMeasures = []string{
		"degree",
		"line_expansion_degree",
		"closeness",
		"betweenness",
		"harmonic",
		"eigenvector",
		"pagerank",
		"hypercoreness",
	}
)

func NewFlagBuilder(cmd *cobra.Command) FlagBuilder {
	return &flagBuilder{
		cmd: cmd,
	}
}

type Flag interface {
	Required() Flag
}

type FileFlag interface {
	Flag
	Extensions(extensions ...string) FileFlag
}

type compositeFlag struct {
	flags []Flag
}

func (f *compositeFlag) Required() Flag {
	for _, c := range f.flags {
		_ = c.Required()
	}
	return f
}

type flag struct {
	builder *flagBuilder
	flag    *pflag.Flag
}

func (f *flag) Required() Flag {
	_ = f.builder.cmd.MarkFlagRequired(f.flag.Name)
	return f
}

func (f *flag) Extensions(extensions ...string) FileFlag {
	_ = f.builder.cmd.MarkFlagFilename(f.flag.Name, extensions...)
	return f
}

type FlagBuilder interface {
	TimeRange(startDest *time.Time, endDest *time.Time, usage string) Flag
	Time(dest *time.Time, name string, defaultValue time.Time, usage string) Flag
	DataDirectory(dest *string, usage string) Flag
	OutputDirectory(dest *string, usage string) Flag
	Dataset(dest *string, usage string) Flag
	Measure(dest *string, usage string) Flag
	Edge(dest *bool, usage string) Flag
	Datasets(dest *[]string, usage string) Flag
	NodeMeasures(dest *[]string, usage string) Flag
	EdgeMeasures(dest *[]string, usage string) Flag
	Mode(dest *Mode, usage string) Flag
	PlanFile(dest *SweepPlan, usage string) FileFlag
	Filter(dest *Filter, usage string) Flag
	Program(dest *string, usage string) Flag
	FailFast(dest *bool, usage string) Flag
	Force(dest *bool, usage string) Flag
	Bool(dest *bool, name string, defaultValue bool, usage string) Flag
	String(dest *string, name string, defaultValue string, usage string) Flag
	StringSlice(dest *[]string, name string, defaultValue []string, usage string) Flag
	Duration(dest *time.Duration, name string, defaultValue time.Duration, usage string) Flag
	DownloadTimeout(dest *time.Duration, usage string) Flag
	Regex(dest *[]*regexp.Regexp, name string, defaultValue []*regexp.Regexp, usage string) Flag
	DatasetFilters(dest *[]*regexp.Regexp, usage string) Flag
	MeasureFilters(dest *[]*regexp.Regexp, usage string) Flag
	URL(dest **url.URL, name string, defaultValue *url.URL, usage string) Flag
	IndexUrl(dest **url.URL, usage string) Flag
	ListenAddress(dest *ListenAddress, usage string) Flag
}

type flagBuilder struct {
	cmd *cobra.Command
}

func (fb *flagBuilder) newFlag(name string, creator func(flagSet *pflag.FlagSet)) *flag {
	creator(fb.cmd.Flags())
	f := fb.cmd.Flags().Lookup(name)
	_ = viper.BindPFlag(name, f)
	return &flag{
		builder: fb,
		flag:    f,
	}
}

func (fb *flagBuilder) addValidation(validation func(cmd *cobra.Command, args []string) error) {
	if fb.cmd.PreRunE != nil {
		existingValidation := fb.cmd.PreRunE
		fb.cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
			if err := validation(cmd, args); err != nil {
				return err
			}
			return existingValidation(cmd, args)
		}
	} else {
		fb.cmd.PreRunE = validation
	}
}

func (fb *flagBuilder) TimeRange(startDest *time.Time, endDest *time.Time, usage string) Flag {
	startFlag := fb.Time(startDest, startKey, defaultStart, usage+" from")
	endFlag := fb.Time(endDest, endKey, defaultEnd, usage+" to")
	fb.addValidation(func(cmd *cobra.Command, args []string) error {
		if !(*startDest).Before(*endDest) {
			return errors.New("start time is not before end time")
		}
		return nil
	})
	return &compositeFlag{
		flags: []Flag{startFlag, endFlag},
	}
}

func (fb *flagBuilder) Time(dest *time.Time, name string, defaultValue time.Time, usage string) Flag {
	return fb.newFlag(name, func(flagSet *pflag.FlagSet) {
		flagSet.Var(NewTimeValue(dest, defaultValue), name, usage)
	})
}

func (fb *flagBuilder) DataDirectory(dest *string, usage string) Flag {
	return fb.directory(dest, dataDirectoryKey, DefaultDataDirectory, usage)
}

func (fb *flagBuilder) OutputDirectory(dest *string, usage string) Flag {
	return fb.directory(dest, outputDirectoryKey, DefaultOutputDirectory, usage)
}

func (fb *flagBuilder) directory(dest *string, name string, defaultValue string, usage string) Flag {
	return fb.newFlag(name, func(flagSet *pflag.FlagSet) {
		flagSet.StringVar(dest, name, defaultValue, usage)
		_ = fb.cmd.MarkFlagDirname(name)
	})
}

func (fb *flagBuilder) Dataset(dest *string, usage string) Flag {
	return fb.String(dest, datasetKey, "", usage)
}

func (fb *flagBuilder) Measure(dest *string, usage string) Flag {
	return fb.String(dest, measureKey, "", usage)
}

func (fb *flagBuilder) Edge(dest *bool, usage string) Flag {
	return fb.Bool(dest, edgeKey, false, usage)
}

func (fb *flagBuilder) Datasets(dest *[]string, usage string) Flag {
	return fb.StringSlice(dest, datasetsKey, DefaultDatasets, usage)
}

func (fb *flagBuilder) NodeMeasures(dest *[]string, usage string) Flag {
	return fb.StringSlice(dest, nodeMeasuresKey, DefaultNodeMeasures, usage)
}

func (fb *flagBuilder) EdgeMeasures(dest *[]string, usage string) Flag {
	return fb.StringSlice(dest, edgeMeasuresKey, DefaultEdgeMeasures, usage)
}

func (fb *flagBuilder) Mode(dest *Mode, usage string) Flag {
	return fb.newFlag(modeKey, func(flagSet *pflag.FlagSet) {
		flagSet.Var(NewModeValue(NodeMode, dest), modeKey, usage)
	})
}

func (fb *flagBuilder) PlanFile(dest *SweepPlan, usage string) FileFlag {
	return fb.newFlag(planFileKey, func(flagSet *pflag.FlagSet) {
		flagSet.Var(NewSweepPlanValue(dest), planFileKey, usage)
		_ = fb.cmd.MarkFlagFilename(planFileKey, yamlFileExtensions...)
	})
}

func (fb *flagBuilder) Filter(dest *Filter, usage string) Flag {
	return fb.newFlag(filterKey, func(flagSet *pflag.FlagSet) {
		flagSet.Var(NewFilterValue(dest), filterKey, usage)
	})
}

func (fb *flagBuilder) Program(dest *string, usage string) Flag {
	return fb.String(dest, programKey, "", usage)
}

func (fb *flagBuilder) FailFast(dest *bool, usage string) Flag {
	return fb.Bool(dest, failFastKey, false, usage)
}

func (fb *flagBuilder) Force(dest *bool, usage string) Flag {
	return fb.Bool(dest, forceKey, false, usage)
}

func (fb *flagBuilder) Bool(dest *bool, name string, defaultValue bool, usage string) Flag {
	return fb.newFlag(name, func(flagSet *pflag.FlagSet) {
		flagSet.BoolVar(dest, name, defaultValue, usage)
	})
}

func (fb *flagBuilder) String(dest *string, name string, defaultValue string, usage string) Flag {
	return fb.newFlag(name, func(flagSet *pflag.FlagSet) {
		flagSet.StringVar(dest, name, defaultValue, usage)
	})
}

func (fb *flagBuilder) StringSlice(dest *[]string, name string, defaultValue []string, usage string) Flag {
	return fb.newFlag(name, func(flagSet *pflag.FlagSet) {
		flagSet.StringSliceVar(dest, name, defaultValue, usage)
	})
}

func (fb *flagBuilder) Duration(dest *time.Duration, name string, defaultValue time.Duration, usage string) Flag {
	return fb.newFlag(name, func(flagSet *pflag.FlagSet) {
		flagSet.DurationVar(dest, name, defaultValue, usage)
	})
}

func (fb *flagBuilder) DownloadTimeout(dest *time.Duration, usage string) Flag {
	return fb.Duration(dest, timeoutKey, DefaultDownloadTimeout, usage)
}

func (fb *flagBuilder) Regex(dest *[]*regexp.Regexp, name string, defaultValue []*regexp.Regexp, usage string) Flag {
	return fb.newFlag(name, func(flagSet *pflag.FlagSet) {
		flagSet.Var(NewRegexValue(dest, defaultValue), name, usage)
	})
}

func (fb *flagBuilder) DatasetFilters(dest *[]*regexp.Regexp, usage string) Flag {
	return fb.Regex(dest, datasetFilterKey, defaultDatasetFilters, usage)
}

func (fb *flagBuilder) MeasureFilters(dest *[]*regexp.Regexp, usage string) Flag {
	return fb.Regex(dest, measureFilterKey, defaultMeasureFilters, usage)
}

func (fb *flagBuilder) URL(dest **url.URL, name string, defaultValue *url.URL, usage string) Flag {
	return fb.newFlag(name, func(flagSet *pflag.FlagSet) {
		flagSet.Var(NewUrlValue(dest, defaultValue), name, usage)
	})
}

func (fb *flagBuilder) IndexUrl(dest **url.URL, usage string) Flag {
	return fb.URL(dest, indexUrlKey, defaultIndexUrl, usage)
}

func (fb *flagBuilder) ListenAddress(dest *ListenAddress, usage string) Flag {
	return fb.newFlag(listenAddressKey, func(flagSet *pflag.FlagSet) {
		flagSet.Var(NewListenAddressValue(dest, ListenAddress{Host: "", Port: 8080}), listenAddressKey, usage)
	})
}
