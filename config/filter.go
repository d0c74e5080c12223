package config

import (
	"context"
	"github.com/PaesslerAG/gval"
	"github.com/jaewan01/hypersweep/lib/errors"
)

var (
	filterLanguage = gval.Full()
)

// Filter is a boolean expression evaluated against each (dataset, measure)
// pair of a sweep, e.g. `dataset =~ "email-.*" && measure != "betweenness"`.
type Filter struct {
	expression string
	eval       gval.Evaluable
}

func (f *Filter) Empty() bool {
	return f.eval == nil
}

func (f *Filter) Matches(dataset string, measure string, edge bool) (bool, error) {
	if f.eval == nil {
		return true, nil
	}
	match, err := f.eval.EvalBool(context.Background(), map[string]interface{}{
		"dataset": dataset,
		"measure": measure,
		"edge":    edge,
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to evaluate filter %q", f.expression)
	}
	return match, nil
}

type filterValue Filter

func NewFilterValue(p *Filter) *filterValue {
	*p = Filter{}
	return (*filterValue)(p)
}

// String is used both by fmt.Print and by Cobra in help text
func (e *filterValue) String() string {
	if e.expression == "" {
		return "None"
	}
	return e.expression
}

// Set must have pointer receiver, so it doesn't change the value of a copy
func (e *filterValue) Set(v string) error {
	eval, err := filterLanguage.NewEvaluable(v)
	if err != nil {
		return errors.Wrap(err, "failed to parse filter %q", v)
	}
	*e = filterValue(Filter{expression: v, eval: eval})
	return nil
}

// Type is only used in help text
func (e *filterValue) Type() string {
	return "filter"
}
