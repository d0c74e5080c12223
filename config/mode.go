package config

import (
	"github.com/jaewan01/hypersweep/lib/errors"
)

// Mode selects which measure batteries a sweep runs.
type Mode string

const (
	NodeMode Mode = "node"
	EdgeMode Mode = "edge"
	BothMode Mode = "both"
)

func NewModeValue(val Mode, p *Mode) *Mode {
	*p = val
	return (*Mode)(p)
}

// String is used both by fmt.Print and by Cobra in help text
func (e *Mode) String() string {
	return string(*e)
}

// Set must have pointer receiver so it doesn't change the value of a copy
func (e *Mode) Set(v string) error {
	switch v {
	case "node", "edge", "both":
		*e = Mode(v)
		return nil
	default:
		return errors.New(`must be one of "node", "edge" or "both"`)
	}
}

// Type is only used in help text
func (e *Mode) Type() string {
	return "mode"
}
