package calckit

import "github.com/webcalc/calckit/pkg/validator"

// RuleType selects which validation branch ValidateField applies.
type RuleType string

const (
	// TypeNone applies no type check; any value passes.
	TypeNone RuleType = ""
	// TypeNumber requires the value to parse as a finite number.
	TypeNumber RuleType = "number"
	// TypePercentage requires a number in the implicit range [0, 100].
	TypePercentage RuleType = "percentage"
)

// Rules describes the checks that apply to one field for one ValidateField
// call. The zero value applies no constraints. Unrecognized Type values are
// treated as TypeNone, not reported.
type Rules struct {
	Required bool     `yaml:"required"`
	Type     RuleType `yaml:"type"`
	Min      *float64 `yaml:"min"`
	Max      *float64 `yaml:"max"`
}

// Bound builds an optional Min/Max value inline.
func Bound(v float64) *float64 { return validator.Bound(v) }

// Result reports the outcome of a single ValidateField call. It is a
// transient value; the durable record is the Core's error map.
type Result struct {
	// Valid is true when the field passed.
	Valid bool
	// Err holds the human-readable message recorded for the field when
	// Valid is false.
	Err string
	// Value holds the parsed number when a numeric branch ran; HasValue
	// distinguishes a parsed 0 from "no number was parsed".
	Value    float64
	HasValue bool
}
