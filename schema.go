package calckit

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Schema maps field names to the rules a widget applies to them.
//
// Schemas are declared in YAML:
//
//	principal:
//	  required: true
//	rate:
//	  type: percentage
//	term:
//	  type: number
//	  min: 1
//	  max: 480
type Schema map[string]Rules

// LoadSchema parses a YAML rule schema. An empty document yields an empty
// schema. Unknown keys inside a rule entry are ignored.
func LoadSchema(r io.Reader) (Schema, error) {
	var s Schema
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Schema{}, nil
		}
		return nil, fmt.Errorf("parse rule schema: %w", err)
	}
	return s, nil
}

// ValidateAll applies every rule in the schema to the corresponding raw
// value, accumulating per-field errors in one pass. Fields missing from
// values are validated as empty strings. Returns the overall validity.
func (c *Core) ValidateAll(values map[string]string, schema Schema) bool {
	ok := true
	for field, rules := range schema {
		if res := c.ValidateField(field, values[field], rules); !res.Valid {
			ok = false
		}
	}
	return ok
}
