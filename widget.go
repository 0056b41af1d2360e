package calckit

import (
	"log/slog"
	"maps"

	"github.com/google/uuid"

	"github.com/webcalc/calckit/pkg/format"
	"github.com/webcalc/calckit/pkg/validator"
)

// Core accumulates per-field validation state for a single calculator
// widget and exposes a pass/fail summary plus formatting pass-throughs.
//
// A Core is owned by exactly one widget and is not safe for concurrent
// mutation; calculator UIs drive it from a single goroutine.
type Core struct {
	id        string
	errors    map[string]string
	formatter *format.Formatter
	log       *slog.Logger
}

// Option configures Core creation.
type Option func(*Core)

// WithFormatter sets the formatter used by the formatting pass-throughs.
func WithFormatter(f *format.Formatter) Option {
	return func(c *Core) {
		if f != nil {
			c.formatter = f
		}
	}
}

// WithLogger sets the logger that records validation failures at Debug
// level. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Core) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a widget core with an empty error map. Defaults: en-US/USD
// formatter, slog default logger.
func New(opts ...Option) *Core {
	c := &Core{
		id:     uuid.NewString(),
		errors: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.formatter == nil {
		c.formatter = format.New()
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// ID returns the instance identifier used for log correlation.
func (c *Core) ID() string { return c.id }

// ValidateField validates one raw input value against the given rules,
// records or clears the field's error, and returns the outcome.
//
// Only the first applicable rule branch is evaluated: Required wins over
// Type, so Rules{Required: true, Type: TypeNumber} checks presence only.
// Rules requesting nothing recognizable pass automatically.
func (c *Core) ValidateField(field, raw string, rules Rules) Result {
	switch {
	case rules.Required:
		if err := validator.CheckRequired(raw); err != nil {
			return c.fail(field, err.Error())
		}
		return c.pass(field, Result{Valid: true})

	case rules.Type == TypeNumber:
		v, err := validator.CheckNumber(raw, rules.Min, rules.Max)
		if err != nil {
			return c.fail(field, err.Error())
		}
		return c.pass(field, Result{Valid: true, Value: v, HasValue: true})

	case rules.Type == TypePercentage:
		v, err := validator.CheckPercentage(raw)
		if err != nil {
			return c.fail(field, err.Error())
		}
		return c.pass(field, Result{Valid: true, Value: v, HasValue: true})

	default:
		return c.pass(field, Result{Valid: true})
	}
}

func (c *Core) fail(field, message string) Result {
	c.errors[field] = message
	c.log.Debug("field validation failed",
		slog.String("widget", c.id),
		slog.String("field", field),
		slog.String("error", message),
	)
	return Result{Err: message}
}

func (c *Core) pass(field string, res Result) Result {
	delete(c.errors, field)
	return res
}

// IsValid reports whether no field currently has an error. Validity is
// always derived from the error map, never stored.
func (c *Core) IsValid() bool { return len(c.errors) == 0 }

// Errors returns a copy of the current field errors.
func (c *Core) Errors() map[string]string { return maps.Clone(c.errors) }

// Error returns the current message for a field, if any.
func (c *Core) Error(field string) (string, bool) {
	msg, ok := c.errors[field]
	return msg, ok
}

// ClearErrors empties the error map, making the widget valid.
func (c *Core) ClearErrors() {
	clear(c.errors)
}

// Reset clears validation state. Widgets that also need to clear their own
// input fields implement Resetter and call this from their override.
func (c *Core) Reset() {
	c.ClearErrors()
}

// Resetter is implemented by widgets that reset their own inputs on top of
// the shared validation state.
type Resetter interface {
	Reset()
}

// FormatCurrency renders an amount with the core's formatter.
func (c *Core) FormatCurrency(amount float64) string {
	return c.formatter.FormatCurrency(amount)
}

// FormatPercentage renders a 0-100 scale value with a trailing percent
// sign. A negative decimals argument selects the formatter default.
func (c *Core) FormatPercentage(v float64, decimals int) string {
	return c.formatter.FormatPercentage(v, decimals)
}

// FormatNumber renders a localized fixed-decimal number. A negative
// decimals argument selects the formatter default.
func (c *Core) FormatNumber(v float64, decimals int) string {
	return c.formatter.FormatNumber(v, decimals)
}
