package validator

import "fmt"

// RequiredInput validates that a raw input value is present and non-blank.
func RequiredInput(field, raw string) Rule {
	return Rule{
		Check: func() bool {
			return CheckRequired(raw) == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// NumberInput validates that a raw input value parses as a number within the
// optional bounds; nil means unbounded on that side.
func NumberInput(field, raw string, min, max *float64) Rule {
	return Rule{
		Check: func() bool {
			_, err := CheckNumber(raw, min, max)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: numberMessage(min, max),
		},
	}
}

// PercentageInput validates that a raw input value is a number in [0, 100].
func PercentageInput(field, raw string) Rule {
	return Rule{
		Check: func() bool {
			_, err := CheckPercentage(raw)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a percentage between 0 and 100",
		},
	}
}

func numberMessage(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("must be a number between %v and %v", *min, *max)
	case min != nil:
		return fmt.Sprintf("must be a number of at least %v", *min)
	case max != nil:
		return fmt.Sprintf("must be a number of at most %v", *max)
	default:
		return "must be a valid number"
	}
}
