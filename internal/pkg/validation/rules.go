package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation rule patterns and bounds, shared by the service layer.
var (
	// EmailPattern matches the address shapes accepted for student emails.
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// CardNumberPattern requires an all-digit card number of at least 4 digits.
	CardNumberPattern = `^[0-9]{4,}$`

	CohortNameMinLength = 2
	CohortNameMaxLength = 50

	CourseNameMinLength = 2
	CourseNameMaxLength = 100

	CardNumberMinLength = 4
	CardNumberMaxLength = 20
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email      *regexp.Regexp
	CardNumber *regexp.Regexp
}{
	Email:      regexp.MustCompile(EmailPattern),
	CardNumber: regexp.MustCompile(CardNumberPattern),
}

// StringValidation is a pure field-shape check for string inputs. It never
// touches storage; uniqueness is the store's concern.
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a required string validation.
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length.
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length.
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets a regex pattern.
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets whether the field is required.
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs the check.
func (v *StringValidation) Validate() bool {
	if v.Required && strings.TrimSpace(v.Value) == "" {
		return false
	}

	// Remaining rules do not apply to empty optional values.
	if !v.Required && v.Value == "" {
		return true
	}

	// Length bounds count characters, not bytes, so multibyte names are
	// measured the way a user would count them.
	length := utf8.RuneCountInString(v.Value)

	if v.MinLen > 0 && length < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// NumericValidation is a pure field-shape check for integer inputs. Bounds
// apply only once set, so a minimum of 0 is a real constraint.
type NumericValidation struct {
	Value  int
	Min    int
	Max    int
	hasMin bool
	hasMax bool
}

// NewNumericValidation creates a numeric validation.
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets the minimum value.
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	v.hasMin = true
	return v
}

// WithMax sets the maximum value.
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	v.hasMax = true
	return v
}

// Validate performs the check.
func (v *NumericValidation) Validate() bool {
	if v.hasMin && v.Value < v.Min {
		return false
	}

	if v.hasMax && v.Value > v.Max {
		return false
	}

	return true
}
