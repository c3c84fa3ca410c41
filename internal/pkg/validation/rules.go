package validation

import (
	"regexp"
	"unicode/utf8"
)

// Validation rule patterns
var (
	// Corps names are short labels such as "А", "Б", "ГЛК" or "Corps 7"
	CorpsNamePattern = `^[\p{L}\p{N}][\p{L}\p{N} .\-]*$`

	// Room numbers: "100", "А-100", "лабФИЗ", "305а"
	RoomNumberPattern = `^[\p{L}\p{N}][\p{L}\p{N}.\-/]*$`

	CorpsNameMaxLength  = 64
	RoomNumberMaxLength = 32
	TextMaxLength       = 255
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	CorpsName  *regexp.Regexp
	RoomNumber *regexp.Regexp
}{
	CorpsName:  regexp.MustCompile(CorpsNamePattern),
	RoomNumber: regexp.MustCompile(RoomNumberPattern),
}

// StringValidation checks a single string value
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length in runes
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length in runes
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	if !v.Required && v.Value == "" {
		return true
	}

	// Names are Cyrillic more often than not, so lengths count runes
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

// NumericValidation checks an integer against an inclusive range
type NumericValidation struct {
	Value int
	Min   int
	Max   int
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithRange sets the inclusive bounds
func (v *NumericValidation) WithRange(min, max int) *NumericValidation {
	v.Min = min
	v.Max = max
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	return v.Value >= v.Min && v.Value <= v.Max
}

// IsCorpsName reports whether name is an acceptable corps name
func IsCorpsName(name string) bool {
	return NewStringValidation(name).
		WithMaxLength(CorpsNameMaxLength).
		WithPattern(CompiledPatterns.CorpsName).
		Validate()
}

// IsRoomNumber reports whether number is an acceptable room number
func IsRoomNumber(number string) bool {
	return NewStringValidation(number).
		WithMaxLength(RoomNumberMaxLength).
		WithPattern(CompiledPatterns.RoomNumber).
		Validate()
}

// IsWeekday reports whether day is in 1 (Monday) .. 7 (Sunday)
func IsWeekday(day int) bool {
	return NewNumericValidation(day).WithRange(1, 7).Validate()
}
