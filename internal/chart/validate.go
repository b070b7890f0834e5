package chart

import (
	"fmt"
	"math"
)

// MaxSeriesLength bounds the number of values in one chart. Canvas size
// grows with the series, so longer inputs are rejected up front.
const MaxSeriesLength = 500

// InvalidInputError describes why an Input was rejected.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid chart input: %s %s", e.Field, e.Reason)
}

// ValidSeries reports whether every value is a finite, non-negative number.
func ValidSeries(values []float64) bool {
	for _, v := range values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Validate checks in for the given kind. The render functions accept
// anything; boundaries call Validate before rendering untrusted input.
func Validate(kind Kind, in Input) error {
	if len(in.Values) > MaxSeriesLength {
		return &InvalidInputError{
			Field:  "values",
			Reason: fmt.Sprintf("has %d entries, at most %d allowed", len(in.Values), MaxSeriesLength),
		}
	}
	for i, v := range in.Values {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidInputError{Field: fmt.Sprintf("values[%d]", i), Reason: "must be a finite non-negative number"}
		}
	}
	if len(in.Labels) > 0 && len(in.Labels) != len(in.Values) {
		return &InvalidInputError{
			Field:  "labels",
			Reason: fmt.Sprintf("has %d entries, values has %d", len(in.Labels), len(in.Values)),
		}
	}
	for i, c := range in.Colors {
		if !ValidColor(c) {
			return &InvalidInputError{Field: fmt.Sprintf("colors[%d]", i), Reason: fmt.Sprintf("unknown color %q", c)}
		}
	}
	if kind == KindProgress {
		if len(in.Max) != len(in.Values) {
			return &InvalidInputError{
				Field:  "max",
				Reason: fmt.Sprintf("has %d entries, values has %d", len(in.Max), len(in.Values)),
			}
		}
		for i, m := range in.Max {
			if math.IsNaN(m) || math.IsInf(m, 0) {
				return &InvalidInputError{Field: fmt.Sprintf("max[%d]", i), Reason: "must be finite"}
			}
		}
	}
	return nil
}
