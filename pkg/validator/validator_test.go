package validator

import (
	"math"
	"testing"

	"go-pharmacy-dashboard/internal/chart"

	"github.com/google/uuid"
)

func TestNonnegativeSeries(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		ok     bool
	}{
		{"empty", nil, true},
		{"positive", []float64{1, 2.5, 0}, true},
		{"negative", []float64{1, -1}, false},
		{"infinite", []float64{math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(&chart.Input{Values: tt.values})
			if tt.ok && len(errs) > 0 {
				t.Fatalf("unexpected errors: %+v", errs[0])
			}
			if !tt.ok {
				if len(errs) == 0 {
					t.Fatal("expected a validation error")
				}
				if errs[0].Tag != "nonnegative_series" {
					t.Errorf("tag = %q", errs[0].Tag)
				}
			}
		})
	}
}

func TestUUIDRequired(t *testing.T) {
	type req struct {
		ID uuid.UUID `validate:"uuid_required"`
	}
	if errs := ValidateStruct(&req{}); len(errs) != 1 {
		t.Errorf("nil uuid: got %d errors, want 1", len(errs))
	}
	if err := FirstError(&req{ID: uuid.New()}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSeriesLengthLimit(t *testing.T) {
	errs := ValidateStruct(&chart.Input{Values: make([]float64, chart.MaxSeriesLength)})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs[0])
	}

	errs = ValidateStruct(&chart.Input{Values: make([]float64, chart.MaxSeriesLength+1)})
	if len(errs) == 0 {
		t.Fatal("expected a validation error")
	}
	if errs[0].Tag != "max" || errs[0].FailedField != "Input.Values" {
		t.Errorf("got %s on %s, want max on Input.Values", errs[0].Tag, errs[0].FailedField)
	}
}

func TestChartColor(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
		ok     bool
	}{
		{"none", nil, true},
		{"hex", []string{"#3498db", "#fff"}, true},
		{"named", []string{"red", "SteelBlue"}, true},
		{"empty token", []string{""}, true},
		{"unknown name", []string{"#3498db", "notacolor"}, false},
		{"bad hex", []string{"#12345"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(&chart.Input{Values: []float64{1}, Colors: tt.colors})
			if tt.ok && len(errs) > 0 {
				t.Fatalf("unexpected errors: %+v", errs[0])
			}
			if !tt.ok && (len(errs) == 0 || errs[0].Tag != "chart_color") {
				t.Errorf("errs = %+v, want chart_color failure", errs)
			}
		})
	}
}
