package readings

import (
	"errors"
	"testing"
)

func TestClassifyMmolL(t *testing.T) {
	tests := []struct {
		value float64
		want  Status
	}{
		{3.9, StatusLow},
		{4.0, StatusNormal},
		{5.5, StatusNormal},
		{7.0, StatusNormal},
		{7.1, StatusHigh},
		{10.0, StatusHigh},
		{10.1, StatusVeryHigh},
		{22.0, StatusVeryHigh},
	}
	for _, tt := range tests {
		got, err := Classify(tt.value, UnitMmolL)
		if err != nil {
			t.Fatalf("Classify(%v, mmol/L) error: %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("Classify(%v, mmol/L) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestClassifyMgdL(t *testing.T) {
	tests := []struct {
		value float64
		want  Status
	}{
		{69, StatusLow},
		{70, StatusNormal},
		{126, StatusNormal},
		{127, StatusHigh},
		{180, StatusHigh},
		{181, StatusVeryHigh},
	}
	for _, tt := range tests {
		got, err := Classify(tt.value, UnitMgdL)
		if err != nil {
			t.Fatalf("Classify(%v, mg/dL) error: %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("Classify(%v, mg/dL) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestClassifyUnknownUnit(t *testing.T) {
	for _, unit := range []string{"", "mol/L", "MMOL/L", "mgdl"} {
		if _, err := Classify(5.0, unit); !errors.Is(err, ErrInvalidUnit) {
			t.Errorf("Classify(5.0, %q): expected ErrInvalidUnit, got %v", unit, err)
		}
	}
}
