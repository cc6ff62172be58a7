package readings

import "errors"

// Status is the clinical band a glucose value falls into.
type Status string

const (
	StatusLow      Status = "low"
	StatusNormal   Status = "normal"
	StatusHigh     Status = "high"
	StatusVeryHigh Status = "very-high"
)

// Supported measurement units.
const (
	UnitMmolL = "mmol/L"
	UnitMgdL  = "mg/dL"
)

var ErrInvalidUnit = errors.New("unrecognized glucose unit")

// Classify bands a glucose value. Band edges sit on the normal/high side:
// 7.0 mmol/L is still normal, 10.0 mmol/L is still high. An unknown unit is
// an error, never a silent default.
func Classify(value float64, unit string) (Status, error) {
	switch unit {
	case UnitMmolL:
		switch {
		case value < 4.0:
			return StatusLow, nil
		case value <= 7.0:
			return StatusNormal, nil
		case value <= 10.0:
			return StatusHigh, nil
		default:
			return StatusVeryHigh, nil
		}
	case UnitMgdL:
		switch {
		case value < 70:
			return StatusLow, nil
		case value <= 126:
			return StatusNormal, nil
		case value <= 180:
			return StatusHigh, nil
		default:
			return StatusVeryHigh, nil
		}
	default:
		return "", ErrInvalidUnit
	}
}
