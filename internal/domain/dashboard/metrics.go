package dashboard

import (
	"math"
	"time"

	"github.com/glucocare/glucocare/internal/domain/readings"
)

// RiskLevel grades how much of a user's history sits in the high bands.
type RiskLevel string

const (
	RiskLow     RiskLevel = "Low"
	RiskMedium  RiskLevel = "Medium"
	RiskHigh    RiskLevel = "High"
	RiskUnknown RiskLevel = "Unknown"
)

// Stats is the dashboard metrics payload.
type Stats struct {
	AverageGlucose   float64   `json:"averageGlucose"`
	HbA1c            float64   `json:"hba1c"`
	ReadingsThisWeek int       `json:"readingsThisWeek"`
	RiskScore        RiskLevel `json:"riskScore"`
}

// Average is the arithmetic mean of the reading values rounded to one
// decimal. An empty history averages to 0.
func Average(list []*readings.Reading) float64 {
	if len(list) == 0 {
		return 0
	}
	var sum float64
	for _, r := range list {
		sum += r.Value
	}
	return round1(sum / float64(len(list)))
}

// EstimateHbA1c converts an average glucose (mmol/L) into an estimated
// HbA1c percentage using the linear approximation (avg + 2.59) / 1.59.
func EstimateHbA1c(avg float64) float64 {
	return round1((avg + 2.59) / 1.59)
}

// CountSince counts readings with a timestamp at or after the cutoff.
func CountSince(list []*readings.Reading, cutoff time.Time) int {
	n := 0
	for _, r := range list {
		if !r.Timestamp.Before(cutoff) {
			n++
		}
	}
	return n
}

// RiskScore grades the share of readings in the high or very-high band.
// Above 50% is High, above 20% Medium, otherwise Low; with no history the
// risk is Unknown. Both thresholds are strict.
func RiskScore(list []*readings.Reading) RiskLevel {
	if len(list) == 0 {
		return RiskUnknown
	}
	elevated := 0
	for _, r := range list {
		if r.Status == readings.StatusHigh || r.Status == readings.StatusVeryHigh {
			elevated++
		}
	}
	pct := float64(elevated) / float64(len(list)) * 100
	switch {
	case pct > 50:
		return RiskHigh
	case pct > 20:
		return RiskMedium
	default:
		return RiskLow
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
