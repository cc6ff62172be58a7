package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// FallbackAdvice is returned verbatim whenever the provider cannot answer.
const FallbackAdvice = "I'm sorry, I couldn't process your request at the moment. Please try again later."

// PatientContext is the profile slice shared with the provider. Only what
// the prompt needs; never credentials or internal ids.
type PatientContext struct {
	Name           string
	DiabetesType   string
	RecentReadings []ReadingSnapshot
}

// ReadingSnapshot is a glucose data point summarized for the prompt.
type ReadingSnapshot struct {
	Value     float64
	Unit      string
	Status    string
	Timestamp time.Time
}

// RiskAssessment is the structured verdict of the risk-analysis prompt.
type RiskAssessment struct {
	RiskLevel       string   `json:"riskLevel"`
	Factors         []string `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

func fallbackAssessment() RiskAssessment {
	return RiskAssessment{
		RiskLevel:       "Unknown",
		Factors:         []string{"Unable to analyze risk factors at this time"},
		Recommendations: []string{"Please consult with your healthcare provider"},
	}
}

const adviceSystemPrompt = `You are a supportive diabetes health companion. Give practical,
encouraging lifestyle guidance grounded in the patient's recent glucose readings.
You are not a doctor: for anything clinical, advise talking to a healthcare provider.
Keep answers short and plain.`

const riskSystemPrompt = `You analyze glucose histories for risk signals. Respond with JSON only,
no prose, in the shape {"riskLevel": "Low|Medium|High", "factors": [...], "recommendations": [...]}.`

// GetAdvice answers a free-form patient question. It never fails: every
// error path yields the fallback string.
func (c *Client) GetAdvice(ctx context.Context, pc PatientContext, query string) string {
	answer, err := c.complete(ctx, adviceSystemPrompt, adviceUserPrompt(pc, query))
	if err != nil {
		c.log.Warn().Err(err).Msg("advice request failed, serving fallback")
		return FallbackAdvice
	}
	return answer
}

// RiskAnalysis asks the provider for a structured risk verdict. Provider or
// parse failure degrades to the fixed Unknown assessment.
func (c *Client) RiskAnalysis(ctx context.Context, pc PatientContext) RiskAssessment {
	raw, err := c.complete(ctx, riskSystemPrompt, riskUserPrompt(pc))
	if err != nil {
		c.log.Warn().Err(err).Msg("risk analysis request failed, serving fallback")
		return fallbackAssessment()
	}

	var assessment RiskAssessment
	if err := json.Unmarshal([]byte(extractJSON(raw)), &assessment); err != nil || assessment.RiskLevel == "" {
		c.log.Warn().Err(err).Str("raw", raw).Msg("risk analysis verdict unparseable, serving fallback")
		return fallbackAssessment()
	}
	return assessment
}

func adviceUserPrompt(pc PatientContext, query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Patient: %s\n", pc.Name)
	if pc.DiabetesType != "" {
		fmt.Fprintf(&b, "Diabetes type: %s\n", pc.DiabetesType)
	}
	writeReadings(&b, pc.RecentReadings)
	fmt.Fprintf(&b, "\nQuestion: %s\n", query)
	return b.String()
}

func riskUserPrompt(pc PatientContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Patient: %s\n", pc.Name)
	if pc.DiabetesType != "" {
		fmt.Fprintf(&b, "Diabetes type: %s\n", pc.DiabetesType)
	}
	writeReadings(&b, pc.RecentReadings)
	return b.String()
}

func writeReadings(b *strings.Builder, list []ReadingSnapshot) {
	if len(list) == 0 {
		b.WriteString("No recent glucose readings.\n")
		return
	}
	b.WriteString("Recent glucose readings:\n")
	for _, r := range list {
		fmt.Fprintf(b, "- %.1f %s (%s) at %s\n",
			r.Value, r.Unit, r.Status, r.Timestamp.Format("2006-01-02 15:04"))
	}
}

// extractJSON trims markdown fences and surrounding prose the provider
// sometimes wraps around the verdict.
func extractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}
