// Package predict implements the educational case-outcome heuristic.
package predict

import (
	"fmt"
	"strings"
)

// Defaults applied when a request leaves a field out.
const (
	DefaultEvidence   = "Moderate"
	DefaultPastRecord = "None"
)

const (
	baseScore = 50
	maxScore  = 95
	threshold = 60

	OutcomeConviction = "Conviction"
	OutcomeAcquittal  = "Acquittal"
)

// Score is the clamped numeric score and its outcome label.
type Score struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Outcome is the headline of a prediction.
type Outcome struct {
	Probability string `json:"probability"`
	Result      string `json:"result"`
	Basis       string `json:"basis"`
}

// Prediction is the full response returned to clients.
type Prediction struct {
	PossibleOutcome Outcome  `json:"possible_outcome"`
	KeyFactors      []string `json:"key_factors"`
	AIReasoning     string   `json:"ai_reasoning"`
	Disclaimer      string   `json:"disclaimer"`
}

var keyFactors = []string{
	"Strength of available evidence",
	"Nature of the offense",
	"Legal precedents in similar cases",
	"Criminal history consideration",
}

// ScoreCase scores a case from its evidence strength and past record.
// Labels are compared exactly; unrecognized values take the lowest bonus.
func ScoreCase(evidence, pastRecord string) Score {
	score := baseScore
	switch evidence {
	case "Strong":
		score += 25
	case "Moderate":
		score += 15
	default:
		score += 5
	}
	switch pastRecord {
	case "Serious":
		score += 10
	case "Minor":
		score += 5
	}
	score = min(score, maxScore)

	label := OutcomeAcquittal
	if score >= threshold {
		label = OutcomeConviction
	}
	return Score{Value: score, Label: label}
}

// Predict scores a case and wraps it with the explanatory text.
func Predict(evidence, pastRecord string) Prediction {
	s := ScoreCase(evidence, pastRecord)
	return Prediction{
		PossibleOutcome: Outcome{
			Probability: fmt.Sprintf("%d%%", s.Value),
			Result:      s.Label,
			Basis:       "Based on case facts and evidence strength",
		},
		KeyFactors: append([]string(nil), keyFactors...),
		AIReasoning: "Based on the provided information, the evidence appears to be " +
			strings.ToLower(evidence) + " with documentary and testimonial support. " +
			"Historical datasets of similar cases indicate conviction rates " +
			"between 60–75% under comparable circumstances.\n\n" +
			"The nature of the offense and consistency of evidence play a " +
			"critical role in judicial outcomes. Prior criminal history " +
			"further influences judicial discretion.",
		Disclaimer: "This is a simplified educational model. " +
			"Actual legal outcomes depend on judicial discretion.",
	}
}
