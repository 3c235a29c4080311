package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreCase(t *testing.T) {
	tests := []struct {
		evidence, past string
		value          int
		label          string
	}{
		{"Strong", "Serious", 85, "Conviction"},
		{"Strong", "Minor", 80, "Conviction"},
		{"Strong", "None", 75, "Conviction"},
		{"Moderate", "Serious", 75, "Conviction"},
		{"Moderate", "None", 65, "Conviction"},
		{"Weak", "Serious", 65, "Conviction"},
		{"Weak", "Minor", 60, "Conviction"},
		{"Weak", "None", 55, "Acquittal"},
		{"strong", "serious", 55, "Acquittal"},
		{"", "", 55, "Acquittal"},
	}

	for _, tt := range tests {
		t.Run(tt.evidence+"/"+tt.past, func(t *testing.T) {
			got := ScoreCase(tt.evidence, tt.past)
			assert.Equal(t, tt.value, got.Value)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestScoreCase_Bounds(t *testing.T) {
	for _, ev := range []string{"Strong", "Moderate", "Weak", "x"} {
		for _, past := range []string{"Serious", "Minor", "None", "x"} {
			s := ScoreCase(ev, past)
			assert.GreaterOrEqual(t, s.Value, 55)
			assert.LessOrEqual(t, s.Value, 95)
			assert.Equal(t, s.Value >= 60, s.Label == OutcomeConviction)
		}
	}
}

func TestPredict(t *testing.T) {
	p := Predict("Strong", "Serious")

	assert.Equal(t, "85%", p.PossibleOutcome.Probability)
	assert.Equal(t, "Conviction", p.PossibleOutcome.Result)
	assert.Equal(t, "Based on case facts and evidence strength", p.PossibleOutcome.Basis)
	assert.Len(t, p.KeyFactors, 4)
	assert.Contains(t, p.AIReasoning, "the evidence appears to be strong with")
	assert.Contains(t, p.Disclaimer, "simplified educational model")
}

func TestPredict_Defaults(t *testing.T) {
	p := Predict(DefaultEvidence, DefaultPastRecord)
	assert.Equal(t, "65%", p.PossibleOutcome.Probability)
	assert.Contains(t, p.AIReasoning, "appears to be moderate")
}

func TestPredict_KeyFactorsNotShared(t *testing.T) {
	p := Predict("Weak", "None")
	p.KeyFactors[0] = "changed"
	assert.Equal(t, "Strength of available evidence", Predict("Weak", "None").KeyFactors[0])
}
