package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilityLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{-40, 0}, {0, 0}, {14.9, 0}, {15, 1}, {30.9, 1}, {31, 2}, {50, 2},
		{51, 3}, {70, 3}, {71, 4}, {90, 4}, {91, 5}, {100, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CapabilityLevel(tt.score), "score %v", tt.score)
	}
}

func TestSuggestedCapabilityLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{-100, 1}, {0, 1}, {24.9, 1}, {25, 2}, {49, 2}, {50, 3}, {74, 3}, {75, 4}, {100, 4}, {160, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SuggestedCapabilityLevel(tt.score), "score %v", tt.score)
	}
}

func TestApplyOverrides(t *testing.T) {
	results := []ScoreResult{
		{ObjectiveID: "APO12", FinalScore: 100},
		{ObjectiveID: "APO13", FinalScore: 60},
		{ObjectiveID: "EDM01", FinalScore: 10},
	}
	out := ApplyOverrides(results, Overrides{"EDM01": 95, "APO12": 20})

	require.Len(t, out, 3)
	assert.Equal(t, "EDM01", out[0].ObjectiveID)
	assert.Equal(t, 10.0, out[0].FinalScore, "final score must not be replaced")
	require.NotNil(t, out[0].OverrideScore)
	assert.Equal(t, 95.0, *out[0].OverrideScore)
	assert.Equal(t, 5, out[0].CapabilityLevel)

	assert.Equal(t, "APO13", out[1].ObjectiveID)
	assert.Nil(t, out[1].OverrideScore)
	assert.Equal(t, 3, out[1].CapabilityLevel)

	assert.Equal(t, "APO12", out[2].ObjectiveID)
	assert.Equal(t, 1, out[2].CapabilityLevel)

	assert.Nil(t, results[2].OverrideScore, "input slice must not be mutated")
}

func TestOverridesValidate(t *testing.T) {
	assert.NoError(t, Overrides{"EDM01": 0, "MEA04": 100}.Validate())
	assert.ErrorIs(t, Overrides{"EDM01": 101}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, Overrides{"EDM01": -1}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, Overrides{"XYZ01": 50}.Validate(), ErrInvalidInput)
}

func TestFinalDesign(t *testing.T) {
	s := newTestScorer()
	out := s.FinalDesign(DefaultInputs(), nil, Overrides{"DSS05": 40})
	require.Len(t, out, 40)

	m := byID(out)
	assert.Equal(t, 100.0, m["DSS05"].FinalScore)
	assert.Equal(t, 2, m["DSS05"].CapabilityLevel)
	assert.Equal(t, "DSS05", out[39].ObjectiveID)
	assert.Equal(t, 5, out[0].CapabilityLevel)
}
