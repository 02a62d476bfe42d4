package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
)

func float64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int             { return &v }

func TestBuildCanvas(t *testing.T) {
	s := newTestScorer()
	adjustments := Adjustments{
		"APO12": {Adjustment: float64Ptr(-60), AdjustmentReason: "covered by group risk office"},
		"EDM01": {AgreedCapability: intPtr(5), CapabilityReason: "board mandate"},
	}
	c := s.BuildCanvas(DefaultInputs(), nil, adjustments)

	require.Len(t, c.Rows, 40)
	for i, o := range catalog.Objectives() {
		assert.Equal(t, o.ID, c.Rows[i].ObjectiveID)
		assert.Len(t, c.Rows[i].FactorScores, 10)
	}

	apo12 := c.Rows[catalog.ObjectivePosition("APO12")]
	assert.Equal(t, 0.0, apo12.InitialScope)
	assert.Equal(t, 100.0, apo12.RefinedScope)
	assert.Equal(t, 40.0, apo12.ConcludedScope)
	assert.Equal(t, 2, apo12.SuggestedCapability)
	assert.Equal(t, 2, apo12.AgreedCapability)
	assert.Equal(t, "covered by group risk office", apo12.AdjustmentReason)
	assert.Equal(t, 0.0, apo12.FactorScores["df1"])

	edm01 := c.Rows[0]
	assert.Equal(t, 4, edm01.SuggestedCapability)
	assert.Equal(t, 5, edm01.AgreedCapability)
	assert.Equal(t, "board mandate", edm01.CapabilityReason)

	assert.Equal(t, 1.0, c.MaxInitialScope)
	assert.Equal(t, 100.0, c.MaxRefinedScope)
	assert.Equal(t, 100.0, c.MaxConcludedScope)
}

func TestAdjustmentsValidate(t *testing.T) {
	assert.NoError(t, Adjustments{"EDM01": {Adjustment: float64Ptr(-100), AgreedCapability: intPtr(1)}}.Validate())
	assert.ErrorIs(t, Adjustments{"EDM01": {Adjustment: float64Ptr(101)}}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, Adjustments{"EDM01": {AgreedCapability: intPtr(0)}}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, Adjustments{"BAD": {}}.Validate(), ErrInvalidInput)
}
