package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSession(t *testing.T) {
	sess, err := DecodeSession([]byte(`{
		"inputs": {"df1": {"growth": 5}, "df3": {"risk11": {"impact": 5, "likelihood": 5}}},
		"weights": {"df3": 2},
		"overrides": {"EDM01": 80},
		"adjustments": {"APO12": {"adjustment": -10, "agreed_capability": 4}}
	}`))
	require.NoError(t, err)
	assert.Equal(t, RatingValue(5), sess.Inputs["df1"]["growth"])
	assert.Equal(t, RiskValue(5, 5), sess.Inputs["df3"]["risk11"])
	assert.Equal(t, 2.0, sess.Weights.Weight("df3"))
	assert.Equal(t, 80.0, sess.Overrides["EDM01"])
	require.NotNil(t, sess.Adjustments["APO12"].AgreedCapability)
	assert.Equal(t, 4, *sess.Adjustments["APO12"].AgreedCapability)
}

func TestDecodeSessionEmpty(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("null")} {
		sess, err := DecodeSession(data)
		require.NoError(t, err)
		assert.Empty(t, sess.Inputs)
	}
}

func TestDecodeSessionInvalid(t *testing.T) {
	cases := map[string]string{
		"syntax":         `{"inputs":`,
		"shape mismatch": `{"inputs": {"df3": {"risk11": 4}}}`,
		"bad weight":     `{"weights": {"df3": -1}}`,
		"bad override":   `{"overrides": {"EDM01": 101}}`,
		"bad adjustment": `{"adjustments": {"EDM01": {"adjustment": 150}}}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSession([]byte(data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), err.Error())
		})
	}
}

func TestScopesFromSession(t *testing.T) {
	s := newTestScorer()
	sess := Session{
		Inputs:    DefaultInputs(),
		Overrides: Overrides{"EDM01": 30},
	}
	scopes := s.Scopes(sess, DefaultFactorWeights())

	require.Len(t, scopes.InitialScope, 40)
	for _, r := range scopes.InitialScope {
		assert.Equal(t, 0.0, r.FinalScore, r.ObjectiveID)
	}
	require.Len(t, scopes.RefinedScope, 40)
	require.Len(t, scopes.FinalDesign, 40)

	final := byID(scopes.FinalDesign)
	require.NotNil(t, final["EDM01"].OverrideScore)
	assert.Equal(t, 30.0, *final["EDM01"].OverrideScore)
	assert.Equal(t, CapabilityLevel(30), final["EDM01"].CapabilityLevel)
	assert.Equal(t, byID(scopes.RefinedScope)["EDM01"].FinalScore, final["EDM01"].FinalScore)
}
