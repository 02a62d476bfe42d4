package scoring

import (
	"encoding/json"
	"fmt"
)

// Session is the engine state saved alongside a design: the answers plus
// everything layered on top of them.
type Session struct {
	Inputs      UserInputs    `json:"inputs" yaml:"inputs"`
	Weights     FactorWeights `json:"weights,omitempty" yaml:"weights,omitempty"`
	Overrides   Overrides     `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	Adjustments Adjustments   `json:"adjustments,omitempty" yaml:"adjustments,omitempty"`
}

func (s Session) Validate() error {
	if err := s.Weights.Validate(); err != nil {
		return err
	}
	if err := s.Overrides.Validate(); err != nil {
		return err
	}
	return s.Adjustments.Validate()
}

// DecodeSession parses and validates a saved session. Empty data yields an
// empty session.
func DecodeSession(data []byte) (Session, error) {
	var s Session
	if len(data) == 0 || string(data) == "null" {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("%w: session: %v", ErrInvalidInput, err)
	}
	if err := s.Validate(); err != nil {
		return Session{}, err
	}
	return s, nil
}

// SessionScopes is every scope view of one session.
type SessionScopes struct {
	InitialScope []ScoreResult `json:"initial_scope"`
	RefinedScope []ScoreResult `json:"refined_scope"`
	FinalDesign  []ScoreResult `json:"final_design"`
}

// Scopes recomputes the session's scope views. defaults sit under the
// session's own weights.
func (s *Scorer) Scopes(sess Session, defaults FactorWeights) SessionScopes {
	weights := defaults.Merge(sess.Weights)
	refined := s.RefinedScope(sess.Inputs, weights)
	return SessionScopes{
		InitialScope: s.InitialScope(sess.Inputs, weights),
		RefinedScope: refined,
		FinalDesign:  ApplyOverrides(refined, sess.Overrides),
	}
}
