package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
)

// Overrides maps objective id to a manual 0-100 score.
type Overrides map[string]float64

// Validate rejects unknown objectives and scores outside 0-100.
func (o Overrides) Validate() error {
	ids := make([]string, 0, len(o))
	for id := range o {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := catalog.LookupObjective(id); !ok {
			return fmt.Errorf("%w: unknown objective %q", ErrInvalidInput, id)
		}
		v := o[id]
		if math.IsNaN(v) || v < 0 || v > 100 {
			return fmt.Errorf("%w: override for %s must be between 0 and 100", ErrInvalidInput, id)
		}
	}
	return nil
}

// ApplyOverrides returns a copy of results with overrides attached and the
// capability level derived from the effective score, sorted by effective
// score descending. FinalScore is left untouched.
func ApplyOverrides(results []ScoreResult, overrides Overrides) []ScoreResult {
	out := make([]ScoreResult, len(results))
	for i, r := range results {
		r.OverrideScore = nil
		if v, ok := overrides[r.ObjectiveID]; ok {
			v := v
			r.OverrideScore = &v
		}
		r.CapabilityLevel = CapabilityLevel(r.EffectiveScore())
		out[i] = r
	}
	sortByEffective(out)
	return out
}

// FinalDesign is the refined scope with manual overrides layered on top.
func (s *Scorer) FinalDesign(inputs UserInputs, weights FactorWeights, overrides Overrides) []ScoreResult {
	return ApplyOverrides(s.RefinedScope(inputs, weights), overrides)
}
