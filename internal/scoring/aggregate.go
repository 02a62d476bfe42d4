package scoring

import (
	"fmt"
	"math"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
)

// Scope stages.
const (
	StageInitial = "initial"
	StageRefined = "refined"
)

// PreScope sums each factor's relative importance times its weight per
// objective. FinalScore holds the sum rounded to two decimals and RawScore
// the unrounded sum.
func (s *Scorer) PreScope(inputs UserInputs, factorIDs []string, weights FactorWeights) []ScoreResult {
	totals := make(map[string]float64, catalog.ObjectiveCount())
	for _, id := range factorIDs {
		w := weights.Weight(id)
		for _, r := range s.ScoreFactor(inputs, id) {
			totals[r.ObjectiveID] += r.RelativeImportance * w
		}
	}

	objs := catalog.Objectives()
	results := make([]ScoreResult, len(objs))
	for i, obj := range objs {
		res := zeroResult(obj)
		res.RawScore = totals[obj.ID]
		res.FinalScore = Round2(totals[obj.ID])
		results[i] = res
	}
	sortByFinal(results)
	return results
}

// Aggregate normalizes the pre-scope sums onto a 5-step grid in [-100, 100]:
// each value is divided by the largest magnitude, scaled to 100, truncated
// and rounded to the nearest 5. A zero normalizer yields all zeros.
func (s *Scorer) Aggregate(inputs UserInputs, factorIDs []string, weights FactorWeights) []ScoreResult {
	pre := s.PreScope(inputs, factorIDs, weights)
	if len(pre) == 0 {
		return pre
	}

	maxVal, minVal := math.Inf(-1), math.Inf(1)
	for _, r := range pre {
		maxVal = math.Max(maxVal, r.FinalScore)
		minVal = math.Min(minVal, r.FinalScore)
	}
	normalizer := math.Max(0, math.Max(maxVal, math.Abs(minVal)))

	out := make([]ScoreResult, len(pre))
	for i, r := range pre {
		obj := catalog.Objective{ID: r.ObjectiveID, Name: r.ObjectiveName, Domain: r.Domain}
		preValue := r.FinalScore
		out[i] = s.guard("scope", obj, func(catalog.Objective) ScoreResult {
			res := r
			res.RawScore = preValue
			res.FinalScore = scopeGrid(preValue, normalizer)
			res.NormalizedScore = res.FinalScore
			return res
		})
	}
	sortByFinal(out)
	return out
}

func scopeGrid(value, normalizer float64) float64 {
	if normalizer == 0 {
		return 0
	}
	truncated := math.Trunc(value / normalizer * 100)
	return roundHalfUp(truncated/5) * 5
}

// InitialScope aggregates df1..df4.
func (s *Scorer) InitialScope(inputs UserInputs, weights FactorWeights) []ScoreResult {
	return s.Aggregate(inputs, catalog.InitialScopeFactorIDs(), weights)
}

// RefinedScope aggregates all ten factors and attaches the suggested
// capability level.
func (s *Scorer) RefinedScope(inputs UserInputs, weights FactorWeights) []ScoreResult {
	results := s.Aggregate(inputs, catalog.FactorIDs(), weights)
	for i := range results {
		level := SuggestedCapabilityLevel(results[i].FinalScore)
		results[i].SuggestedCapabilityLevel = &level
	}
	return results
}

// Scope dispatches on stage name.
func (s *Scorer) Scope(stage string, inputs UserInputs, weights FactorWeights) ([]ScoreResult, error) {
	switch stage {
	case StageInitial:
		return s.InitialScope(inputs, weights), nil
	case StageRefined:
		return s.RefinedScope(inputs, weights), nil
	default:
		return nil, fmt.Errorf("%w: unknown scope stage %q", ErrInvalidInput, stage)
	}
}
