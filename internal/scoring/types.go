// Package scoring turns design factor answers into per-objective priority
// scores: per-factor relative importance, the initial and refined scope
// aggregations, capability levels and the summary statistics shown next to
// each questionnaire.
package scoring

import (
	"math"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
)

// ScoreResult is the engine's output record, one per objective. Results are
// recomputed on every call and never patched in place.
type ScoreResult struct {
	ObjectiveID        string   `json:"objective_id"`
	ObjectiveName      string   `json:"objective_name"`
	Domain             string   `json:"domain"`
	RawScore           float64  `json:"raw_score"`
	NormalizedScore    float64  `json:"normalized_score"`
	FinalScore         float64  `json:"final_score"`
	BaselineScore      float64  `json:"baseline_score"`
	RelativeImportance float64  `json:"relative_importance"`
	OverrideScore      *float64 `json:"override_score,omitempty"`
	CapabilityLevel    int      `json:"capability_level"`
	// Set by the refined scope only.
	SuggestedCapabilityLevel *int `json:"suggested_capability_level,omitempty"`
}

// EffectiveScore is the override when present, otherwise the final score.
func (r ScoreResult) EffectiveScore() float64 {
	if r.OverrideScore != nil {
		return *r.OverrideScore
	}
	return r.FinalScore
}

func (r ScoreResult) finite() bool {
	for _, v := range []float64{r.RawScore, r.NormalizedScore, r.FinalScore, r.BaselineScore, r.RelativeImportance} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func zeroResult(obj catalog.Objective) ScoreResult {
	return ScoreResult{
		ObjectiveID:   obj.ID,
		ObjectiveName: obj.Name,
		Domain:        obj.Domain,
	}
}

// zeroResults is the all-zero vector returned for an absent factor.
func zeroResults() []ScoreResult {
	objs := catalog.Objectives()
	out := make([]ScoreResult, len(objs))
	for i, o := range objs {
		out[i] = zeroResult(o)
	}
	return out
}
