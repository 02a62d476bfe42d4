package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
)

// Adjustment is the canvas input for one objective.
type Adjustment struct {
	Adjustment       *float64 `json:"adjustment,omitempty" yaml:"adjustment,omitempty"`
	AdjustmentReason string   `json:"adjustment_reason,omitempty" yaml:"adjustment_reason,omitempty"`
	AgreedCapability *int     `json:"agreed_capability,omitempty" yaml:"agreed_capability,omitempty"`
	CapabilityReason string   `json:"capability_reason,omitempty" yaml:"capability_reason,omitempty"`
}

// Adjustments maps objective id to its canvas inputs.
type Adjustments map[string]Adjustment

// Validate checks adjustment in [-100, 100] and agreed capability in [1, 5].
func (a Adjustments) Validate() error {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := catalog.LookupObjective(id); !ok {
			return fmt.Errorf("%w: unknown objective %q", ErrInvalidInput, id)
		}
		adj := a[id]
		if adj.Adjustment != nil {
			v := *adj.Adjustment
			if math.IsNaN(v) || v < -100 || v > 100 {
				return fmt.Errorf("%w: adjustment for %s must be between -100 and 100", ErrInvalidInput, id)
			}
		}
		if adj.AgreedCapability != nil && (*adj.AgreedCapability < 1 || *adj.AgreedCapability > 5) {
			return fmt.Errorf("%w: agreed capability for %s must be between 1 and 5", ErrInvalidInput, id)
		}
	}
	return nil
}

// CanvasRow consolidates every score of one objective.
type CanvasRow struct {
	ObjectiveID         string             `json:"objective_id"`
	ObjectiveName       string             `json:"objective_name"`
	Domain              string             `json:"domain"`
	FactorScores        map[string]float64 `json:"factor_scores"`
	InitialScope        float64            `json:"initial_scope"`
	RefinedScope        float64            `json:"refined_scope"`
	Adjustment          float64            `json:"adjustment"`
	AdjustmentReason    string             `json:"adjustment_reason,omitempty"`
	ConcludedScope      float64            `json:"concluded_scope"`
	SuggestedCapability int                `json:"suggested_capability"`
	AgreedCapability    int                `json:"agreed_capability"`
	CapabilityReason    string             `json:"capability_reason,omitempty"`
}

// Canvas is the consolidated design matrix. The Max fields are the largest
// magnitudes per scope column, never below 1, for scaling bar charts.
type Canvas struct {
	Rows              []CanvasRow `json:"rows"`
	MaxInitialScope   float64     `json:"max_initial_scope"`
	MaxRefinedScope   float64     `json:"max_refined_scope"`
	MaxConcludedScope float64     `json:"max_concluded_scope"`
}

// BuildCanvas scores every factor and both scopes and applies the canvas
// adjustments. Rows follow catalogue order.
func (s *Scorer) BuildCanvas(inputs UserInputs, weights FactorWeights, adjustments Adjustments) Canvas {
	perFactor := make(map[string]map[string]float64)
	for _, id := range catalog.FactorIDs() {
		scores := make(map[string]float64, catalog.ObjectiveCount())
		for _, r := range s.ScoreFactor(inputs, id) {
			scores[r.ObjectiveID] = r.RelativeImportance
		}
		perFactor[id] = scores
	}
	initial := byObjective(s.InitialScope(inputs, weights))
	refined := byObjective(s.RefinedScope(inputs, weights))

	canvas := Canvas{MaxInitialScope: 1, MaxRefinedScope: 1, MaxConcludedScope: 1}
	for _, obj := range catalog.Objectives() {
		row := CanvasRow{
			ObjectiveID:   obj.ID,
			ObjectiveName: obj.Name,
			Domain:        obj.Domain,
			FactorScores:  make(map[string]float64, len(perFactor)),
			InitialScope:  initial[obj.ID].FinalScore,
			RefinedScope:  refined[obj.ID].FinalScore,
		}
		for id, scores := range perFactor {
			row.FactorScores[id] = scores[obj.ID]
		}

		adj := adjustments[obj.ID]
		if adj.Adjustment != nil {
			row.Adjustment = *adj.Adjustment
		}
		row.AdjustmentReason = adj.AdjustmentReason
		row.CapabilityReason = adj.CapabilityReason
		row.ConcludedScope = row.RefinedScope + row.Adjustment
		row.SuggestedCapability = SuggestedCapabilityLevel(row.ConcludedScope)
		row.AgreedCapability = row.SuggestedCapability
		if adj.AgreedCapability != nil {
			row.AgreedCapability = *adj.AgreedCapability
		}

		canvas.MaxInitialScope = math.Max(canvas.MaxInitialScope, math.Abs(row.InitialScope))
		canvas.MaxRefinedScope = math.Max(canvas.MaxRefinedScope, math.Abs(row.RefinedScope))
		canvas.MaxConcludedScope = math.Max(canvas.MaxConcludedScope, math.Abs(row.ConcludedScope))
		canvas.Rows = append(canvas.Rows, row)
	}
	return canvas
}

func byObjective(results []ScoreResult) map[string]ScoreResult {
	m := make(map[string]ScoreResult, len(results))
	for _, r := range results {
		m[r.ObjectiveID] = r
	}
	return m
}
