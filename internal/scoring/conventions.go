package scoring

import (
	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
)

// convention names one of the three weighting schemes. They are kept apart
// on purpose: each reproduces the published scoring sheet for its factors.
type convention int

const (
	// baselineRatio scales the weighted rating by totalBaseline/totalInput
	// before comparing it with the objective baseline.
	baselineRatio convention = iota
	// directPercentage weights percentage shares through a table keyed by
	// display name.
	directPercentage
	// generic weights through the merged id-keyed table and reports
	// relative importance as a plain ratio to the baseline.
	generic
)

var factorConventions = map[string]convention{
	"df1":  baselineRatio,
	"df2":  baselineRatio,
	"df3":  baselineRatio,
	"df4":  baselineRatio,
	"df5":  directPercentage,
	"df6":  generic,
	"df7":  baselineRatio,
	"df8":  directPercentage,
	"df9":  generic,
	"df10": generic,
}

// df1 reports its weighted score unrounded; the other baseline-ratio factors
// round to two decimals.
var unroundedFinal = map[string]bool{"df1": true}

// objectiveFunc computes one objective's row for a factor.
type objectiveFunc func(obj catalog.Objective) ScoreResult

func newObjectiveFunc(f catalog.Factor, in FactorInputs) objectiveFunc {
	switch factorConventions[f.ID] {
	case directPercentage:
		return directPercentageRows(f, in)
	case generic:
		return genericRows(f, in)
	default:
		return baselineRatioRows(f, in, !unroundedFinal[f.ID])
	}
}

// effectiveRatings fills missing items with the factor default; present
// values are taken as given.
func effectiveRatings(f catalog.Factor, in FactorInputs) []float64 {
	out := make([]float64, len(f.Items))
	for i, it := range f.Items {
		if v, ok := in[it.ID]; ok {
			out[i] = v.Effective()
			continue
		}
		if f.Type == catalog.TypeRating2D {
			out[i] = it.Default * it.Default
		} else {
			out[i] = it.Default
		}
	}
	return out
}

func baselineRatioRows(f catalog.Factor, in FactorInputs, roundFinal bool) objectiveFunc {
	ratings := effectiveRatings(f, in)

	var totalInput float64
	for _, r := range ratings {
		totalInput += r
	}
	totalBaseline := catalog.TotalItemBaseline(f.ID)

	// A zero input total zeroes the ratio rather than dividing by zero.
	var ratio float64
	if totalInput != 0 {
		ratio = totalBaseline / totalInput
	}

	return func(obj catalog.Objective) ScoreResult {
		var weighted float64
		for i, it := range f.Items {
			weighted += ratings[i] * catalog.Weight(f.ID, f.Key(it), obj.ID)
		}

		baseline := catalog.ObjectiveBaseline(obj.ID, f.ID)
		var ri float64
		if baseline > 0 {
			ri = Round5(ratio*100*weighted/baseline) - 100
		}

		final := weighted
		if roundFinal {
			final = Round2(weighted)
		}

		res := zeroResult(obj)
		res.RawScore = weighted
		res.FinalScore = final
		res.BaselineScore = baseline
		res.RelativeImportance = ri
		return res
	}
}

func directPercentageRows(f catalog.Factor, in FactorInputs) objectiveFunc {
	return func(obj catalog.Objective) ScoreResult {
		var raw float64
		for _, it := range f.Items {
			v, ok := in[it.ID]
			if !ok {
				continue
			}
			raw += v.Number / 100 * catalog.Weight(f.ID, f.Key(it), obj.ID)
		}
		final := Round2(raw)

		baseline := catalog.ObjectiveBaseline(obj.ID, f.ID)
		var ri float64
		if baseline > 0 {
			ri = Round5(final*100/baseline) - 100
		}

		res := zeroResult(obj)
		res.RawScore = raw
		res.FinalScore = final
		res.BaselineScore = baseline
		res.RelativeImportance = ri
		return res
	}
}

func genericRows(f catalog.Factor, in FactorInputs) objectiveFunc {
	type answer struct {
		itemID string
		rating float64
	}
	var answers []answer
	for _, it := range f.Items {
		v, ok := in[it.ID]
		if !ok {
			continue
		}
		// Values whose shape disagrees with the factor type are skipped.
		switch {
		case f.Type == catalog.TypeRating2D && v.Kind == KindRisk:
			answers = append(answers, answer{it.ID, v.Effective()})
		case f.Type != catalog.TypeRating2D && v.Kind != KindRisk:
			r := v.Number
			if f.Type == catalog.TypePercentage {
				r /= 100
			}
			answers = append(answers, answer{it.ID, r})
		}
	}

	return func(obj catalog.Objective) ScoreResult {
		var raw float64
		for _, a := range answers {
			raw += a.rating * catalog.GenericWeight(a.itemID, obj.ID)
		}
		final := Round2(raw)

		baseline := catalog.ObjectiveBaseline(obj.ID, f.ID)
		var ri float64
		if baseline != 0 {
			ri = final / baseline
		}

		res := zeroResult(obj)
		res.RawScore = raw
		res.FinalScore = final
		res.BaselineScore = baseline
		res.RelativeImportance = ri
		return res
	}
}
