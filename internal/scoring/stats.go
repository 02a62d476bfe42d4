package scoring

import (
	"math"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
)

// Summary describes the spread of a rating factor's answers.
type Summary struct {
	Average       float64 `json:"average"`
	StdDev        float64 `json:"std_dev"`
	BaselineRatio float64 `json:"baseline_ratio"`
}

// SummaryStatistics computes the population mean and standard deviation of a
// rating factor's effective answers and the ratio of the baseline average to
// that mean. It returns nil for percentage and radio factors.
//
// baselines is keyed by item id; df4 reads its shared value from "default"
// and df3 falls back to 9 per item.
func SummaryStatistics(f catalog.Factor, in FactorInputs, baselines map[string]float64) *Summary {
	if !f.Type.IsRating() || len(f.Items) == 0 {
		return nil
	}

	values := statisticsRatings(f, in)
	mean, stdDev := meanStdDev(values)
	sum := &Summary{Average: mean, StdDev: stdDev}

	var base []float64
	switch f.ID {
	case "df4":
		v, ok := baselines["default"]
		if !ok || v == 0 {
			v = catalog.IssueBaseline
		}
		base = make([]float64, len(f.Items))
		for i := range base {
			base[i] = v
		}
	case "df3":
		for _, it := range f.Items {
			v, ok := baselines[it.ID]
			if !ok || v == 0 {
				v = catalog.RiskBaseline
			}
			base = append(base, v)
		}
	default:
		for _, it := range f.Items {
			if v, ok := baselines[it.ID]; ok {
				base = append(base, v)
			}
		}
	}
	if len(base) == 0 {
		return sum
	}

	baseMean, _ := meanStdDev(base)
	if mean != 0 {
		sum.BaselineRatio = baseMean / mean
	}
	return sum
}

// statisticsRatings is effectiveRatings except that a zero single-axis rating
// counts as unanswered and takes the item default. Risk products are kept as
// given.
func statisticsRatings(f catalog.Factor, in FactorInputs) []float64 {
	values := effectiveRatings(f, in)
	if f.Type == catalog.TypeRating2D {
		return values
	}
	for i, it := range f.Items {
		if values[i] == 0 {
			values[i] = it.Default
		}
	}
	return values
}

// FactorStatistics runs SummaryStatistics against the catalogue baselines.
func FactorStatistics(inputs UserInputs, factorID string) *Summary {
	f, ok := catalog.LookupFactor(factorID)
	if !ok {
		return nil
	}
	baselines := catalog.ItemBaselines(factorID)
	if factorID == "df4" {
		baselines = map[string]float64{"default": catalog.IssueBaseline}
	}
	return SummaryStatistics(f, inputs[factorID], baselines)
}

func meanStdDev(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	n := float64(len(values))
	for _, v := range values {
		mean += v
	}
	mean /= n
	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(variance / n)
}
