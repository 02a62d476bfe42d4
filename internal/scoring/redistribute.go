package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
)

// Redistribute moves one slider of a percentage factor to value and spreads
// the remainder over the other items in proportion to their previous shares
// (equally when those were all zero). Values are whole percentages and the
// group always sums to exactly 100.
func Redistribute(f catalog.Factor, values map[string]float64, itemID string, value float64) (map[string]float64, error) {
	if f.Type != catalog.TypePercentage {
		return nil, fmt.Errorf("%w: factor %s is not a percentage split", ErrInvalidInput, f.ID)
	}
	if _, ok := f.Item(itemID); !ok {
		return nil, fmt.Errorf("%w: factor %s has no item %q", ErrInvalidInput, f.ID, itemID)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: value is not finite", ErrInvalidInput)
	}

	out := make(map[string]float64, len(f.Items))
	changed := math.Min(100, math.Max(0, roundHalfUp(value)))

	var others []string
	for _, it := range f.Items {
		if it.ID != itemID {
			others = append(others, it.ID)
		}
	}
	if len(others) == 0 {
		out[itemID] = 100
		return out, nil
	}
	out[itemID] = changed

	remaining := 100 - changed
	prev := make([]float64, len(others))
	var prevSum float64
	for i, id := range others {
		v := values[id]
		if math.IsNaN(v) || v < 0 {
			v = 0
		}
		prev[i] = v
		prevSum += v
	}

	type share struct {
		idx  int
		frac float64
	}
	shares := make([]share, len(others))
	var assigned float64
	for i, id := range others {
		exact := remaining / float64(len(others))
		if prevSum > 0 {
			exact = remaining * prev[i] / prevSum
		}
		whole := math.Floor(exact)
		out[id] = whole
		assigned += whole
		shares[i] = share{idx: i, frac: exact - whole}
	}

	// Largest remainder; ties keep catalogue order.
	sort.SliceStable(shares, func(a, b int) bool { return shares[a].frac > shares[b].frac })
	leftover := int(math.Round(remaining - assigned))
	for i := 0; i < leftover; i++ {
		out[others[shares[i%len(shares)].idx]]++
	}
	return out, nil
}

// PercentageTotal sums a factor's percentage answers.
func PercentageTotal(f catalog.Factor, in FactorInputs) float64 {
	var total float64
	for _, it := range f.Items {
		if v, ok := in[it.ID]; ok {
			total += v.Number
		}
	}
	return total
}

// FactorPercentageTotal is PercentageTotal for a percentage factor that has
// answers, and nil otherwise. A split that is not 100 still scores; callers
// surface the total so the user can fix it.
func FactorPercentageTotal(inputs UserInputs, factorID string) *float64 {
	f, ok := catalog.LookupFactor(factorID)
	if !ok || f.Type != catalog.TypePercentage {
		return nil
	}
	in, ok := inputs[factorID]
	if !ok || len(in) == 0 {
		return nil
	}
	total := PercentageTotal(f, in)
	return &total
}
