package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
)

// FactorWeights holds the user-assigned multiplier of each factor in the
// scope aggregations. Factors without an entry, or with a zero entry, weigh 1.
type FactorWeights map[string]float64

// DefaultFactorWeights returns weight 1 for every factor.
func DefaultFactorWeights() FactorWeights {
	w := make(FactorWeights)
	for _, id := range catalog.FactorIDs() {
		w[id] = 1
	}
	return w
}

// Weight returns the multiplier for factorID. A zero weight is treated as
// unset, the same as a cleared weight field, so a factor cannot be switched
// off by weighting.
func (w FactorWeights) Weight(factorID string) float64 {
	if v := w[factorID]; v != 0 {
		return v
	}
	return 1
}

// Merge returns a copy of w with other's entries layered on top.
func (w FactorWeights) Merge(other FactorWeights) FactorWeights {
	out := make(FactorWeights, len(w)+len(other))
	for k, v := range w {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Validate rejects unknown factors and negative or non-finite weights.
func (w FactorWeights) Validate() error {
	ids := make([]string, 0, len(w))
	for id := range w {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, ok := catalog.LookupFactor(id); !ok {
			return fmt.Errorf("%w: unknown factor %q", ErrInvalidInput, id)
		}
		v := w[id]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: weight for %s is not finite", ErrInvalidInput, id)
		}
		if v < 0 {
			return fmt.Errorf("%w: negative weight for %s: %f", ErrInvalidInput, id, v)
		}
	}
	return nil
}
