package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Cobalt/internal/catalog"
)

// ErrInvalidInput marks answers whose shape does not match the owning
// factor's type.
var ErrInvalidInput = errors.New("invalid input")

// ValueKind tags an input value.
type ValueKind int

const (
	KindRating ValueKind = iota + 1
	KindRisk
	KindPercentage
)

// Value is a single answer: a rating, an impact/likelihood pair or a
// percentage share.
type Value struct {
	Kind       ValueKind
	Number     float64
	Impact     float64
	Likelihood float64
}

func RatingValue(v float64) Value { return Value{Kind: KindRating, Number: v} }

func RiskValue(impact, likelihood float64) Value {
	return Value{Kind: KindRisk, Impact: impact, Likelihood: likelihood}
}

func PercentageValue(p float64) Value { return Value{Kind: KindPercentage, Number: p} }

// Effective returns the scalar the scorers consume: impact x likelihood for
// risks, the number otherwise.
func (v Value) Effective() float64 {
	if v.Kind == KindRisk {
		return v.Impact * v.Likelihood
	}
	return v.Number
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == KindRisk {
		return json.Marshal(map[string]float64{"impact": v.Impact, "likelihood": v.Likelihood})
	}
	return json.Marshal(v.Number)
}

func (v Value) MarshalYAML() (interface{}, error) {
	if v.Kind == KindRisk {
		return map[string]float64{"impact": v.Impact, "likelihood": v.Likelihood}, nil
	}
	return v.Number, nil
}

// FactorInputs maps item id to answer.
type FactorInputs map[string]Value

// UserInputs maps factor id to that factor's answers. A factor that is
// absent scores as all zeros; a present but empty factor scores with
// defaults.
type UserInputs map[string]FactorInputs

// Clone returns a deep copy.
func (u UserInputs) Clone() UserInputs {
	out := make(UserInputs, len(u))
	for id, fi := range u {
		cp := make(FactorInputs, len(fi))
		for k, v := range fi {
			cp[k] = v
		}
		out[id] = cp
	}
	return out
}

func (u *UserInputs) UnmarshalJSON(data []byte) error {
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	decoded, err := DecodeInputs(raw)
	if err != nil {
		return err
	}
	*u = decoded
	return nil
}

func (u *UserInputs) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	decoded, err := DecodeInputs(raw)
	if err != nil {
		return err
	}
	*u = decoded
	return nil
}

// DecodeInputs resolves loosely typed answers against each factor's declared
// type. Unknown factors and items are dropped.
func DecodeInputs(raw map[string]map[string]any) (UserInputs, error) {
	out := make(UserInputs, len(raw))
	for factorID, items := range raw {
		f, ok := catalog.LookupFactor(factorID)
		if !ok {
			continue
		}
		fi := make(FactorInputs, len(items))
		// Sorted so the first reported error is stable.
		keys := make([]string, 0, len(items))
		for k := range items {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, itemID := range keys {
			if _, ok := f.Item(itemID); !ok {
				continue
			}
			v, err := decodeValue(f.Type, items[itemID])
			if err != nil {
				return nil, fmt.Errorf("%w: %s.%s: %v", ErrInvalidInput, factorID, itemID, err)
			}
			fi[itemID] = v
		}
		out[factorID] = fi
	}
	return out, nil
}

func decodeValue(t catalog.FactorType, raw any) (Value, error) {
	if t == catalog.TypeRating2D {
		m, ok := raw.(map[string]any)
		if !ok {
			return Value{}, errors.New("expected impact and likelihood")
		}
		impact, err := toFloat(m["impact"])
		if err != nil {
			return Value{}, fmt.Errorf("impact: %w", err)
		}
		likelihood, err := toFloat(m["likelihood"])
		if err != nil {
			return Value{}, fmt.Errorf("likelihood: %w", err)
		}
		return RiskValue(impact, likelihood), nil
	}

	n, err := toFloat(raw)
	if err != nil {
		return Value{}, err
	}
	if t == catalog.TypePercentage {
		return PercentageValue(n), nil
	}
	return RatingValue(n), nil
}

func toFloat(raw any) (float64, error) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, err
		}
		f = parsed
	case nil:
		return 0, errors.New("missing value")
	default:
		return 0, fmt.Errorf("expected a number, got %T", raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("value is not finite")
	}
	return f, nil
}

// DefaultInputs is the neutral profile: every item of every factor at its
// documented default.
func DefaultInputs() UserInputs {
	out := make(UserInputs)
	for _, f := range catalog.Factors() {
		fi := make(FactorInputs, len(f.Items))
		for _, it := range f.Items {
			switch f.Type {
			case catalog.TypeRating2D:
				fi[it.ID] = RiskValue(it.Default, it.Default)
			case catalog.TypePercentage:
				fi[it.ID] = PercentageValue(it.Default)
			default:
				fi[it.ID] = RatingValue(it.Default)
			}
		}
		out[f.ID] = fi
	}
	return out
}
