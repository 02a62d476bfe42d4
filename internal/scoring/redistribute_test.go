package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(values map[string]float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func TestRedistributeProportional(t *testing.T) {
	df10 := mustFactor(t, "df10")
	values := map[string]float64{"first_mover": 15, "follower": 70, "slow_adopter": 15}

	out, err := Redistribute(df10, values, "first_mover", 30)
	require.NoError(t, err)
	assert.Equal(t, 30.0, out["first_mover"])
	// 70 left, split 70:15 -> 57.6 / 12.4
	assert.Equal(t, 58.0, out["follower"])
	assert.Equal(t, 12.0, out["slow_adopter"])
	assert.Equal(t, 100.0, sum(out))
}

func TestRedistributeEqualWhenOthersZero(t *testing.T) {
	df6 := mustFactor(t, "df6")
	values := map[string]float64{"df6_high": 0, "df6_normal": 100, "df6_low": 0}

	out, err := Redistribute(df6, values, "df6_normal", 45)
	require.NoError(t, err)
	assert.Equal(t, 45.0, out["df6_normal"])
	// 55 split equally between two zero items; the leftover unit goes first.
	assert.Equal(t, 28.0, out["df6_high"])
	assert.Equal(t, 27.0, out["df6_low"])
}

func TestRedistributeClamps(t *testing.T) {
	df5 := mustFactor(t, "df5")
	values := map[string]float64{"df5_high": 33, "df5_normal": 67}

	out, err := Redistribute(df5, values, "df5_high", 140)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"df5_high": 100, "df5_normal": 0}, out)

	out, err = Redistribute(df5, values, "df5_high", -3)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"df5_high": 0, "df5_normal": 100}, out)
}

func TestRedistributeAlwaysSumsTo100(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, id := range []string{"df5", "df6", "df8", "df9", "df10"} {
		f := mustFactor(t, id)
		values := map[string]float64{}
		for _, it := range f.Items {
			values[it.ID] = it.Default
		}
		for i := 0; i < 200; i++ {
			item := f.Items[rng.Intn(len(f.Items))]
			out, err := Redistribute(f, values, item.ID, rng.Float64()*120-10)
			require.NoError(t, err)
			if sum(out) != 100 {
				t.Fatalf("%s step %d: sum %f (%v)", id, i, sum(out), out)
			}
			for k, v := range out {
				if v < 0 || v > 100 || v != float64(int(v)) {
					t.Fatalf("%s step %d: bad value %s=%f", id, i, k, v)
				}
			}
			values = out
		}
	}
}

func TestRedistributeRejectsBadTargets(t *testing.T) {
	_, err := Redistribute(mustFactor(t, "df1"), nil, "growth", 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Redistribute(mustFactor(t, "df9"), nil, "waterfall", 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
