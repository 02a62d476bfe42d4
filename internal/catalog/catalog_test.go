package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectivesCatalogue(t *testing.T) {
	objs := Objectives()
	require.Len(t, objs, 40)
	assert.Equal(t, 40, ObjectiveCount())

	seen := map[string]bool{}
	for i, o := range objs {
		assert.False(t, seen[o.ID], "duplicate objective %s", o.ID)
		seen[o.ID] = true
		assert.Equal(t, o.ID[:3], o.Domain)
		assert.Equal(t, i, ObjectivePosition(o.ID))
	}
	assert.Equal(t, "EDM01", objs[0].ID)
	assert.Equal(t, "MEA04", objs[39].ID)
	assert.Equal(t, -1, ObjectivePosition("XYZ99"))

	objs[0].Name = "mutated"
	o, ok := LookupObjective("EDM01")
	require.True(t, ok)
	assert.NotEqual(t, "mutated", o.Name)
}

func TestFactorDescriptors(t *testing.T) {
	fs := Factors()
	require.Len(t, fs, 10)
	assert.Equal(t, []string{"df1", "df2", "df3", "df4"}, InitialScopeFactorIDs())

	counts := map[string]int{"df1": 4, "df2": 13, "df3": 19, "df4": 20, "df5": 2, "df6": 3, "df7": 4, "df8": 3, "df9": 3, "df10": 3}
	itemIDs := map[string]bool{}
	for _, f := range fs {
		assert.Len(t, f.Items, counts[f.ID], f.ID)
		assert.Contains(t, weightTables, f.ID)
		for _, it := range f.Items {
			assert.False(t, itemIDs[it.ID], "item id %s reused", it.ID)
			itemIDs[it.ID] = true
		}
		if f.Type == TypePercentage {
			var sum float64
			for _, it := range f.Items {
				sum += it.Default
			}
			assert.Equal(t, 100.0, sum, "%s defaults must sum to 100", f.ID)
		}
	}
}

func TestFactorCloneIsolation(t *testing.T) {
	f, ok := LookupFactor("df1")
	require.True(t, ok)
	f.Items[0].Name = "changed"

	again, _ := LookupFactor("df1")
	assert.Equal(t, "Growth/Acquisition", again.Items[0].Name)
}

func TestFactorKey(t *testing.T) {
	df5, _ := LookupFactor("df5")
	assert.Equal(t, "High", df5.Key(df5.Items[0]))
	df6, _ := LookupFactor("df6")
	assert.Equal(t, "df6_high", df6.Key(df6.Items[0]))
	df7, _ := LookupFactor("df7")
	assert.Equal(t, "Support", df7.Key(df7.Items[0]))
}

func TestItemBaselines(t *testing.T) {
	v, ok := ItemBaseline("df3", "risk07")
	require.True(t, ok)
	assert.Equal(t, 9.0, v)

	v, ok = ItemBaseline("df4", "issue13")
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = ItemBaseline("df8", "insourced")
	require.True(t, ok)
	assert.Equal(t, 34.0, v)

	_, ok = ItemBaseline("df1", "nope")
	assert.False(t, ok)
	_, ok = ItemBaseline("df99", "growth")
	assert.False(t, ok)

	assert.Equal(t, 12.0, TotalItemBaseline("df1"))
	assert.Equal(t, 171.0, TotalItemBaseline("df3"))
	assert.Equal(t, 40.0, TotalItemBaseline("df4"))
}

func TestObjectiveBaselines(t *testing.T) {
	assert.Equal(t, 15.0, ObjectiveBaseline("EDM01", "df1"))
	assert.Equal(t, 189.0, ObjectiveBaseline("EDM01", "df3"))
	assert.Equal(t, 2.5, ObjectiveBaseline("EDM01", "df10"))
	assert.Equal(t, 0.0, ObjectiveBaseline("EDM01", "df99"))
	assert.Equal(t, 0.0, ObjectiveBaseline("ZZZ01", "df1"))

	for _, o := range Objectives() {
		for _, id := range FactorIDs() {
			assert.Greater(t, ObjectiveBaseline(o.ID, id), 0.0, "%s/%s", o.ID, id)
		}
	}
}

// The baseline profile weighted through each table must reproduce the
// objective baselines, otherwise neutral inputs would not score as neutral.
func TestWeightTablesReproduceObjectiveBaselines(t *testing.T) {
	for _, f := range Factors() {
		for _, o := range Objectives() {
			var weighted float64
			for _, it := range f.Items {
				base, _ := ItemBaseline(f.ID, it.ID)
				if f.Type == TypePercentage {
					base /= 100
				}
				weighted += base * Weight(f.ID, f.Key(it), o.ID)
			}
			want := ObjectiveBaseline(o.ID, f.ID)
			assert.True(t, math.Abs(weighted-want) < 1e-6, "%s/%s: got %v want %v", f.ID, o.ID, weighted, want)
		}
	}
}

func TestGenericWeightsKeyedByID(t *testing.T) {
	assert.Equal(t, Weight("df9", "agile", "BAI03"), GenericWeight("agile", "BAI03"))
	assert.Equal(t, Weight("df5", "High", "EDM03"), GenericWeight("df5_high", "EDM03"))
	assert.Equal(t, Weight("df3", "risk01", "APO05"), GenericWeight("risk01", "APO05"))
	assert.Equal(t, 0.0, GenericWeight("unknown", "APO05"))
}

func TestFactorTypeIsRating(t *testing.T) {
	assert.True(t, TypeRating.IsRating())
	assert.True(t, TypeRating13.IsRating())
	assert.True(t, TypeRating2D.IsRating())
	assert.False(t, TypePercentage.IsRating())
	assert.False(t, TypeRadio.IsRating())
}
