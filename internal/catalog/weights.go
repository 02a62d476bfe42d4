package catalog

// WeightTable maps an item key to the weight of that item for each
// objective. Missing entries weigh 0.
type WeightTable map[string]map[string]float64

// Lookup returns the weight for key on objectiveID.
func (t WeightTable) Lookup(key, objectiveID string) float64 {
	return t[key][objectiveID]
}

var weightTables = map[string]WeightTable{
	"df1":  df1Weights,
	"df2":  df2Weights,
	"df3":  df3Weights,
	"df4":  df4Weights,
	"df5":  df5Weights,
	"df6":  df6Weights,
	"df7":  df7Weights,
	"df8":  df8Weights,
	"df9":  df9Weights,
	"df10": df10Weights,
}

// genericWeights merges every factor's table re-keyed by item id. Item ids
// are unique across factors.
var genericWeights = func() WeightTable {
	merged := WeightTable{}
	for _, f := range factors {
		table := weightTables[f.ID]
		for _, it := range f.Items {
			if row, ok := table[f.Key(it)]; ok {
				merged[it.ID] = row
			}
		}
	}
	return merged
}()

// Weight returns the weight of item key on objectiveID for factorID. The key
// is the item id or display name depending on the factor's WeightKey.
func Weight(factorID, key, objectiveID string) float64 {
	return weightTables[factorID].Lookup(key, objectiveID)
}

// GenericWeight consults the merged id-keyed table.
func GenericWeight(itemID, objectiveID string) float64 {
	return genericWeights.Lookup(itemID, objectiveID)
}
