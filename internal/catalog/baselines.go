package catalog

const (
	// RiskBaseline is the neutral impact x likelihood product (3 x 3).
	RiskBaseline = 9.0
	// IssueBaseline is the neutral rating shared by every df4 item.
	IssueBaseline = 2.0
)

// ItemBaseline returns the neutral reference input for one item. df3 and df4
// fall back to a single scalar for every item.
func ItemBaseline(factorID, itemID string) (float64, bool) {
	f, ok := LookupFactor(factorID)
	if !ok {
		return 0, false
	}
	switch f.ID {
	case "df3":
		return RiskBaseline, true
	case "df4":
		return IssueBaseline, true
	}
	it, ok := f.Item(itemID)
	if !ok {
		return 0, false
	}
	return it.Default, true
}

// ItemBaselines returns the baseline value of every item of a factor, keyed by
// item id.
func ItemBaselines(factorID string) map[string]float64 {
	f, ok := LookupFactor(factorID)
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(f.Items))
	for _, it := range f.Items {
		if v, ok := ItemBaseline(factorID, it.ID); ok {
			out[it.ID] = v
		}
	}
	return out
}

// TotalItemBaseline sums ItemBaselines for a factor.
func TotalItemBaseline(factorID string) float64 {
	var total float64
	for _, v := range ItemBaselines(factorID) {
		total += v
	}
	return total
}

// ObjectiveBaseline is the weighted score the baseline input profile
// produces for objective under factor. Zero when absent.
func ObjectiveBaseline(objectiveID, factorID string) float64 {
	return objectiveBaselines[objectiveID][factorID]
}
