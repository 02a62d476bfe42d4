// Package catalog holds the frozen COBIT 2019 reference data: governance
// objectives, design factor descriptors, baselines and weight tables.
// Everything here is read-only after package initialisation.
package catalog

// Objective is one of the 40 governance and management objectives.
type Objective struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Domain string `json:"domain" yaml:"domain"`
}

// Catalogue order is the default display and iteration order.
var objectives = []Objective{
	{ID: "EDM01", Name: "Ensured Governance Framework Setting and Maintenance", Domain: "EDM"},
	{ID: "EDM02", Name: "Ensured Benefits Delivery", Domain: "EDM"},
	{ID: "EDM03", Name: "Ensured Risk Optimisation", Domain: "EDM"},
	{ID: "EDM04", Name: "Ensured Resource Optimisation", Domain: "EDM"},
	{ID: "EDM05", Name: "Ensured Stakeholder Engagement", Domain: "EDM"},
	{ID: "APO01", Name: "Managed I&T Management Framework", Domain: "APO"},
	{ID: "APO02", Name: "Managed Strategy", Domain: "APO"},
	{ID: "APO03", Name: "Managed Enterprise Architecture", Domain: "APO"},
	{ID: "APO04", Name: "Managed Innovation", Domain: "APO"},
	{ID: "APO05", Name: "Managed Portfolio", Domain: "APO"},
	{ID: "APO06", Name: "Managed Budget and Costs", Domain: "APO"},
	{ID: "APO07", Name: "Managed Human Resources", Domain: "APO"},
	{ID: "APO08", Name: "Managed Relationships", Domain: "APO"},
	{ID: "APO09", Name: "Managed Service Agreements", Domain: "APO"},
	{ID: "APO10", Name: "Managed Vendors", Domain: "APO"},
	{ID: "APO11", Name: "Managed Quality", Domain: "APO"},
	{ID: "APO12", Name: "Managed Risk", Domain: "APO"},
	{ID: "APO13", Name: "Managed Security", Domain: "APO"},
	{ID: "APO14", Name: "Managed Data", Domain: "APO"},
	{ID: "BAI01", Name: "Managed Programmes", Domain: "BAI"},
	{ID: "BAI02", Name: "Managed Requirements Definition", Domain: "BAI"},
	{ID: "BAI03", Name: "Managed Solutions Identification and Build", Domain: "BAI"},
	{ID: "BAI04", Name: "Managed Availability and Capacity", Domain: "BAI"},
	{ID: "BAI05", Name: "Managed Organisational Change", Domain: "BAI"},
	{ID: "BAI06", Name: "Managed IT Changes", Domain: "BAI"},
	{ID: "BAI07", Name: "Managed IT Change Acceptance and Transitioning", Domain: "BAI"},
	{ID: "BAI08", Name: "Managed Knowledge", Domain: "BAI"},
	{ID: "BAI09", Name: "Managed Assets", Domain: "BAI"},
	{ID: "BAI10", Name: "Managed Configuration", Domain: "BAI"},
	{ID: "BAI11", Name: "Managed Projects", Domain: "BAI"},
	{ID: "DSS01", Name: "Managed Operations", Domain: "DSS"},
	{ID: "DSS02", Name: "Managed Service Requests and Incidents", Domain: "DSS"},
	{ID: "DSS03", Name: "Managed Problems", Domain: "DSS"},
	{ID: "DSS04", Name: "Managed Continuity", Domain: "DSS"},
	{ID: "DSS05", Name: "Managed Security Services", Domain: "DSS"},
	{ID: "DSS06", Name: "Managed Business Process Controls", Domain: "DSS"},
	{ID: "MEA01", Name: "Managed Performance and Conformance Monitoring", Domain: "MEA"},
	{ID: "MEA02", Name: "Managed System of Internal Control", Domain: "MEA"},
	{ID: "MEA03", Name: "Managed Compliance with External Requirements", Domain: "MEA"},
	{ID: "MEA04", Name: "Managed Assurance", Domain: "MEA"},
}

var objectiveIndex = func() map[string]int {
	idx := make(map[string]int, len(objectives))
	for i, o := range objectives {
		idx[o.ID] = i
	}
	return idx
}()

// Objectives returns the catalogue in display order. The slice is a copy.
func Objectives() []Objective {
	out := make([]Objective, len(objectives))
	copy(out, objectives)
	return out
}

// ObjectiveCount is the fixed size of every result vector.
func ObjectiveCount() int { return len(objectives) }

// LookupObjective finds an objective by id.
func LookupObjective(id string) (Objective, bool) {
	i, ok := objectiveIndex[id]
	if !ok {
		return Objective{}, false
	}
	return objectives[i], true
}

// ObjectivePosition returns the catalogue index of id, or -1.
func ObjectivePosition(id string) int {
	if i, ok := objectiveIndex[id]; ok {
		return i
	}
	return -1
}
