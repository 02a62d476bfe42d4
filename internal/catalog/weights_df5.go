package catalog

// df5Weights maps each threat level display name to its per-objective weight.
var df5Weights = WeightTable{
	"High": {
		"EDM01": 3, "EDM02": 1, "EDM03": 4, "EDM04": 1, "EDM05": 2, "APO01": 3, "APO02": 1, "APO03": 3,
		"APO04": 1, "APO05": 1, "APO06": 1, "APO07": 2, "APO08": 1, "APO09": 2, "APO10": 3, "APO11": 2,
		"APO12": 4, "APO13": 4, "APO14": 3, "BAI01": 1, "BAI02": 1, "BAI03": 1, "BAI04": 2, "BAI05": 1,
		"BAI06": 3, "BAI07": 1, "BAI08": 1, "BAI09": 1, "BAI10": 3, "BAI11": 1, "DSS01": 1, "DSS02": 3,
		"DSS03": 2, "DSS04": 4, "DSS05": 3, "DSS06": 3, "MEA01": 3, "MEA02": 2, "MEA03": 3, "MEA04": 3,
	},
	"Normal": {
		"EDM01": 1, "EDM02": 1, "EDM03": 1, "EDM04": 1, "EDM05": 1, "APO01": 1, "APO02": 1, "APO03": 1,
		"APO04": 1, "APO05": 1, "APO06": 1, "APO07": 1, "APO08": 1, "APO09": 1, "APO10": 1, "APO11": 1,
		"APO12": 1, "APO13": 1, "APO14": 1, "BAI01": 1, "BAI02": 1, "BAI03": 1, "BAI04": 1, "BAI05": 1,
		"BAI06": 1, "BAI07": 1, "BAI08": 1, "BAI09": 1, "BAI10": 1, "BAI11": 1, "DSS01": 1, "DSS02": 1,
		"DSS03": 1, "DSS04": 1, "DSS05": 1, "DSS06": 1, "MEA01": 1, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
}
