package catalog

// df7Weights maps each role of IT display name to its per-objective weight.
var df7Weights = WeightTable{
	"Support": {
		"EDM01": 3, "EDM02": 1, "EDM03": 1.5, "EDM04": 1, "EDM05": 1, "APO01": 1, "APO02": 2, "APO03": 1.5,
		"APO04": 2, "APO05": 2.5, "APO06": 1, "APO07": 1, "APO08": 3, "APO09": 2, "APO10": 2.5, "APO11": 1,
		"APO12": 2, "APO13": 2.5, "APO14": 1, "BAI01": 2, "BAI02": 1, "BAI03": 3.5, "BAI04": 1.5, "BAI05": 1,
		"BAI06": 2.5, "BAI07": 2, "BAI08": 1, "BAI09": 1.5, "BAI10": 1.5, "BAI11": 1.5, "DSS01": 1.5, "DSS02": 1.5,
		"DSS03": 2, "DSS04": 2, "DSS05": 2, "DSS06": 1.5, "MEA01": 1.5, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
	"Factory": {
		"EDM01": 2.5, "EDM02": 3, "EDM03": 2, "EDM04": 1.5, "EDM05": 2, "APO01": 1.5, "APO02": 3, "APO03": 1.5,
		"APO04": 2.5, "APO05": 2, "APO06": 1, "APO07": 1, "APO08": 1, "APO09": 2, "APO10": 2.5, "APO11": 1.5,
		"APO12": 1, "APO13": 1.5, "APO14": 2.5, "BAI01": 2, "BAI02": 1, "BAI03": 1.5, "BAI04": 1.5, "BAI05": 1.5,
		"BAI06": 1, "BAI07": 2, "BAI08": 1, "BAI09": 1.5, "BAI10": 1, "BAI11": 1.5, "DSS01": 4, "DSS02": 2.5,
		"DSS03": 3, "DSS04": 2, "DSS05": 1, "DSS06": 1.5, "MEA01": 1.5, "MEA02": 1.5, "MEA03": 1.5, "MEA04": 1.5,
	},
	"Turnaround": {
		"EDM01": 1.5, "EDM02": 2, "EDM03": 2.5, "EDM04": 1.5, "EDM05": 1, "APO01": 2.5, "APO02": 1.5, "APO03": 1,
		"APO04": 1.5, "APO05": 1, "APO06": 1, "APO07": 1, "APO08": 1.5, "APO09": 1, "APO10": 1, "APO11": 2.5,
		"APO12": 2.5, "APO13": 1, "APO14": 1.5, "BAI01": 1, "BAI02": 3.5, "BAI03": 2, "BAI04": 1.5, "BAI05": 1,
		"BAI06": 1, "BAI07": 1, "BAI08": 1, "BAI09": 1, "BAI10": 2, "BAI11": 1.5, "DSS01": 1.5, "DSS02": 1.5,
		"DSS03": 2, "DSS04": 2, "DSS05": 3, "DSS06": 1.5, "MEA01": 1, "MEA02": 1.5, "MEA03": 1, "MEA04": 1,
	},
	"Strategic": {
		"EDM01": 1.5, "EDM02": 1.5, "EDM03": 2, "EDM04": 1, "EDM05": 1, "APO01": 1.5, "APO02": 1.5, "APO03": 2,
		"APO04": 3, "APO05": 2, "APO06": 2, "APO07": 1.5, "APO08": 1, "APO09": 1.5, "APO10": 1, "APO11": 1,
		"APO12": 2, "APO13": 2.5, "APO14": 1.5, "BAI01": 1.5, "BAI02": 2.5, "BAI03": 1, "BAI04": 2.5, "BAI05": 1.5,
		"BAI06": 2, "BAI07": 1, "BAI08": 2, "BAI09": 1, "BAI10": 1, "BAI11": 1.5, "DSS01": 1.5, "DSS02": 3,
		"DSS03": 2, "DSS04": 3, "DSS05": 3, "DSS06": 1, "MEA01": 1, "MEA02": 1, "MEA03": 1, "MEA04": 1.5,
	},
}
