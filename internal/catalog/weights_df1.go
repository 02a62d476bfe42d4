package catalog

// df1Weights maps each strategy archetype to its per-objective weight.
var df1Weights = WeightTable{
	"growth": {
		"EDM01": 1, "EDM02": 1, "EDM03": 1, "EDM04": 3, "EDM05": 1.5, "APO01": 1, "APO02": 4, "APO03": 1,
		"APO04": 2, "APO05": 2, "APO06": 2, "APO07": 1, "APO08": 1.5, "APO09": 1.5, "APO10": 1, "APO11": 1.5,
		"APO12": 2, "APO13": 1.5, "APO14": 1, "BAI01": 2, "BAI02": 1.5, "BAI03": 1, "BAI04": 1, "BAI05": 2,
		"BAI06": 1, "BAI07": 1, "BAI08": 1.5, "BAI09": 1, "BAI10": 1, "BAI11": 3, "DSS01": 1, "DSS02": 1.5,
		"DSS03": 2, "DSS04": 2.5, "DSS05": 1, "DSS06": 1, "MEA01": 1, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
	"innovation": {
		"EDM01": 1.5, "EDM02": 1.5, "EDM03": 1.5, "EDM04": 1, "EDM05": 2, "APO01": 1, "APO02": 2, "APO03": 2,
		"APO04": 1.5, "APO05": 4, "APO06": 1.5, "APO07": 2, "APO08": 2, "APO09": 2, "APO10": 2, "APO11": 1.5,
		"APO12": 1.5, "APO13": 2, "APO14": 1, "BAI01": 3, "BAI02": 1, "BAI03": 1.5, "BAI04": 2, "BAI05": 1.5,
		"BAI06": 2.5, "BAI07": 2.5, "BAI08": 2.5, "BAI09": 1, "BAI10": 1, "BAI11": 2, "DSS01": 1, "DSS02": 2,
		"DSS03": 1, "DSS04": 1.5, "DSS05": 1.5, "DSS06": 1, "MEA01": 1, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
	"cost": {
		"EDM01": 1.5, "EDM02": 2, "EDM03": 1.5, "EDM04": 1.5, "EDM05": 1.5, "APO01": 1, "APO02": 1.5, "APO03": 1.5,
		"APO04": 1.5, "APO05": 1.5, "APO06": 2.5, "APO07": 1, "APO08": 1, "APO09": 1, "APO10": 3, "APO11": 3,
		"APO12": 1.5, "APO13": 1, "APO14": 1, "BAI01": 2.5, "BAI02": 1, "BAI03": 1, "BAI04": 1.5, "BAI05": 2.5,
		"BAI06": 1.5, "BAI07": 1, "BAI08": 1.5, "BAI09": 1, "BAI10": 1, "BAI11": 2, "DSS01": 1, "DSS02": 2,
		"DSS03": 1.5, "DSS04": 2, "DSS05": 1.5, "DSS06": 1, "MEA01": 1, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
	"client": {
		"EDM01": 1, "EDM02": 3.5, "EDM03": 1, "EDM04": 2, "EDM05": 1, "APO01": 1, "APO02": 2, "APO03": 3.5,
		"APO04": 2, "APO05": 3.5, "APO06": 1.5, "APO07": 1, "APO08": 2.5, "APO09": 3, "APO10": 1, "APO11": 1,
		"APO12": 1, "APO13": 1, "APO14": 1, "BAI01": 1.5, "BAI02": 1, "BAI03": 1, "BAI04": 1.5, "BAI05": 2.5,
		"BAI06": 1.5, "BAI07": 1.5, "BAI08": 1, "BAI09": 1, "BAI10": 1, "BAI11": 2, "DSS01": 1.5, "DSS02": 1.5,
		"DSS03": 1.5, "DSS04": 1, "DSS05": 1.5, "DSS06": 1.5, "MEA01": 1, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
}
