package catalog

// df10Weights maps each adoption strategy to its per-objective weight.
var df10Weights = WeightTable{
	"first_mover": {
		"EDM01": 2.5, "EDM02": 2.5, "EDM03": 1, "EDM04": 2, "EDM05": 1, "APO01": 1.5, "APO02": 2.5, "APO03": 1,
		"APO04": 2, "APO05": 2.5, "APO06": 1, "APO07": 1, "APO08": 1.5, "APO09": 1, "APO10": 1.5, "APO11": 1,
		"APO12": 1.5, "APO13": 1, "APO14": 1.5, "BAI01": 2.5, "BAI02": 2, "BAI03": 2.5, "BAI04": 1, "BAI05": 2,
		"BAI06": 1.5, "BAI07": 2, "BAI08": 1, "BAI09": 1, "BAI10": 1, "BAI11": 2, "DSS01": 1, "DSS02": 1,
		"DSS03": 1, "DSS04": 1, "DSS05": 1, "DSS06": 1, "MEA01": 2, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
	"follower": {
		"EDM01": 2.5, "EDM02": 2.5, "EDM03": 1, "EDM04": 2, "EDM05": 1, "APO01": 1.5, "APO02": 3, "APO03": 1,
		"APO04": 3, "APO05": 2.5, "APO06": 1.5, "APO07": 1, "APO08": 1.5, "APO09": 1.5, "APO10": 1.5, "APO11": 1.5,
		"APO12": 1.5, "APO13": 1, "APO14": 2, "BAI01": 3, "BAI02": 2.5, "BAI03": 2.5, "BAI04": 1.5, "BAI05": 2,
		"BAI06": 2, "BAI07": 2.5, "BAI08": 1, "BAI09": 1, "BAI10": 1, "BAI11": 2.5, "DSS01": 1, "DSS02": 1,
		"DSS03": 1, "DSS04": 1, "DSS05": 1, "DSS06": 1, "MEA01": 2, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
	"slow_adopter": {
		"EDM01": 2.5, "EDM02": 3, "EDM03": 1.5, "EDM04": 2, "EDM05": 1.5, "APO01": 2, "APO02": 3, "APO03": 2,
		"APO04": 3, "APO05": 2.5, "APO06": 1, "APO07": 2.5, "APO08": 2.5, "APO09": 1.5, "APO10": 2, "APO11": 1.5,
		"APO12": 1.5, "APO13": 1, "APO14": 2, "BAI01": 3, "BAI02": 2.5, "BAI03": 2.5, "BAI04": 1.5, "BAI05": 2,
		"BAI06": 2, "BAI07": 2.5, "BAI08": 1.5, "BAI09": 1, "BAI10": 1.5, "BAI11": 2.5, "DSS01": 1, "DSS02": 1,
		"DSS03": 1.5, "DSS04": 1.5, "DSS05": 1.5, "DSS06": 1, "MEA01": 2, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
}
