package catalog

// df6Weights maps each compliance level to its per-objective weight.
var df6Weights = WeightTable{
	"df6_high": {
		"EDM01": 4, "EDM02": 1, "EDM03": 4, "EDM04": 1, "EDM05": 1, "APO01": 3, "APO02": 1, "APO03": 1,
		"APO04": 1, "APO05": 1, "APO06": 1, "APO07": 1, "APO08": 1, "APO09": 1, "APO10": 1, "APO11": 1,
		"APO12": 4, "APO13": 2, "APO14": 3, "BAI01": 1, "BAI02": 1, "BAI03": 1, "BAI04": 1, "BAI05": 1,
		"BAI06": 1, "BAI07": 1, "BAI08": 1, "BAI09": 1, "BAI10": 1, "BAI11": 1, "DSS01": 1, "DSS02": 1,
		"DSS03": 1, "DSS04": 1, "DSS05": 2, "DSS06": 2, "MEA01": 1, "MEA02": 2, "MEA03": 4, "MEA04": 4,
	},
	"df6_normal": {
		"EDM01": 2, "EDM02": 1, "EDM03": 2, "EDM04": 1, "EDM05": 1, "APO01": 1.5, "APO02": 1, "APO03": 1,
		"APO04": 1, "APO05": 1, "APO06": 1, "APO07": 1, "APO08": 1, "APO09": 1, "APO10": 1, "APO11": 1,
		"APO12": 2, "APO13": 1, "APO14": 1.5, "BAI01": 1, "BAI02": 1, "BAI03": 1, "BAI04": 1, "BAI05": 1,
		"BAI06": 1, "BAI07": 1, "BAI08": 1, "BAI09": 1, "BAI10": 1, "BAI11": 1, "DSS01": 1, "DSS02": 1,
		"DSS03": 1, "DSS04": 1, "DSS05": 1, "DSS06": 1, "MEA01": 1, "MEA02": 1, "MEA03": 2, "MEA04": 2,
	},
	"df6_low": {
		"EDM01": 1, "EDM02": 1, "EDM03": 1, "EDM04": 1, "EDM05": 1, "APO01": 1, "APO02": 1, "APO03": 1,
		"APO04": 0.5, "APO05": 1, "APO06": 1, "APO07": 1, "APO08": 1, "APO09": 1, "APO10": 1, "APO11": 1,
		"APO12": 1, "APO13": 1, "APO14": 1, "BAI01": 1, "BAI02": 1, "BAI03": 1, "BAI04": 1, "BAI05": 1,
		"BAI06": 1, "BAI07": 1, "BAI08": 1, "BAI09": 1, "BAI10": 1, "BAI11": 1, "DSS01": 1, "DSS02": 1,
		"DSS03": 1, "DSS04": 1, "DSS05": 1, "DSS06": 1, "MEA01": 1, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
}
