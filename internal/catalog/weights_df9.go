package catalog

// df9Weights maps each implementation method to its per-objective weight.
var df9Weights = WeightTable{
	"agile": {
		"EDM01": 1, "EDM02": 1, "EDM03": 1, "EDM04": 1, "EDM05": 1, "APO01": 1, "APO02": 1, "APO03": 1,
		"APO04": 1, "APO05": 1, "APO06": 1, "APO07": 1, "APO08": 1, "APO09": 1, "APO10": 1, "APO11": 1,
		"APO12": 1, "APO13": 1, "APO14": 1, "BAI01": 2, "BAI02": 2.5, "BAI03": 4, "BAI04": 1, "BAI05": 2.5,
		"BAI06": 2.5, "BAI07": 2.5, "BAI08": 1, "BAI09": 1, "BAI10": 1.5, "BAI11": 1.5, "DSS01": 2, "DSS02": 1,
		"DSS03": 1, "DSS04": 1, "DSS05": 1, "DSS06": 1, "MEA01": 1.5, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
	"devops": {
		"EDM01": 1, "EDM02": 1, "EDM03": 1, "EDM04": 1, "EDM05": 1, "APO01": 1, "APO02": 1, "APO03": 2,
		"APO04": 1, "APO05": 1, "APO06": 1, "APO07": 1.5, "APO08": 1, "APO09": 1, "APO10": 1, "APO11": 1,
		"APO12": 1.5, "APO13": 1, "APO14": 1, "BAI01": 1.5, "BAI02": 3.5, "BAI03": 3, "BAI04": 1, "BAI05": 1.5,
		"BAI06": 3.5, "BAI07": 2.5, "BAI08": 1, "BAI09": 1, "BAI10": 2, "BAI11": 2.5, "DSS01": 1, "DSS02": 1.5,
		"DSS03": 1.5, "DSS04": 1, "DSS05": 1, "DSS06": 1, "MEA01": 1.5, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
	"traditional": {
		"EDM01": 1, "EDM02": 1, "EDM03": 1, "EDM04": 1, "EDM05": 1, "APO01": 1, "APO02": 1, "APO03": 1,
		"APO04": 1, "APO05": 1, "APO06": 1, "APO07": 1, "APO08": 1, "APO09": 1, "APO10": 1, "APO11": 1,
		"APO12": 1, "APO13": 1, "APO14": 1, "BAI01": 1, "BAI02": 1, "BAI03": 1, "BAI04": 1, "BAI05": 1,
		"BAI06": 1, "BAI07": 1, "BAI08": 1, "BAI09": 1, "BAI10": 1, "BAI11": 1, "DSS01": 1, "DSS02": 1,
		"DSS03": 1, "DSS04": 1, "DSS05": 1, "DSS06": 1, "MEA01": 1, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
}
