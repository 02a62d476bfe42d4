package catalog

// df2Weights maps each enterprise goal to its per-objective weight.
var df2Weights = WeightTable{
	"eg01": {
		"EDM01": 3, "EDM02": 5, "EDM03": 1, "EDM04": 5, "EDM05": 3, "APO01": 2, "APO02": 5, "APO03": 3,
		"APO04": 5, "APO05": 5, "APO06": 2, "APO07": 5, "APO08": 5, "APO09": 1, "APO10": 3, "APO11": 5,
		"APO12": 1, "APO13": 2, "APO14": 1, "BAI01": 2, "BAI02": 5, "BAI03": 5, "BAI04": 4, "BAI05": 5,
		"BAI06": 0, "BAI07": 1, "BAI08": 3, "BAI09": 2, "BAI10": 0, "BAI11": 5, "DSS01": 5, "DSS02": 2,
		"DSS03": 5, "DSS04": 2, "DSS05": 2, "DSS06": 4, "MEA01": 5, "MEA02": 1, "MEA03": 1, "MEA04": 1,
	},
	"eg02": {
		"EDM01": 1, "EDM02": 1, "EDM03": 1, "EDM04": 2, "EDM05": 1, "APO01": 5, "APO02": 5, "APO03": 2,
		"APO04": 4, "APO05": 5, "APO06": 1, "APO07": 5, "APO08": 5, "APO09": 0, "APO10": 2, "APO11": 1,
		"APO12": 2, "APO13": 0, "APO14": 1, "BAI01": 5, "BAI02": 4, "BAI03": 3, "BAI04": 1, "BAI05": 5,
		"BAI06": 4, "BAI07": 1, "BAI08": 1, "BAI09": 3, "BAI10": 0, "BAI11": 3, "DSS01": 1, "DSS02": 3,
		"DSS03": 3, "DSS04": 0, "DSS05": 5, "DSS06": 1, "MEA01": 4, "MEA02": 2, "MEA03": 1, "MEA04": 1,
	},
	"eg03": {
		"EDM01": 1, "EDM02": 5, "EDM03": 2, "EDM04": 4, "EDM05": 3, "APO01": 5, "APO02": 4, "APO03": 5,
		"APO04": 5, "APO05": 5, "APO06": 5, "APO07": 0, "APO08": 5, "APO09": 0, "APO10": 2, "APO11": 3,
		"APO12": 2, "APO13": 0, "APO14": 0, "BAI01": 2, "BAI02": 5, "BAI03": 5, "BAI04": 1, "BAI05": 3,
		"BAI06": 5, "BAI07": 0, "BAI08": 5, "BAI09": 2, "BAI10": 0, "BAI11": 5, "DSS01": 0, "DSS02": 1,
		"DSS03": 1, "DSS04": 0, "DSS05": 2, "DSS06": 0, "MEA01": 5, "MEA02": 3, "MEA03": 1, "MEA04": 1,
	},
	"eg04": {
		"EDM01": 1, "EDM02": 2, "EDM03": 1, "EDM04": 5, "EDM05": 1, "APO01": 5, "APO02": 5, "APO03": 3,
		"APO04": 3, "APO05": 5, "APO06": 5, "APO07": 0, "APO08": 5, "APO09": 5, "APO10": 1, "APO11": 5,
		"APO12": 1, "APO13": 1, "APO14": 4, "BAI01": 2, "BAI02": 5, "BAI03": 5, "BAI04": 2, "BAI05": 5,
		"BAI06": 4, "BAI07": 1, "BAI08": 2, "BAI09": 0, "BAI10": 3, "BAI11": 2, "DSS01": 2, "DSS02": 3,
		"DSS03": 0, "DSS04": 4, "DSS05": 1, "DSS06": 2, "MEA01": 2, "MEA02": 4, "MEA03": 0, "MEA04": 3,
	},
	"eg05": {
		"EDM01": 0, "EDM02": 3, "EDM03": 2, "EDM04": 1, "EDM05": 0, "APO01": 5, "APO02": 0, "APO03": 4,
		"APO04": 1, "APO05": 5, "APO06": 0, "APO07": 5, "APO08": 5, "APO09": 2, "APO10": 1, "APO11": 5,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 2, "BAI02": 5, "BAI03": 5, "BAI04": 1, "BAI05": 5,
		"BAI06": 0, "BAI07": 0, "BAI08": 1, "BAI09": 2, "BAI10": 0, "BAI11": 5, "DSS01": 1, "DSS02": 2,
		"DSS03": 1, "DSS04": 1, "DSS05": 1, "DSS06": 2, "MEA01": 5, "MEA02": 5, "MEA03": 1, "MEA04": 3,
	},
	"eg06": {
		"EDM01": 3, "EDM02": 2, "EDM03": 2, "EDM04": 2, "EDM05": 0, "APO01": 5, "APO02": 4, "APO03": 5,
		"APO04": 2, "APO05": 0, "APO06": 2, "APO07": 0, "APO08": 5, "APO09": 1, "APO10": 1, "APO11": 5,
		"APO12": 1, "APO13": 3, "APO14": 3, "BAI01": 2, "BAI02": 5, "BAI03": 5, "BAI04": 0, "BAI05": 5,
		"BAI06": 5, "BAI07": 3, "BAI08": 5, "BAI09": 2, "BAI10": 1, "BAI11": 1, "DSS01": 1, "DSS02": 4,
		"DSS03": 1, "DSS04": 2, "DSS05": 3, "DSS06": 4, "MEA01": 0, "MEA02": 1, "MEA03": 2, "MEA04": 2,
	},
	"eg07": {
		"EDM01": 3, "EDM02": 5, "EDM03": 1, "EDM04": 4, "EDM05": 1, "APO01": 5, "APO02": 2, "APO03": 2,
		"APO04": 4, "APO05": 5, "APO06": 5, "APO07": 1, "APO08": 5, "APO09": 5, "APO10": 2, "APO11": 1,
		"APO12": 2, "APO13": 1, "APO14": 3, "BAI01": 3, "BAI02": 3, "BAI03": 2, "BAI04": 1, "BAI05": 5,
		"BAI06": 2, "BAI07": 1, "BAI08": 1, "BAI09": 3, "BAI10": 0, "BAI11": 1, "DSS01": 1, "DSS02": 2,
		"DSS03": 0, "DSS04": 1, "DSS05": 2, "DSS06": 4, "MEA01": 5, "MEA02": 3, "MEA03": 2, "MEA04": 2,
	},
	"eg08": {
		"EDM01": 2, "EDM02": 2, "EDM03": 1, "EDM04": 2, "EDM05": 2, "APO01": 5, "APO02": 1, "APO03": 5,
		"APO04": 1, "APO05": 2, "APO06": 5, "APO07": 4, "APO08": 5, "APO09": 3, "APO10": 4, "APO11": 3,
		"APO12": 0, "APO13": 0, "APO14": 4, "BAI01": 5, "BAI02": 5, "BAI03": 5, "BAI04": 4, "BAI05": 5,
		"BAI06": 1, "BAI07": 3, "BAI08": 5, "BAI09": 1, "BAI10": 0, "BAI11": 5, "DSS01": 5, "DSS02": 1,
		"DSS03": 2, "DSS04": 2, "DSS05": 0, "DSS06": 5, "MEA01": 2, "MEA02": 4, "MEA03": 1, "MEA04": 5,
	},
	"eg09": {
		"EDM01": 2, "EDM02": 4, "EDM03": 1, "EDM04": 2, "EDM05": 2, "APO01": 5, "APO02": 4, "APO03": 5,
		"APO04": 4, "APO05": 1, "APO06": 1, "APO07": 5, "APO08": 4, "APO09": 2, "APO10": 2, "APO11": 4,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 5, "BAI02": 1, "BAI03": 5, "BAI04": 2, "BAI05": 5,
		"BAI06": 0, "BAI07": 1, "BAI08": 5, "BAI09": 0, "BAI10": 0, "BAI11": 3, "DSS01": 2, "DSS02": 0,
		"DSS03": 1, "DSS04": 3, "DSS05": 1, "DSS06": 4, "MEA01": 5, "MEA02": 5, "MEA03": 1, "MEA04": 5,
	},
	"eg10": {
		"EDM01": 5, "EDM02": 5, "EDM03": 2, "EDM04": 5, "EDM05": 3, "APO01": 5, "APO02": 5, "APO03": 5,
		"APO04": 5, "APO05": 5, "APO06": 5, "APO07": 0, "APO08": 5, "APO09": 2, "APO10": 0, "APO11": 1,
		"APO12": 1, "APO13": 0, "APO14": 5, "BAI01": 5, "BAI02": 5, "BAI03": 5, "BAI04": 1, "BAI05": 5,
		"BAI06": 3, "BAI07": 1, "BAI08": 4, "BAI09": 0, "BAI10": 1, "BAI11": 4, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 0, "DSS05": 1, "DSS06": 3, "MEA01": 2, "MEA02": 5, "MEA03": 2, "MEA04": 1,
	},
	"eg11": {
		"EDM01": 2, "EDM02": 1, "EDM03": 1, "EDM04": 1, "EDM05": 2, "APO01": 5, "APO02": 2, "APO03": 3,
		"APO04": 0, "APO05": 4, "APO06": 5, "APO07": 2, "APO08": 5, "APO09": 0, "APO10": 2, "APO11": 4,
		"APO12": 1, "APO13": 5, "APO14": 3, "BAI01": 2, "BAI02": 5, "BAI03": 5, "BAI04": 1, "BAI05": 5,
		"BAI06": 1, "BAI07": 5, "BAI08": 4, "BAI09": 0, "BAI10": 0, "BAI11": 2, "DSS01": 3, "DSS02": 0,
		"DSS03": 1, "DSS04": 0, "DSS05": 2, "DSS06": 0, "MEA01": 0, "MEA02": 3, "MEA03": 1, "MEA04": 5,
	},
	"eg12": {
		"EDM01": 5, "EDM02": 1, "EDM03": 4, "EDM04": 5, "EDM05": 1, "APO01": 4, "APO02": 4, "APO03": 1,
		"APO04": 2, "APO05": 5, "APO06": 0, "APO07": 4, "APO08": 5, "APO09": 0, "APO10": 5, "APO11": 2,
		"APO12": 0, "APO13": 1, "APO14": 0, "BAI01": 5, "BAI02": 5, "BAI03": 4, "BAI04": 1, "BAI05": 3,
		"BAI06": 0, "BAI07": 2, "BAI08": 5, "BAI09": 1, "BAI10": 0, "BAI11": 5, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 3, "DSS05": 5, "DSS06": 1, "MEA01": 5, "MEA02": 4, "MEA03": 0, "MEA04": 5,
	},
	"eg13": {
		"EDM01": 5, "EDM02": 2, "EDM03": 2, "EDM04": 5, "EDM05": 2, "APO01": 4, "APO02": 3, "APO03": 2,
		"APO04": 4, "APO05": 0, "APO06": 3, "APO07": 5, "APO08": 4, "APO09": 0, "APO10": 1, "APO11": 5,
		"APO12": 1, "APO13": 0, "APO14": 2, "BAI01": 3, "BAI02": 5, "BAI03": 1, "BAI04": 4, "BAI05": 5,
		"BAI06": 5, "BAI07": 4, "BAI08": 4, "BAI09": 1, "BAI10": 1, "BAI11": 5, "DSS01": 0, "DSS02": 0,
		"DSS03": 3, "DSS04": 0, "DSS05": 2, "DSS06": 5, "MEA01": 5, "MEA02": 5, "MEA03": 0, "MEA04": 3,
	},
}
