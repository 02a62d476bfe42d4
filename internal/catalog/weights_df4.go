package catalog

// df4Weights maps each I&T-related issue to its per-objective weight.
var df4Weights = WeightTable{
	"issue01": {
		"EDM01": 1, "EDM02": 0.5, "EDM03": 1, "EDM04": 1.5, "EDM05": 0.5, "APO01": 0.5, "APO02": 1, "APO03": 1.5,
		"APO04": 0.5, "APO05": 0.5, "APO06": 1.5, "APO07": 0, "APO08": 2.5, "APO09": 0.5, "APO10": 1.5, "APO11": 0.5,
		"APO12": 1, "APO13": 1.5, "APO14": 1, "BAI01": 1, "BAI02": 1.5, "BAI03": 0.5, "BAI04": 0, "BAI05": 1,
		"BAI06": 0.5, "BAI07": 1, "BAI08": 0.5, "BAI09": 0.5, "BAI10": 0, "BAI11": 0.5, "DSS01": 0.5, "DSS02": 1,
		"DSS03": 0.5, "DSS04": 0, "DSS05": 1, "DSS06": 0, "MEA01": 2, "MEA02": 0.5, "MEA03": 0, "MEA04": 1.5,
	},
	"issue02": {
		"EDM01": 2, "EDM02": 2.5, "EDM03": 1.5, "EDM04": 1, "EDM05": 0, "APO01": 0.5, "APO02": 2, "APO03": 1,
		"APO04": 1, "APO05": 1, "APO06": 1.5, "APO07": 0, "APO08": 1, "APO09": 1, "APO10": 2, "APO11": 1.5,
		"APO12": 0, "APO13": 2, "APO14": 1, "BAI01": 0.5, "BAI02": 1, "BAI03": 2, "BAI04": 0.5, "BAI05": 1,
		"BAI06": 1, "BAI07": 1, "BAI08": 1.5, "BAI09": 0, "BAI10": 0.5, "BAI11": 2, "DSS01": 0.5, "DSS02": 0,
		"DSS03": 0.5, "DSS04": 0.5, "DSS05": 1.5, "DSS06": 0, "MEA01": 0.5, "MEA02": 2, "MEA03": 0, "MEA04": 1,
	},
	"issue03": {
		"EDM01": 1, "EDM02": 3, "EDM03": 0.5, "EDM04": 0.5, "EDM05": 1, "APO01": 3, "APO02": 0, "APO03": 3,
		"APO04": 0.5, "APO05": 1.5, "APO06": 0, "APO07": 1, "APO08": 3, "APO09": 0, "APO10": 0, "APO11": 0.5,
		"APO12": 3, "APO13": 0.5, "APO14": 1, "BAI01": 0.5, "BAI02": 0.5, "BAI03": 2, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0.5, "BAI08": 1, "BAI09": 0, "BAI10": 0.5, "BAI11": 1, "DSS01": 1, "DSS02": 0,
		"DSS03": 0.5, "DSS04": 2, "DSS05": 0, "DSS06": 1, "MEA01": 1, "MEA02": 2, "MEA03": 2.5, "MEA04": 0.5,
	},
	"issue04": {
		"EDM01": 1, "EDM02": 1, "EDM03": 0.5, "EDM04": 0.5, "EDM05": 2, "APO01": 3, "APO02": 2.5, "APO03": 1.5,
		"APO04": 0, "APO05": 2.5, "APO06": 2.5, "APO07": 0, "APO08": 2, "APO09": 1.5, "APO10": 0, "APO11": 2,
		"APO12": 2.5, "APO13": 0.5, "APO14": 0, "BAI01": 2, "BAI02": 0.5, "BAI03": 0.5, "BAI04": 1, "BAI05": 0.5,
		"BAI06": 1.5, "BAI07": 0.5, "BAI08": 1, "BAI09": 1, "BAI10": 0, "BAI11": 1, "DSS01": 1, "DSS02": 0.5,
		"DSS03": 0, "DSS04": 0, "DSS05": 1.5, "DSS06": 2.5, "MEA01": 3, "MEA02": 1.5, "MEA03": 0.5, "MEA04": 2.5,
	},
	"issue05": {
		"EDM01": 3, "EDM02": 2, "EDM03": 2, "EDM04": 2.5, "EDM05": 1, "APO01": 0, "APO02": 2, "APO03": 3,
		"APO04": 1, "APO05": 0.5, "APO06": 3, "APO07": 0, "APO08": 1.5, "APO09": 1, "APO10": 2, "APO11": 1.5,
		"APO12": 1.5, "APO13": 1, "APO14": 1.5, "BAI01": 0, "BAI02": 1, "BAI03": 1, "BAI04": 1, "BAI05": 0.5,
		"BAI06": 3, "BAI07": 0.5, "BAI08": 0.5, "BAI09": 2, "BAI10": 0, "BAI11": 3, "DSS01": 0.5, "DSS02": 0.5,
		"DSS03": 0.5, "DSS04": 1, "DSS05": 1.5, "DSS06": 0.5, "MEA01": 1.5, "MEA02": 1, "MEA03": 2, "MEA04": 1,
	},
	"issue06": {
		"EDM01": 1, "EDM02": 1, "EDM03": 1, "EDM04": 1, "EDM05": 2.5, "APO01": 3, "APO02": 0, "APO03": 3,
		"APO04": 1.5, "APO05": 3, "APO06": 2, "APO07": 2.5, "APO08": 0, "APO09": 1.5, "APO10": 1.5, "APO11": 0,
		"APO12": 2, "APO13": 0, "APO14": 1, "BAI01": 0.5, "BAI02": 1, "BAI03": 1.5, "BAI04": 0.5, "BAI05": 1.5,
		"BAI06": 0.5, "BAI07": 2.5, "BAI08": 0.5, "BAI09": 0.5, "BAI10": 1, "BAI11": 0, "DSS01": 0.5, "DSS02": 0,
		"DSS03": 0, "DSS04": 0, "DSS05": 2, "DSS06": 1, "MEA01": 0, "MEA02": 1.5, "MEA03": 1, "MEA04": 0,
	},
	"issue07": {
		"EDM01": 3, "EDM02": 2, "EDM03": 1.5, "EDM04": 3, "EDM05": 1, "APO01": 2.5, "APO02": 2, "APO03": 2,
		"APO04": 1.5, "APO05": 2, "APO06": 3, "APO07": 2.5, "APO08": 2, "APO09": 0, "APO10": 3, "APO11": 0,
		"APO12": 1, "APO13": 0.5, "APO14": 1, "BAI01": 1, "BAI02": 1.5, "BAI03": 0, "BAI04": 0.5, "BAI05": 1.5,
		"BAI06": 1, "BAI07": 1.5, "BAI08": 0, "BAI09": 0.5, "BAI10": 1.5, "BAI11": 1, "DSS01": 2, "DSS02": 0,
		"DSS03": 2.5, "DSS04": 0, "DSS05": 1, "DSS06": 0.5, "MEA01": 3, "MEA02": 0, "MEA03": 0.5, "MEA04": 1,
	},
	"issue08": {
		"EDM01": 3, "EDM02": 3, "EDM03": 2, "EDM04": 0.5, "EDM05": 1, "APO01": 1.5, "APO02": 1, "APO03": 1,
		"APO04": 1.5, "APO05": 1, "APO06": 1, "APO07": 0, "APO08": 3, "APO09": 0.5, "APO10": 1, "APO11": 1,
		"APO12": 1.5, "APO13": 1.5, "APO14": 2.5, "BAI01": 1, "BAI02": 1, "BAI03": 1, "BAI04": 0.5, "BAI05": 1.5,
		"BAI06": 2.5, "BAI07": 0, "BAI08": 0, "BAI09": 1, "BAI10": 0.5, "BAI11": 0.5, "DSS01": 0.5, "DSS02": 2,
		"DSS03": 0, "DSS04": 0, "DSS05": 1.5, "DSS06": 1.5, "MEA01": 1, "MEA02": 0, "MEA03": 0, "MEA04": 3,
	},
	"issue09": {
		"EDM01": 3, "EDM02": 0.5, "EDM03": 2.5, "EDM04": 2, "EDM05": 2.5, "APO01": 2.5, "APO02": 2.5, "APO03": 1,
		"APO04": 1.5, "APO05": 1.5, "APO06": 1, "APO07": 2, "APO08": 0.5, "APO09": 1, "APO10": 1, "APO11": 1,
		"APO12": 0.5, "APO13": 0, "APO14": 2, "BAI01": 1.5, "BAI02": 2.5, "BAI03": 1.5, "BAI04": 0.5, "BAI05": 0.5,
		"BAI06": 0.5, "BAI07": 0, "BAI08": 1, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 1, "DSS02": 1.5,
		"DSS03": 1, "DSS04": 0.5, "DSS05": 1.5, "DSS06": 1.5, "MEA01": 0.5, "MEA02": 2, "MEA03": 0.5, "MEA04": 0.5,
	},
	"issue10": {
		"EDM01": 3, "EDM02": 3, "EDM03": 3, "EDM04": 0.5, "EDM05": 0.5, "APO01": 1, "APO02": 1.5, "APO03": 3,
		"APO04": 1.5, "APO05": 0.5, "APO06": 3, "APO07": 2.5, "APO08": 3, "APO09": 3, "APO10": 0, "APO11": 3,
		"APO12": 0, "APO13": 2.5, "APO14": 3, "BAI01": 1.5, "BAI02": 1.5, "BAI03": 0.5, "BAI04": 1, "BAI05": 1,
		"BAI06": 0.5, "BAI07": 0, "BAI08": 0, "BAI09": 0.5, "BAI10": 1, "BAI11": 2.5, "DSS01": 0, "DSS02": 0.5,
		"DSS03": 0, "DSS04": 0.5, "DSS05": 0, "DSS06": 0.5, "MEA01": 3, "MEA02": 3, "MEA03": 1, "MEA04": 1,
	},
	"issue11": {
		"EDM01": 1.5, "EDM02": 0.5, "EDM03": 1.5, "EDM04": 3, "EDM05": 1.5, "APO01": 1, "APO02": 0.5, "APO03": 1,
		"APO04": 2, "APO05": 0, "APO06": 1, "APO07": 1, "APO08": 1, "APO09": 0.5, "APO10": 1, "APO11": 2.5,
		"APO12": 1.5, "APO13": 1.5, "APO14": 1, "BAI01": 1, "BAI02": 0.5, "BAI03": 0.5, "BAI04": 0, "BAI05": 1,
		"BAI06": 1.5, "BAI07": 0.5, "BAI08": 1.5, "BAI09": 0, "BAI10": 2, "BAI11": 1.5, "DSS01": 0, "DSS02": 1.5,
		"DSS03": 1, "DSS04": 0.5, "DSS05": 0, "DSS06": 0.5, "MEA01": 1, "MEA02": 1.5, "MEA03": 0.5, "MEA04": 3,
	},
	"issue12": {
		"EDM01": 2.5, "EDM02": 1, "EDM03": 0.5, "EDM04": 1, "EDM05": 0.5, "APO01": 3, "APO02": 0, "APO03": 2,
		"APO04": 0.5, "APO05": 3, "APO06": 1.5, "APO07": 1, "APO08": 1, "APO09": 2.5, "APO10": 0, "APO11": 0,
		"APO12": 0.5, "APO13": 1.5, "APO14": 2, "BAI01": 0.5, "BAI02": 0.5, "BAI03": 1, "BAI04": 1, "BAI05": 0.5,
		"BAI06": 0, "BAI07": 1.5, "BAI08": 0, "BAI09": 0.5, "BAI10": 1, "BAI11": 1.5, "DSS01": 0, "DSS02": 1.5,
		"DSS03": 0.5, "DSS04": 0, "DSS05": 0.5, "DSS06": 0.5, "MEA01": 2, "MEA02": 2, "MEA03": 2.5, "MEA04": 1.5,
	},
	"issue13": {
		"EDM01": 1, "EDM02": 2, "EDM03": 0, "EDM04": 3, "EDM05": 0.5, "APO01": 0.5, "APO02": 0, "APO03": 0.5,
		"APO04": 0, "APO05": 3, "APO06": 0.5, "APO07": 0.5, "APO08": 3, "APO09": 0, "APO10": 0, "APO11": 1,
		"APO12": 1.5, "APO13": 0, "APO14": 1, "BAI01": 1, "BAI02": 2.5, "BAI03": 0.5, "BAI04": 0.5, "BAI05": 0,
		"BAI06": 1.5, "BAI07": 0.5, "BAI08": 3, "BAI09": 1.5, "BAI10": 1.5, "BAI11": 1, "DSS01": 0, "DSS02": 0,
		"DSS03": 1, "DSS04": 1, "DSS05": 0.5, "DSS06": 1, "MEA01": 2, "MEA02": 0, "MEA03": 1, "MEA04": 1,
	},
	"issue14": {
		"EDM01": 0.5, "EDM02": 2.5, "EDM03": 1.5, "EDM04": 3, "EDM05": 0, "APO01": 1, "APO02": 2, "APO03": 1.5,
		"APO04": 0.5, "APO05": 2.5, "APO06": 0.5, "APO07": 2, "APO08": 1, "APO09": 1.5, "APO10": 0.5, "APO11": 2,
		"APO12": 1, "APO13": 1, "APO14": 2, "BAI01": 1, "BAI02": 1, "BAI03": 0.5, "BAI04": 1, "BAI05": 0.5,
		"BAI06": 1, "BAI07": 1, "BAI08": 2.5, "BAI09": 1, "BAI10": 0, "BAI11": 1, "DSS01": 1, "DSS02": 3,
		"DSS03": 0, "DSS04": 0, "DSS05": 1, "DSS06": 0.5, "MEA01": 1, "MEA02": 0, "MEA03": 0.5, "MEA04": 2,
	},
	"issue15": {
		"EDM01": 3, "EDM02": 1.5, "EDM03": 0.5, "EDM04": 1.5, "EDM05": 1, "APO01": 0, "APO02": 3, "APO03": 1.5,
		"APO04": 1, "APO05": 0.5, "APO06": 3, "APO07": 3, "APO08": 1, "APO09": 0.5, "APO10": 1, "APO11": 1,
		"APO12": 0.5, "APO13": 0.5, "APO14": 2, "BAI01": 1.5, "BAI02": 2, "BAI03": 3, "BAI04": 1.5, "BAI05": 0.5,
		"BAI06": 0.5, "BAI07": 0.5, "BAI08": 0.5, "BAI09": 1.5, "BAI10": 0.5, "BAI11": 1, "DSS01": 0.5, "DSS02": 0.5,
		"DSS03": 0.5, "DSS04": 1, "DSS05": 0.5, "DSS06": 0.5, "MEA01": 2, "MEA02": 0, "MEA03": 0, "MEA04": 3,
	},
	"issue16": {
		"EDM01": 1.5, "EDM02": 1.5, "EDM03": 0, "EDM04": 0.5, "EDM05": 0, "APO01": 1, "APO02": 2, "APO03": 0.5,
		"APO04": 0, "APO05": 3, "APO06": 2, "APO07": 1, "APO08": 1, "APO09": 1, "APO10": 2, "APO11": 0.5,
		"APO12": 2, "APO13": 1.5, "APO14": 3, "BAI01": 0, "BAI02": 0.5, "BAI03": 0.5, "BAI04": 1, "BAI05": 0,
		"BAI06": 2, "BAI07": 2.5, "BAI08": 0.5, "BAI09": 0, "BAI10": 1, "BAI11": 1, "DSS01": 0.5, "DSS02": 2,
		"DSS03": 1, "DSS04": 0.5, "DSS05": 0, "DSS06": 0.5, "MEA01": 1.5, "MEA02": 0.5, "MEA03": 1, "MEA04": 0.5,
	},
	"issue17": {
		"EDM01": 0, "EDM02": 1.5, "EDM03": 1, "EDM04": 1, "EDM05": 2, "APO01": 1, "APO02": 0, "APO03": 0.5,
		"APO04": 0, "APO05": 1, "APO06": 0.5, "APO07": 0, "APO08": 3, "APO09": 1, "APO10": 0, "APO11": 0.5,
		"APO12": 2.5, "APO13": 0.5, "APO14": 2, "BAI01": 0, "BAI02": 1.5, "BAI03": 0.5, "BAI04": 0.5, "BAI05": 1,
		"BAI06": 0.5, "BAI07": 1.5, "BAI08": 0.5, "BAI09": 0, "BAI10": 0.5, "BAI11": 2, "DSS01": 0.5, "DSS02": 1,
		"DSS03": 1.5, "DSS04": 0, "DSS05": 0, "DSS06": 1, "MEA01": 0.5, "MEA02": 3, "MEA03": 0, "MEA04": 0.5,
	},
	"issue18": {
		"EDM01": 1.5, "EDM02": 3, "EDM03": 2.5, "EDM04": 3, "EDM05": 1, "APO01": 2.5, "APO02": 0.5, "APO03": 1.5,
		"APO04": 0, "APO05": 3, "APO06": 2, "APO07": 1.5, "APO08": 3, "APO09": 0, "APO10": 1.5, "APO11": 0.5,
		"APO12": 3, "APO13": 0, "APO14": 0.5, "BAI01": 0.5, "BAI02": 1.5, "BAI03": 3, "BAI04": 0.5, "BAI05": 1.5,
		"BAI06": 1, "BAI07": 1, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 1, "DSS01": 0.5, "DSS02": 0.5,
		"DSS03": 1.5, "DSS04": 0.5, "DSS05": 0.5, "DSS06": 0.5, "MEA01": 2, "MEA02": 1, "MEA03": 0, "MEA04": 2,
	},
	"issue19": {
		"EDM01": 1, "EDM02": 1, "EDM03": 0, "EDM04": 2.5, "EDM05": 1.5, "APO01": 0.5, "APO02": 1.5, "APO03": 1.5,
		"APO04": 1.5, "APO05": 1, "APO06": 1.5, "APO07": 2, "APO08": 2, "APO09": 2, "APO10": 0, "APO11": 1,
		"APO12": 0, "APO13": 0, "APO14": 2, "BAI01": 1, "BAI02": 2, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 1.5, "BAI07": 0, "BAI08": 1, "BAI09": 0.5, "BAI10": 0, "BAI11": 0.5, "DSS01": 1.5, "DSS02": 0,
		"DSS03": 1.5, "DSS04": 1.5, "DSS05": 0, "DSS06": 0.5, "MEA01": 0, "MEA02": 1, "MEA03": 0, "MEA04": 3,
	},
	"issue20": {
		"EDM01": 1.5, "EDM02": 2, "EDM03": 0.5, "EDM04": 2, "EDM05": 0.5, "APO01": 0, "APO02": 1, "APO03": 2.5,
		"APO04": 0, "APO05": 3, "APO06": 0, "APO07": 1, "APO08": 0.5, "APO09": 2.5, "APO10": 1.5, "APO11": 1.5,
		"APO12": 0.5, "APO13": 0, "APO14": 0.5, "BAI01": 1.5, "BAI02": 1.5, "BAI03": 0.5, "BAI04": 0, "BAI05": 0,
		"BAI06": 0.5, "BAI07": 2.5, "BAI08": 0, "BAI09": 0.5, "BAI10": 1, "BAI11": 0.5, "DSS01": 1.5, "DSS02": 0.5,
		"DSS03": 2, "DSS04": 1, "DSS05": 0, "DSS06": 0, "MEA01": 3, "MEA02": 1.5, "MEA03": 1, "MEA04": 0.5,
	},
}
