package catalog

// df3Weights maps each risk scenario to its per-objective weight.
var df3Weights = WeightTable{
	"risk01": {
		"EDM01": 3, "EDM02": 3, "EDM03": 2, "EDM04": 3, "EDM05": 3, "APO01": 2, "APO02": 2, "APO03": 2,
		"APO04": 0, "APO05": 4, "APO06": 2, "APO07": 0, "APO08": 0, "APO09": 0, "APO10": 0, "APO11": 0,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 0, "BAI02": 2, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 0, "DSS05": 0, "DSS06": 0, "MEA01": 1, "MEA02": 1, "MEA03": 0, "MEA04": 1,
	},
	"risk02": {
		"EDM01": 2, "EDM02": 2, "EDM03": 2, "EDM04": 0, "EDM05": 1, "APO01": 3, "APO02": 0, "APO03": 0,
		"APO04": 0, "APO05": 2, "APO06": 3, "APO07": 0, "APO08": 0, "APO09": 0, "APO10": 2, "APO11": 3,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 4, "BAI02": 2, "BAI03": 3, "BAI04": 1, "BAI05": 2,
		"BAI06": 0, "BAI07": 0, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 4, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 0, "DSS05": 0, "DSS06": 0, "MEA01": 2, "MEA02": 2, "MEA03": 1, "MEA04": 2,
	},
	"risk03": {
		"EDM01": 3, "EDM02": 0, "EDM03": 0, "EDM04": 4, "EDM05": 3, "APO01": 2, "APO02": 0, "APO03": 0,
		"APO04": 0, "APO05": 2, "APO06": 4, "APO07": 0, "APO08": 0, "APO09": 2, "APO10": 3, "APO11": 0,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 0, "DSS05": 0, "DSS06": 0, "MEA01": 2, "MEA02": 2, "MEA03": 0, "MEA04": 0,
	},
	"risk04": {
		"EDM01": 0, "EDM02": 0, "EDM03": 0, "EDM04": 3, "EDM05": 0, "APO01": 0, "APO02": 0, "APO03": 0,
		"APO04": 0, "APO05": 0, "APO06": 0, "APO07": 4, "APO08": 2, "APO09": 0, "APO10": 0, "APO11": 0,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 2,
		"BAI06": 0, "BAI07": 0, "BAI08": 2, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 0, "DSS05": 0, "DSS06": 0, "MEA01": 0, "MEA02": 0, "MEA03": 0, "MEA04": 0,
	},
	"risk05": {
		"EDM01": 0, "EDM02": 2, "EDM03": 0, "EDM04": 2, "EDM05": 0, "APO01": 2, "APO02": 3, "APO03": 4,
		"APO04": 1, "APO05": 2, "APO06": 0, "APO07": 0, "APO08": 2, "APO09": 0, "APO10": 0, "APO11": 0,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 2, "BAI02": 2, "BAI03": 2, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 0, "DSS05": 0, "DSS06": 0, "MEA01": 0, "MEA02": 0, "MEA03": 0, "MEA04": 0,
	},
	"risk06": {
		"EDM01": 0, "EDM02": 0, "EDM03": 0, "EDM04": 0, "EDM05": 0, "APO01": 2, "APO02": 0, "APO03": 0,
		"APO04": 0, "APO05": 0, "APO06": 0, "APO07": 2, "APO08": 0, "APO09": 0, "APO10": 0, "APO11": 0,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 3, "BAI07": 2, "BAI08": 3, "BAI09": 1, "BAI10": 2, "BAI11": 0, "DSS01": 4, "DSS02": 3,
		"DSS03": 3, "DSS04": 3, "DSS05": 3, "DSS06": 3, "MEA01": 2, "MEA02": 3, "MEA03": 1, "MEA04": 0,
	},
	"risk07": {
		"EDM01": 2, "EDM02": 0, "EDM03": 0, "EDM04": 0, "EDM05": 2, "APO01": 4, "APO02": 0, "APO03": 0,
		"APO04": 0, "APO05": 0, "APO06": 0, "APO07": 3, "APO08": 0, "APO09": 2, "APO10": 2, "APO11": 0,
		"APO12": 3, "APO13": 4, "APO14": 3, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 4, "BAI07": 3, "BAI08": 0, "BAI09": 3, "BAI10": 4, "BAI11": 0, "DSS01": 3, "DSS02": 2,
		"DSS03": 1, "DSS04": 3, "DSS05": 4, "DSS06": 4, "MEA01": 2, "MEA02": 3, "MEA03": 2, "MEA04": 3,
	},
	"risk08": {
		"EDM01": 0, "EDM02": 0, "EDM03": 0, "EDM04": 0, "EDM05": 0, "APO01": 2, "APO02": 2, "APO03": 2,
		"APO04": 0, "APO05": 2, "APO06": 0, "APO07": 3, "APO08": 4, "APO09": 3, "APO10": 2, "APO11": 2,
		"APO12": 0, "APO13": 0, "APO14": 2, "BAI01": 3, "BAI02": 3, "BAI03": 2, "BAI04": 0, "BAI05": 4,
		"BAI06": 0, "BAI07": 2, "BAI08": 3, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 3,
		"DSS03": 4, "DSS04": 0, "DSS05": 0, "DSS06": 2, "MEA01": 0, "MEA02": 0, "MEA03": 0, "MEA04": 0,
	},
	"risk09": {
		"EDM01": 0, "EDM02": 0, "EDM03": 0, "EDM04": 0, "EDM05": 0, "APO01": 0, "APO02": 1, "APO03": 0,
		"APO04": 0, "APO05": 2, "APO06": 0, "APO07": 0, "APO08": 0, "APO09": 0, "APO10": 3, "APO11": 0,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 4, "DSS02": 2,
		"DSS03": 0, "DSS04": 3, "DSS05": 2, "DSS06": 0, "MEA01": 0, "MEA02": 0, "MEA03": 0, "MEA04": 0,
	},
	"risk10": {
		"EDM01": 0, "EDM02": 0, "EDM03": 1, "EDM04": 0, "EDM05": 1, "APO01": 2, "APO02": 0, "APO03": 2,
		"APO04": 0, "APO05": 0, "APO06": 0, "APO07": 0, "APO08": 0, "APO09": 1, "APO10": 2, "APO11": 4,
		"APO12": 2, "APO13": 0, "APO14": 0, "BAI01": 0, "BAI02": 2, "BAI03": 3, "BAI04": 0, "BAI05": 0,
		"BAI06": 2, "BAI07": 4, "BAI08": 3, "BAI09": 0, "BAI10": 2, "BAI11": 0, "DSS01": 0, "DSS02": 2,
		"DSS03": 3, "DSS04": 0, "DSS05": 0, "DSS06": 0, "MEA01": 2, "MEA02": 2, "MEA03": 0, "MEA04": 2,
	},
	"risk11": {
		"EDM01": 0, "EDM02": 0, "EDM03": 2, "EDM04": 0, "EDM05": 0, "APO01": 3, "APO02": 1, "APO03": 2,
		"APO04": 0, "APO05": 0, "APO06": 0, "APO07": 2, "APO08": 2, "APO09": 2, "APO10": 2, "APO11": 0,
		"APO12": 3, "APO13": 4, "APO14": 2, "BAI01": 0, "BAI02": 2, "BAI03": 3, "BAI04": 0, "BAI05": 0,
		"BAI06": 3, "BAI07": 2, "BAI08": 0, "BAI09": 0, "BAI10": 3, "BAI11": 0, "DSS01": 2, "DSS02": 4,
		"DSS03": 1, "DSS04": 4, "DSS05": 4, "DSS06": 2, "MEA01": 3, "MEA02": 3, "MEA03": 3, "MEA04": 3,
	},
	"risk12": {
		"EDM01": 0, "EDM02": 0, "EDM03": 0, "EDM04": 2, "EDM05": 1, "APO01": 3, "APO02": 2, "APO03": 2,
		"APO04": 0, "APO05": 0, "APO06": 2, "APO07": 0, "APO08": 2, "APO09": 3, "APO10": 4, "APO11": 0,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 0, "DSS05": 0, "DSS06": 0, "MEA01": 2, "MEA02": 2, "MEA03": 2, "MEA04": 2,
	},
	"risk13": {
		"EDM01": 3, "EDM02": 1, "EDM03": 3, "EDM04": 1, "EDM05": 3, "APO01": 3, "APO02": 0, "APO03": 0,
		"APO04": 0, "APO05": 0, "APO06": 0, "APO07": 0, "APO08": 0, "APO09": 0, "APO10": 2, "APO11": 0,
		"APO12": 0, "APO13": 3, "APO14": 3, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 2, "DSS05": 3, "DSS06": 2, "MEA01": 2, "MEA02": 2, "MEA03": 4, "MEA04": 2,
	},
	"risk14": {
		"EDM01": 2, "EDM02": 0, "EDM03": 3, "EDM04": 0, "EDM05": 3, "APO01": 0, "APO02": 0, "APO03": 0,
		"APO04": 0, "APO05": 0, "APO06": 2, "APO07": 2, "APO08": 0, "APO09": 0, "APO10": 2, "APO11": 0,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 0, "DSS05": 0, "DSS06": 0, "MEA01": 2, "MEA02": 3, "MEA03": 2, "MEA04": 4,
	},
	"risk15": {
		"EDM01": 0, "EDM02": 0, "EDM03": 0, "EDM04": 2, "EDM05": 0, "APO01": 0, "APO02": 0, "APO03": 0,
		"APO04": 0, "APO05": 0, "APO06": 0, "APO07": 4, "APO08": 0, "APO09": 0, "APO10": 0, "APO11": 0,
		"APO12": 0, "APO13": 0, "APO14": 2, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0, "BAI08": 2, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 3, "DSS05": 3, "DSS06": 0, "MEA01": 0, "MEA02": 0, "MEA03": 0, "MEA04": 0,
	},
	"risk16": {
		"EDM01": 0, "EDM02": 0, "EDM03": 0, "EDM04": 0, "EDM05": 0, "APO01": 0, "APO02": 0, "APO03": 0,
		"APO04": 0, "APO05": 0, "APO06": 0, "APO07": 0, "APO08": 0, "APO09": 0, "APO10": 0, "APO11": 0,
		"APO12": 2, "APO13": 0, "APO14": 4, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 4, "DSS05": 2, "DSS06": 0, "MEA01": 2, "MEA02": 2, "MEA03": 0, "MEA04": 2,
	},
	"risk17": {
		"EDM01": 2, "EDM02": 3, "EDM03": 0, "EDM04": 0, "EDM05": 0, "APO01": 3, "APO02": 2, "APO03": 2,
		"APO04": 4, "APO05": 2, "APO06": 2, "APO07": 2, "APO08": 3, "APO09": 0, "APO10": 0, "APO11": 0,
		"APO12": 0, "APO13": 0, "APO14": 2, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 0, "DSS05": 0, "DSS06": 0, "MEA01": 0, "MEA02": 0, "MEA03": 0, "MEA04": 2,
	},
	"risk18": {
		"EDM01": 2, "EDM02": 1, "EDM03": 2, "EDM04": 2, "EDM05": 2, "APO01": 2, "APO02": 2, "APO03": 0,
		"APO04": 0, "APO05": 0, "APO06": 2, "APO07": 2, "APO08": 0, "APO09": 0, "APO10": 0, "APO11": 0,
		"APO12": 0, "APO13": 0, "APO14": 0, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 0, "BAI07": 0, "BAI08": 0, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 2, "DSS02": 0,
		"DSS03": 0, "DSS04": 0, "DSS05": 0, "DSS06": 0, "MEA01": 0, "MEA02": 0, "MEA03": 0, "MEA04": 0,
	},
	"risk19": {
		"EDM01": 2, "EDM02": 3, "EDM03": 3, "EDM04": 3, "EDM05": 2, "APO01": 3, "APO02": 1, "APO03": 3,
		"APO04": 0, "APO05": 0, "APO06": 0, "APO07": 0, "APO08": 2, "APO09": 0, "APO10": 0, "APO11": 2,
		"APO12": 0, "APO13": 0, "APO14": 4, "BAI01": 0, "BAI02": 0, "BAI03": 0, "BAI04": 0, "BAI05": 0,
		"BAI06": 3, "BAI07": 0, "BAI08": 2, "BAI09": 0, "BAI10": 0, "BAI11": 0, "DSS01": 0, "DSS02": 0,
		"DSS03": 0, "DSS04": 2, "DSS05": 3, "DSS06": 3, "MEA01": 2, "MEA02": 2, "MEA03": 2, "MEA04": 2,
	},
}
