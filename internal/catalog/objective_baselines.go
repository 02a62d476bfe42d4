package catalog

var objectiveBaselines = map[string]map[string]float64{
	"EDM01": {"df1": 15, "df2": 99, "df3": 189, "df4": 70, "df5": 1.66, "df6": 2, "df7": 25.5, "df8": 1, "df9": 1, "df10": 2.5},
	"EDM02": {"df1": 24, "df2": 114, "df3": 135, "df4": 70, "df5": 1, "df6": 1, "df7": 22.5, "df8": 1, "df9": 1, "df10": 2.575},
	"EDM03": {"df1": 15, "df2": 63, "df3": 162, "df4": 47, "df5": 1.99, "df6": 2, "df7": 24, "df8": 1.33, "df9": 1, "df10": 1.075},
	"EDM04": {"df1": 22.5, "df2": 129, "df3": 198, "df4": 67, "df5": 1, "df6": 1, "df7": 15, "df8": 1, "df9": 1, "df10": 2},
	"EDM05": {"df1": 18, "df2": 63, "df3": 189, "df4": 41, "df5": 1.33, "df6": 1, "df7": 15, "df8": 1, "df9": 1, "df10": 1.075},
	"APO01": {"df1": 12, "df2": 180, "df3": 324, "df4": 56, "df5": 1.66, "df6": 1.5, "df7": 19.5, "df8": 1, "df9": 1, "df10": 1.575},
	"APO02": {"df1": 28.5, "df2": 132, "df3": 144, "df4": 50, "df5": 1, "df6": 1, "df7": 24, "df8": 1, "df9": 1, "df10": 2.925},
	"APO03": {"df1": 24, "df2": 135, "df3": 171, "df4": 66, "df5": 1.66, "df6": 1, "df7": 18, "df8": 1, "df9": 1.1, "df10": 1.15},
	"APO04": {"df1": 21, "df2": 120, "df3": 45, "df4": 32, "df5": 1, "df6": 1, "df7": 27, "df8": 1, "df9": 1, "df10": 2.85},
	"APO05": {"df1": 33, "df2": 141, "df3": 144, "df4": 68, "df5": 1, "df6": 1, "df7": 22.5, "df8": 1, "df9": 1, "df10": 2.5},
	"APO06": {"df1": 22.5, "df2": 117, "df3": 153, "df4": 62, "df5": 1, "df6": 1, "df7": 15, "df8": 1, "df9": 1, "df10": 1.35},
	"APO07": {"df1": 15, "df2": 108, "df3": 216, "df4": 47, "df5": 1.33, "df6": 1, "df7": 13.5, "df8": 1, "df9": 1.05, "df10": 1.225},
	"APO08": {"df1": 21, "df2": 189, "df3": 153, "df4": 70, "df5": 1, "df6": 1, "df7": 19.5, "df8": 1, "df9": 1, "df10": 1.65},
	"APO09": {"df1": 22.5, "df2": 63, "df3": 117, "df4": 43, "df5": 1.33, "df6": 1, "df7": 19.5, "df8": 2.98, "df9": 1, "df10": 1.425},
	"APO10": {"df1": 21, "df2": 78, "df3": 216, "df4": 39, "df5": 1.66, "df6": 1, "df7": 21, "df8": 2.98, "df9": 1, "df10": 1.575},
	"APO11": {"df1": 21, "df2": 132, "df3": 99, "df4": 43, "df5": 1.33, "df6": 1, "df7": 18, "df8": 1, "df9": 1, "df10": 1.425},
	"APO12": {"df1": 18, "df2": 36, "df3": 90, "df4": 52, "df5": 1.99, "df6": 2, "df7": 22.5, "df8": 1.66, "df9": 1.05, "df10": 1.5},
	"APO13": {"df1": 16.5, "df2": 39, "df3": 99, "df4": 33, "df5": 1.99, "df6": 1, "df7": 22.5, "df8": 1, "df9": 1, "df10": 1},
	"APO14": {"df1": 12, "df2": 78, "df3": 198, "df4": 60, "df5": 1.66, "df6": 1.5, "df7": 19.5, "df8": 1, "df9": 1, "df10": 1.925},
	"BAI01": {"df1": 27, "df2": 129, "df3": 81, "df4": 35, "df5": 1, "df6": 1, "df7": 19.5, "df8": 1, "df9": 1.2, "df10": 2.925},
	"BAI02": {"df1": 13.5, "df2": 174, "df3": 117, "df4": 51, "df5": 1, "df6": 1, "df7": 24, "df8": 1, "df9": 1.475, "df10": 2.425},
	"BAI03": {"df1": 13.5, "df2": 165, "df3": 117, "df4": 41, "df5": 1, "df6": 1, "df7": 24, "df8": 1, "df9": 1.65, "df10": 2.5},
	"BAI04": {"df1": 18, "df2": 69, "df3": 9, "df4": 23, "df5": 1.33, "df6": 1, "df7": 21, "df8": 1, "df9": 1, "df10": 1.425},
	"BAI05": {"df1": 25.5, "df2": 183, "df3": 72, "df4": 28, "df5": 1, "df6": 1, "df7": 15, "df8": 1, "df9": 1.275, "df10": 2},
	"BAI06": {"df1": 19.5, "df2": 90, "df3": 135, "df4": 42, "df5": 1.66, "df6": 1, "df7": 19.5, "df8": 1, "df9": 1.475, "df10": 1.925},
	"BAI07": {"df1": 18, "df2": 69, "df3": 117, "df4": 38, "df5": 1, "df6": 1, "df7": 18, "df8": 1, "df9": 1.375, "df10": 2.425},
	"BAI08": {"df1": 19.5, "df2": 135, "df3": 135, "df4": 31, "df5": 1, "df6": 1, "df7": 15, "df8": 1, "df9": 1, "df10": 1.075},
	"BAI09": {"df1": 12, "df2": 51, "df3": 36, "df4": 23, "df5": 1, "df6": 1, "df7": 15, "df8": 1, "df9": 1, "df10": 1},
	"BAI10": {"df1": 12, "df2": 18, "df3": 99, "df4": 25, "df5": 1.66, "df6": 1, "df7": 16.5, "df8": 1, "df9": 1.175, "df10": 1.075},
	"BAI11": {"df1": 27, "df2": 138, "df3": 36, "df4": 45, "df5": 1, "df6": 1, "df7": 18, "df8": 1, "df9": 1.225, "df10": 2.425},
	"DSS01": {"df1": 13.5, "df2": 63, "df3": 135, "df4": 27, "df5": 1, "df6": 1, "df7": 25.5, "df8": 1, "df9": 1.15, "df10": 1},
	"DSS02": {"df1": 21, "df2": 54, "df3": 144, "df4": 33, "df5": 1.66, "df6": 1, "df7": 25.5, "df8": 1, "df9": 1.05, "df10": 1},
	"DSS03": {"df1": 18, "df2": 54, "df3": 108, "df4": 32, "df5": 1.33, "df6": 1, "df7": 27, "df8": 1, "df9": 1.05, "df10": 1.075},
	"DSS04": {"df1": 21, "df2": 54, "df3": 216, "df4": 21, "df5": 1.99, "df6": 1, "df7": 27, "df8": 1, "df9": 1, "df10": 1.075},
	"DSS05": {"df1": 16.5, "df2": 81, "df3": 216, "df4": 29, "df5": 1.66, "df6": 1, "df7": 27, "df8": 1, "df9": 1, "df10": 1.075},
	"DSS06": {"df1": 13.5, "df2": 105, "df3": 144, "df4": 29, "df5": 1.66, "df6": 1, "df7": 16.5, "df8": 1, "df9": 1, "df10": 1},
	"MEA01": {"df1": 12, "df2": 135, "df3": 216, "df4": 61, "df5": 1.66, "df6": 1, "df7": 15, "df8": 2.32, "df9": 1.125, "df10": 2},
	"MEA02": {"df1": 12, "df2": 135, "df3": 243, "df4": 48, "df5": 1.33, "df6": 1, "df7": 15, "df8": 1, "df9": 1, "df10": 1},
	"MEA03": {"df1": 12, "df2": 39, "df3": 153, "df4": 29, "df5": 1.66, "df6": 2, "df7": 13.5, "df8": 1, "df9": 1, "df10": 1},
	"MEA04": {"df1": 12, "df2": 111, "df3": 225, "df4": 58, "df5": 1.66, "df6": 2, "df7": 15, "df8": 1, "df9": 1, "df10": 1},
}
