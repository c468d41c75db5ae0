package location

// Embedded reference dataset. Costs are in Algerian dinars; the home and
// stop-desk (office) rates come from the carrier price grid. Estimated days
// group the wilayas into the Algiers belt (1 day), the connected north (2),
// the default interior (3) and the deep south (5).

type wilayaRow struct {
	id            int
	name          string
	code          string
	homeCost      int64
	officeCost    int64
	estimatedDays int
}

var wilayaRows = []wilayaRow{
	{1, "أدرار", "01", 1200, 800, 3},
	{2, "الشلف", "02", 700, 450, 2},
	{3, "الأغواط", "03", 900, 600, 3},
	{4, "أم البواقي", "04", 800, 450, 3},
	{5, "باتنة", "05", 800, 450, 3},
	{6, "بجاية", "06", 700, 450, 2},
	{7, "بسكرة", "07", 900, 600, 3},
	{8, "بشار", "08", 1200, 800, 3},
	{9, "البليدة", "09", 600, 450, 1},
	{10, "البويرة", "10", 700, 450, 3},
	{11, "تمنراست", "11", 1200, 800, 5},
	{12, "تبسة", "12", 800, 450, 3},
	{13, "تلمسان", "13", 800, 450, 2},
	{14, "تيارت", "14", 800, 450, 3},
	{15, "تيزي وزو", "15", 700, 450, 3},
	{16, "الجزائر", "16", 500, 300, 1},
	{17, "الجلفة", "17", 900, 600, 3},
	{18, "جيجل", "18", 700, 450, 3},
	{19, "سطيف", "19", 600, 450, 2},
	{20, "سعيدة", "20", 800, 450, 3},
	{21, "سكيكدة", "21", 700, 450, 2},
	{22, "سيدي بلعباس", "22", 700, 450, 2},
	{23, "عنابة", "23", 700, 450, 2},
	{24, "قالمة", "24", 800, 450, 3},
	{25, "قسنطينة", "25", 700, 450, 2},
	{26, "المدية", "26", 600, 450, 3},
	{27, "مستغانم", "27", 700, 450, 2},
	{28, "المسيلة", "28", 800, 450, 3},
	{29, "معسكر", "29", 700, 450, 3},
	{30, "ورقلة", "30", 900, 600, 5},
	{31, "وهران", "31", 700, 450, 2},
	{32, "البيض", "32", 900, 600, 3},
	{33, "إليزي", "33", 1400, 1000, 5},
	{34, "برج بوعريريج", "34", 700, 450, 3},
	{35, "بومرداس", "35", 650, 400, 1},
	{36, "الطارف", "36", 800, 450, 3},
	{37, "تندوف", "37", 1200, 800, 5},
	{38, "تيسمسيلت", "38", 800, 450, 3},
	{39, "الوادي", "39", 900, 600, 3},
	{40, "خنشلة", "40", 800, 450, 3},
	{41, "سوق أهراس", "41", 800, 450, 3},
	{42, "تيبازة", "42", 500, 400, 1},
	{43, "ميلة", "43", 600, 450, 3},
	{44, "عين الدفلى", "44", 600, 450, 3},
	{45, "النعامة", "45", 900, 600, 3},
	{46, "عين تموشنت", "46", 700, 450, 3},
	{47, "غرداية", "47", 950, 600, 5},
	{48, "غليزان", "48", 700, 450, 3},
	{49, "تيميمون", "49", 1200, 900, 3},
	{50, "برج باجي مختار", "50", 1600, 1200, 3},
	{51, "أولاد جلال", "51", 900, 600, 3},
	{52, "بني عباس", "52", 1200, 800, 3},
	{53, "عين صالح", "53", 1200, 800, 3},
	{54, "عين قزام", "54", 2000, 1500, 3},
	{55, "تقرت", "55", 900, 600, 3},
	{56, "جانت", "56", 2100, 1600, 3},
	{57, "المغير", "57", 900, 600, 3},
	{58, "المنيعة", "58", 950, 600, 3},
}

type baladiyaRow struct {
	id         int
	wilayaID   int
	name       string
	postalCode string
}

// Chef-lieu commune of every wilaya, plus the busiest communes of the large
// coastal agglomerations. Full commune coverage lives in the carrier's own
// systems; address precision only needs the pickup-relevant subset.
var baladiyaRows = []baladiyaRow{
	{1001, 1, "أدرار", "01001"},
	{2001, 2, "الشلف", "02001"},
	{3001, 3, "الأغواط", "03001"},
	{4001, 4, "أم البواقي", "04001"},
	{5001, 5, "باتنة", "05001"},
	{6001, 6, "بجاية", "06001"},
	{7001, 7, "بسكرة", "07001"},
	{8001, 8, "بشار", "08001"},
	{9001, 9, "البليدة", "09001"},
	{9002, 9, "بوفاريك", "09002"},
	{10001, 10, "البويرة", "10001"},
	{11001, 11, "تمنراست", "11001"},
	{12001, 12, "تبسة", "12001"},
	{13001, 13, "تلمسان", "13001"},
	{14001, 14, "تيارت", "14001"},
	{15001, 15, "تيزي وزو", "15001"},
	{16001, 16, "الجزائر الوسطى", "16001"},
	{16002, 16, "باب الوادي", "16002"},
	{16003, 16, "حسين داي", "16003"},
	{16004, 16, "الحراش", "16004"},
	{16005, 16, "بئر مراد رايس", "16005"},
	{17001, 17, "الجلفة", "17001"},
	{18001, 18, "جيجل", "18001"},
	{19001, 19, "سطيف", "19001"},
	{19002, 19, "العلمة", "19002"},
	{20001, 20, "سعيدة", "20001"},
	{21001, 21, "سكيكدة", "21001"},
	{22001, 22, "سيدي بلعباس", "22001"},
	{23001, 23, "عنابة", "23001"},
	{24001, 24, "قالمة", "24001"},
	{25001, 25, "قسنطينة", "25001"},
	{25002, 25, "الخروب", "25002"},
	{26001, 26, "المدية", "26001"},
	{27001, 27, "مستغانم", "27001"},
	{28001, 28, "المسيلة", "28001"},
	{29001, 29, "معسكر", "29001"},
	{30001, 30, "ورقلة", "30001"},
	{31001, 31, "وهران", "31001"},
	{31002, 31, "بئر الجير", "31002"},
	{31003, 31, "السانية", "31003"},
	{32001, 32, "البيض", "32001"},
	{33001, 33, "إليزي", "33001"},
	{34001, 34, "برج بوعريريج", "34001"},
	{35001, 35, "بومرداس", "35001"},
	{35002, 35, "برج منايل", "35002"},
	{36001, 36, "الطارف", "36001"},
	{37001, 37, "تندوف", "37001"},
	{38001, 38, "تيسمسيلت", "38001"},
	{39001, 39, "الوادي", "39001"},
	{40001, 40, "خنشلة", "40001"},
	{41001, 41, "سوق أهراس", "41001"},
	{42001, 42, "تيبازة", "42001"},
	{42002, 42, "القليعة", "42002"},
	{43001, 43, "ميلة", "43001"},
	{44001, 44, "عين الدفلى", "44001"},
	{45001, 45, "النعامة", "45001"},
	{46001, 46, "عين تموشنت", "46001"},
	{47001, 47, "غرداية", "47001"},
	{48001, 48, "غليزان", "48001"},
	{49001, 49, "تيميمون", "49001"},
	{50001, 50, "برج باجي مختار", "50001"},
	{51001, 51, "أولاد جلال", "51001"},
	{52001, 52, "بني عباس", "52001"},
	{53001, 53, "عين صالح", "53001"},
	{54001, 54, "عين قزام", "54001"},
	{55001, 55, "تقرت", "55001"},
	{56001, 56, "جانت", "56001"},
	{57001, 57, "المغير", "57001"},
	{58001, 58, "المنيعة", "58001"},
}
