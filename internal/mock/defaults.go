package mock

var starHeader = []string{"StarID", "ProperName", "X", "Y", "Z"}

var tenStarRows = [][]string{
	{"0", "Sol", "0", "0", "0"},
	{"1", "", "282.43485", "0.00449", "5.36884"},
	{"2", "", "43.04329", "0.00285", "-15.24144"},
	{"3", "", "277.11358", "0.02422", "223.27753"},
	{"3759", "96 G. Psc", "7.26388", "1.55643", "0.68697"},
	{"70667", "Proxima Centauri", "-0.47175", "-0.36132", "-1.15037"},
	{"71454", "Rigel Kentaurus B", "-0.50359", "-0.42128", "-1.1767"},
	{"71457", "Rigel Kentaurus A", "-0.50362", "-0.42139", "-1.17665"},
	{"87666", "Barnard's Star", "-0.01729", "-1.81533", "0.14824"},
	{"118721", "", "-2.28262", "0.64697", "0.29354"},
}

// Default returns the built-in fixtures
func Default() *Dataset {
	tenStar := append([][]string{starHeader}, tenStarRows...)

	loadView := map[string]Response{
		"ten-star.csv": {Status: 200, Table: tenStar},
		"stars.csv": {Status: 200, Table: [][]string{
			starHeader,
			tenStarRows[0],
			tenStarRows[5],
			tenStarRows[8],
		}},
		"empty.csv": {Status: 200, Table: [][]string{}},
		"malformed.csv": {Status: 200, Table: [][]string{
			{"City/Town", "Median Household Income"},
			{"Providence", "55,787.00", "extra"},
			{"Cranston"},
		}},
		"header-only.csv": {Status: 200, Table: [][]string{starHeader}},
	}

	search := map[string]Response{
		"Sol":                     {Status: 200, Table: [][]string{tenStarRows[0]}},
		"ProperName Sol":          {Status: 200, Table: [][]string{tenStarRows[0]}},
		"1 Sol":                   {Status: 200, Table: [][]string{tenStarRows[0]}},
		"StarID 0":                {Status: 200, Table: [][]string{tenStarRows[0]}},
		"ProperName Proxima":      {Status: 200, Table: [][]string{tenStarRows[5]}},
		"Rigel":                   {Status: 200, Table: [][]string{tenStarRows[6], tenStarRows[7]}},
		"ProperName Kentaurus":    {Status: 200, Table: [][]string{tenStarRows[6], tenStarRows[7]}},
		"X 0":                     {Status: 200, Table: [][]string{tenStarRows[0]}},
		"Nonexistent":             {Status: 200, Table: [][]string{}},
		"ProperName Andromeda":    {Status: 200, Table: [][]string{}},
		"Median Household Income": {Status: 400, Table: [][]string{}},
	}

	return NewDataset(loadView, search)
}
