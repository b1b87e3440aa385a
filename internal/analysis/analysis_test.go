package analysis

import (
	"testing"

	"ncaam_v5/strategy/internal/table"
)

var testHeaders = []string{"Rk", "Team", "Conf", "AdjT", "ORtg", "DRtg", "NetRtg", "Luck", "Strength of Schedule"}

var testRows = [][]string{
	{"1", "Duke Blue Devils", "ACC", "66.2", "126.5", "89.6", "36.9", "-0.02", "10.5"},
	{"2", "Houston Cougars", "B12", "61.8", "122.9", "87.9", "35.0", "0.01", "11.2"},
	{"3", "Auburn Tigers", "SEC", "68.1", "129.0", "94.3", "34.7", "0.03", "14.8"},
	{"4", "Texas Longhorns", "SEC", "71.5", "115.2", "96.1", "19.1", "0.04", "12.9"},
	{"5", "Texas Tech Red Raiders", "B12", "65.0", "121.8", "95.4", "26.4", "-0.01", "9.8"},
	{"6", "Broken State", "IND", "59.0", "101.0", "109.0", "-8.0", "", "-3.1"},
}

func newTestTable(t *testing.T) *table.Table {
	t.Helper()
	return table.New(testHeaders, testRows)
}
