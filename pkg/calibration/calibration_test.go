package calibration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Chem ID,slope,intercept,start,end
c2h2,1.5,0.1,10,1000
c2h4,2.0,-0.2,5,500
h2,0.8,0.0,50,5000
`

func TestRead(t *testing.T) {
	table, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	entries := table.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "c2h2", entries[0].ChemID)
	assert.Equal(t, 1.5, entries[0].Slope)
	assert.Equal(t, 0.1, entries[0].Intercept)

	e, ok := table.Get("h2")
	require.True(t, ok)
	assert.Equal(t, 50.0, e.Start)
	assert.Equal(t, 5000.0, e.End)

	_, ok = table.Get("ch4")
	assert.False(t, ok)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"empty input", ""},
		{"missing column", "Chem ID,slope,intercept,start\nc2h2,1,0,10\n"},
		{"bad number", "Chem ID,slope,intercept,start,end\nc2h2,abc,0,10,100\n"},
		{"duplicate chem", "Chem ID,slope,intercept,start,end\nc2h2,1,0,10,100\nc2h2,2,0,10,100\n"},
		{"empty chem id", "Chem ID,slope,intercept,start,end\n,1,0,10,100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}
}

func TestConcentrationOf(t *testing.T) {
	table, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	ppm, err := table.ConcentrationOf("c2h2", 100)
	require.NoError(t, err)
	assert.InDelta(t, 150.1, ppm, 1e-9)

	inRange, err := table.InRange("c2h2", ppm)
	require.NoError(t, err)
	assert.True(t, inRange)

	inRange, err = table.InRange("c2h2", 2000)
	require.NoError(t, err)
	assert.False(t, inRange)

	_, err = table.ConcentrationOf("unknown", 1)
	assert.Error(t, err)
}

func TestLoadFileCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cal.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, table.Entries(), 3)
}

func TestLoadFileXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cal.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Chem ID", "slope", "intercept", "start", "end"},
		{"c2h2", 1.5, 0.1, 10, 1000},
		{"c2h4", 2.0, -0.2, 5, 500},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, table.Entries(), 2)

	e, ok := table.Get("c2h4")
	require.True(t, ok)
	assert.Equal(t, 2.0, e.Slope)
}

func TestLoadFileUnsupported(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "cal.txt"))
	assert.Error(t, err)
}
