// Package calibration loads gas chromatograph calibration tables. A table
// row holds the linear response fit for one chemical: measured counts map to
// concentration through slope and intercept, valid between the start and end
// concentrations the calibration gas covered.
package calibration

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Entry is the calibration fit for a single chemical.
type Entry struct {
	ChemID    string  `json:"chem_id"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Start     float64 `json:"start"` // lowest calibrated concentration (ppm)
	End       float64 `json:"end"`   // highest calibrated concentration (ppm)
}

// Table is an ordered calibration table indexed by chemical ID.
type Table struct {
	entries []Entry
	byID    map[string]int
}

// LoadFile reads a calibration table from a .csv or .xlsx file.
func LoadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Read(f)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("calibration: unsupported file type %s", filepath.Ext(path))
	}
}

// Read parses CSV calibration data. The header must carry Chem ID, slope,
// intercept, start, and end columns; header matching is case-insensitive.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("calibration: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("calibration: empty table")
	}
	return fromRecords(records)
}

func loadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("calibration: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("calibration: workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("calibration: %w", err)
	}
	return fromRecords(rows)
}

func fromRecords(records [][]string) (*Table, error) {
	cols, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	t := &Table{byID: make(map[string]int)}
	for i, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		e, err := parseEntry(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("calibration: row %d: %w", i+2, err)
		}
		if _, dup := t.byID[e.ChemID]; dup {
			return nil, fmt.Errorf("calibration: duplicate chem ID %q", e.ChemID)
		}
		t.byID[e.ChemID] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

var wantedColumns = []string{"chem id", "slope", "intercept", "start", "end"}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, want := range wantedColumns {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("calibration: missing column %q", want)
		}
	}
	return cols, nil
}

func parseEntry(rec []string, cols map[string]int) (Entry, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	e := Entry{ChemID: field("chem id")}
	if e.ChemID == "" {
		return Entry{}, fmt.Errorf("empty chem ID")
	}
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"slope", &e.Slope},
		{"intercept", &e.Intercept},
		{"start", &e.Start},
		{"end", &e.End},
	} {
		v, err := strconv.ParseFloat(field(f.name), 64)
		if err != nil {
			return Entry{}, fmt.Errorf("parse %s: %w", f.name, err)
		}
		*f.dst = v
	}
	return e, nil
}

// Entries returns the calibration rows in file order.
func (t *Table) Entries() []Entry { return t.entries }

// Get returns the calibration entry for a chemical.
func (t *Table) Get(chemID string) (Entry, bool) {
	i, ok := t.byID[chemID]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// ConcentrationOf converts raw detector counts to concentration (ppm) using
// the chemical's linear fit.
func (t *Table) ConcentrationOf(chemID string, counts float64) (float64, error) {
	e, ok := t.Get(chemID)
	if !ok {
		return 0, fmt.Errorf("calibration: no entry for %q", chemID)
	}
	return e.Slope*counts + e.Intercept, nil
}

// InRange reports whether a concentration falls inside the calibrated span
// for the chemical.
func (t *Table) InRange(chemID string, ppm float64) (bool, error) {
	e, ok := t.Get(chemID)
	if !ok {
		return false, fmt.Errorf("calibration: no entry for %q", chemID)
	}
	return ppm >= e.Start && ppm <= e.End, nil
}
