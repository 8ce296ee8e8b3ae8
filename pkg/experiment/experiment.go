// Package experiment reads reactor experiment logs. Every experiment folder
// carries an expt_log.txt with the run parameters written as "Key: value"
// lines; this package parses those logs and discovers them under a data
// directory.
package experiment

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LogFileName is the canonical experiment log file name.
const LogFileName = "expt_log.txt"

// Experiment holds the parameters parsed from one experiment log.
type Experiment struct {
	Path       string    `json:"path"` // directory containing the log
	ExptType   string    `json:"expt_type"`
	SampleName string    `json:"sample_name,omitempty"`
	Date       string    `json:"date,omitempty"`
	GasTypes   []string  `json:"gas_types,omitempty"`
	GasComp    []float64 `json:"gas_comp,omitempty"`   // fraction per gas, same order as GasTypes
	Temps      []float64 `json:"temps,omitempty"`      // K
	TotalFlow  []float64 `json:"total_flow,omitempty"` // sccm
	Power      []float64 `json:"power,omitempty"`      // mW
}

// ReadLog parses the experiment log at path.
func ReadLog(path string) (*Experiment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	expt, err := parseLog(f)
	if err != nil {
		return nil, fmt.Errorf("experiment: %s: %w", path, err)
	}
	expt.Path = filepath.Dir(path)
	return expt, nil
}

func parseLog(r io.Reader) (*Experiment, error) {
	expt := &Experiment{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue // tolerate free-form lines in older logs
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		var err error
		switch strings.ToLower(key) {
		case "expt type":
			expt.ExptType = value
		case "sample name":
			expt.SampleName = value
		case "date":
			expt.Date = value
		case "gas types":
			expt.GasTypes = splitList(value)
		case "gas comp":
			expt.GasComp, err = parseFloats(value)
		case "temp [k]":
			expt.Temps, err = parseFloats(value)
		case "total flow [sccm]":
			expt.TotalFlow, err = parseFloats(value)
		case "power [mw]":
			expt.Power, err = parseFloats(value)
		}
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", key, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if expt.ExptType == "" {
		return nil, fmt.Errorf("missing 'Expt Type'")
	}
	return expt, nil
}

// splitList breaks a bracketed, comma-separated list into trimmed items.
func splitList(value string) []string {
	value = strings.Trim(value, "[]")
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(strings.Trim(strings.TrimSpace(item), `'"`))
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseFloats(value string) ([]float64, error) {
	var out []float64
	for _, item := range splitList(value) {
		f, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// FindLogs walks root and returns an Experiment for every expt_log.txt
// found, in walk order. Unreadable or malformed logs abort the walk.
func FindLogs(root string) ([]*Experiment, error) {
	var expts []*Experiment
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != LogFileName {
			return nil
		}
		expt, err := ReadLog(path)
		if err != nil {
			return err
		}
		expts = append(expts, expt)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("experiment: find logs under %s: %w", root, err)
	}
	return expts, nil
}
