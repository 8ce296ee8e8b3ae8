package options

import (
	"testing"
)

func TestValueVariants(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		wantKind Kind
		wantStr  string
	}{
		{"text", Text("c2h2"), KindText, "c2h2"},
		{"numeric", Numeric(2.5), KindNumeric, "2.5"},
		{"bool", Bool(true), KindBool, "true"},
		{"choice", Choice("(5, 3.65)", "(5, 3.65)", "(9, 6.65)"), KindChoice, "(5, 3.65)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", tt.value.Kind(), tt.wantKind)
			}
			if tt.value.String() != tt.wantStr {
				t.Errorf("String() = %q, want %q", tt.value.String(), tt.wantStr)
			}
		})
	}
}

func TestValueAccessorsRejectWrongKind(t *testing.T) {
	v := Text("hello")
	if _, ok := v.Numeric(); ok {
		t.Error("Numeric() on a text value should not be ok")
	}
	if _, ok := v.Bool(); ok {
		t.Error("Bool() on a text value should not be ok")
	}
	if got, ok := v.Text(); !ok || got != "hello" {
		t.Errorf("Text() = %q, %v, want hello, true", got, ok)
	}
}

func TestSetFromString(t *testing.T) {
	l := NewPlotOptions()

	tests := []struct {
		option  string
		raw     string
		wantErr bool
		check   func(t *testing.T, v Value)
	}{
		{option: "reactant", raw: "c2h2", check: func(t *testing.T, v Value) {
			if got, _ := v.Text(); got != "c2h2" {
				t.Errorf("reactant = %q", got)
			}
		}},
		{option: "switch_to_hours", raw: "1.5", check: func(t *testing.T, v Value) {
			if got, _ := v.Numeric(); got != 1.5 {
				t.Errorf("switch_to_hours = %v", got)
			}
		}},
		{option: "savedata", raw: "false", check: func(t *testing.T, v Value) {
			if got, _ := v.Bool(); got {
				t.Error("savedata should be false")
			}
		}},
		{option: "figsize", raw: "(9, 6.65)", check: func(t *testing.T, v Value) {
			if got, _ := v.Choice(); got != "(9, 6.65)" {
				t.Errorf("figsize = %q", got)
			}
		}},
		{option: "switch_to_hours", raw: "soon", wantErr: true},
		{option: "savedata", raw: "maybe", wantErr: true},
		{option: "figsize", raw: "(1, 1)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.option+"="+tt.raw, func(t *testing.T) {
			o, ok := l.Get(tt.option)
			if !ok {
				t.Fatalf("unknown option %q", tt.option)
			}
			err := o.SetFromString(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("SetFromString() error = %v", err)
			}
			tt.check(t, o.Value)
		})
	}
}

func TestSetIncludes(t *testing.T) {
	l := NewPlotOptions()

	err := l.SetIncludes(map[string]bool{
		"reactant":        true,
		"target_molecule": true,
		"mole_bal":        true,
	})
	if err != nil {
		t.Fatalf("SetIncludes() error = %v", err)
	}

	included := l.Included()
	if len(included) != 3 {
		t.Fatalf("Included() = %d options, want 3", len(included))
	}
	// Declaration order is preserved.
	if included[0].Name != "reactant" || included[2].Name != "mole_bal" {
		t.Errorf("Included() order = %v", []string{included[0].Name, included[1].Name, included[2].Name})
	}
}

func TestSetIncludesUnknownName(t *testing.T) {
	l := NewPlotOptions()
	err := l.SetIncludes(map[string]bool{"no_such_option": true})
	if err == nil {
		t.Fatal("SetIncludes() with unknown name should fail")
	}
	if len(l.Included()) != 0 {
		t.Error("a failed SetIncludes must not apply any toggles")
	}
}

func TestValues(t *testing.T) {
	l := NewPlotOptions()
	if err := l.SetIncludes(map[string]bool{"mole_bal": true, "savedata": true}); err != nil {
		t.Fatalf("SetIncludes() error = %v", err)
	}

	vals := l.Values(false)
	if len(vals) != 2 {
		t.Fatalf("Values(false) = %d entries, want 2", len(vals))
	}
	if got, ok := vals["mole_bal"].Text(); !ok || got != "c" {
		t.Errorf("mole_bal = %q, %v, want c, true", got, ok)
	}
	if got, ok := vals["savedata"].Bool(); !ok || !got {
		t.Errorf("savedata = %v, %v, want true, true", got, ok)
	}

	all := l.Values(true)
	if len(all) != len(l.All()) {
		t.Errorf("Values(true) = %d entries, want %d", len(all), len(l.All()))
	}
}
