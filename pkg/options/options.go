// Package options models the configurable plotting parameters handed to the
// downstream analysis tooling. Each option carries a tagged variant value so
// callers read settings back with a single switch on the kind instead of
// inspecting widget types.
package options

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
	KindBool
	KindChoice
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumeric:
		return "numeric"
	case KindBool:
		return "bool"
	case KindChoice:
		return "choice"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged variant: exactly one of the payloads is meaningful,
// selected by Kind.
type Value struct {
	kind    Kind
	text    string
	num     float64
	boolean bool
	choice  string
	choices []string
}

// Text builds a free-text value.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Numeric builds a numeric value.
func Numeric(f float64) Value { return Value{kind: KindNumeric, num: f} }

// Bool builds a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolean: b} }

// Choice builds a value picked from a fixed set of alternatives.
func Choice(selected string, alternatives ...string) Value {
	return Value{kind: KindChoice, choice: selected, choices: alternatives}
}

// Kind returns the active variant.
func (v Value) Kind() Kind { return v.kind }

// Text returns the text payload; ok is false for other kinds.
func (v Value) Text() (string, bool) { return v.text, v.kind == KindText }

// Numeric returns the numeric payload; ok is false for other kinds.
func (v Value) Numeric() (float64, bool) { return v.num, v.kind == KindNumeric }

// Bool returns the boolean payload; ok is false for other kinds.
func (v Value) Bool() (bool, bool) { return v.boolean, v.kind == KindBool }

// Choice returns the selected alternative; ok is false for other kinds.
func (v Value) Choice() (string, bool) { return v.choice, v.kind == KindChoice }

// Alternatives returns the candidate set of a choice value.
func (v Value) Alternatives() []string { return v.choices }

// String renders the active payload for display.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumeric:
		return fmt.Sprintf("%g", v.num)
	case KindBool:
		return fmt.Sprintf("%t", v.boolean)
	case KindChoice:
		return v.choice
	default:
		return ""
	}
}

// Option is one named plotting parameter. Include controls whether the
// option is shown and collected; excluded options keep their defaults.
type Option struct {
	Name    string
	Label   string
	Tooltip string
	Include bool
	Value   Value
}

// SetFromString parses raw according to the option's value kind and stores
// the result. Choice values must name one of the declared alternatives.
func (o *Option) SetFromString(raw string) error {
	switch o.Value.Kind() {
	case KindText:
		o.Value = Text(raw)
	case KindNumeric:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("options: %s expects a number: %w", o.Name, err)
		}
		o.Value = Numeric(f)
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("options: %s expects true or false: %w", o.Name, err)
		}
		o.Value = Bool(b)
	case KindChoice:
		for _, alt := range o.Value.Alternatives() {
			if raw == alt {
				o.Value = Choice(raw, o.Value.Alternatives()...)
				return nil
			}
		}
		return fmt.Errorf("options: %s must be one of %v", o.Name, o.Value.Alternatives())
	}
	return nil
}

// List holds the recognized options in a fixed declaration order.
type List struct {
	opts   []*Option
	byName map[string]*Option
}

// NewList builds a list from the given options. Duplicate names panic since
// the option set is a compile-time decision.
func NewList(opts ...*Option) *List {
	l := &List{byName: make(map[string]*Option, len(opts))}
	for _, o := range opts {
		if _, dup := l.byName[o.Name]; dup {
			panic(fmt.Sprintf("options: duplicate option %q", o.Name))
		}
		l.opts = append(l.opts, o)
		l.byName[o.Name] = o
	}
	return l
}

// NewPlotOptions returns the standard option set for result plotting, all
// excluded by default. Callers turn on the ones their dialog needs with
// SetIncludes.
func NewPlotOptions() *List {
	return NewList(
		&Option{
			Name:    "reactant",
			Label:   "Reactant",
			Tooltip: "String identity of reactant molecule to track. Must match the calibration file exactly.",
			Value:   Text(""),
		},
		&Option{
			Name:    "target_molecule",
			Label:   "Target Molecule",
			Tooltip: "String identity of the target used when calculating selectivity.",
			Value:   Text(""),
		},
		&Option{
			Name:    "mole_bal",
			Label:   "Mole Balance Element",
			Tooltip: "Element to balance moles for. The default is 'c' (carbon balance).",
			Value:   Text("c"),
		},
		&Option{
			Name:    "figsize",
			Label:   "Figure Size (x, y)",
			Tooltip: "Output figure size in inches. 1/2 slide = (6.5, 4.5); full slide = (9, 6.65).",
			Value:   Choice("(6.5, 4.5)", "(4.35, 3.25)", "(5, 3.65)", "(6.5, 4.5)", "(9, 6.65)"),
		},
		&Option{
			Name:  "savedata",
			Label: "Save Data?",
			Value: Bool(true),
		},
		&Option{
			Name:    "switch_to_hours",
			Label:   "Time to switch units to hours (hr)",
			Tooltip: "Time in hours at which the x axis switches from minutes to hours.",
			Value:   Numeric(2),
		},
		&Option{
			Name:  "overwrite",
			Label: "Overwrite previous calculations?",
			Value: Bool(false),
		},
		&Option{
			Name:  "basecorrect",
			Label: "Add baseline correction?",
			Value: Bool(true),
		},
		&Option{
			Name:  "xdata",
			Label: "Enter array for new X data",
			Value: Text("[x1, x2, x3, ...]"),
		},
		&Option{
			Name:  "units",
			Label: "Enter New X Units",
			Value: Text("H2/C2H2"),
		},
		&Option{
			Name:    "plot_xands",
			Label:   "Plot Conversion and Selectivity (2 plots)",
			Tooltip: "Plot conversion and selectivity as separate figures.",
			Value:   Bool(false),
		},
		&Option{
			Name:    "plot_xvss",
			Label:   "Plot Selectivity vs Conversion (1 plot)",
			Tooltip: "Plot selectivity as a function of conversion.",
			Value:   Bool(false),
		},
		&Option{
			Name:  "forcezero",
			Label: "Include (0, 0) in fit?",
			Value: Bool(true),
		},
	)
}

// Get returns the named option.
func (l *List) Get(name string) (*Option, bool) {
	o, ok := l.byName[name]
	return o, ok
}

// All returns every option in declaration order.
func (l *List) All() []*Option { return l.opts }

// Included returns the options currently turned on, in declaration order.
func (l *List) Included() []*Option {
	var out []*Option
	for _, o := range l.opts {
		if o.Include {
			out = append(out, o)
		}
	}
	return out
}

// SetIncludes toggles options on or off in bulk. Unknown names are an error
// so a typo cannot silently hide a dialog field.
func (l *List) SetIncludes(toggles map[string]bool) error {
	for name := range toggles {
		if _, ok := l.byName[name]; !ok {
			return fmt.Errorf("options: unknown option %q", name)
		}
	}
	for name, on := range toggles {
		l.byName[name].Include = on
	}
	return nil
}

// Values returns the current value of every included option keyed by name.
// With all set, excluded options are reported too.
func (l *List) Values(all bool) map[string]Value {
	out := make(map[string]Value)
	for _, o := range l.opts {
		if o.Include || all {
			out[o.Name] = o.Value
		}
	}
	return out
}
