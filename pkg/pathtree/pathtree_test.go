package pathtree

import (
	"errors"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		depth   int
		root    string
		want    string
		wantErr bool
	}{
		{
			name:  "depth zero keeps the file path",
			file:  "/data/expt/Results/avg_conc.csv",
			depth: 0,
			root:  "/data",
			want:  "/data/expt/Results/avg_conc.csv",
		},
		{
			name:  "depth one yields the containing directory",
			file:  "/data/expt/Results/avg_conc.csv",
			depth: 1,
			root:  "/data",
			want:  "/data/expt/Results",
		},
		{
			name:  "depth two yields the experiment folder",
			file:  "/data/expt/Results/avg_conc.csv",
			depth: 2,
			root:  "/data",
			want:  "/data/expt",
		},
		{
			name:    "depth exceeding ancestors fails",
			file:    "/root/a.csv",
			depth:   2,
			root:    "/root",
			wantErr: true,
		},
		{
			name:    "negative depth fails",
			file:    "/data/expt/Results/avg_conc.csv",
			depth:   -1,
			root:    "/data",
			wantErr: true,
		},
		{
			name:    "ascending to the scan root itself fails",
			file:    "/data/expt/Results/avg_conc.csv",
			depth:   3,
			root:    "/data",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Truncate(tt.file, tt.depth, tt.root)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Truncate() = %q, want error", got)
				}
				var depthErr *InvalidDepthError
				if !errors.As(err, &depthErr) {
					t.Errorf("Truncate() error = %v, want InvalidDepthError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Truncate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Truncate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCollapsesCommonPrefixes(t *testing.T) {
	files := []string{
		"/root/a/Results/avg_conc.csv",
		"/root/a/Results/other.csv",
		"/root/b/Results/avg_conc.csv",
	}
	tree, err := Build(files, 2, "/root")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	roots := tree.Roots()
	if len(roots) != 2 || roots[0].Name != "a" || roots[1].Name != "b" {
		t.Fatalf("Roots() = %v, want [a b]", names(roots))
	}
	for _, c := range roots {
		if !c.Checkable {
			t.Errorf("node %s should be checkable", c.Name)
		}
		if len(c.Children) != 0 {
			t.Errorf("node %s should have no children, got %v", c.Name, names(c.Children))
		}
	}
}

func TestBuildFailsFastOnInvalidDepth(t *testing.T) {
	files := []string{
		"/root/a/Results/avg_conc.csv",
		"/root/a.csv", // zero ancestor directories under /root
	}
	tree, err := Build(files, 2, "/root")
	if err == nil {
		t.Fatal("Build() expected error")
	}
	var depthErr *InvalidDepthError
	if !errors.As(err, &depthErr) {
		t.Fatalf("Build() error = %v, want InvalidDepthError", err)
	}
	if depthErr.File != "/root/a.csv" || depthErr.Depth != 2 {
		t.Errorf("InvalidDepthError = %+v, want file /root/a.csv depth 2", depthErr)
	}
	if tree != nil {
		t.Error("Build() returned a partial tree alongside the error")
	}
}

func TestBuildEmptyInput(t *testing.T) {
	tree, err := Build(nil, 2, "/root")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !tree.Empty() {
		t.Error("tree from empty input should be empty")
	}
	if got := tree.CheckedNodes(); len(got) != 0 {
		t.Errorf("CheckedNodes() = %v, want none", got)
	}
}

func TestInsertSkipsEmptyComponents(t *testing.T) {
	tree := NewTree()
	tree.Insert([]string{"a", "", "b", ""})

	roots := tree.Roots()
	if len(roots) != 1 || roots[0].Name != "a" {
		t.Fatalf("Roots() = %v, want [a]", names(roots))
	}
	if len(roots[0].Children) != 1 || roots[0].Children[0].Name != "b" {
		t.Fatalf("children of a = %v, want [b]", names(roots[0].Children))
	}
	if !roots[0].Children[0].Checkable {
		t.Error("b is the final non-empty component and should be checkable")
	}
}

func TestInsertSiblingUniqueness(t *testing.T) {
	tree := NewTree()
	tree.Insert([]string{"x", "one"})
	tree.Insert([]string{"x", "two"})
	tree.Insert([]string{"x", "one"})

	roots := tree.Roots()
	if len(roots) != 1 {
		t.Fatalf("Roots() = %v, want [x]", names(roots))
	}
	kids := roots[0].Children
	if len(kids) != 2 || kids[0].Name != "one" || kids[1].Name != "two" {
		t.Errorf("children = %v, want [one two] in insertion order", names(kids))
	}
}

func TestLeafCheckabilityIsSticky(t *testing.T) {
	tree := NewTree()
	tree.Insert([]string{"a", "b"})
	tree.Insert([]string{"a"}) // a later appears as a final component

	a := tree.Roots()[0]
	if !a.Checkable {
		t.Error("a should become checkable once it is a final component")
	}
	if !a.Children[0].Checkable {
		t.Error("b should stay checkable")
	}
}

func TestSetCheckedIgnoresNonCheckable(t *testing.T) {
	tree := NewTree()
	tree.Insert([]string{"a", "b"})

	a := tree.Roots()[0]
	a.SetChecked(true)
	if a.Checked {
		t.Error("non-checkable node must not accept a checked state")
	}
	b := a.Children[0]
	b.SetChecked(true)
	if !b.Checked {
		t.Error("checkable leaf should accept a checked state")
	}
}

func TestReconstructRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		file  string
		depth int
		root  string
	}{
		{"file itself", "/data/expt/Results/avg_conc.csv", 0, "/data"},
		{"containing dir", "/data/expt/Results/avg_conc.csv", 1, "/data"},
		{"experiment folder", "/data/expt/Results/avg_conc.csv", 2, "/data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			truncated, err := Truncate(tt.file, tt.depth, tt.root)
			if err != nil {
				t.Fatalf("Truncate() error = %v", err)
			}
			tree, err := Build([]string{tt.file}, tt.depth, tt.root)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}

			// Descend to the single leaf.
			node := tree.Roots()[0]
			for len(node.Children) > 0 {
				node = node.Children[0]
			}
			if got := Reconstruct(node, tt.root); got != truncated {
				t.Errorf("Reconstruct() = %q, want %q", got, truncated)
			}
		})
	}
}

func TestSelectionScenario(t *testing.T) {
	files := []string{
		"/root/a/Results/avg_conc.csv",
		"/root/a/Results/other.csv",
		"/root/b/Results/avg_conc.csv",
	}
	tree, err := Build(files, 2, "/root")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	a, b := tree.Roots()[0], tree.Roots()[1]
	a.SetChecked(true)
	a.Label = "run1"
	b.SetChecked(true)
	b.Label = "run2"

	checked := tree.CheckedNodes()
	if len(checked) != 2 {
		t.Fatalf("CheckedNodes() = %d nodes, want 2", len(checked))
	}
	want := []struct{ path, label string }{
		{"/root/a", "run1"},
		{"/root/b", "run2"},
	}
	for i, n := range checked {
		if got := Reconstruct(n, "/root"); got != want[i].path {
			t.Errorf("path[%d] = %q, want %q", i, got, want[i].path)
		}
		if n.Label != want[i].label {
			t.Errorf("label[%d] = %q, want %q", i, n.Label, want[i].label)
		}
	}
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}
