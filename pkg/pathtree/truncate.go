package pathtree

import (
	"fmt"
	"path/filepath"
	"strings"
)

// InvalidDepthError reports a truncation depth that ascends past the
// ancestors available for a matched file.
type InvalidDepthError struct {
	File  string
	Depth int
}

func (e *InvalidDepthError) Error() string {
	return fmt.Sprintf("depth %d exceeds available ancestors for %s", e.Depth, e.File)
}

// Truncate ascends depth directory levels from file and returns the
// resulting absolute path. The result must remain strictly below the common
// root; otherwise an InvalidDepthError is returned.
func Truncate(file string, depth int, root string) (string, error) {
	if depth < 0 {
		return "", &InvalidDepthError{File: file, Depth: depth}
	}
	p := filepath.Clean(file)
	for i := 0; i < depth; i++ {
		p = filepath.Dir(p)
	}
	if _, err := displaySegments(p, root); err != nil {
		return "", &InvalidDepthError{File: file, Depth: depth}
	}
	return p, nil
}

// displaySegments expresses the truncated path relative to the common root
// and splits it into components for tree insertion.
func displaySegments(truncated, root string) ([]string, error) {
	base := filepath.Clean(root)
	rel, err := filepath.Rel(base, truncated)
	if err != nil {
		return nil, err
	}
	sep := string(filepath.Separator)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+sep) {
		return nil, fmt.Errorf("%s is not below %s", truncated, base)
	}
	return strings.Split(rel, sep), nil
}

// Build truncates every matched file to the given depth and collapses the
// results into a display tree. The first file whose ancestors cannot cover
// the requested depth aborts the build; no partial tree is returned.
func Build(files []string, depth int, root string) (*Tree, error) {
	t := NewTree()
	for _, f := range files {
		truncated, err := Truncate(f, depth, root)
		if err != nil {
			return nil, err
		}
		segments, err := displaySegments(truncated, root)
		if err != nil {
			return nil, &InvalidDepthError{File: f, Depth: depth}
		}
		t.Insert(segments)
	}
	return t, nil
}

// Reconstruct rebuilds the absolute path for a node by walking parent links
// to the forest root and prepending the common root used during truncation.
// It is the left-inverse of Truncate for any node built from a matched file.
func Reconstruct(n *Node, root string) string {
	var parts []string
	for cur := n; cur != nil && cur.Name != ""; cur = cur.Parent {
		parts = append(parts, cur.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return filepath.Join(filepath.Clean(root), filepath.Join(parts...))
}
