// Package scan locates dataset files under a set of experiment directories.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ListMatchingFiles recursively walks each root and returns the absolute
// paths of files whose name contains target and ends with suffix. Results
// are collated case-insensitively so display order is stable regardless of
// the order the filesystem yields entries in.
func ListMatchingFiles(roots []string, target, suffix string) ([]string, error) {
	var matches []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			name := d.Name()
			if strings.Contains(name, target) && strings.HasSuffix(name, suffix) {
				abs, err := filepath.Abs(path)
				if err != nil {
					return err
				}
				matches = append(matches, abs)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan root %s: %w", root, err)
		}
	}

	c := collate.New(language.English, collate.IgnoreCase)
	sort.Slice(matches, func(i, j int) bool {
		return c.CompareString(matches[i], matches[j]) < 0
	})
	return matches, nil
}
