// Package session drives the dataset selection flow: prompt for scan roots,
// find matching files, build the display tree, and turn the user's checked
// nodes into labeled dataset paths.
package session

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/photocat/gcsel/pkg/pathtree"
)

// ErrNoDirectorySelected is returned when the directory prompt yields no
// roots to scan.
var ErrNoDirectorySelected = errors.New("no directory selected")

// ErrNotPopulated is returned when Accept is called before a scan completed.
var ErrNotPopulated = errors.New("session has no populated tree")

// State tracks where the selection flow currently is.
type State int

const (
	StateScanning State = iota
	StatePopulated
	StateAccepted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StatePopulated:
		return "populated"
	case StateAccepted:
		return "accepted"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Prompter asks the user for one or more scan root directories. An empty
// result means the user aborted the prompt.
type Prompter interface {
	SelectDirectories(startingDir string) ([]string, error)
}

// Lister finds matching dataset files under the given roots.
type Lister func(roots []string, target, suffix string) ([]string, error)

// Pair is one accepted selection entry: a reconstructed dataset path and the
// free-text label the user attached to it.
type Pair struct {
	Path  string `json:"path" yaml:"path"`
	Label string `json:"label" yaml:"label"`
}

// Config holds the matching parameters for a selection session.
type Config struct {
	Target      string // substring a file name must contain
	Suffix      string // file extension to match
	Depth       int    // directory levels to ascend before display
	StartingDir string // seed directory for the prompt
}

// Session owns one selection flow. It is single-threaded by design: every
// transition happens synchronously on the caller's goroutine.
type Session struct {
	cfg      Config
	prompter Prompter
	list     Lister
	log      *logrus.Logger

	state    State
	tree     *pathtree.Tree
	pathRoot string // common root for truncation and reconstruction
	roots    []string
}

// New creates a session in the Scanning state.
func New(cfg Config, prompter Prompter, list Lister, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
	}
	return &Session{cfg: cfg, prompter: prompter, list: list, log: log, state: StateScanning}
}

// State returns the current flow state.
func (s *Session) State() State { return s.state }

// Tree returns the display tree built by the last scan, or nil.
func (s *Session) Tree() *pathtree.Tree { return s.tree }

// Root returns the common root directory of the last scan.
func (s *Session) Root() string { return s.pathRoot }

// Roots returns the directories selected for the last scan.
func (s *Session) Roots() []string { return s.roots }

// Scan prompts for scan roots, lists matching files, and builds the display
// tree. A scan that matches no files still populates (with an empty tree) so
// the user can cancel and rescan. An aborted prompt or an invalid depth
// leaves the session in the Scanning state with no partial tree.
func (s *Session) Scan() error {
	dirs, err := s.prompter.SelectDirectories(s.cfg.StartingDir)
	if err != nil {
		return fmt.Errorf("select directories: %w", err)
	}
	if len(dirs) == 0 {
		return ErrNoDirectorySelected
	}

	files, err := s.list(dirs, s.cfg.Target, s.cfg.Suffix)
	if err != nil {
		return fmt.Errorf("list matching files: %w", err)
	}
	s.log.WithFields(logrus.Fields{
		"roots":   len(dirs),
		"matches": len(files),
		"target":  s.cfg.Target,
		"suffix":  s.cfg.Suffix,
	}).Debug("scan complete")

	// The display tree is rooted at the parent of the first selected
	// directory so sibling selections share one forest.
	root := filepath.Dir(filepath.Clean(dirs[0]))
	tree, err := pathtree.Build(files, s.cfg.Depth, root)
	if err != nil {
		return err
	}

	s.tree = tree
	s.pathRoot = root
	s.roots = dirs
	s.state = StatePopulated
	return nil
}

// Accept collects every checked node in traversal order, reconstructs its
// dataset path, and pairs it with its label. The session becomes terminal.
func (s *Session) Accept() ([]Pair, error) {
	if s.state != StatePopulated || s.tree == nil {
		return nil, ErrNotPopulated
	}
	var pairs []Pair
	for _, n := range s.tree.CheckedNodes() {
		pairs = append(pairs, Pair{
			Path:  pathtree.Reconstruct(n, s.pathRoot),
			Label: n.Label,
		})
	}
	s.state = StateAccepted
	return pairs, nil
}

// Cancel discards the current tree and returns the session to Scanning so
// the caller can prompt for a fresh set of directories.
func (s *Session) Cancel() {
	s.tree = nil
	s.pathRoot = ""
	s.roots = nil
	s.state = StateScanning
}
