package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidRoot indicates the configured vault path exists but is not a
// directory.
var ErrInvalidRoot = errors.New("vault path is not a directory")

// Scanner walks a vault directory and yields markdown note paths. Hidden
// entries and configured folders are skipped entirely.
type Scanner struct {
	root     string
	skipDirs map[string]struct{}
}

// New validates the vault root up front so callers learn about a missing or
// misconfigured vault before any scanning starts.
func New(root string, skipDirs []string) (*Scanner, error) {
	cleaned := filepath.Clean(root)

	info, err := os.Stat(cleaned)
	if err != nil {
		return nil, fmt.Errorf("vault path %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoot, root)
	}

	skip := make(map[string]struct{}, len(skipDirs))
	for _, dir := range skipDirs {
		if dir = strings.TrimSpace(dir); dir != "" {
			skip[dir] = struct{}{}
		}
	}

	return &Scanner{root: cleaned, skipDirs: skip}, nil
}

func (s *Scanner) Root() string {
	return s.root
}

// Scan walks the vault and invokes visit for every note file, in directory
// walk order. Unreadable entries are skipped rather than aborting the walk;
// an error returned by visit stops the scan and is returned as-is.
func (s *Scanner) Scan(visit func(path string) error) error {
	return filepath.Walk(
		s.root,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				// Permission failures and races leave the affected
				// subtree out of the scan.
				return nil
			}

			name := filepath.Base(path)
			if info.IsDir() {
				if path == s.root {
					return nil
				}
				if strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				if _, skip := s.skipDirs[name]; skip {
					return filepath.SkipDir
				}
				return nil
			}

			if strings.HasPrefix(name, ".") || !info.Mode().IsRegular() {
				return nil
			}

			switch strings.ToLower(filepath.Ext(name)) {
			case ".md", ".markdown":
				return visit(path)
			}
			return nil
		},
	)
}

// Count reports how many note files a Scan would visit without reading any
// of them.
func (s *Scanner) Count() (int, error) {
	var n int
	err := s.Scan(func(string) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
