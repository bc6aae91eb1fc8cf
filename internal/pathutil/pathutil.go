package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's
// separator and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// VaultRelative returns the path to target relative to the provided vault
// directory, always using forward slashes so output is stable across
// platforms. Targets outside the vault are returned unchanged.
func VaultRelative(vaultDir, target string) string {
	base := NormalizePath(vaultDir)
	cleaned := NormalizePath(target)

	rel, err := filepath.Rel(base, cleaned)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(cleaned)
	}

	return filepath.ToSlash(rel)
}
