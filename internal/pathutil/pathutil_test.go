package pathutil

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestVaultRelativeReturnsForwardSlashes(t *testing.T) {
	vaultParts := []string{"home", "user", "vault"}
	fileParts := append(append([]string{}, vaultParts...), "subdir", "file.md")

	posixVault := filepath.Join(vaultParts...)
	posixFile := filepath.Join(fileParts...)

	if rel := VaultRelative(posixVault, posixFile); rel != "subdir/file.md" {
		t.Fatalf("expected relative path 'subdir/file.md', got %q", rel)
	}

	windowsVault := strings.ReplaceAll(posixVault, string(filepath.Separator), "\\")
	windowsFile := strings.ReplaceAll(posixFile, string(filepath.Separator), "\\")

	if rel := VaultRelative(windowsVault, windowsFile); rel != "subdir/file.md" {
		t.Fatalf("expected relative path 'subdir/file.md', got %q", rel)
	}
}

func TestVaultRelativeLeavesOutsideTargetsAlone(t *testing.T) {
	vault := filepath.Join("home", "user", "vault")
	outside := filepath.Join("home", "user", "elsewhere", "file.md")

	if rel := VaultRelative(vault, outside); rel != "home/user/elsewhere/file.md" {
		t.Fatalf("expected outside target unchanged, got %q", rel)
	}
}
