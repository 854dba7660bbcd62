package workspace

import (
	"os"
	"path/filepath"

	"github.com/aak-labs/aak/internal/branding"
)

// IsProjectRoot reports whether dir contains every marker file that
// identifies a kernel project root. Both markers must be regular files;
// a directory with the right name does not count.
func IsProjectRoot(dir string) bool {
	for _, marker := range branding.MarkerFiles() {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err != nil || info.IsDir() {
			return false
		}
	}
	return true
}

// HasGitMetadata reports whether dir contains a .git directory, i.e. an
// existing checkout that can be reused instead of cloning.
func HasGitMetadata(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && info.IsDir()
}
