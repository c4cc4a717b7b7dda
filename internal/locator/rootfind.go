package locator

import (
	"bytes"
	"os"
	"path/filepath"
)

// maxAscents bounds upward traversal so locate terminates on pathological
// filesystems (symlink cycles, permission walls).
const maxAscents = 10

// manifestName is the cargo manifest checked at each ascended directory.
const manifestName = "Cargo.toml"

// markerDirName is the sibling directory that must exist next to the
// manifest for a directory to qualify as a Boa checkout root.
const markerDirName = "cli"

// markerTokens are project-identifying strings; the manifest must contain at
// least one. This prevents false positives when an unrelated cargo project
// also has a cli directory.
var markerTokens = [][]byte{
	[]byte("boa_engine"),
	[]byte("boa_cli"),
}

// findCheckoutRoot ascends from start looking for the nearest enclosing Boa
// checkout root. It checks at most maxAscents directories and stops early at
// the filesystem root.
func findCheckoutRoot(start string) (string, bool) {
	dir := filepath.Clean(start)
	for i := 0; i < maxAscents; i++ {
		if isCheckoutRoot(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// isCheckoutRoot reports whether dir is a Boa checkout root: a cargo
// manifest whose content names the project, next to a cli directory. An
// unreadable manifest counts as not satisfied; ascent continues.
func isCheckoutRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, markerDirName))
	if err != nil || !info.IsDir() {
		return false
	}

	content, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return false
	}

	for _, token := range markerTokens {
		if bytes.Contains(content, token) {
			return true
		}
	}
	return false
}
