package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir makes path absolute (relative paths are taken from the
// working directory) and creates its parent directory, readable by the
// owner only. The file itself is not created.
func EnsureParentDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return abs, nil
}
