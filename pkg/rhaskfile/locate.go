// SPDX-License-Identifier: MPL-2.0

package rhaskfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locate walks up from startDir toward the filesystem root and returns the
// absolute path of the first rhaskfile.cue found. Explicit --file paths
// bypass this search entirely.
func Locate(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve search directory %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(dir, RhaskfileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or any parent directory", RhaskfileName, startDir)
		}
		dir = parent
	}
}
