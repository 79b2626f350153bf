package config

import (
	"os"
	"path/filepath"
)

// searchDepth bounds the upward config search: the directory itself
// plus up to four parent levels.
const searchDepth = 5

// FindConfigFile searches dir and its parents for filename, so an
// ignore or rc file placed above the snap target still applies.
func FindConfigFile(dir, filename string) (string, bool) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for i := 0; i < searchDepth; i++ {
		candidate := filepath.Join(current, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached the filesystem root.
			break
		}
		current = parent
	}

	return "", false
}
