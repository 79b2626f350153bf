// Package paths provides path containment checks for thanos.
//
// Every candidate file must live inside the snap target directory.
// Paths that cannot be proven to be inside are reported as Outside, and
// callers treat Outside as protected. This keeps the fail-closed policy
// an explicit branch instead of an incidental error path.
package paths

import (
	"path/filepath"
	"strings"
)

// Containment is the result of a path containment check.
type Containment int

const (
	// Inside means the path is the base directory or a descendant of it.
	Inside Containment = iota
	// Outside means the path escapes the base directory, or the check
	// itself failed. Callers must not operate on Outside paths.
	Outside
)

// String returns a human-readable containment label.
func (c Containment) String() string {
	if c == Inside {
		return "inside"
	}
	return "outside"
}

// Relativize computes path relative to base and reports containment.
//
// Both arguments are canonicalized to absolute cleaned forms before
// comparison. The returned relative path is slash-separated and empty
// when path equals base. When the result is Outside the relative path
// is empty and must not be used.
func Relativize(path, base string) (string, Containment) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", Outside
	}

	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", Outside
	}

	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return "", Outside
	}

	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", Outside
	}

	if rel == "." {
		return "", Inside
	}

	return rel, Inside
}

// Segments splits a slash-separated relative path into its components.
// An empty path yields no segments.
func Segments(rel string) []string {
	if rel == "" {
		return nil
	}
	return strings.Split(rel, "/")
}
