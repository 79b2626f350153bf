// Package protection decides whether a filesystem entry may be
// considered for elimination.
//
// Patterns follow a constrained gitignore-like subset: "name/" protects
// a directory subtree at any depth, "**" spans path segments, "*" globs
// within the final segment, and bare names match any path component.
// An empty pattern set protects nothing; a path outside the snap target
// is always protected (fail closed).
package protection

import (
	"github.com/arthur-debert/thanos/pkg/logging"
	"github.com/arthur-debert/thanos/pkg/paths"
)

// Matcher evaluates protection decisions against precompiled patterns.
type Matcher struct {
	compiled []compiledPattern
}

// NewMatcher compiles raw patterns into a matcher. Blank patterns are
// dropped; everything else compiles (there are no invalid patterns in
// the supported subset).
func NewMatcher(patterns []string) *Matcher {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, raw := range patterns {
		if cp := compilePattern(raw); cp != nil {
			compiled = append(compiled, *cp)
		}
	}
	return &Matcher{compiled: compiled}
}

// Empty reports whether no patterns are configured.
func (m *Matcher) Empty() bool {
	return len(m.compiled) == 0
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.compiled)
}

// IsProtected reports whether path must never be eliminated.
//
// With no patterns configured nothing is protected. A path that does
// not resolve inside base is protected regardless of patterns.
func (m *Matcher) IsProtected(path, base string) bool {
	if m.Empty() {
		return false
	}

	rel, containment := paths.Relativize(path, base)
	if containment == paths.Outside {
		logger := logging.GetLogger("protection")
		logger.Debug().
			Str("path", path).
			Str("base", base).
			Msg("path outside base directory, treating as protected")
		return true
	}

	return m.matchesRelative(rel)
}

// matchesRelative tests the already-relativized slash path against
// every compiled pattern.
func (m *Matcher) matchesRelative(rel string) bool {
	segs := paths.Segments(rel)
	if len(segs) == 0 {
		return false
	}

	for i := range m.compiled {
		if m.compiled[i].matches(segs) {
			return true
		}
	}
	return false
}

// IsProtected is a convenience wrapper that compiles patterns for a
// single decision. Callers with many candidates should construct a
// Matcher once instead.
func IsProtected(path, base string, patterns []string) bool {
	return NewMatcher(patterns).IsProtected(path, base)
}
