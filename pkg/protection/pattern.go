package protection

import "strings"

// Kind classifies a protection pattern by its literal form.
// Classification happens once at matcher construction so candidate
// matching never re-inspects the raw pattern string.
type Kind uint8

const (
	// KindExact matches a path segment or the full relative path exactly.
	KindExact Kind = iota
	// KindWildcard matches the final path segment with "*"/"?" globbing.
	KindWildcard
	// KindDoubleStar matches a segment sequence where "**" spans any
	// number of segments.
	KindDoubleStar
	// KindDirectory matches a directory segment anywhere along the path
	// and protects the whole subtree beneath it.
	KindDirectory
)

// segmentPattern is a precompiled single-segment matcher.
type segmentPattern struct {
	// text is the raw segment pattern source.
	text string
	// wildcard reports whether text contains "*" or "?".
	wildcard bool
}

// compiledPattern is the matcher-internal representation of one
// protection pattern.
type compiledPattern struct {
	// source is the normalized pattern text without any trailing slash.
	source string
	kind   Kind
	// segment is the single-segment matcher for Exact, Wildcard and
	// single-level Directory patterns.
	segment segmentPattern
	// segments holds the per-segment matchers for DoubleStar patterns
	// and multi-level Directory patterns.
	segments []segmentPattern
}

// compilePattern parses one raw pattern into its compiled form.
// Blank patterns compile to nil and are skipped by the matcher.
func compilePattern(raw string) *compiledPattern {
	pattern := strings.TrimSpace(raw)
	pattern = strings.TrimPrefix(pattern, "./")
	pattern = strings.TrimPrefix(pattern, "/")
	if pattern == "" {
		return nil
	}

	dirOnly := strings.HasSuffix(pattern, "/")
	pattern = strings.TrimSuffix(pattern, "/")
	if pattern == "" {
		return nil
	}

	cp := &compiledPattern{source: pattern}

	switch {
	case dirOnly:
		cp.kind = KindDirectory
		cp.segments = splitSegments(pattern)
	case strings.Contains(pattern, "**"):
		cp.kind = KindDoubleStar
		cp.segments = splitSegments(pattern)
		// An implicit leading "**" makes the pattern depth-independent,
		// matching the whole-subtree protection policy.
		if cp.segments[0].text != "**" {
			cp.segments = append([]segmentPattern{{text: "**", wildcard: true}}, cp.segments...)
		}
	case strings.ContainsAny(pattern, "*?"):
		cp.kind = KindWildcard
		cp.segment = newSegmentPattern(pattern)
	default:
		cp.kind = KindExact
		cp.segment = newSegmentPattern(pattern)
	}

	return cp
}

// matches reports whether the compiled pattern protects the relative
// path given as ordered segments. The final segment is the candidate
// file's own name; everything before it is an ancestor directory.
func (cp *compiledPattern) matches(segs []string) bool {
	if len(segs) == 0 {
		return false
	}

	switch cp.kind {
	case KindDirectory:
		return matchAncestorRun(cp.segments, segs[:len(segs)-1])
	case KindDoubleStar:
		return matchSegments(cp.segments, segs)
	case KindWildcard:
		return matchSegment(cp.segment, segs[len(segs)-1])
	default:
		for _, seg := range segs {
			if seg == cp.segment.text {
				return true
			}
		}
		// A bare name also matches the full relative path, so slash
		// patterns like "docs/readme.md" still work.
		return strings.Join(segs, "/") == cp.source
	}
}

// splitSegments precompiles slash-separated pattern segments.
func splitSegments(pattern string) []segmentPattern {
	parts := strings.Split(pattern, "/")
	segs := make([]segmentPattern, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		segs = append(segs, newSegmentPattern(part))
	}
	return segs
}

// newSegmentPattern precompiles one segment pattern.
func newSegmentPattern(pattern string) segmentPattern {
	return segmentPattern{
		text:     pattern,
		wildcard: strings.ContainsAny(pattern, "*?"),
	}
}

// matchSegment matches one precompiled segment pattern.
func matchSegment(pattern segmentPattern, segment string) bool {
	if !pattern.wildcard {
		return segment == pattern.text
	}
	return matchSimpleWildcard(pattern.text, segment)
}

// matchSegments matches a pattern segment sequence against path
// segments, where "**" spans zero or more segments.
func matchSegments(pattern []segmentPattern, segs []string) bool {
	if len(pattern) == 0 {
		return len(segs) == 0
	}

	if pattern[0].text == "**" {
		// "**" may consume nothing or any prefix of the remaining path.
		if matchSegments(pattern[1:], segs) {
			return true
		}
		for i := range segs {
			if matchSegments(pattern[1:], segs[i+1:]) {
				return true
			}
		}
		return false
	}

	if len(segs) == 0 {
		return false
	}
	if !matchSegment(pattern[0], segs[0]) {
		return false
	}
	return matchSegments(pattern[1:], segs[1:])
}

// matchAncestorRun reports whether the pattern segments match a
// contiguous run of ancestor directory segments at any depth.
func matchAncestorRun(pattern []segmentPattern, ancestors []string) bool {
	if len(pattern) == 0 || len(pattern) > len(ancestors) {
		return false
	}

	for start := 0; start+len(pattern) <= len(ancestors); start++ {
		ok := true
		for i := range pattern {
			if !matchSegment(pattern[i], ancestors[start+i]) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// matchSimpleWildcard matches a "*" and "?" wildcard pattern against
// one segment without regexp.
func matchSimpleWildcard(pattern string, input string) bool {
	pIdx := 0
	sIdx := 0
	starPattern := -1
	starInput := 0

	for sIdx < len(input) {
		if pIdx < len(pattern) && (pattern[pIdx] == '?' || pattern[pIdx] == input[sIdx]) {
			pIdx++
			sIdx++
			continue
		}

		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			// Remember star position and continue greedily from current input index.
			starPattern = pIdx
			pIdx++
			starInput = sIdx
			continue
		}

		if starPattern >= 0 {
			// Mismatch after a previous star: backtrack pattern to token after '*'
			// and let '*' consume one more input byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput
			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}
