package weights

import (
	"math"
	"strconv"
	"strings"
)

// rangeSpec is a compiled numeric range selector.
//
// Grammar: "<min>-<max>" means min <= x < max; "<min>+" or "<min>-"
// (trailing sign with nothing after) means x >= min. Anything else is
// malformed and never matches.
type rangeSpec struct {
	min  float64
	max  float64
	open bool
}

// parseRange compiles a range selector string. The second return value
// reports whether the selector is well formed.
func parseRange(selector string) (rangeSpec, bool) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return rangeSpec{}, false
	}

	// "30+" and "30-" both mean "30 or more".
	if strings.HasSuffix(selector, "+") || strings.HasSuffix(selector, "-") {
		min, err := strconv.ParseFloat(selector[:len(selector)-1], 64)
		if err != nil {
			return rangeSpec{}, false
		}
		return rangeSpec{min: min, max: math.Inf(1), open: true}, true
	}

	parts := strings.Split(selector, "-")
	if len(parts) != 2 {
		return rangeSpec{}, false
	}

	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return rangeSpec{}, false
	}
	max, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return rangeSpec{}, false
	}

	return rangeSpec{min: min, max: max}, true
}

// matches reports whether x falls inside the range.
func (r rangeSpec) matches(x float64) bool {
	if r.open {
		return x >= r.min
	}
	return x >= r.min && x < r.max
}
