// Package weights derives a single elimination weight in [0,1] for each
// candidate file from a declarative multi-criterion configuration.
//
// Three independent criteria are supported: file extension, age in days
// and size in megabytes. Each criterion contributes at most one value;
// the final weight is the arithmetic mean of the contributions, or the
// neutral 0.5 default when nothing matched.
package weights

import "sort"

// DefaultWeight is the neutral elimination weight used when no
// criterion matches a candidate.
const DefaultWeight = 0.5

// RangeRule binds one range selector to a weight. Rules are evaluated
// in slice order and the first matching rule wins.
type RangeRule struct {
	// Selector is the raw range string, e.g. "0-7" or "30+".
	Selector string
	// Weight is the elimination weight applied when the rule matches.
	Weight float64

	spec  rangeSpec
	valid bool
}

// NewRangeRule compiles one range rule. Malformed selectors produce a
// rule that never matches rather than an error: one bad config entry
// must not take down the whole selection.
func NewRangeRule(selector string, weight float64) RangeRule {
	spec, ok := parseRange(selector)
	return RangeRule{
		Selector: selector,
		Weight:   weight,
		spec:     spec,
		valid:    ok,
	}
}

// Matches reports whether the rule applies to the given value.
// Malformed rules never match.
func (r RangeRule) Matches(x float64) bool {
	return r.valid && r.spec.matches(x)
}

// Valid reports whether the selector parsed as a numeric range.
func (r RangeRule) Valid() bool {
	return r.valid
}

// Config is the parsed weight configuration. A zero Config means
// "no weighting": every candidate gets DefaultWeight.
type Config struct {
	// ByExtension maps a literal extension (".log") to a weight.
	ByExtension map[string]float64
	// ByAgeDays holds ordered age range rules, in days since last
	// modification.
	ByAgeDays []RangeRule
	// BySizeMB holds ordered size range rules, in megabytes.
	BySizeMB []RangeRule
}

// Empty reports whether no criterion is configured.
func (c Config) Empty() bool {
	return len(c.ByExtension) == 0 && len(c.ByAgeDays) == 0 && len(c.BySizeMB) == 0
}

// SortRangeRules orders rules by ascending lower bound, then selector
// text, with malformed rules last. Config files arrive as unordered
// maps, so a deterministic order is imposed here; ranges are expected
// to be disjoint, in which case order is cosmetic.
func SortRangeRules(rules []RangeRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		a, b := rules[i], rules[j]
		if a.valid != b.valid {
			return a.valid
		}
		if a.spec.min != b.spec.min {
			return a.spec.min < b.spec.min
		}
		return a.Selector < b.Selector
	})
}
