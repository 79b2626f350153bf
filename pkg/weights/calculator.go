package weights

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/thanos/pkg/logging"
)

const (
	secondsPerDay = 86400
	bytesPerMB    = 1048576
)

// Calculator computes elimination weights against one configuration
// and one reference time, shared across all candidates of a run.
type Calculator struct {
	config    Config
	reference time.Time
}

// NewCalculator builds a calculator with the current time as the age
// reference.
func NewCalculator(config Config) *Calculator {
	return NewCalculatorAt(config, time.Now())
}

// NewCalculatorAt builds a calculator with an explicit age reference,
// which keeps age-based weighting deterministic in tests.
func NewCalculatorAt(config Config, reference time.Time) *Calculator {
	return &Calculator{config: config, reference: reference}
}

// Weight computes the elimination weight for one candidate.
//
// Each configured criterion contributes at most one value; criteria
// whose metadata cannot be read are skipped for this candidate only.
// The result is the mean of the contributions, or DefaultWeight when
// nothing contributed.
func (c *Calculator) Weight(cand *Candidate) float64 {
	if c.config.Empty() {
		return DefaultWeight
	}

	var contributions []float64

	if len(c.config.ByExtension) > 0 {
		if w, ok := c.config.ByExtension[filepath.Ext(cand.Path)]; ok {
			contributions = append(contributions, w)
		}
	}

	if len(c.config.ByAgeDays) > 0 {
		if info, err := cand.Stat(); err == nil {
			ageDays := c.reference.Sub(info.ModTime()).Seconds() / secondsPerDay
			if w, ok := firstMatch(c.config.ByAgeDays, ageDays); ok {
				contributions = append(contributions, w)
			}
		}
	}

	if len(c.config.BySizeMB) > 0 {
		if info, err := cand.Stat(); err == nil {
			sizeMB := float64(info.Size()) / bytesPerMB
			if w, ok := firstMatch(c.config.BySizeMB, sizeMB); ok {
				contributions = append(contributions, w)
			}
		}
	}

	if len(contributions) == 0 {
		return DefaultWeight
	}

	sum := 0.0
	for _, w := range contributions {
		sum += w
	}
	weight := sum / float64(len(contributions))

	logger := logging.GetLogger("weights")
	logger.Trace().
		Str("path", cand.Path).
		Int("contributions", len(contributions)).
		Float64("weight", weight).
		Msg("candidate weighed")

	return weight
}

// firstMatch returns the weight of the first rule matching x.
func firstMatch(rules []RangeRule, x float64) (float64, bool) {
	for _, rule := range rules {
		if rule.Matches(x) {
			return rule.Weight, true
		}
	}
	return 0, false
}
