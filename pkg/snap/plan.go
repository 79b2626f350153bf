// Package snap orchestrates a snap run: enumerate files, filter out
// protected ones, weigh the survivors and select half of them for
// elimination.
package snap

import (
	"path/filepath"

	"github.com/arthur-debert/thanos/pkg/config"
	"github.com/arthur-debert/thanos/pkg/errors"
	"github.com/arthur-debert/thanos/pkg/logging"
	"github.com/arthur-debert/thanos/pkg/protection"
	"github.com/arthur-debert/thanos/pkg/sampler"
	"github.com/arthur-debert/thanos/pkg/scanner"
	"github.com/arthur-debert/thanos/pkg/weights"
)

// Options configures one snap run.
type Options struct {
	// Directory is the snap target.
	Directory string
	// Recursive includes files in subdirectories.
	Recursive bool
	// NoProtect disables every protection pattern. Dangerous.
	NoProtect bool
	// Seed fixes the random stream for reproducible selections.
	Seed *int64
}

// Plan is the computed outcome of the selection pipeline, before any
// file is touched.
type Plan struct {
	// Directory is the absolute snap target.
	Directory string

	// AllFiles is every file found by the scan.
	AllFiles []string
	// Protected are the files excluded by protection patterns.
	Protected []string
	// Eligible are the files that survived protection filtering.
	Eligible []string
	// Victims are the files selected for elimination, in selection
	// order.
	Victims []string

	// Weighted reports whether a weight configuration was applied.
	Weighted bool
	// IgnoreSource is the ignore file that supplied the patterns, or
	// empty when the built-in defaults (or no protection) were used.
	IgnoreSource string
	// WeightsSource is the rc file that supplied the weights, if any.
	WeightsSource string
	// PatternCount is the number of active protection patterns.
	PatternCount int
}

// Empty reports whether the pool was too small to snap: with one or
// zero eligible files there is nothing to balance.
func (p *Plan) Empty() bool {
	return len(p.Eligible) <= 1
}

// SurvivorCount returns how many eligible files will remain.
func (p *Plan) SurvivorCount() int {
	return len(p.Eligible) - len(p.Victims)
}

// BuildPlan runs the selection pipeline against a snapshot of the
// directory. No filesystem mutation happens here.
func BuildPlan(opts Options) (*Plan, error) {
	logger := logging.GetLogger("snap")

	dir, err := filepath.Abs(opts.Directory)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory: %s", opts.Directory)
	}

	allFiles, err := scanner.Scan(dir, opts.Recursive)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Directory: dir, AllFiles: allFiles}

	matcher, err := buildMatcher(dir, opts.NoProtect, plan)
	if err != nil {
		return nil, err
	}

	for _, file := range allFiles {
		if matcher.IsProtected(file, dir) {
			plan.Protected = append(plan.Protected, file)
		} else {
			plan.Eligible = append(plan.Eligible, file)
		}
	}

	logger.Info().
		Int("all", len(plan.AllFiles)).
		Int("protected", len(plan.Protected)).
		Int("eligible", len(plan.Eligible)).
		Msg("candidate pool assembled")

	if plan.Empty() {
		return plan, nil
	}

	weightConfig, weightsSource, err := config.LoadWeights(dir)
	if err != nil {
		return nil, err
	}
	plan.Weighted = !weightConfig.Empty()
	plan.WeightsSource = weightsSource

	fileWeights := make([]float64, len(plan.Eligible))
	if plan.Weighted {
		calc := weights.NewCalculator(weightConfig)
		for i, file := range plan.Eligible {
			fileWeights[i] = calc.Weight(weights.NewCandidate(file))
		}
	} else {
		for i := range fileWeights {
			fileWeights[i] = weights.DefaultWeight
		}
	}

	s := sampler.New()
	if opts.Seed != nil {
		s = sampler.NewSeeded(*opts.Seed)
	}

	// Perfectly balanced, as all things should be.
	k := len(plan.Eligible) / 2
	plan.Victims, err = sampler.Sample(s, plan.Eligible, fileWeights, k)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("victims", len(plan.Victims)).
		Bool("weighted", plan.Weighted).
		Msg("elimination plan ready")

	return plan, nil
}

// buildMatcher assembles the protection matcher: ignore-file patterns
// when an ignore file exists, the built-in defaults otherwise, nothing
// at all under NoProtect.
func buildMatcher(dir string, noProtect bool, plan *Plan) (*protection.Matcher, error) {
	if noProtect {
		return protection.NewMatcher(nil), nil
	}

	patterns, source, err := config.LoadIgnorePatterns(dir)
	if err != nil {
		return nil, err
	}
	if len(patterns) == 0 {
		// No usable patterns anywhere up the tree, whether the ignore
		// file is missing or lists nothing: built-in defaults. An
		// empty pattern set must never disable protection.
		patterns = config.DefaultProtectedPatterns()
		source = ""
	}

	plan.IgnoreSource = source
	matcher := protection.NewMatcher(patterns)
	plan.PatternCount = matcher.Len()
	return matcher, nil
}
