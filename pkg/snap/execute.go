package snap

import (
	"os"

	"github.com/arthur-debert/thanos/pkg/errors"
	"github.com/arthur-debert/thanos/pkg/logging"
)

// FileFailure records one victim that could not be eliminated.
type FileFailure struct {
	Path string
	Err  error
}

// Result summarizes an executed snap.
type Result struct {
	// Eliminated lists the files that were removed.
	Eliminated []string
	// Failed lists the victims that survived due to an error.
	Failed []FileFailure
}

// Execute removes the plan's victims. A failed removal is recorded and
// the run continues; the universe is rebalanced as far as possible.
//
// The optional observe callback is invoked after each attempt with the
// path and its error (nil on success), letting callers stream progress.
func Execute(plan *Plan, observe func(path string, err error)) *Result {
	logger := logging.GetLogger("snap")
	result := &Result{}

	for _, victim := range plan.Victims {
		err := os.Remove(victim)
		if err != nil {
			wrapped := errors.Wrapf(err, errors.ErrFileDelete, "failed to eliminate: %s", victim)
			result.Failed = append(result.Failed, FileFailure{Path: victim, Err: wrapped})
			logger.Warn().Err(err).Str("path", victim).Msg("failed to eliminate file")
		} else {
			result.Eliminated = append(result.Eliminated, victim)
			logger.Debug().Str("path", victim).Msg("file eliminated")
		}

		if observe != nil {
			observe(victim, err)
		}
	}

	logger.Info().
		Int("eliminated", len(result.Eliminated)).
		Int("failed", len(result.Failed)).
		Msg("snap executed")

	return result
}
