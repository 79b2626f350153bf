package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/arthur-debert/thanos/pkg/errors"
	"github.com/arthur-debert/thanos/pkg/logging"
)

// LoadIgnorePatterns loads protection patterns from the nearest
// .thanosignore file. It returns the patterns and the file they came
// from; when no file is found both are empty and the caller should use
// the defaults.
//
// Format: one pattern per line, blank lines and "#" comments skipped.
func LoadIgnorePatterns(dir string) ([]string, string, error) {
	path, found := FindConfigFile(dir, IgnoreFileName)
	if !found {
		return nil, "", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to open ignore file: %s", path)
	}
	defer func() { _ = f.Close() }()

	var patterns []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := sc.Err(); err != nil {
		return nil, "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to read ignore file: %s", path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("file", path).
		Int("patterns", len(patterns)).
		Msg("loaded ignore patterns")

	return patterns, path, nil
}
