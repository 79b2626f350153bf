package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/arthur-debert/thanos/pkg/errors"
	"github.com/arthur-debert/thanos/pkg/logging"
)

// Embedded example files written by "thanos init".
var (
	//go:embed templates/thanosignore
	ExampleIgnoreFile []byte

	//go:embed templates/thanosrc.json
	ExampleRCFile []byte
)

// InitFile reports the outcome for one file written by init.
type InitFile struct {
	Path    string
	Created bool
}

// CreateExampleFiles writes example .thanosignore and .thanosrc.json
// files into dir. Existing files are left untouched and reported with
// Created false.
func CreateExampleFiles(dir string) ([]InitFile, error) {
	logger := logging.GetLogger("config")

	examples := []struct {
		name    string
		content []byte
	}{
		{IgnoreFileName, ExampleIgnoreFile},
		{RCFileJSON, ExampleRCFile},
	}

	results := make([]InitFile, 0, len(examples))
	for _, example := range examples {
		path := filepath.Join(dir, example.name)

		if _, err := os.Stat(path); err == nil {
			logger.Debug().Str("file", path).Msg("example file already exists")
			results = append(results, InitFile{Path: path, Created: false})
			continue
		}

		if err := os.WriteFile(path, example.content, 0644); err != nil {
			return results, errors.Wrapf(err, errors.ErrFileCreate,
				"failed to create example file: %s", path)
		}

		logger.Info().Str("file", path).Msg("created example file")
		results = append(results, InitFile{Path: path, Created: true})
	}

	return results, nil
}
