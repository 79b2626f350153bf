// Package scanner enumerates candidate files for a snap run.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/thanos/pkg/errors"
	"github.com/arthur-debert/thanos/pkg/logging"
)

// Scan returns the regular files in dir, in deterministic lexical
// order. With recursive set, files in all subdirectories are included;
// directories themselves are never returned.
func Scan(dir string, recursive bool) ([]string, error) {
	logger := logging.GetLogger("scanner")

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrScanNotFound, "directory does not exist: %s", dir)
		}
		return nil, errors.Wrapf(err, errors.ErrScanWalk, "cannot access directory: %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrScanNotDir, "not a directory: %s", dir)
	}

	var files []string
	if recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if isRegular(path, d) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrScanWalk, "failed to walk directory: %s", dir)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrScanWalk, "failed to read directory: %s", dir)
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if isRegular(path, entry) {
				files = append(files, path)
			}
		}
	}

	logger.Debug().
		Str("dir", dir).
		Bool("recursive", recursive).
		Int("files", len(files)).
		Msg("directory scanned")

	return files, nil
}

// isRegular reports whether the entry is a regular file. Symlinks are
// followed: a link to a regular file is a candidate (removing it
// removes the link only), a link to a directory is not.
func isRegular(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
