package weights

import (
	"io/fs"
	"os"
)

// Candidate is a file under consideration for elimination. Metadata is
// read lazily and at most once; a failed read is remembered so the
// calculator can skip metadata-dependent criteria without retrying.
type Candidate struct {
	// Path is the candidate's filesystem path.
	Path string

	info    fs.FileInfo
	statErr error
	statted bool
}

// NewCandidate wraps a path as a weighing candidate.
func NewCandidate(path string) *Candidate {
	return &Candidate{Path: path}
}

// Stat returns the candidate's metadata, reading it on first use.
func (c *Candidate) Stat() (fs.FileInfo, error) {
	if !c.statted {
		c.info, c.statErr = os.Stat(c.Path)
		c.statted = true
	}
	return c.info, c.statErr
}
