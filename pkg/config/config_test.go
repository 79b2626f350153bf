package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/thanos/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProtectedPatterns(t *testing.T) {
	patterns := DefaultProtectedPatterns()

	assert.Contains(t, patterns, ".git")
	assert.Contains(t, patterns, "node_modules/")
	assert.Contains(t, patterns, "*.pyc")
	assert.Contains(t, patterns, ".env")
	assert.Contains(t, patterns, "package-lock.json")
	assert.Contains(t, patterns, IgnoreFileName)
	assert.Contains(t, patterns, RCFileJSON)

	// Callers must get a copy, not the backing slice.
	patterns[0] = "mutated"
	assert.Equal(t, ".git", DefaultProtectedPatterns()[0])
}

func TestFindConfigFileInDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, IgnoreFileName)
	require.NoError(t, os.WriteFile(path, []byte("*.log\n"), 0644))

	found, ok := FindConfigFile(dir, IgnoreFileName)
	require.True(t, ok)
	assert.Equal(t, path, found)
}

func TestFindConfigFileInParent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, IgnoreFileName)
	require.NoError(t, os.WriteFile(path, []byte("*.log\n"), 0644))

	deep := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(deep, 0755))

	found, ok := FindConfigFile(deep, IgnoreFileName)
	require.True(t, ok)
	assert.Equal(t, path, found)
}

func TestFindConfigFileBeyondSearchDepth(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, IgnoreFileName), []byte("*.log\n"), 0644))

	// Five levels below the file: one level too deep for the search.
	deep := filepath.Join(root, "a", "b", "c", "d", "e")
	require.NoError(t, os.MkdirAll(deep, 0755))

	_, ok := FindConfigFile(deep, IgnoreFileName)
	assert.False(t, ok)
}

func TestFindConfigFileMissing(t *testing.T) {
	_, ok := FindConfigFile(t.TempDir(), IgnoreFileName)
	assert.False(t, ok)
}

func TestLoadIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	content := `# protected patterns
*.log

*.tmp
# trailing comment
important/
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, IgnoreFileName), []byte(content), 0644))

	patterns, source, err := LoadIgnorePatterns(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.log", "*.tmp", "important/"}, patterns)
	assert.Equal(t, filepath.Join(dir, IgnoreFileName), source)
}

func TestLoadIgnorePatternsNoFile(t *testing.T) {
	patterns, source, err := LoadIgnorePatterns(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, patterns)
	assert.Empty(t, source)
}

func TestLoadWeightsJSON(t *testing.T) {
	dir := t.TempDir()
	content := `{
  "weights": {
    "by_extension": {".log": 0.9, ".db": 0.1},
    "by_age_days": {"0-7": 0.2, "7-30": 0.5, "30+": 0.9}
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, RCFileJSON), []byte(content), 0644))

	cfg, source, err := LoadWeights(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, RCFileJSON), source)

	assert.Equal(t, 0.9, cfg.ByExtension[".log"])
	assert.Equal(t, 0.1, cfg.ByExtension[".db"])

	require.Len(t, cfg.ByAgeDays, 3)
	// Rules come out ordered by ascending lower bound.
	assert.Equal(t, "0-7", cfg.ByAgeDays[0].Selector)
	assert.Equal(t, "7-30", cfg.ByAgeDays[1].Selector)
	assert.Equal(t, "30+", cfg.ByAgeDays[2].Selector)
}

func TestLoadWeightsYAML(t *testing.T) {
	dir := t.TempDir()
	content := `weights:
  by_size_mb:
    "0-1": 0.3
    "1+": 0.8
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".thanosrc.yaml"), []byte(content), 0644))

	cfg, source, err := LoadWeights(dir)
	require.NoError(t, err)
	assert.Contains(t, source, ".thanosrc.yaml")
	require.Len(t, cfg.BySizeMB, 2)
	assert.Equal(t, "0-1", cfg.BySizeMB[0].Selector)
	assert.Equal(t, "1+", cfg.BySizeMB[1].Selector)
}

func TestLoadWeightsTOML(t *testing.T) {
	dir := t.TempDir()
	content := `[weights.by_extension]
".tmp" = 0.95
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".thanosrc.toml"), []byte(content), 0644))

	cfg, _, err := LoadWeights(dir)
	require.NoError(t, err)
	assert.Equal(t, 0.95, cfg.ByExtension[".tmp"])
}

func TestLoadWeightsNoFile(t *testing.T) {
	cfg, source, err := LoadWeights(t.TempDir())
	require.NoError(t, err)
	assert.True(t, cfg.Empty())
	assert.Empty(t, source)
}

func TestLoadWeightsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, RCFileJSON), []byte("{not json"), 0644))

	_, _, err := LoadWeights(dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadWeightsClampsOutOfRange(t *testing.T) {
	dir := t.TempDir()
	content := `{"weights": {"by_extension": {".a": 1.5, ".b": -0.5}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, RCFileJSON), []byte(content), 0644))

	cfg, _, err := LoadWeights(dir)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.ByExtension[".a"])
	assert.Equal(t, 0.0, cfg.ByExtension[".b"])
}

func TestCreateExampleFiles(t *testing.T) {
	dir := t.TempDir()

	results, err := CreateExampleFiles(dir)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Created)
		_, err := os.Stat(r.Path)
		assert.NoError(t, err)
	}

	// The written ignore file must round-trip through the loader.
	patterns, _, err := LoadIgnorePatterns(dir)
	require.NoError(t, err)
	assert.Contains(t, patterns, "node_modules/**")

	// And the rc file through the weight loader.
	cfg, _, err := LoadWeights(dir)
	require.NoError(t, err)
	assert.Equal(t, 0.9, cfg.ByExtension[".log"])
}

func TestCreateExampleFilesDoesNotOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, IgnoreFileName)
	require.NoError(t, os.WriteFile(existing, []byte("custom\n"), 0644))

	results, err := CreateExampleFiles(dir)
	require.NoError(t, err)

	assert.False(t, results[0].Created)
	assert.True(t, results[1].Created)

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(content))
}
