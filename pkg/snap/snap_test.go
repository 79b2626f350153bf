package snap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(v int64) *int64 { return &v }

// populate writes n plain files into dir.
func populate(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		name := filepath.Join(dir, "file_"+string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(name, []byte("content"), 0644))
	}
}

func TestBuildPlanEliminatesHalf(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 10)

	plan, err := BuildPlan(Options{Directory: dir, Seed: seed(42)})
	require.NoError(t, err)

	assert.Len(t, plan.AllFiles, 10)
	assert.Empty(t, plan.Protected)
	assert.Len(t, plan.Eligible, 10)
	assert.Len(t, plan.Victims, 5)
	assert.Equal(t, 5, plan.SurvivorCount())
	assert.False(t, plan.Empty())
	assert.False(t, plan.Weighted)
}

func TestBuildPlanOddPool(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 7)

	plan, err := BuildPlan(Options{Directory: dir, Seed: seed(1)})
	require.NoError(t, err)

	// Integer halving rounds down; the survivors get the benefit.
	assert.Len(t, plan.Victims, 3)
	assert.Equal(t, 4, plan.SurvivorCount())
}

func TestBuildPlanDefaultProtections(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 5)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SECRET=1"), 0644))
	gitDir := filepath.Join(dir, ".git")
	require.NoError(t, os.MkdirAll(gitDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "config"), []byte("x"), 0644))
	nodeModules := filepath.Join(dir, "node_modules", "pkg")
	require.NoError(t, os.MkdirAll(nodeModules, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nodeModules, "index.js"), []byte("x"), 0644))

	plan, err := BuildPlan(Options{Directory: dir, Recursive: true, Seed: seed(42)})
	require.NoError(t, err)

	assert.Len(t, plan.Eligible, 5)
	assert.Len(t, plan.Protected, 3)
	assert.Empty(t, plan.IgnoreSource, "defaults in use, no ignore file")
	assert.Greater(t, plan.PatternCount, 0)

	for _, victim := range plan.Victims {
		assert.NotContains(t, victim, ".env")
		assert.NotContains(t, victim, ".git")
		assert.NotContains(t, victim, "node_modules")
	}
}

func TestBuildPlanIgnoreFileReplacesDefaults(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 4)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.log"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".thanosignore"), []byte("*.log\n.thanosignore\n"), 0644))

	plan, err := BuildPlan(Options{Directory: dir, Seed: seed(3)})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".thanosignore"), plan.IgnoreSource)
	assert.Equal(t, 2, plan.PatternCount)
	assert.Len(t, plan.Protected, 2) // keep.log and the ignore file itself
	assert.Len(t, plan.Eligible, 4)
}

func TestBuildPlanCommentOnlyIgnoreFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 4)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SECRET=1"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".thanosignore"),
		[]byte("# nothing listed yet\n\n# still nothing\n"), 0644))

	plan, err := BuildPlan(Options{Directory: dir, Seed: seed(11)})
	require.NoError(t, err)

	// An ignore file that yields no patterns must not strip the
	// built-in protections.
	assert.Contains(t, plan.Protected, filepath.Join(dir, ".env"))
	assert.Contains(t, plan.Protected, filepath.Join(dir, ".thanosignore"))
	assert.Empty(t, plan.IgnoreSource)
	assert.Len(t, plan.Eligible, 4)
}

func TestBuildPlanNoProtect(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 4)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SECRET=1"), 0644))

	plan, err := BuildPlan(Options{Directory: dir, NoProtect: true, Seed: seed(5)})
	require.NoError(t, err)

	assert.Empty(t, plan.Protected)
	assert.Len(t, plan.Eligible, 5)
	assert.Equal(t, 0, plan.PatternCount)
}

func TestBuildPlanEmptyUniverse(t *testing.T) {
	dir := t.TempDir()

	plan, err := BuildPlan(Options{Directory: dir})
	require.NoError(t, err)
	assert.True(t, plan.Empty())
	assert.Empty(t, plan.Victims)
}

func TestBuildPlanSingleFile(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 1)

	plan, err := BuildPlan(Options{Directory: dir})
	require.NoError(t, err)
	assert.True(t, plan.Empty())
	assert.Empty(t, plan.Victims)
}

func TestBuildPlanSeedReproducible(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 12)

	first, err := BuildPlan(Options{Directory: dir, Seed: seed(1234)})
	require.NoError(t, err)
	second, err := BuildPlan(Options{Directory: dir, Seed: seed(1234)})
	require.NoError(t, err)

	assert.Equal(t, first.Victims, second.Victims)
}

func TestBuildPlanUsesWeights(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 6)
	rc := `{"weights": {"by_extension": {".txt": 0.9}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".thanosrc.json"), []byte(rc), 0644))

	plan, err := BuildPlan(Options{Directory: dir, Seed: seed(9)})
	require.NoError(t, err)

	assert.True(t, plan.Weighted)
	assert.Equal(t, filepath.Join(dir, ".thanosrc.json"), plan.WeightsSource)
	// The rc file itself is protected by the defaults, so the pool is
	// exactly the six .txt files.
	assert.Len(t, plan.Eligible, 6)
	assert.Len(t, plan.Victims, 3)
}

func TestExecuteRemovesVictims(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 8)

	plan, err := BuildPlan(Options{Directory: dir, Seed: seed(7)})
	require.NoError(t, err)
	require.Len(t, plan.Victims, 4)

	var observed []string
	result := Execute(plan, func(path string, err error) {
		assert.NoError(t, err)
		observed = append(observed, path)
	})

	assert.Len(t, result.Eliminated, 4)
	assert.Empty(t, result.Failed)
	assert.Equal(t, plan.Victims, observed)

	for _, victim := range plan.Victims {
		_, err := os.Stat(victim)
		assert.True(t, os.IsNotExist(err), "victim should be gone: %s", victim)
	}

	// Survivors are untouched.
	remaining, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, remaining, 4)
}

func TestExecuteToleratesFailures(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, 4)

	plan, err := BuildPlan(Options{Directory: dir, Seed: seed(11)})
	require.NoError(t, err)
	require.Len(t, plan.Victims, 2)

	// Remove one victim out from under the executor.
	require.NoError(t, os.Remove(plan.Victims[0]))

	result := Execute(plan, nil)
	assert.Len(t, result.Eliminated, 1)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, plan.Victims[0], result.Failed[0].Path)
}

func TestDryRunBehaviorLeavesTreeUntouched(t *testing.T) {
	// Dry run means building a plan and never calling Execute.
	dir := t.TempDir()
	populate(t, dir, 6)

	_, err := BuildPlan(Options{Directory: dir, Seed: seed(2)})
	require.NoError(t, err)

	remaining, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, remaining, 6)
}
