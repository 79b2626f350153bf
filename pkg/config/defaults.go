// Package config locates and loads thanos configuration: the
// .thanosignore protection patterns and the .thanosrc weight tables.
package config

// Config file names. The ignore file and the rc file protect
// themselves through the default pattern set.
const (
	IgnoreFileName = ".thanosignore"
	RCFileJSON     = ".thanosrc.json"
)

// defaultProtectedPatterns is the protection set used when no
// .thanosignore file is found.
var defaultProtectedPatterns = []string{
	// Version control: the history of the universe must be preserved.
	".git",
	".git/",
	".gitignore",
	".gitattributes",
	".svn",
	".hg",

	// Heavyweight directories that would otherwise absorb most of the
	// statistical damage.
	"venv/",
	".venv/",
	"env/",
	".env.local/",
	"__pycache__/",
	"*.pyc",
	"*.pyo",
	"node_modules/",

	// Environment and config files.
	".env",
	".env.*",
	"*.config",
	"config.yml",
	"config.yaml",

	// Lock files keep builds reproducible after the snap.
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"Cargo.lock",
	"Pipfile.lock",
	"poetry.lock",
	"Gemfile.lock",
	"uv.lock",

	// Thanos shouldn't snap himself.
	IgnoreFileName,
	RCFileJSON,

	// IDE directories.
	".vscode/",
	".idea/",

	// Database files.
	"*.db",
	"*.sqlite",
}

// DefaultProtectedPatterns returns the built-in protection pattern set.
func DefaultProtectedPatterns() []string {
	patterns := make([]string, len(defaultProtectedPatterns))
	copy(patterns, defaultProtectedPatterns)
	return patterns
}
