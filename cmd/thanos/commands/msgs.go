package commands

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Bring balance to your filesystem"
	MsgSnapShort       = "Eliminate half of all files in a directory"
	MsgInitShort       = "Create example configuration files"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRecursive = "Include files in subdirectories"
	MsgFlagDryRun    = "Preview which files would be eliminated without deleting anything"
	MsgFlagSeed      = "Random seed for reproducible selections"
	MsgFlagNoProtect = "Disable all file protections (dangerous)"
	MsgFlagYes       = "Skip the confirmation prompt"

	// Prompt messages
	MsgConfirmWord   = "snap"
	MsgConfirmPrompt = `Type "snap" to proceed: `

	// Init messages
	MsgInitCreated = "Created %s\n"
	MsgInitExists  = "Skipped %s (already exists)\n"
	MsgInitDone    = "Example configuration written. Edit the files, then run 'thanos snap'."
)

// Long messages (multi-line help)
const (
	MsgRootLong = `thanos eliminates half of all files in a directory, chosen by weighted
random selection. Files matching protection patterns are never touched.

Protections come from a .thanosignore file (gitignore-style patterns) or
from a built-in default set covering version control, dependencies,
configuration and lock files. Selection weights come from a .thanosrc
file (JSON, YAML or TOML).`

	MsgSnapLong = `Snap scans the target directory, removes protected files from
consideration, and eliminates half of the remaining files at random.

Each eligible file gets a selection weight from the .thanosrc
configuration (by extension, age or size); without configuration all
files are equally likely. Use --dry-run to preview and --seed to make
a preview reproducible.`

	MsgInitLong = `Init writes example .thanosignore and .thanosrc.json files into the
target directory. Existing files are never overwritten.`
)
