// Package display renders snap plans and results for the terminal.
package display

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/thanos/pkg/snap"
	"github.com/arthur-debert/thanos/pkg/style"
)

// victimPreviewLimit caps how many victims are listed before the
// output falls back to a "... and N more" line.
const victimPreviewLimit = 20

// protectedPreviewLimit caps the protected-file listing in dry runs.
const protectedPreviewLimit = 10

// Renderer writes human-oriented output for a snap run.
type Renderer struct {
	interactive bool
}

// NewRenderer builds a renderer, degrading to uncolored output when
// stdout is not a terminal.
func NewRenderer() *Renderer {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !interactive {
		pterm.DisableColor()
	}
	return &Renderer{interactive: interactive}
}

// Interactive reports whether stdout is a terminal. Confirmation
// prompts are only offered on interactive runs.
func (r *Renderer) Interactive() bool {
	return r.interactive
}

// Banner prints the snap header.
func (r *Renderer) Banner() {
	fmt.Println()
	fmt.Println(style.BoxStyle.Render(
		style.WarningStyle.Render("THE SNAP") + "\n" +
			style.MutedStyle.Render("Perfectly balanced, as all things should be")))
	fmt.Println()
}

// SeedNotice reports the seed in use.
func (r *Renderer) SeedNotice(seed int64) {
	pterm.Info.Println("Using random seed: " + strconv.FormatInt(seed, 10))
}

// ProtectionSummary reports where the active protection patterns came
// from.
func (r *Renderer) ProtectionSummary(plan *snap.Plan, noProtect bool) {
	switch {
	case noProtect:
		pterm.Warning.Println("WARNING: All file protections disabled!")
	case plan.IgnoreSource != "":
		pterm.Success.Printfln("Loaded %d patterns from %s", plan.PatternCount, plan.IgnoreSource)
	default:
		pterm.Success.Println("Default protections enabled")
	}

	if plan.Weighted {
		pterm.Success.Printfln("Weighted selection enabled from %s", plan.WeightsSource)
	}
}

// EmptyUniverse reports that nothing is eligible.
func (r *Renderer) EmptyUniverse() {
	fmt.Println()
	pterm.Warning.Println("No eligible files found.\nThe universe is empty (or fully protected).")
}

// BalanceTable prints the counts of the assembled plan.
func (r *Renderer) BalanceTable(plan *snap.Plan) {
	fmt.Println()
	data := pterm.TableData{
		{"Total files found", strconv.Itoa(len(plan.AllFiles))},
		{"Protected files", style.SuccessStyle.Render(strconv.Itoa(len(plan.Protected)))},
		{"Eligible files", strconv.Itoa(len(plan.Eligible))},
		{"Files to eliminate", style.DangerStyle.Render(strconv.Itoa(len(plan.Victims)))},
		{"Survivors", style.SuccessStyle.Render(strconv.Itoa(plan.SurvivorCount()))},
	}

	if err := pterm.DefaultTable.WithBoxed().WithData(data).Render(); err != nil {
		// Fall back to plain rows when the fancy table cannot render.
		for _, row := range data {
			fmt.Printf("%s: %s\n", row[0], row[1])
		}
	}
	fmt.Println()
}

// VictimList prints the files selected for elimination, truncated to a
// preview.
func (r *Renderer) VictimList(plan *snap.Plan) {
	for i, victim := range plan.Victims {
		if i == victimPreviewLimit {
			fmt.Println(style.MutedStyle.Render(
				fmt.Sprintf("   ... and %d more files", len(plan.Victims)-victimPreviewLimit)))
			break
		}
		fmt.Println("   " + style.DangerStyle.Render("x") + " " + style.PathStyle.Render(victim))
	}
}

// ProtectedPreview prints protected files when the list is short
// enough to be useful.
func (r *Renderer) ProtectedPreview(plan *snap.Plan) {
	if len(plan.Protected) == 0 || len(plan.Protected) > protectedPreviewLimit {
		return
	}

	fmt.Println()
	fmt.Println(style.SuccessStyle.Render("Protected files:"))
	for _, file := range plan.Protected {
		fmt.Println("   " + style.SuccessStyle.Render("+") + " " + style.PathStyle.Render(file))
	}
}

// DryRunHeader introduces the dry-run victim listing.
func (r *Renderer) DryRunHeader() {
	pterm.Info.Println("DRY RUN MODE - these files would be eliminated:")
	fmt.Println()
}

// DryRunFooter closes a dry run with a reproducibility hint.
func (r *Renderer) DryRunFooter(seed *int64) {
	fmt.Println()
	hint := "Use --seed <number> to get reproducible results"
	if seed != nil {
		hint = fmt.Sprintf("Run with --seed %d to delete these exact files", *seed)
	}
	pterm.Success.Println("This was a dry run. No files were harmed.\n" + style.MutedStyle.Render(hint))
}

// DeletionWarning prints the point-of-no-return warning.
func (r *Renderer) DeletionWarning() {
	fmt.Println()
	pterm.Warning.Println("WARNING: This will permanently delete the files listed above!\n" +
		"There is no undo. Files will be gone forever.")
	fmt.Println()
}

// Progress prints one elimination attempt.
func (r *Renderer) Progress(path string, err error) {
	if err != nil {
		pterm.Error.Printfln("Failed: %s - %v", path, err)
		return
	}
	fmt.Println("   " + style.SuccessStyle.Render("ok") + " Eliminated: " + style.MutedStyle.Render(path))
}

// Cancelled reports an aborted snap.
func (r *Renderer) Cancelled() {
	fmt.Println()
	pterm.Info.Println("Snap cancelled.\nThe universe remains unchanged.")
}

// Summary prints the final tallies of an executed snap.
func (r *Renderer) Summary(result *snap.Result) {
	fmt.Println()
	fmt.Println(style.BoxStyle.Render(
		style.SuccessStyle.Render("The snap is complete.") + "\n\n" +
			fmt.Sprintf("Eliminated: %d files\n", len(result.Eliminated)) +
			fmt.Sprintf("Failed:     %d files\n\n", len(result.Failed)) +
			style.MutedStyle.Render("Perfectly balanced, as all things should be.")))
}
