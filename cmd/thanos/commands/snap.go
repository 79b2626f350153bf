package commands

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/thanos/pkg/display"
	"github.com/arthur-debert/thanos/pkg/errors"
	"github.com/arthur-debert/thanos/pkg/logging"
	"github.com/arthur-debert/thanos/pkg/snap"
)

func newSnapCmd() *cobra.Command {
	var (
		recursive bool
		dryRun    bool
		noProtect bool
		yes       bool
		seedFlag  int64
	)

	cmd := &cobra.Command{
		Use:   "snap [directory]",
		Short: MsgSnapShort,
		Long:  MsgSnapLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.snap")

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			var seed *int64
			if cmd.Flags().Changed("seed") {
				seed = &seedFlag
			}

			logger.Info().
				Str("directory", dir).
				Bool("recursive", recursive).
				Bool("dryRun", dryRun).
				Bool("noProtect", noProtect).
				Msg("Starting snap")

			renderer := display.NewRenderer()
			renderer.Banner()
			if seed != nil {
				renderer.SeedNotice(*seed)
			}

			plan, err := snap.BuildPlan(snap.Options{
				Directory: dir,
				Recursive: recursive,
				NoProtect: noProtect,
				Seed:      seed,
			})
			if err != nil {
				return err
			}

			renderer.ProtectionSummary(plan, noProtect)

			if plan.Empty() {
				renderer.EmptyUniverse()
				return nil
			}

			renderer.BalanceTable(plan)

			if dryRun {
				renderer.DryRunHeader()
				renderer.VictimList(plan)
				renderer.ProtectedPreview(plan)
				renderer.DryRunFooter(seed)
				logger.Info().Int("victims", len(plan.Victims)).Msg("Dry run finished")
				return nil
			}

			renderer.VictimList(plan)
			renderer.DeletionWarning()

			if !yes {
				if !renderer.Interactive() {
					return errors.New(errors.ErrInvalidInput,
						"refusing to delete files without confirmation; pass --yes on non-interactive runs")
				}
				if !confirmSnap(cmd) {
					renderer.Cancelled()
					return nil
				}
			}

			result := snap.Execute(plan, renderer.Progress)
			renderer.Summary(result)

			logger.Info().
				Int("eliminated", len(result.Eliminated)).
				Int("failed", len(result.Failed)).
				Msg("Snap finished")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, MsgFlagRecursive)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, MsgFlagDryRun)
	cmd.Flags().Int64VarP(&seedFlag, "seed", "s", 0, MsgFlagSeed)
	cmd.Flags().BoolVar(&noProtect, "no-protect", false, MsgFlagNoProtect)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)

	return cmd
}

// confirmSnap asks the user to type the confirmation word, in any
// case. Anything else cancels the run.
func confirmSnap(cmd *cobra.Command) bool {
	cmd.Print(MsgConfirmPrompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == MsgConfirmWord
}
