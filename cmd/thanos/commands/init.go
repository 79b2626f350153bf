package commands

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/thanos/pkg/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			files, err := config.CreateExampleFiles(dir)
			if err != nil {
				return err
			}

			for _, file := range files {
				if file.Created {
					cmd.Printf(MsgInitCreated, file.Path)
				} else {
					cmd.Printf(MsgInitExists, file.Path)
				}
			}
			cmd.Println(MsgInitDone)
			return nil
		},
	}
}
