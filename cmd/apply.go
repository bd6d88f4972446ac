package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/keytrim/internal/domain"
)

var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [folder]",
		Short: "Build, review and execute the rename plan",
		Long: `Apply builds the rename plan, asks for confirmation and renames the
approved files. Failures on single files never stop the batch; every outcome
is listed at the end and stored as a report in the reports directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Apply(cmd.Context(), domain.ApplyArgs{
				BuildArgs: buildArgs(args),
				Selection: domain.SelectionRules{Exclude: appConfig.Exclude},
				AssumeYes: appConfig.AssumeYes,
				Reports:   reportsDir(),
			})
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "rename without asking for confirmation")
	cmd.Flags().StringArrayP("exclude", "x", nil, "regular expression of file names to leave untouched (repeatable)")

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
