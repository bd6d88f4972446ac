package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/keytrim/internal/domain"
)

var previewCmd = newPreviewCmd()

func newPreviewCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "preview [folder]",
		Short: "Show the rename plan without touching any file",
		Long: `Preview scans the folder recursively and prints the proposed renames.
With --watch the plan is rebuilt whenever a file under the folder changes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Preview(cmd.Context(), domain.PreviewArgs{
				BuildArgs: buildArgs(args),
				Watch:     watch,
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild the plan when the folder changes")
	cmd.Flags().Duration("debounce", 0, "quiet period before a change triggers a rebuild (default 200ms)")

	return cmd
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
