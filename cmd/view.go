package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/keytrim/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously stored rename reports",
		Long:  "View previously stored rename reports from the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: reportsDir()})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
