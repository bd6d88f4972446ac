// Package cmd provides the root command and CLI setup for keytrim.
package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/keytrim/internal/adapter"
	"github.com/mouse-blink/keytrim/internal/config"
	"github.com/mouse-blink/keytrim/internal/controller"
	"github.com/mouse-blink/keytrim/internal/domain"
	m "github.com/mouse-blink/keytrim/internal/model"
)

// workflow is wired on first use so tests can install a mock beforehand.
var workflow domain.Workflow

// appConfig is the merged configuration of the running command.
var appConfig config.Config

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keytrim [folder]",
		Short: "Strip a keyword from file names in bulk",
		Long: `Keytrim removes a keyword from the names of every file under a folder.

A build pass proposes a new name for each file whose base name contains the
keyword, resolving collisions with " (N)" suffixes. Nothing is renamed until
the plan is reviewed and approved with the apply command.

Running keytrim without a subcommand previews the plan for the folder
(default ".").`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Preview(cmd.Context(), domain.PreviewArgs{BuildArgs: buildArgs(args)})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .keytrim.yaml in the current or home directory)")
	flags.StringP("keyword", "k", "", "keyword to strip from file names")
	flags.BoolP("case-sensitive", "c", false, "match the keyword case-sensitively")
	flags.String("reports-dir", config.DefaultReportsDir, "directory where execute reports are stored")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.Bool("no-tui", false, "force plain text output even on a terminal")

	return cmd
}

func setup(cmd *cobra.Command, _ []string) error {
	searchPaths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, home)
	}

	if err := config.Init(cfgFile, searchPaths...); err != nil {
		return err
	}

	if err := config.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appConfig = cfg
	useTTY := !cfg.NoTUI && controller.IsTTY(cmd.OutOrStdout())

	setupLogging(cmd.ErrOrStderr(), cfg.Verbose, useTTY)

	if workflow == nil {
		workflow = newWorkflow(cmd, cfg, useTTY)
	}

	return nil
}

func newWorkflow(cmd *cobra.Command, cfg config.Config, useTTY bool) domain.Workflow {
	fsAdapter := adapter.NewLocalRenameFSAdapter()

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewReportStore(),
		adapter.NewLocalFolderWatcher(cfg.WatchDebounce),
		controller.NewUI(cmd, useTTY),
		domain.NewPlanner(fsAdapter),
		domain.NewExecutor(fsAdapter),
	)
}

// setupLogging routes zerolog to w. Log lines would tear the alt screen, so
// they are muted under the TUI unless verbose is set.
func setupLogging(w io.Writer, verbose, tuiActive bool) {
	level := zerolog.WarnLevel

	switch {
	case verbose:
		level = zerolog.DebugLevel
	case tuiActive:
		level = zerolog.Disabled
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !controller.IsTTY(w),
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

func buildArgs(args []string) domain.BuildArgs {
	folder := "."
	if len(args) > 0 {
		folder = args[0]
	}

	return domain.BuildArgs{
		Folder:        m.Path(folder),
		Keyword:       appConfig.Keyword,
		CaseSensitive: appConfig.CaseSensitive,
		SkipDir:       reportsDir(),
	}
}

func reportsDir() m.Path {
	return m.Path(appConfig.ReportsDir)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
