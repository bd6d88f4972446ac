package controller

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/keytrim/internal/model"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
	bar  *progressbar.ProgressBar
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = newStartConfig(options...).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
	s.finishBar()
}

// Wait returns immediately; there is nothing for the user to close.
func (s *SimpleUI) Wait() {}

// Done returns nil: a plain terminal session ends with the process.
func (s *SimpleUI) Done() <-chan struct{} {
	return nil
}

// DisplayBuildProgress renders build progress on stderr.
func (s *SimpleUI) DisplayBuildProgress(fraction float64) {
	s.progress("scanning", fraction)
}

// DisplayExecuteProgress renders execute progress on stderr.
func (s *SimpleUI) DisplayExecuteProgress(fraction float64) {
	s.progress("renaming", fraction)
}

// DisplayPlan prints the plan as a table or the build error.
func (s *SimpleUI) DisplayPlan(plan m.Plan, err error) error {
	s.finishBar()

	if err != nil {
		_, _ = errorColor.Fprintf(s.cmd.ErrOrStderr(), "build error: %v\n", err)

		return err
	}

	if s.mode == ModeWatch {
		_, _ = dimColor.Fprintf(s.cmd.OutOrStdout(), "\n[%s] %s\n", time.Now().Format(time.TimeOnly), plan.Folder)
	}

	if plan.Empty() {
		s.printf("%s\n", emptyPlanMessage(plan))

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"", "Current Name", "New Name"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, item := range plan.Items {
		table.Append([]string{checkbox(item.Selected), item.CurrentName, item.NewName})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Total Files %d", plan.TotalFiles),
		fmt.Sprintf("Planned %d", len(plan.Items)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// ReviewPlan asks for confirmation on the command's input unless assumeYes
// is set. Anything other than y/yes, including end of input, declines.
func (s *SimpleUI) ReviewPlan(plan m.Plan, assumeYes bool) ([]m.PlanItem, error) {
	items := plan.Executable()
	if len(items) == 0 {
		s.printf("Nothing selected to rename.\n")

		return nil, nil
	}

	if assumeYes {
		return items, nil
	}

	s.printf("Proceed to rename %d files? [y/N] ", len(items))

	answer, err := bufio.NewReader(s.cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return items, nil
	default:
		s.printf("\nAborted.\n")

		return nil, nil
	}
}

// DisplayResult prints each processed item and a colored summary.
func (s *SimpleUI) DisplayResult(result m.Result) {
	s.finishBar()

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Status", "Current Name", "New Name"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, outcome := range result.Outcomes {
		table.Append([]string{string(outcome.Status), outcome.Item.CurrentName, outcome.DisplayName()})
	}

	table.Render()
	s.printf("\n%s\n", tableBuffer.String())

	out := s.cmd.OutOrStdout()
	_, _ = successColor.Fprintf(out, "✓ renamed %d", result.Succeeded)
	_, _ = fmt.Fprint(out, "  ")
	_, _ = warningColor.Fprintf(out, "skipped %d", result.Skipped)
	_, _ = fmt.Fprint(out, "  ")
	_, _ = errorColor.Fprintf(out, "errors %d", result.Errored)
	_, _ = fmt.Fprintln(out)
}

// DisplayReports prints stored reports, newest last.
func (s *SimpleUI) DisplayReports(reports []m.Report, err error) error {
	if err != nil {
		_, _ = errorColor.Fprintf(s.cmd.ErrOrStderr(), "reports error: %v\n", err)

		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found.\n")

		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Started", "Folder", "Keyword", "Renamed", "Skipped", "Errors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, report := range reports {
		table.Append([]string{
			report.StartedAt.Local().Format(time.DateTime),
			string(report.Folder),
			report.Keyword,
			fmt.Sprintf("%d", report.Succeeded),
			fmt.Sprintf("%d", report.Skipped),
			fmt.Sprintf("%d", report.Errored),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Reports %d", len(reports)), "", "", "", "", ""})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) progress(description string, fraction float64) {
	if s.bar == nil {
		s.bar = progressbar.NewOptions(100,
			progressbar.OptionSetWriter(s.cmd.ErrOrStderr()),
			progressbar.OptionSetDescription(description),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionThrottle(65*time.Millisecond),
		)
	}

	_ = s.bar.Set(int(clampFraction(fraction) * 100))

	if fraction >= 1 {
		s.finishBar()
	}
}

func (s *SimpleUI) finishBar() {
	if s.bar == nil {
		return
	}

	_ = s.bar.Finish()
	s.bar = nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func emptyPlanMessage(plan m.Plan) string {
	switch plan.Reason {
	case m.ReasonNoFiles:
		return fmt.Sprintf("No files found in %s.", plan.Folder)
	case m.ReasonNoMatches:
		return fmt.Sprintf("No file names contain %q.", plan.Keyword)
	default:
		return "Nothing to rename."
	}
}

func checkbox(selected bool) string {
	if selected {
		return "[x]"
	}

	return "[ ]"
}

func clampFraction(fraction float64) float64 {
	switch {
	case fraction < 0:
		return 0
	case fraction > 1:
		return 1
	default:
		return fraction
	}
}
