package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mouse-blink/keytrim/internal/adapter"
	"github.com/mouse-blink/keytrim/internal/controller"
	m "github.com/mouse-blink/keytrim/internal/model"
)

// PreviewArgs holds the inputs of a preview.
type PreviewArgs struct {
	BuildArgs
	Watch bool
}

// ApplyArgs holds the inputs of a build + execute run.
type ApplyArgs struct {
	BuildArgs
	Selection SelectionRules
	AssumeYes bool
	Reports   m.Path // empty disables persisting the report
}

// ViewArgs holds the inputs for listing stored reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow drives build and execute passes through the UI.
type Workflow interface {
	Preview(ctx context.Context, args PreviewArgs) error
	Apply(ctx context.Context, args ApplyArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.RenameFSAdapter
	reportStore adapter.ReportStore
	watcher     adapter.FolderWatcher
	ui          controller.UI
	planner     Planner
	executor    Executor
	now         func() time.Time
	newID       func() string
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.RenameFSAdapter,
	reportStore adapter.ReportStore,
	watcher adapter.FolderWatcher,
	ui controller.UI,
	planner Planner,
	executor Executor,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		watcher:     watcher,
		ui:          ui,
		planner:     planner,
		executor:    executor,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Preview builds and displays a plan without touching any file. In watch
// mode every debounced change under the folder triggers a fresh build pass.
func (w *workflow) Preview(ctx context.Context, args PreviewArgs) error {
	if err := w.validate(args.BuildArgs); err != nil {
		return err
	}

	mode := controller.WithPreviewMode()
	if args.Watch {
		mode = controller.WithWatchMode()
	}

	if err := w.ui.Start(mode); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.ui.Close()

	if _, err := w.build(ctx, args.BuildArgs); err != nil {
		return err
	}

	if args.Watch {
		if err := w.watch(ctx, args.BuildArgs); err != nil {
			return err
		}
	}

	w.ui.Wait()

	return nil
}

// Apply builds a plan, lets the user review it, and renames the approved
// items. Per-item failures never abort the batch; they end up in the result.
func (w *workflow) Apply(ctx context.Context, args ApplyArgs) error {
	if err := w.validate(args.BuildArgs); err != nil {
		return err
	}

	if _, err := args.Selection.compile(); err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithApplyMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.ui.Close()

	plan, err := w.build(ctx, args.BuildArgs)
	if err != nil {
		return err
	}

	if plan.Empty() {
		w.ui.Wait()

		return nil
	}

	plan, err = ApplySelection(plan, args.Selection)
	if err != nil {
		return err
	}

	approved, err := w.ui.ReviewPlan(plan, args.AssumeYes)
	if err != nil {
		return fmt.Errorf("review plan: %w", err)
	}

	if len(approved) == 0 {
		w.ui.Wait()

		return nil
	}

	execCtx, cancel := w.cancelOnUIExit(ctx)
	started := w.now()
	result := w.executor.Execute(execCtx, approved, w.ui.DisplayExecuteProgress)
	finished := w.now()

	cancel()

	log.Debug().
		Int("succeeded", result.Succeeded).
		Int("skipped", result.Skipped).
		Int("errored", result.Errored).
		Dur("elapsed", finished.Sub(started)).
		Msg("execute pass finished")

	saveErr := w.saveReport(args.Reports, m.NewReport(w.newID(), plan, result, started, finished))

	w.ui.DisplayResult(result)
	w.ui.Wait()

	return saveErr
}

// View lists previously stored reports.
func (w *workflow) View(args ViewArgs) error {
	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.ui.Close()

	reports, err := w.reportStore.LoadReports(args.Reports)
	if err := w.ui.DisplayReports(reports, err); err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	w.ui.Wait()

	return nil
}

// cancelOnUIExit derives a context that is cancelled once the UI goes away,
// so quitting the TUI stops a running execute pass.
func (w *workflow) cancelOnUIExit(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	done := w.ui.Done()
	if done == nil {
		return ctx, cancel
	}

	go func() {
		select {
		case <-done:
			log.Debug().Msg("ui closed, cancelling execute pass")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

func (w *workflow) validate(args BuildArgs) error {
	folder := string(args.Folder)
	if strings.TrimSpace(folder) == "" {
		return &ValidationError{Field: "folder", Value: folder, Err: ErrBlankFolder}
	}

	info, err := w.fsAdapter.FileInfo(args.Folder)
	if errors.Is(err, fs.ErrNotExist) {
		return &ValidationError{Field: "folder", Value: folder, Err: ErrFolderNotFound}
	}

	if err != nil {
		return &ValidationError{Field: "folder", Value: folder, Err: err}
	}

	if !info.IsDir() {
		return &ValidationError{Field: "folder", Value: folder, Err: ErrNotDirectory}
	}

	if strings.TrimSpace(args.Keyword) == "" {
		return &ValidationError{Field: "keyword", Value: args.Keyword, Err: ErrBlankKeyword}
	}

	return nil
}

// build runs one build pass and hands the plan (or the failure) to the UI.
func (w *workflow) build(ctx context.Context, args BuildArgs) (m.Plan, error) {
	plan, err := w.planner.BuildPlan(ctx, args, w.ui.DisplayBuildProgress)

	if displayErr := w.ui.DisplayPlan(plan, err); displayErr != nil && err == nil {
		err = displayErr
	}

	if err != nil {
		return m.Plan{}, fmt.Errorf("build plan: %w", err)
	}

	return plan, nil
}

func (w *workflow) watch(ctx context.Context, args BuildArgs) error {
	changes, err := w.watcher.Watch(ctx, args.Folder)
	if err != nil {
		return fmt.Errorf("watch %s: %w", args.Folder, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.ui.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}

			log.Debug().Str("folder", string(args.Folder)).Msg("folder changed, rebuilding plan")

			if _, err := w.build(ctx, args); err != nil {
				if ctx.Err() != nil {
					return nil
				}

				return err
			}
		}
	}
}

func (w *workflow) saveReport(dir m.Path, report m.Report) error {
	if strings.TrimSpace(string(dir)) == "" {
		return nil
	}

	path, err := w.reportStore.SaveReport(dir, report)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	log.Debug().Str("report", string(path)).Msg("report saved")

	return nil
}
