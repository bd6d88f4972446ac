package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/mouse-blink/keytrim/internal/adapter"
	m "github.com/mouse-blink/keytrim/internal/model"
)

// Executor applies a selected subset of a plan to disk.
type Executor interface {
	// Execute moves every item in order. A failing item is recorded and the
	// batch continues; completed moves are never rolled back.
	Execute(ctx context.Context, items []m.PlanItem, progress m.ProgressFunc) m.Result
}

type executor struct {
	fsAdapter adapter.RenameFSAdapter
}

// NewExecutor constructs an Executor backed by the provided filesystem adapter.
func NewExecutor(fsAdapter adapter.RenameFSAdapter) Executor {
	return &executor{fsAdapter: fsAdapter}
}

func (e *executor) Execute(ctx context.Context, items []m.PlanItem, progress m.ProgressFunc) m.Result {
	pending := executable(items)
	result := m.Result{Outcomes: make([]m.Outcome, 0, len(pending))}

	for i, item := range pending {
		result.Add(e.apply(ctx, item))
		progress.Report(float64(i+1) / float64(len(pending)))
	}

	return result
}

// executable drops items that are deselected or would not move anything.
func executable(items []m.PlanItem) []m.PlanItem {
	pending := make([]m.PlanItem, 0, len(items))

	for _, item := range items {
		if item.Selected && item.Changes() {
			pending = append(pending, item)
		}
	}

	return pending
}

func (e *executor) apply(ctx context.Context, item m.PlanItem) m.Outcome {
	if err := ctx.Err(); err != nil {
		return m.Outcome{Item: item, Status: m.StatusErrored, Message: err.Error()}
	}

	err := e.move(item)
	if err == nil {
		log.Debug().
			Str("from", string(item.CurrentPath)).
			Str("to", string(item.NewPath)).
			Msg("renamed")

		return m.Outcome{Item: item, Status: m.StatusRenamed}
	}

	status := classifyFailure(err)

	log.Warn().
		Err(err).
		Str("from", string(item.CurrentPath)).
		Str("to", string(item.NewPath)).
		Str("status", string(status)).
		Msg("rename failed")

	return m.Outcome{Item: item, Status: status, Message: err.Error()}
}

func (e *executor) move(item m.PlanItem) error {
	if item.CurrentPath == "" || item.NewPath == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPlanItem)
	}

	if err := e.fsAdapter.MkdirAll(m.Path(filepath.Dir(string(item.NewPath)))); err != nil {
		return err
	}

	// os.Rename replaces an existing destination on Unix; the slot picked at
	// planning time must still be free.
	exists, err := e.fsAdapter.Exists(item.NewPath)
	if err != nil {
		return err
	}

	if exists {
		return &fs.PathError{Op: "rename", Path: string(item.NewPath), Err: fs.ErrExist}
	}

	return e.fsAdapter.Rename(item.CurrentPath, item.NewPath)
}

// classifyFailure maps I/O level failures reported by the OS to skipped and
// everything else to errored.
func classifyFailure(err error) m.OutcomeStatus {
	var (
		pathErr    *fs.PathError
		linkErr    *os.LinkError
		syscallErr *os.SyscallError
	)

	switch {
	case errors.As(err, &pathErr), errors.As(err, &linkErr), errors.As(err, &syscallErr):
		return m.StatusSkipped
	case errors.Is(err, fs.ErrExist), errors.Is(err, fs.ErrPermission), errors.Is(err, fs.ErrNotExist):
		return m.StatusSkipped
	case errors.Is(err, syscall.EXDEV):
		return m.StatusSkipped
	default:
		return m.StatusErrored
	}
}
