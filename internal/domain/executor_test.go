package domain

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/keytrim/internal/adapter"
	adaptermocks "github.com/mouse-blink/keytrim/internal/adapter/mocks"
	m "github.com/mouse-blink/keytrim/internal/model"
)

func planItem(dir, from, to string) m.PlanItem {
	return m.PlanItem{
		Selected:    true,
		CurrentName: from,
		NewName:     to,
		CurrentPath: m.Path(filepath.Join(dir, from)),
		NewPath:     m.Path(filepath.Join(dir, to)),
	}
}

func TestExecutor_Execute_RenamesOnDisk(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	touch(t, dir, "report_DRAFT_v1.pdf", "notes.txt")

	plan := buildPlan(t, dir, "DRAFT", false)

	// Act
	result := NewExecutor(adapter.NewLocalRenameFSAdapter()).Execute(context.Background(), plan.Items, nil)

	// Assert
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 0, result.Skipped+result.Errored)
	assert.FileExists(t, filepath.Join(dir, "report.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "report_DRAFT_v1.pdf"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestExecutor_Execute_PartialFailureIsolation(t *testing.T) {
	// Arrange
	fsAdapter := adaptermocks.NewMockRenameFSAdapter(t)
	items := []m.PlanItem{
		planItem("/d", "a_KEY.txt", "a.txt"),
		planItem("/d", "b_KEY.txt", "b.txt"),
		planItem("/d", "c_KEY.txt", "c.txt"),
	}
	boom := errors.New("boom")

	fsAdapter.EXPECT().MkdirAll(m.Path("/d")).Return(nil)
	fsAdapter.EXPECT().Exists(mock.Anything).Return(false, nil)
	fsAdapter.EXPECT().Rename(items[0].CurrentPath, items[0].NewPath).Return(nil).Once()
	fsAdapter.EXPECT().Rename(items[1].CurrentPath, items[1].NewPath).Return(boom).Once()
	fsAdapter.EXPECT().Rename(items[2].CurrentPath, items[2].NewPath).Return(nil).Once()

	// Act
	result := NewExecutor(fsAdapter).Execute(context.Background(), items, nil)

	// Assert
	require.Len(t, result.Outcomes, 3)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Errored)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 3, result.Total())
	assert.Equal(t, m.StatusRenamed, result.Outcomes[0].Status)
	assert.Equal(t, m.StatusErrored, result.Outcomes[1].Status)
	assert.Equal(t, "boom", result.Outcomes[1].Message)
	assert.Equal(t, m.StatusRenamed, result.Outcomes[2].Status)
}

func TestExecutor_Execute_IOFailureIsSkipped(t *testing.T) {
	fsAdapter := adaptermocks.NewMockRenameFSAdapter(t)
	item := planItem("/d", "a_KEY.txt", "a.txt")
	linkErr := &os.LinkError{Op: "rename", Old: "/d/a_KEY.txt", New: "/d/a.txt", Err: syscall.EACCES}

	fsAdapter.EXPECT().MkdirAll(mock.Anything).Return(nil)
	fsAdapter.EXPECT().Exists(item.NewPath).Return(false, nil)
	fsAdapter.EXPECT().Rename(item.CurrentPath, item.NewPath).Return(linkErr)

	result := NewExecutor(fsAdapter).Execute(context.Background(), []m.PlanItem{item}, nil)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, m.StatusSkipped, result.Outcomes[0].Status)
	assert.Contains(t, result.Outcomes[0].Message, "permission denied")
}

func TestExecutor_Execute_ExistingDestinationIsNotOverwritten(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a_KEY.txt", "a.txt")

	// a stale plan whose target appeared after planning
	item := planItem(dir, "a_KEY.txt", "a.txt")

	result := NewExecutor(adapter.NewLocalRenameFSAdapter()).Execute(context.Background(), []m.PlanItem{item}, nil)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, m.StatusSkipped, result.Outcomes[0].Status)
	assert.FileExists(t, filepath.Join(dir, "a_KEY.txt"))

	content, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "a.txt", string(content))
}

func TestExecutor_Execute_MissingSourceIsSkipped(t *testing.T) {
	dir := t.TempDir()
	item := planItem(dir, "gone_KEY.txt", "gone.txt")

	result := NewExecutor(adapter.NewLocalRenameFSAdapter()).Execute(context.Background(), []m.PlanItem{item}, nil)

	assert.Equal(t, 1, result.Skipped)
}

func TestExecutor_Execute_FiltersDeselectedAndNoOps(t *testing.T) {
	fsAdapter := adaptermocks.NewMockRenameFSAdapter(t)

	deselected := planItem("/d", "a_KEY.txt", "a.txt")
	deselected.Selected = false
	noop := planItem("/d", "same.txt", "same.txt")
	moved := planItem("/d", "b_KEY.txt", "b.txt")

	fsAdapter.EXPECT().MkdirAll(m.Path("/d")).Return(nil).Once()
	fsAdapter.EXPECT().Exists(moved.NewPath).Return(false, nil).Once()
	fsAdapter.EXPECT().Rename(moved.CurrentPath, moved.NewPath).Return(nil).Once()

	result := NewExecutor(fsAdapter).Execute(context.Background(), []m.PlanItem{deselected, noop, moved}, nil)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, "b_KEY.txt", result.Outcomes[0].Item.CurrentName)
}

func TestExecutor_Execute_EmptyPathIsErrored(t *testing.T) {
	fsAdapter := adaptermocks.NewMockRenameFSAdapter(t)
	item := m.PlanItem{Selected: true, CurrentPath: "/d/a_KEY.txt"}

	result := NewExecutor(fsAdapter).Execute(context.Background(), []m.PlanItem{item}, nil)

	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, m.StatusErrored, result.Outcomes[0].Status)
	assert.Contains(t, result.Outcomes[0].Message, ErrInvalidPlanItem.Error())
}

func TestExecutor_Execute_CancelledContextErrorsRemainingItems(t *testing.T) {
	fsAdapter := adaptermocks.NewMockRenameFSAdapter(t)
	items := []m.PlanItem{planItem("/d", "a_KEY.txt", "a.txt"), planItem("/d", "b_KEY.txt", "b.txt")}

	ctx, cancel := context.WithCancel(context.Background())

	fsAdapter.EXPECT().MkdirAll(mock.Anything).Return(nil).Once()
	fsAdapter.EXPECT().Exists(mock.Anything).Return(false, nil).Once()
	fsAdapter.EXPECT().Rename(items[0].CurrentPath, items[0].NewPath).RunAndReturn(func(_, _ m.Path) error {
		cancel()

		return nil
	}).Once()

	result := NewExecutor(fsAdapter).Execute(ctx, items, nil)

	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Errored)
	assert.Equal(t, context.Canceled.Error(), result.Outcomes[1].Message)
}

func TestExecutor_Execute_ReportsProgress(t *testing.T) {
	fsAdapter := adaptermocks.NewMockRenameFSAdapter(t)
	items := []m.PlanItem{
		planItem("/d", "a_KEY.txt", "a.txt"),
		planItem("/d", "b_KEY.txt", "b.txt"),
		planItem("/d", "c_KEY.txt", "c.txt"),
		planItem("/d", "d_KEY.txt", "d.txt"),
	}

	fsAdapter.EXPECT().MkdirAll(mock.Anything).Return(nil)
	fsAdapter.EXPECT().Exists(mock.Anything).Return(false, nil)
	fsAdapter.EXPECT().Rename(mock.Anything, mock.Anything).Return(nil)

	var fractions []float64

	NewExecutor(fsAdapter).Execute(context.Background(), items, func(f float64) {
		fractions = append(fractions, f)
	})

	assert.Equal(t, []float64{0.25, 0.5, 0.75, 1}, fractions)
}

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want m.OutcomeStatus
	}{
		{name: "path error", err: &fs.PathError{Op: "rename", Path: "x", Err: syscall.ENOENT}, want: m.StatusSkipped},
		{name: "link error", err: &os.LinkError{Op: "rename", Err: syscall.EACCES}, want: m.StatusSkipped},
		{name: "syscall error", err: os.NewSyscallError("rename", syscall.EIO), want: m.StatusSkipped},
		{name: "wrapped exist", err: errors.Join(errors.New("ctx"), fs.ErrExist), want: m.StatusSkipped},
		{name: "permission", err: fs.ErrPermission, want: m.StatusSkipped},
		{name: "cross device", err: syscall.EXDEV, want: m.StatusSkipped},
		{name: "invalid item", err: ErrInvalidPlanItem, want: m.StatusErrored},
		{name: "arbitrary", err: errors.New("boom"), want: m.StatusErrored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyFailure(tt.err))
		})
	}
}
