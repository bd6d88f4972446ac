package domain_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/keytrim/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/keytrim/internal/controller/mocks"
	"github.com/mouse-blink/keytrim/internal/domain"
	domainmocks "github.com/mouse-blink/keytrim/internal/domain/mocks"
	m "github.com/mouse-blink/keytrim/internal/model"
)

type workflowFixture struct {
	folder   m.Path
	info     os.FileInfo
	fs       *adaptermocks.MockRenameFSAdapter
	reports  *adaptermocks.MockReportStore
	watcher  *adaptermocks.MockFolderWatcher
	ui       *controllermocks.MockUI
	planner  *domainmocks.MockPlanner
	executor *domainmocks.MockExecutor
	workflow domain.Workflow
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	dir := t.TempDir()
	info, err := os.Stat(dir)
	require.NoError(t, err)

	f := &workflowFixture{
		folder:   m.Path(dir),
		info:     info,
		fs:       adaptermocks.NewMockRenameFSAdapter(t),
		reports:  adaptermocks.NewMockReportStore(t),
		watcher:  adaptermocks.NewMockFolderWatcher(t),
		ui:       controllermocks.NewMockUI(t),
		planner:  domainmocks.NewMockPlanner(t),
		executor: domainmocks.NewMockExecutor(t),
	}
	f.workflow = domain.NewWorkflow(f.fs, f.reports, f.watcher, f.ui, f.planner, f.executor)

	return f
}

func (f *workflowFixture) buildArgs() domain.BuildArgs {
	return domain.BuildArgs{Folder: f.folder, Keyword: "KEY"}
}

func (f *workflowFixture) expectFolder() {
	f.fs.EXPECT().FileInfo(f.folder).Return(f.info, nil)
}

func (f *workflowFixture) expectSession() {
	f.ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	f.ui.EXPECT().Wait().Return().Once()
	f.ui.EXPECT().Close().Return().Once()
}

func (f *workflowFixture) samplePlan() m.Plan {
	dir := string(f.folder)

	return m.Plan{
		Folder:     f.folder,
		Keyword:    "KEY",
		TotalFiles: 3,
		Items: []m.PlanItem{
			{Selected: true, CurrentName: "a_KEY.txt", NewName: "a.txt", CurrentPath: m.Path(filepath.Join(dir, "a_KEY.txt")), NewPath: m.Path(filepath.Join(dir, "a.txt"))},
			{Selected: true, CurrentName: "b_KEY.jpg", NewName: "b.jpg", CurrentPath: m.Path(filepath.Join(dir, "b_KEY.jpg")), NewPath: m.Path(filepath.Join(dir, "b.jpg"))},
		},
	}
}

func TestWorkflow_Preview_Success(t *testing.T) {
	// Arrange
	f := newWorkflowFixture(t)
	plan := f.samplePlan()

	f.expectFolder()
	f.expectSession()
	f.planner.EXPECT().BuildPlan(mock.Anything, f.buildArgs(), mock.Anything).Return(plan, nil).Once()
	f.ui.EXPECT().DisplayPlan(plan, nil).Return(nil).Once()

	// Act
	err := f.workflow.Preview(context.Background(), domain.PreviewArgs{BuildArgs: f.buildArgs()})

	// Assert
	require.NoError(t, err)
}

func TestWorkflow_Preview_ValidationErrors(t *testing.T) {
	regular := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(regular, nil, 0o600))
	regularInfo, err := os.Stat(regular)
	require.NoError(t, err)

	tests := []struct {
		name    string
		args    domain.BuildArgs
		setup   func(f *workflowFixture)
		wantErr error
	}{
		{
			name:    "blank folder",
			args:    domain.BuildArgs{Folder: "  ", Keyword: "KEY"},
			wantErr: domain.ErrBlankFolder,
		},
		{
			name: "folder not found",
			args: domain.BuildArgs{Folder: "/missing", Keyword: "KEY"},
			setup: func(f *workflowFixture) {
				f.fs.EXPECT().FileInfo(m.Path("/missing")).Return(nil, fs.ErrNotExist)
			},
			wantErr: domain.ErrFolderNotFound,
		},
		{
			name: "not a directory",
			args: domain.BuildArgs{Folder: m.Path(regular), Keyword: "KEY"},
			setup: func(f *workflowFixture) {
				f.fs.EXPECT().FileInfo(m.Path(regular)).Return(regularInfo, nil)
			},
			wantErr: domain.ErrNotDirectory,
		},
		{
			name: "blank keyword",
			args: domain.BuildArgs{Keyword: " "},
			setup: func(f *workflowFixture) {
				f.expectFolder()
			},
			wantErr: domain.ErrBlankKeyword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWorkflowFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			args := tt.args
			if args.Folder == "" {
				args.Folder = f.folder
			}

			err := f.workflow.Preview(context.Background(), domain.PreviewArgs{BuildArgs: args})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestWorkflow_Preview_BuildError(t *testing.T) {
	f := newWorkflowFixture(t)
	buildErr := &domain.EnumerationError{Root: f.folder, Err: errors.New("denied")}

	f.expectFolder()
	f.ui.EXPECT().Start(mock.Anything).Return(nil).Once()
	f.ui.EXPECT().Close().Return().Once()
	f.planner.EXPECT().BuildPlan(mock.Anything, mock.Anything, mock.Anything).Return(m.Plan{}, buildErr)
	f.ui.EXPECT().DisplayPlan(m.Plan{}, buildErr).Return(buildErr)

	err := f.workflow.Preview(context.Background(), domain.PreviewArgs{BuildArgs: f.buildArgs()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "build plan")

	var enumErr *domain.EnumerationError
	assert.ErrorAs(t, err, &enumErr)
}

func TestWorkflow_Preview_StartError(t *testing.T) {
	f := newWorkflowFixture(t)

	f.expectFolder()
	f.ui.EXPECT().Start(mock.Anything).Return(errors.New("no terminal"))

	err := f.workflow.Preview(context.Background(), domain.PreviewArgs{BuildArgs: f.buildArgs()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start ui")
}

func TestWorkflow_Preview_WatchRebuildsOnChange(t *testing.T) {
	f := newWorkflowFixture(t)
	plan := f.samplePlan()

	changes := make(chan struct{}, 1)
	changes <- struct{}{}
	close(changes)

	f.expectFolder()
	f.expectSession()
	f.planner.EXPECT().BuildPlan(mock.Anything, f.buildArgs(), mock.Anything).Return(plan, nil).Times(2)
	f.ui.EXPECT().DisplayPlan(plan, nil).Return(nil).Times(2)
	f.ui.EXPECT().Done().Return(nil)
	f.watcher.EXPECT().Watch(mock.Anything, f.folder).Return(changes, nil)

	err := f.workflow.Preview(context.Background(), domain.PreviewArgs{BuildArgs: f.buildArgs(), Watch: true})

	require.NoError(t, err)
}

func TestWorkflow_Preview_WatchStopsWhenUIExits(t *testing.T) {
	f := newWorkflowFixture(t)
	plan := f.samplePlan()

	done := make(chan struct{})
	close(done)

	f.expectFolder()
	f.expectSession()
	f.planner.EXPECT().BuildPlan(mock.Anything, mock.Anything, mock.Anything).Return(plan, nil).Once()
	f.ui.EXPECT().DisplayPlan(plan, nil).Return(nil).Once()
	f.ui.EXPECT().Done().Return(done)
	f.watcher.EXPECT().Watch(mock.Anything, f.folder).Return(make(chan struct{}), nil)

	err := f.workflow.Preview(context.Background(), domain.PreviewArgs{BuildArgs: f.buildArgs(), Watch: true})

	require.NoError(t, err)
}

func TestWorkflow_Apply_Success(t *testing.T) {
	// Arrange
	f := newWorkflowFixture(t)
	plan := f.samplePlan()
	reportsDir := m.Path(t.TempDir())

	var result m.Result
	result.Add(m.Outcome{Item: plan.Items[0], Status: m.StatusRenamed})
	result.Add(m.Outcome{Item: plan.Items[1], Status: m.StatusSkipped, Message: "exists"})

	f.expectFolder()
	f.expectSession()
	f.planner.EXPECT().BuildPlan(mock.Anything, f.buildArgs(), mock.Anything).Return(plan, nil)
	f.ui.EXPECT().DisplayPlan(plan, nil).Return(nil)
	f.ui.EXPECT().ReviewPlan(plan, true).Return(plan.Items, nil)
	f.ui.EXPECT().Done().Return(nil).Once()
	f.executor.EXPECT().Execute(mock.Anything, plan.Items, mock.Anything).Return(result)
	f.reports.EXPECT().SaveReport(reportsDir, mock.MatchedBy(func(r m.Report) bool {
		return r.ID != "" && r.Succeeded == 1 && r.Skipped == 1 && len(r.Entries) == 2 && r.Keyword == "KEY"
	})).Return(m.Path(filepath.Join(string(reportsDir), "r.yaml")), nil)
	f.ui.EXPECT().DisplayResult(result).Return()

	// Act
	err := f.workflow.Apply(context.Background(), domain.ApplyArgs{
		BuildArgs: f.buildArgs(),
		AssumeYes: true,
		Reports:   reportsDir,
	})

	// Assert
	require.NoError(t, err)
}

func TestWorkflow_Apply_UIExitCancelsExecute(t *testing.T) {
	f := newWorkflowFixture(t)
	plan := f.samplePlan()

	done := make(chan struct{})
	close(done)

	var result m.Result
	result.Add(m.Outcome{Item: plan.Items[0], Status: m.StatusErrored, Message: context.Canceled.Error()})

	f.expectFolder()
	f.expectSession()
	f.planner.EXPECT().BuildPlan(mock.Anything, mock.Anything, mock.Anything).Return(plan, nil)
	f.ui.EXPECT().DisplayPlan(plan, nil).Return(nil)
	f.ui.EXPECT().ReviewPlan(plan, true).Return(plan.Items, nil)
	f.ui.EXPECT().Done().Return(done).Once()
	f.executor.EXPECT().Execute(mock.Anything, plan.Items, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ []m.PlanItem, _ m.ProgressFunc) m.Result {
			select {
			case <-ctx.Done():
			case <-time.After(2 * time.Second):
				t.Error("execute context was not cancelled after the ui exited")
			}

			return result
		})
	f.ui.EXPECT().DisplayResult(result).Return()

	err := f.workflow.Apply(context.Background(), domain.ApplyArgs{BuildArgs: f.buildArgs(), AssumeYes: true})

	require.NoError(t, err)
}

func TestWorkflow_Apply_EmptyPlanSkipsReview(t *testing.T) {
	f := newWorkflowFixture(t)
	plan := m.Plan{Folder: f.folder, Keyword: "KEY", Items: []m.PlanItem{}, Reason: m.ReasonNoMatches}

	f.expectFolder()
	f.expectSession()
	f.planner.EXPECT().BuildPlan(mock.Anything, mock.Anything, mock.Anything).Return(plan, nil)
	f.ui.EXPECT().DisplayPlan(plan, nil).Return(nil)

	err := f.workflow.Apply(context.Background(), domain.ApplyArgs{BuildArgs: f.buildArgs(), Reports: "reports"})

	require.NoError(t, err)
}

func TestWorkflow_Apply_DeclinedReviewSkipsExecute(t *testing.T) {
	f := newWorkflowFixture(t)
	plan := f.samplePlan()

	f.expectFolder()
	f.expectSession()
	f.planner.EXPECT().BuildPlan(mock.Anything, mock.Anything, mock.Anything).Return(plan, nil)
	f.ui.EXPECT().DisplayPlan(plan, nil).Return(nil)
	f.ui.EXPECT().ReviewPlan(plan, false).Return(nil, nil)

	err := f.workflow.Apply(context.Background(), domain.ApplyArgs{BuildArgs: f.buildArgs(), Reports: "reports"})

	require.NoError(t, err)
}

func TestWorkflow_Apply_SelectionRulesApplyBeforeReview(t *testing.T) {
	f := newWorkflowFixture(t)
	plan := f.samplePlan()

	f.expectFolder()
	f.expectSession()
	f.planner.EXPECT().BuildPlan(mock.Anything, mock.Anything, mock.Anything).Return(plan, nil)
	f.ui.EXPECT().DisplayPlan(plan, nil).Return(nil)
	f.ui.EXPECT().ReviewPlan(mock.MatchedBy(func(p m.Plan) bool {
		return p.Items[0].Selected && !p.Items[1].Selected
	}), true).Return(nil, nil)

	err := f.workflow.Apply(context.Background(), domain.ApplyArgs{
		BuildArgs: f.buildArgs(),
		Selection: domain.SelectionRules{Exclude: []string{`\.jpg$`}},
		AssumeYes: true,
	})

	require.NoError(t, err)
}

func TestWorkflow_Apply_InvalidExcludeFailsBeforeUI(t *testing.T) {
	f := newWorkflowFixture(t)

	f.expectFolder()

	err := f.workflow.Apply(context.Background(), domain.ApplyArgs{
		BuildArgs: f.buildArgs(),
		Selection: domain.SelectionRules{Exclude: []string{`([`}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
}

func TestWorkflow_Apply_SaveReportError(t *testing.T) {
	f := newWorkflowFixture(t)
	plan := f.samplePlan()
	result := m.Result{Succeeded: 2}

	f.expectFolder()
	f.expectSession()
	f.planner.EXPECT().BuildPlan(mock.Anything, mock.Anything, mock.Anything).Return(plan, nil)
	f.ui.EXPECT().DisplayPlan(plan, nil).Return(nil)
	f.ui.EXPECT().ReviewPlan(plan, true).Return(plan.Items, nil)
	f.ui.EXPECT().Done().Return(nil).Once()
	f.executor.EXPECT().Execute(mock.Anything, plan.Items, mock.Anything).Return(result)
	f.reports.EXPECT().SaveReport(m.Path("reports"), mock.Anything).Return(m.Path(""), errors.New("disk full"))
	f.ui.EXPECT().DisplayResult(result).Return()

	err := f.workflow.Apply(context.Background(), domain.ApplyArgs{BuildArgs: f.buildArgs(), AssumeYes: true, Reports: "reports"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save report")
}

func TestWorkflow_Apply_NoReportsDirSkipsSave(t *testing.T) {
	f := newWorkflowFixture(t)
	plan := f.samplePlan()
	result := m.Result{Succeeded: 2}

	f.expectFolder()
	f.expectSession()
	f.planner.EXPECT().BuildPlan(mock.Anything, mock.Anything, mock.Anything).Return(plan, nil)
	f.ui.EXPECT().DisplayPlan(plan, nil).Return(nil)
	f.ui.EXPECT().ReviewPlan(plan, true).Return(plan.Items, nil)
	f.ui.EXPECT().Done().Return(nil).Once()
	f.executor.EXPECT().Execute(mock.Anything, plan.Items, mock.Anything).Return(result)
	f.ui.EXPECT().DisplayResult(result).Return()

	err := f.workflow.Apply(context.Background(), domain.ApplyArgs{BuildArgs: f.buildArgs(), AssumeYes: true})

	require.NoError(t, err)
}

func TestWorkflow_View(t *testing.T) {
	f := newWorkflowFixture(t)
	reports := []m.Report{{ID: "r1", Keyword: "KEY"}}

	f.expectSession()
	f.reports.EXPECT().LoadReports(m.Path("reports")).Return(reports, nil)
	f.ui.EXPECT().DisplayReports(reports, nil).Return(nil)

	err := f.workflow.View(domain.ViewArgs{Reports: "reports"})

	require.NoError(t, err)
}

func TestWorkflow_View_LoadError(t *testing.T) {
	f := newWorkflowFixture(t)
	loadErr := errors.New("not a directory")

	f.ui.EXPECT().Start(mock.Anything).Return(nil)
	f.ui.EXPECT().Close().Return()
	f.reports.EXPECT().LoadReports(m.Path("reports")).Return(nil, loadErr)
	f.ui.EXPECT().DisplayReports([]m.Report(nil), loadErr).Return(loadErr)

	err := f.workflow.View(domain.ViewArgs{Reports: "reports"})

	require.ErrorIs(t, err, loadErr)
}
