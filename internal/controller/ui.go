// Package controller provides the presentation layers that drive keytrim passes.
package controller

import (
	m "github.com/mouse-blink/keytrim/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModePreview StartMode = iota
	ModeApply
	ModeWatch
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithPreviewMode sets the UI to read-only preview mode.
func WithPreviewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePreview
	}
}

// WithApplyMode sets the UI to review and apply mode.
func WithApplyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeApply
	}
}

// WithWatchMode sets the UI to preview mode that expects repeated plans.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

// WithViewMode sets the UI to browse stored reports.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModePreview}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the presentation surface of a pass. Implementations can use
// different output methods (simple text, TUI, etc). Progress methods may be
// called from a goroutine other than the one that called Start.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	// Done is closed once the user has left the UI. It may be nil when the
	// UI cannot be closed interactively.
	Done() <-chan struct{}
	DisplayBuildProgress(fraction float64)
	DisplayPlan(plan m.Plan, err error) error
	// ReviewPlan lets the user confirm the plan and returns the items to
	// execute. An empty result means nothing should be renamed.
	ReviewPlan(plan m.Plan, assumeYes bool) ([]m.PlanItem, error)
	DisplayExecuteProgress(fraction float64)
	DisplayResult(result m.Result)
	DisplayReports(reports []m.Report, err error) error
}
