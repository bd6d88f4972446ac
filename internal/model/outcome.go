package model

import "fmt"

// OutcomeStatus classifies what happened to a plan item during execution.
type OutcomeStatus string

const (
	// StatusRenamed means the file was moved to its new path.
	StatusRenamed OutcomeStatus = "renamed"
	// StatusSkipped means the move failed with an I/O level condition.
	StatusSkipped OutcomeStatus = "skipped"
	// StatusErrored means the move failed for any other reason.
	StatusErrored OutcomeStatus = "error"
)

// Outcome is the execution result of a single plan item.
type Outcome struct {
	Item    PlanItem
	Status  OutcomeStatus
	Message string
}

// DisplayName renders the new name with the failure reason appended, the
// way the preview grid shows failed items.
func (o Outcome) DisplayName() string {
	if o.Status == StatusRenamed || o.Status == "" {
		return o.Item.NewName
	}

	return fmt.Sprintf("%s  (%s: %s)", o.Item.NewName, o.Status, o.Message)
}

// Result aggregates the outcomes of an execute pass.
type Result struct {
	Succeeded int
	Skipped   int
	Errored   int
	Outcomes  []Outcome
}

// Total returns the number of items the executor processed.
func (r Result) Total() int {
	return r.Succeeded + r.Skipped + r.Errored
}

// Add records an outcome and updates the counters.
func (r *Result) Add(o Outcome) {
	switch o.Status {
	case StatusRenamed:
		r.Succeeded++
	case StatusSkipped:
		r.Skipped++
	default:
		o.Status = StatusErrored
		r.Errored++
	}

	r.Outcomes = append(r.Outcomes, o)
}

// Annotated returns the processed items with failure reasons appended to
// their display names.
func (r Result) Annotated() []PlanItem {
	items := make([]PlanItem, 0, len(r.Outcomes))

	for _, o := range r.Outcomes {
		item := o.Item
		item.NewName = o.DisplayName()
		items = append(items, item)
	}

	return items
}
