package controller

import (
	"fmt"
	"time"

	m "github.com/mouse-blink/keytrim/internal/model"
)

// Message types.
type buildProgressMsg struct {
	fraction float64
}

type planMsg struct {
	plan m.Plan
	err  error
	at   time.Time
}

// reviewRequestMsg hands the plan to the model for interactive selection.
// The model answers exactly once on reply.
type reviewRequestMsg struct {
	plan  m.Plan
	reply chan<- []m.PlanItem
}

type executeProgressMsg struct {
	fraction float64
}

type resultMsg struct {
	result m.Result
}

type reportsMsg struct {
	reports []m.Report
	err     error
}

// List item types.
type planRow struct {
	item m.PlanItem
}

func (r planRow) FilterValue() string {
	return r.item.CurrentName
}

type outcomeRow struct {
	outcome m.Outcome
}

func (r outcomeRow) FilterValue() string {
	return r.outcome.Item.CurrentName + " " + string(r.outcome.Status)
}

type reportRow struct {
	report m.Report
}

func (r reportRow) FilterValue() string {
	return string(r.report.Folder) + " " + r.report.Keyword
}

func (r reportRow) summary() string {
	return fmt.Sprintf("%s  %-16s  renamed %d  skipped %d  errors %d",
		r.report.StartedAt.Local().Format(time.DateTime),
		r.report.Keyword,
		r.report.Succeeded,
		r.report.Skipped,
		r.report.Errored,
	)
}

type noticeMsg struct {
	text string
}
