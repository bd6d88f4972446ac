package model

import "time"

// ReportEntry is the persisted form of a single outcome.
type ReportEntry struct {
	From    Path          `yaml:"from"`
	To      Path          `yaml:"to"`
	Status  OutcomeStatus `yaml:"status"`
	Message string        `yaml:"message,omitempty"`
}

// Report records one execute pass.
type Report struct {
	ID            string        `yaml:"id"`
	Folder        Path          `yaml:"folder"`
	Keyword       string        `yaml:"keyword"`
	CaseSensitive bool          `yaml:"case_sensitive"`
	StartedAt     time.Time     `yaml:"started_at"`
	FinishedAt    time.Time     `yaml:"finished_at"`
	Succeeded     int           `yaml:"succeeded"`
	Skipped       int           `yaml:"skipped"`
	Errored       int           `yaml:"errored"`
	Entries       []ReportEntry `yaml:"entries"`
}

// NewReport builds a report from a plan and the result of executing it.
func NewReport(id string, plan Plan, result Result, started, finished time.Time) Report {
	entries := make([]ReportEntry, 0, len(result.Outcomes))

	for _, o := range result.Outcomes {
		entries = append(entries, ReportEntry{
			From:    o.Item.CurrentPath,
			To:      o.Item.NewPath,
			Status:  o.Status,
			Message: o.Message,
		})
	}

	return Report{
		ID:            id,
		Folder:        plan.Folder,
		Keyword:       plan.Keyword,
		CaseSensitive: plan.CaseSensitive,
		StartedAt:     started,
		FinishedAt:    finished,
		Succeeded:     result.Succeeded,
		Skipped:       result.Skipped,
		Errored:       result.Errored,
		Entries:       entries,
	}
}
