package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/keytrim/internal/model"
)

const (
	reportExt       = ".yaml"
	reportTimestamp = "20060102T150405.000Z"
	shortIDLen      = 8
)

// ReportStore persists and retrieves execution reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) (m.Path, error)
	LoadReports(dir m.Path) ([]m.Report, error)
}

// LocalReportStore keeps one YAML document per report inside a directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report into dir and returns the path of the new file.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	if strings.TrimSpace(string(dir)) == "" {
		return "", fmt.Errorf("reports directory is empty")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName(report))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}

	return m.Path(path), nil
}

// LoadReports reads every report in dir, oldest first. A missing directory
// yields no reports.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	if strings.TrimSpace(string(dir)) == "" {
		return nil, fmt.Errorf("reports directory is empty")
	}

	info, err := os.Stat(string(dir))
	if errors.Is(err, fs.ErrNotExist) {
		return []m.Report{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("stat reports directory: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("reports path %s is not a directory", dir)
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read reports directory: %w", err)
	}

	reports := make([]m.Report, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != reportExt {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		// #nosec G304 - path is built from the reports directory listing
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].StartedAt.Before(reports[j].StartedAt)
	})

	return reports, nil
}

func reportFileName(report m.Report) string {
	id := report.ID
	if len(id) > shortIDLen {
		id = id[:shortIDLen]
	}

	if id == "" {
		id = "report"
	}

	return fmt.Sprintf("%s-%s%s", report.StartedAt.UTC().Format(reportTimestamp), id, reportExt)
}
