package domain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mouse-blink/keytrim/internal/adapter"
	m "github.com/mouse-blink/keytrim/internal/model"
)

// BuildArgs holds the inputs of a build pass.
type BuildArgs struct {
	Folder        m.Path
	Keyword       string
	CaseSensitive bool
	// SkipDir is left out of the scan, typically the reports directory.
	SkipDir       m.Path
}

// Planner scans a folder and proposes a rename for every file whose base
// name contains the keyword.
type Planner interface {
	BuildPlan(ctx context.Context, args BuildArgs, progress m.ProgressFunc) (m.Plan, error)
}

type planner struct {
	fsAdapter adapter.RenameFSAdapter
}

// NewPlanner constructs a Planner backed by the provided filesystem adapter.
func NewPlanner(fsAdapter adapter.RenameFSAdapter) Planner {
	return &planner{fsAdapter: fsAdapter}
}

// BuildPlan performs one full scan of args.Folder. Every item in the result
// has a NewPath that is free on disk and unique within the plan. An empty
// plan carries ReasonNoFiles or ReasonNoMatches and a nil error.
func (p *planner) BuildPlan(ctx context.Context, args BuildArgs, progress m.ProgressFunc) (m.Plan, error) {
	root, err := filepath.Abs(string(args.Folder))
	if err != nil {
		return m.Plan{}, &EnumerationError{Root: args.Folder, Err: err}
	}

	plan := m.Plan{
		Folder:        m.Path(root),
		Keyword:       args.Keyword,
		CaseSensitive: args.CaseSensitive,
		Items:         []m.PlanItem{},
	}

	skip, err := skipDir(args.SkipDir)
	if err != nil {
		return m.Plan{}, &EnumerationError{Root: args.Folder, Err: err}
	}

	files, err := p.listFiles(m.Path(root), skip)
	if err != nil {
		return m.Plan{}, &EnumerationError{Root: plan.Folder, Err: err}
	}

	plan.TotalFiles = len(files)
	if len(files) == 0 {
		plan.Reason = m.ReasonNoFiles
		progress.Report(1)

		return plan, nil
	}

	claimed := make(map[m.Path]struct{})

	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return m.Plan{}, fmt.Errorf("build cancelled: %w", err)
		}

		item, ok, err := p.planFile(file, args, claimed)
		if err != nil {
			return m.Plan{}, &EnumerationError{Root: plan.Folder, Err: err}
		}

		if ok {
			claimed[item.NewPath] = struct{}{}
			plan.Items = append(plan.Items, item)

			log.Debug().
				Str("from", item.CurrentName).
				Str("to", item.NewName).
				Str("dir", filepath.Dir(string(item.CurrentPath))).
				Msg("planned rename")
		}

		progress.Report(float64(i+1) / float64(len(files)))
	}

	if len(plan.Items) == 0 {
		plan.Reason = m.ReasonNoMatches
	}

	return plan, nil
}

func skipDir(dir m.Path) (string, error) {
	if strings.TrimSpace(string(dir)) == "" {
		return "", nil
	}

	return filepath.Abs(string(dir))
}

// listFiles collects every regular file under root in walk order. The skip
// directory is pruned unless it is root itself.
func (p *planner) listFiles(root m.Path, skip string) ([]m.Path, error) {
	var files []m.Path

	err := p.fsAdapter.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() && skip != "" && path == skip && path != string(root) {
			return filepath.SkipDir
		}

		if info.Mode().IsRegular() {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// planFile computes the rename for a single file. ok is false when the file
// does not take part in the plan.
func (p *planner) planFile(file m.Path, args BuildArgs, claimed map[m.Path]struct{}) (m.PlanItem, bool, error) {
	path := string(file)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	trimmed, ok := trimmedBase(base, args.Keyword, args.CaseSensitive)
	if !ok {
		return m.PlanItem{}, false, nil
	}

	target, err := p.uniqueTarget(dir, trimmed, ext, claimed)
	if err != nil {
		return m.PlanItem{}, false, err
	}

	return m.PlanItem{
		Selected:    true,
		CurrentName: name,
		NewName:     filepath.Base(string(target)),
		CurrentPath: file,
		NewPath:     target,
	}, true, nil
}

// uniqueTarget returns dir/base+ext, or the first "base (n)ext" with n >= 1
// that is neither on disk nor claimed earlier in this build.
func (p *planner) uniqueTarget(dir, base, ext string, claimed map[m.Path]struct{}) (m.Path, error) {
	candidate := m.Path(filepath.Join(dir, base+ext))

	for n := 1; ; n++ {
		taken, err := p.isTaken(candidate, claimed)
		if err != nil {
			return "", err
		}

		if !taken {
			return candidate, nil
		}

		candidate = m.Path(filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, n, ext)))
	}
}

func (p *planner) isTaken(path m.Path, claimed map[m.Path]struct{}) (bool, error) {
	if _, ok := claimed[path]; ok {
		return true, nil
	}

	exists, err := p.fsAdapter.Exists(path)
	if err != nil {
		return false, fmt.Errorf("check target %s: %w", path, err)
	}

	return exists, nil
}
