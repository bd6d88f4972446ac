package model

// EmptyReason tells why a plan has no items.
type EmptyReason string

const (
	// ReasonNone marks a plan that has at least one item.
	ReasonNone EmptyReason = ""
	// ReasonNoFiles marks a plan built from a folder without any files.
	ReasonNoFiles EmptyReason = "no files"
	// ReasonNoMatches marks a plan where no file name contained the keyword.
	ReasonNoMatches EmptyReason = "no matches"
)

// PlanItem is one proposed rename.
type PlanItem struct {
	Selected    bool
	CurrentName string // display only
	NewName     string // display only
	CurrentPath Path
	NewPath     Path
}

// Changes reports whether applying the item would move the file.
func (p PlanItem) Changes() bool {
	return p.CurrentPath != p.NewPath
}

// Plan is the snapshot produced by a single build pass.
type Plan struct {
	Folder        Path
	Keyword       string
	CaseSensitive bool
	TotalFiles    int
	Items         []PlanItem
	Reason        EmptyReason
}

// Empty reports whether the build produced no items.
func (p Plan) Empty() bool {
	return len(p.Items) == 0
}

// Selected returns the number of selected items.
func (p Plan) Selected() int {
	count := 0

	for _, item := range p.Items {
		if item.Selected {
			count++
		}
	}

	return count
}

// Executable returns the selected items that would actually move a file.
func (p Plan) Executable() []PlanItem {
	items := make([]PlanItem, 0, len(p.Items))

	for _, item := range p.Items {
		if item.Selected && item.Changes() {
			items = append(items, item)
		}
	}

	return items
}

// WithSelection returns a copy of the plan where each item is selected
// according to keep. The receiver is not modified.
func (p Plan) WithSelection(keep func(PlanItem) bool) Plan {
	items := make([]PlanItem, len(p.Items))

	for i, item := range p.Items {
		item.Selected = keep(item)
		items[i] = item
	}

	p.Items = items

	return p
}
