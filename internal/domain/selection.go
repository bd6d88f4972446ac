package domain

import (
	"fmt"
	"regexp"

	m "github.com/mouse-blink/keytrim/internal/model"
)

// SelectionRules deselect plan items before they are reviewed. Exclude
// holds regular expressions matched against the current file name.
type SelectionRules struct {
	Exclude []string
}

func (r SelectionRules) compile() ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(r.Exclude))

	for _, expr := range r.Exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, &ValidationError{Field: "exclude", Value: expr, Err: fmt.Errorf("%w: %v", ErrInvalidPattern, err)}
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

// ApplySelection returns a copy of plan where items matching any exclude
// pattern are deselected. Items already deselected stay deselected.
func ApplySelection(plan m.Plan, rules SelectionRules) (m.Plan, error) {
	patterns, err := rules.compile()
	if err != nil {
		return m.Plan{}, err
	}

	if len(patterns) == 0 {
		return plan, nil
	}

	return plan.WithSelection(func(item m.PlanItem) bool {
		if !item.Selected {
			return false
		}

		for _, re := range patterns {
			if re.MatchString(item.CurrentName) {
				return false
			}
		}

		return true
	}), nil
}
