// Package model defines the data structures for keyword trimming renames.
package model

// Path represents a file system path.
type Path string

// ProgressFunc receives the fraction of a pass that has completed, in the
// range [0, 1]. It is an observational side channel only.
type ProgressFunc func(fraction float64)

// Report calls fn with fraction when fn is not nil.
func (fn ProgressFunc) Report(fraction float64) {
	if fn == nil {
		return
	}

	fn(fraction)
}
