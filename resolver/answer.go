package resolver

import "github.com/pocketrent-org/pocketrent/dataset"

// ============================================================================
// ANSWER — Render-ready result payloads
// ============================================================================
// One concrete type per response shape. The formatter type-switches over
// these; user-facing failures are Answer values, never errors, so query
// handling stays a total string → string function.
// ============================================================================

// Answer is the resolved result of one query, ready for rendering.
type Answer interface {
	answer()
}

// Row is one ranked table row.
type Row struct {
	Name string
	Rent int
}

// Comparison ranks the requested areas ascending by rent. Entries keep
// unresolved names with the national-average rent and Found=false.
type Comparison struct {
	Bedrooms int
	Studio   bool
	Entries  []dataset.CompareEntry
}

// Ranking is a cheapest/most-expensive table, optionally scoped to a region.
type Ranking struct {
	Cheapest bool
	Region   string // empty = whole UK
	Bedrooms int
	Studio   bool
	Rows     []Row
}

// BudgetMatches lists areas at or under a monthly budget. Empty Rows renders
// a no-results message, not an empty table.
type BudgetMatches struct {
	Budget   int
	Bedrooms int
	Region   string // empty = whole UK
	Rows     []Row
}

// AreaDetail is one area's full rent profile with the national baseline for
// the percentage comparison.
type AreaDetail struct {
	Area     dataset.AreaRecord
	National dataset.AreaRecord
}

// RegionSummary is a region's aggregate average plus its cheapest areas.
type RegionSummary struct {
	Name     string // display name of the aggregate row
	Bedrooms int
	Average  int
	Cheapest []Row
}

// HelpText asks the formatter for the usage guide.
type HelpText struct{}

// Unrecognized echoes input the classifier could not place.
type Unrecognized struct {
	Original string
}

// Failure carries a user-facing error message (unresolvable name, missing
// parameter).
type Failure struct {
	Message string
}

func (Comparison) answer()    {}
func (Ranking) answer()       {}
func (BudgetMatches) answer() {}
func (AreaDetail) answer()    {}
func (RegionSummary) answer() {}
func (HelpText) answer()      {}
func (Unrecognized) answer()  {}
func (Failure) answer()       {}
