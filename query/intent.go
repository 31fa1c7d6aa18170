package query

// ============================================================================
// INTENT — Closed sum type of classified query purposes
// ============================================================================
// One concrete type per intent, each carrying exactly the fields its
// resolution needs. The sealed marker method keeps the set closed so the
// resolver's type switch covers every case.
// ============================================================================

// Intent is the classified purpose of one user query.
type Intent interface {
	intent()
}

// Compare ranks two or more named areas against each other.
type Compare struct {
	Areas    []string // raw user-supplied names, in input order
	Bedrooms int
	Studio   bool
}

// CheapestInRegion ranks a region's areas ascending by rent.
type CheapestInRegion struct {
	Region   string
	Bedrooms int
	Studio   bool
}

// CheapestOverall ranks all individual areas ascending by rent.
type CheapestOverall struct {
	Bedrooms int
	Studio   bool
}

// MostExpensiveInRegion ranks a region's areas descending by rent.
type MostExpensiveInRegion struct {
	Region   string
	Bedrooms int
	Studio   bool
}

// MostExpensiveOverall ranks all individual areas descending by rent.
type MostExpensiveOverall struct {
	Bedrooms int
	Studio   bool
}

// UnderBudget lists areas whose rent fits a monthly budget, optionally
// scoped to a region.
type UnderBudget struct {
	Budget   int
	Bedrooms int
	Region   string // empty = whole dataset
}

// AreaInfo asks for one area's full rent profile.
type AreaInfo struct {
	Area     string
	Bedrooms int
}

// RegionInfo asks for a region's average rent.
type RegionInfo struct {
	Region   string
	Bedrooms int
}

// Help asks for usage guidance.
type Help struct{}

// Unknown is the terminal fallback; Original echoes the user's input.
type Unknown struct {
	Original string
}

func (Compare) intent()               {}
func (CheapestInRegion) intent()      {}
func (CheapestOverall) intent()       {}
func (MostExpensiveInRegion) intent() {}
func (MostExpensiveOverall) intent()  {}
func (UnderBudget) intent()           {}
func (AreaInfo) intent()              {}
func (RegionInfo) intent()            {}
func (Help) intent()                  {}
func (Unknown) intent()               {}
