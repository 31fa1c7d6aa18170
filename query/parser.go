// Package query turns free-text rent questions into structured intents.
//
// Parsing is deterministic and rule-based: fixed extraction stages pull out
// bedrooms, budget, areas, and region, then an ordered decision list picks
// the intent, first match wins. There is no model, no confidence score, and
// no cross-query state.
package query

// AreaIndex reports whether a name resolves to a known area. The dataset
// satisfies it; tests can substitute a fixture.
type AreaIndex interface {
	HasArea(name string) bool
}

// Parser converts raw query text into an Intent. It holds only the area
// index; parsing has no mutable state, so one Parser is safe for concurrent
// use.
type Parser struct {
	index AreaIndex
}

// New returns a Parser backed by the given area index.
func New(index AreaIndex) *Parser {
	return &Parser{index: index}
}

// Parse runs the extraction stages over one input string and classifies the
// result. It never fails: unclassifiable input yields Unknown.
func (p *Parser) Parse(input string) Intent {
	f := newFeatures(input)
	f.extractBedrooms()
	f.extractBudget()
	f.extractAreas()
	f.extractRegion()
	f.probeSpecificArea(p.index)
	return p.classify(f)
}
