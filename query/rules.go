package query

import "strings"

// ============================================================================
// CLASSIFICATION RULES — Ordered decision list
// ============================================================================
// The rule list is the precedence order: rules are evaluated top to bottom
// and the first match wins, so each rule is independently testable and the
// ordering is data, not control flow.
// ============================================================================

var (
	helpWords = []string{"help", "how do i", "what can you", "how to use"}

	// Price-direction words that turn a specific-area mention into an
	// area-info request ("cheapest flats in manchester").
	directionWords = []string{"cheapest", "lowest", "expensive", "highest"}

	cheapRegionWords  = []string{"cheapest", "lowest", "affordable", "budget"}
	cheapOverallWords = []string{"cheapest", "lowest", "affordable"}
	expensiveWords    = []string{"expensive", "highest", "priciest", "most costly"}

	regionPricePhrases = []string{"rent in", "prices in", "cost in", "average"}
	areaPricePhrases   = []string{"rent in", "how much", "price in", "cost in"}
)

// rule pairs a predicate with an intent constructor. Build may return nil to
// decline (e.g. a capture group came up empty), which falls through to the
// next rule.
type rule struct {
	name  string
	when  func(p *Parser, f *features) bool
	build func(p *Parser, f *features) Intent
}

var rules = []rule{
	{
		name: "help",
		when: func(p *Parser, f *features) bool { return containsAny(f.text, helpWords...) },
		build: func(p *Parser, f *features) Intent {
			return Help{}
		},
	},
	{
		name: "compare",
		when: func(p *Parser, f *features) bool { return len(f.areas) >= 2 },
		build: func(p *Parser, f *features) Intent {
			return Compare{Areas: f.areas, Bedrooms: f.bedrooms, Studio: f.studio}
		},
	},
	{
		name: "specific area with direction word",
		when: func(p *Parser, f *features) bool {
			return f.specificArea != "" && containsAny(f.text, directionWords...)
		},
		build: func(p *Parser, f *features) Intent {
			return AreaInfo{Area: f.specificArea, Bedrooms: f.bedrooms}
		},
	},
	{
		name: "cheapest in region",
		when: func(p *Parser, f *features) bool {
			return containsAny(f.text, cheapRegionWords...) && f.scopedRegion() != ""
		},
		build: func(p *Parser, f *features) Intent {
			return CheapestInRegion{Region: f.scopedRegion(), Bedrooms: f.bedrooms, Studio: f.studio}
		},
	},
	{
		name: "cheapest overall",
		when: func(p *Parser, f *features) bool {
			return containsAny(f.text, cheapOverallWords...) && f.scopedRegion() == ""
		},
		build: func(p *Parser, f *features) Intent {
			return CheapestOverall{Bedrooms: f.bedrooms, Studio: f.studio}
		},
	},
	{
		name: "most expensive in region",
		when: func(p *Parser, f *features) bool {
			return containsAny(f.text, expensiveWords...) && f.scopedRegion() != ""
		},
		build: func(p *Parser, f *features) Intent {
			return MostExpensiveInRegion{Region: f.scopedRegion(), Bedrooms: f.bedrooms, Studio: f.studio}
		},
	},
	{
		name: "most expensive overall",
		when: func(p *Parser, f *features) bool { return containsAny(f.text, expensiveWords...) },
		build: func(p *Parser, f *features) Intent {
			return MostExpensiveOverall{Bedrooms: f.bedrooms, Studio: f.studio}
		},
	},
	{
		name: "under budget",
		when: func(p *Parser, f *features) bool { return f.budget > 0 },
		build: func(p *Parser, f *features) Intent {
			return UnderBudget{Budget: f.budget, Bedrooms: f.bedrooms, Region: f.scopedRegion()}
		},
	},
	{
		name: "region info",
		when: func(p *Parser, f *features) bool {
			return f.region != "" && containsAny(f.text, regionPricePhrases...)
		},
		build: func(p *Parser, f *features) Intent {
			return RegionInfo{Region: f.region, Bedrooms: f.bedrooms}
		},
	},
	{
		name: "area info by price phrase",
		when: func(p *Parser, f *features) bool { return containsAny(f.text, areaPricePhrases...) },
		build: func(p *Parser, f *features) Intent {
			if m := priceInRe.FindStringSubmatch(f.text); m != nil {
				if area := strings.TrimSpace(m[1]); area != "" {
					return AreaInfo{Area: area, Bedrooms: f.bedrooms}
				}
			}
			return nil
		},
	},
	{
		name: "bare area mention",
		when: func(p *Parser, f *features) bool { return len(f.areas) == 0 },
		build: func(p *Parser, f *features) Intent {
			if area, ok := p.scanForArea(f.text); ok {
				return AreaInfo{Area: area, Bedrooms: f.bedrooms}
			}
			return nil
		},
	},
}

// classify evaluates the rule list in order; the first rule whose predicate
// holds and whose constructor accepts wins. No rule → Unknown.
func (p *Parser) classify(f *features) Intent {
	for _, r := range rules {
		if !r.when(p, f) {
			continue
		}
		if intent := r.build(p, f); intent != nil {
			return intent
		}
	}
	return Unknown{Original: f.original}
}

// scanForArea slides a 1–3 word window over the text and returns the first
// window the area index recognizes.
func (p *Parser) scanForArea(text string) (string, bool) {
	words := strings.Fields(text)
	for i := 0; i < len(words); i++ {
		for j := i + 1; j <= len(words) && j <= i+3; j++ {
			window := strings.Join(words[i:j], " ")
			if p.index.HasArea(window) {
				return window, true
			}
		}
	}
	return "", false
}
