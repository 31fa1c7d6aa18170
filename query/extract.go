package query

import (
	"regexp"
	"strings"
)

// ============================================================================
// EXTRACTION STAGES — Raw text → query features
// ============================================================================
// Fixed stage order: bedrooms, budget, area list, region, in-place area.
// Each stage reads the lowercased text and fills one feature; none touches
// dataset state except the in-place probe, which asks the area index.
// ============================================================================

// features holds everything the extraction stages pull out of one query
// before classification.
type features struct {
	original string
	text     string // lowercased, trimmed

	bedrooms     int
	studio       bool
	budget       int
	areas        []string
	region       string
	specificArea string // "in X" phrase that resolved to a known area
}

var (
	bedroomsRe = regexp.MustCompile(`(\d)[- ]?bed`)

	// Budget contract: a 3–4 digit number preceded by "under" with an
	// optional currency symbol, or a currency-marked number with an optional
	// per-month qualifier. The "under" form wins when both appear.
	budgetUnderRe  = regexp.MustCompile(`under\s*£?\s*(\d{3,4})\b`)
	budgetAmountRe = regexp.MustCompile(`£\s*(\d{3,4})(?:\s*(?:per month|/month|pm|pcm))?`)

	// Trailing noise a user appends after area names.
	bedSuffixRe      = regexp.MustCompile(`\s+for\s+a?\s*\d*\s*-?\s*bed.*$`)
	onBedSuffixRe    = regexp.MustCompile(`\s+on\s+\d+\s*-?\s*bed.*$`)
	propertySuffixRe = regexp.MustCompile(`\s+(flat|apartment|house|rent|rental|property).*$`)

	compareRe   = regexp.MustCompile(`compare\s+(.+)$`)
	areaSplitRe = regexp.MustCompile(`\s+vs\s+|\s+and\s+|\s*,\s*`)

	inPlaceRe = regexp.MustCompile(`(?:in|for)\s+([a-z][a-z\s]+?)(?:\?|$|\s+for\s|\s+on\s)`)
	priceInRe = regexp.MustCompile(`(?:rent|price|cost)\s+(?:in|for)\s+(\w[\w\s]+?)(?:\?|$)`)
)

// regionLiterals is the fixed scan order for region extraction. Longer names
// come before names they contain ("east of england" before "england") so
// the first substring hit is the most specific one.
var regionLiterals = []string{
	"north west", "north east", "yorkshire", "west midlands", "east midlands",
	"south west", "south east", "east of england", "east england", "london",
	"wales", "scotland", "uk", "england",
}

// umbrellaRegions name the whole country rather than a rostered region.
var umbrellaRegions = map[string]bool{"uk": true, "england": true}

func newFeatures(input string) *features {
	return &features{
		original: input,
		text:     strings.ToLower(strings.TrimSpace(input)),
		bedrooms: 1,
	}
}

// scopedRegion returns the extracted region unless it is a country-wide
// umbrella, which scopes nothing.
func (f *features) scopedRegion() string {
	if umbrellaRegions[f.region] {
		return ""
	}
	return f.region
}

// extractBedrooms sets the bedroom tier. "studio" maps to the 1-bed tier
// with the studio flag set; a digit followed by "bed" is clamped to [1,4].
func (f *features) extractBedrooms() {
	if strings.Contains(f.text, "studio") {
		f.bedrooms = 1
		f.studio = true
		return
	}
	if m := bedroomsRe.FindStringSubmatch(f.text); m != nil {
		n := int(m[1][0] - '0')
		if n > 4 {
			n = 4
		}
		if n < 1 {
			n = 1
		}
		f.bedrooms = n
	}
}

// extractBudget pulls a monthly budget figure, preferring the
// "under"-qualified form over a bare currency-marked amount.
func (f *features) extractBudget() {
	if m := budgetUnderRe.FindStringSubmatch(f.text); m != nil {
		f.budget = atoi(m[1])
		return
	}
	if m := budgetAmountRe.FindStringSubmatch(f.text); m != nil {
		f.budget = atoi(m[1])
	}
}

// extractAreas pulls a comparison list of area names. Stages, first hit
// wins: "compare X" remainder, any " vs " expression, then an " and " split
// accepted only when it yields 2–5 parts (guards against prose "and"s).
func (f *features) extractAreas() {
	areaText := f.text
	areaText = bedSuffixRe.ReplaceAllString(areaText, "")
	areaText = onBedSuffixRe.ReplaceAllString(areaText, "")
	areaText = propertySuffixRe.ReplaceAllString(areaText, "")

	if m := compareRe.FindStringSubmatch(areaText); m != nil {
		f.areas = splitAreaList(m[1])
		if len(f.areas) > 0 {
			return
		}
	}

	if strings.Contains(areaText, " vs ") {
		f.areas = splitAreaList(areaText)
		if len(f.areas) > 0 {
			return
		}
	}

	if strings.Contains(areaText, " and ") {
		parts := splitAreaList(areaText)
		if len(parts) >= 2 && len(parts) <= 5 {
			f.areas = parts
		}
	}
}

// extractRegion scans the fixed region literal list; the first literal found
// as a substring of the text wins. The shorthand "east england" normalizes
// to the registry's "east of england".
func (f *features) extractRegion() {
	for _, r := range regionLiterals {
		if strings.Contains(f.text, r) {
			if r == "east england" {
				r = "east of england"
			}
			f.region = r
			return
		}
	}
}

// probeSpecificArea tests an "in X" / "for X" phrase against the area index.
// Only runs when no region matched: "in manchester" names an area, "in the
// north west" already resolved as a region.
func (f *features) probeSpecificArea(index AreaIndex) {
	if f.region != "" {
		return
	}
	// Trailing space lets the $ alternative terminate a phrase at end of input.
	if m := inPlaceRe.FindStringSubmatch(f.text + " "); m != nil {
		place := strings.TrimSpace(m[1])
		if place != "" && index.HasArea(place) {
			f.specificArea = place
		}
	}
}

func splitAreaList(s string) []string {
	parts := areaSplitRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
