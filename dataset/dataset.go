package dataset

import (
	"sort"
	"strings"

	"github.com/pocketrent-org/pocketrent/geo"
)

// ============================================================================
// DATASET — In-memory corpus of per-area rent records
// ============================================================================
// Read-only after construction, so concurrent readers need no locking.
// Keys are lowercased area names; insertion order is recorded so substring
// fallback matching has a fixed, documented precedence.
// ============================================================================

// Dataset is the loaded rent corpus plus the distinguished national-average
// record used as comparison baseline and unresolved-area fallback.
type Dataset struct {
	areas    map[string]AreaRecord
	order    []string // insertion order of keys, fixes substring-scan precedence
	National AreaRecord
	Period   string
}

// alias maps a common short name to the stored record key. Checked after the
// exact-key lookup and before the substring scan, so a curated alias can
// never be shadowed by an accidental partial match.
type alias struct {
	from, to string
}

var aliases = []alias{
	{"newcastle", "newcastle upon tyne"},
	{"hull", "kingston upon hull, city of"},
	{"stoke", "stoke-on-trent"},
	{"edinburgh", "lothian"},
	{"glasgow", "greater glasgow"},
	// Self-mapping: keeps "york" from substring-matching the Yorkshire
	// aggregate row.
	{"york", "york"},
}

// aggregateNames lists nation- and region-level rows that must never appear
// in "cheapest area" / "most expensive area" rankings.
var aggregateNames = []string{
	"united kingdom", "great britain", "england", "wales", "scotland",
	"northern ireland", "north east", "north west", "yorkshire and the humber",
	"east midlands", "west midlands", "east of england", "london",
	"south east", "south west",
}

// regionRowNames are the dataset's own aggregate rows that RegionAverage may
// answer from. Distinct from the geo registry: these are literal row names in
// the source, not rosters of areas.
var regionRowNames = []string{
	"north east", "north west", "london", "south east", "south west",
	"east midlands", "west midlands", "east of england",
	"yorkshire and the humber", "wales", "scotland",
}

// fallbackNational is substituted when the source has no "United Kingdom"
// row or fails to load entirely.
var fallbackNational = AreaRecord{
	Name:     "UK Average",
	Rent1Bed: 1109,
	Rent2Bed: 1250,
	Rent3Bed: 1396,
	Rent4Bed: 2039,
}

// New builds a Dataset from pre-built records, designating the
// "United Kingdom" row as the national average when present. Record order is
// preserved as the substring-match precedence order.
func New(records []AreaRecord, period string) *Dataset {
	d := &Dataset{
		areas:    make(map[string]AreaRecord, len(records)),
		National: fallbackNational,
		Period:   period,
	}
	for _, rec := range records {
		key := strings.ToLower(strings.TrimSpace(rec.Name))
		if key == "" {
			continue
		}
		if _, exists := d.areas[key]; !exists {
			d.order = append(d.order, key)
		}
		d.areas[key] = rec
		if rec.Name == "United Kingdom" {
			d.National = rec
		}
	}
	return d
}

// Len returns the number of distinct area records.
func (d *Dataset) Len() int { return len(d.areas) }

// ============================================================================
// LOOKUP
// ============================================================================

// Lookup resolves a user-supplied area name to a record.
// Order: exact key match, curated alias, then bidirectional substring scan
// over keys in insertion order. An exact match always wins, so a stored name
// is never hijacked by an alias or partial match.
func (d *Dataset) Lookup(name string) (AreaRecord, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return AreaRecord{}, false
	}

	if rec, ok := d.areas[key]; ok {
		return rec, true
	}

	for _, a := range aliases {
		if a.from == key {
			rec, ok := d.areas[a.to]
			return rec, ok
		}
	}

	for _, stored := range d.order {
		if strings.Contains(key, stored) || strings.Contains(stored, key) {
			return d.areas[stored], true
		}
	}

	return AreaRecord{}, false
}

// HasArea reports whether a name resolves through Lookup. Satisfies the
// parser's area index.
func (d *Dataset) HasArea(name string) bool {
	_, ok := d.Lookup(name)
	return ok
}

// ============================================================================
// REGION SCOPING
// ============================================================================

// AreasInRegion resolves a region name through the geo registry and looks up
// each member area, silently dropping members the dataset has no row for.
func (d *Dataset) AreasInRegion(region string) []AreaRecord {
	members, ok := geo.Members(region)
	if !ok {
		return nil
	}

	var records []AreaRecord
	for _, name := range members {
		if rec, found := d.Lookup(name); found {
			records = append(records, rec)
		}
	}
	return records
}

// ============================================================================
// COMPARISON
// ============================================================================

// CompareEntry is one row of a comparison result. Unresolved names keep the
// national-average rent with Found=false so the caller can render a
// placeholder instead of dropping the row.
type CompareEntry struct {
	Name  string
	Rent  int
	Found bool
}

// Compare resolves each requested name and returns entries sorted ascending
// by rent. The sort is stable, so equal rents keep the input order.
func (d *Dataset) Compare(names []string, bedrooms int) []CompareEntry {
	entries := make([]CompareEntry, 0, len(names))
	for _, name := range names {
		if rec, ok := d.Lookup(name); ok {
			entries = append(entries, CompareEntry{Name: rec.Name, Rent: rec.Rent(bedrooms), Found: true})
		} else {
			entries = append(entries, CompareEntry{Name: name, Rent: d.National.Rent(bedrooms), Found: false})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rent < entries[j].Rent
	})
	return entries
}

// ============================================================================
// RANKINGS
// ============================================================================

// CheapestInRegion returns up to limit region members sorted ascending by
// rent for the given bedroom count.
func (d *Dataset) CheapestInRegion(region string, bedrooms, limit int) []AreaRecord {
	records := d.AreasInRegion(region)
	sortByRent(records, bedrooms, false)
	return truncate(records, limit)
}

// MostExpensiveInRegion returns all region members sorted descending by rent.
// Callers truncate for display.
func (d *Dataset) MostExpensiveInRegion(region string, bedrooms int) []AreaRecord {
	records := d.AreasInRegion(region)
	sortByRent(records, bedrooms, true)
	return records
}

// CheapestOverall ranks individual areas ascending by rent, excluding
// nation- and region-level aggregate rows.
func (d *Dataset) CheapestOverall(bedrooms, limit int) []AreaRecord {
	records := d.individualAreas()
	sortByRent(records, bedrooms, false)
	return truncate(records, limit)
}

// MostExpensiveOverall ranks individual areas descending by rent, excluding
// nation- and region-level aggregate rows.
func (d *Dataset) MostExpensiveOverall(bedrooms, limit int) []AreaRecord {
	records := d.individualAreas()
	sortByRent(records, bedrooms, true)
	return truncate(records, limit)
}

// individualAreas returns all records minus the aggregate-row exclusion set,
// in insertion order.
func (d *Dataset) individualAreas() []AreaRecord {
	excluded := make(map[string]bool, len(aggregateNames))
	for _, name := range aggregateNames {
		excluded[name] = true
	}

	var records []AreaRecord
	for _, key := range d.order {
		if !excluded[key] {
			records = append(records, d.areas[key])
		}
	}
	return records
}

// ============================================================================
// BUDGET FILTER
// ============================================================================

// UnderBudget returns up to limit records whose rent for the bedroom count is
// at or under maxRent, sorted ascending. A non-empty region scopes the search
// to that region's members; otherwise the whole dataset is searched, with no
// aggregate exclusion (the UK row itself may qualify).
func (d *Dataset) UnderBudget(maxRent, bedrooms int, region string, limit int) []AreaRecord {
	var pool []AreaRecord
	if region != "" {
		pool = d.AreasInRegion(region)
	} else {
		pool = make([]AreaRecord, 0, len(d.order))
		for _, key := range d.order {
			pool = append(pool, d.areas[key])
		}
	}

	var matched []AreaRecord
	for _, rec := range pool {
		if rec.Rent(bedrooms) <= maxRent {
			matched = append(matched, rec)
		}
	}
	sortByRent(matched, bedrooms, false)
	return truncate(matched, limit)
}

// ============================================================================
// REGION AVERAGE
// ============================================================================

// RegionAverage answers a region-level query from the dataset's own
// aggregate rows. The region name is matched by bidirectional substring
// against the aggregate-row whitelist in whitelist order, so "yorkshire"
// finds "yorkshire and the humber".
func (d *Dataset) RegionAverage(region string, bedrooms int) (string, int, bool) {
	needle := strings.ToLower(strings.TrimSpace(region))
	if needle == "" {
		return "", 0, false
	}

	for _, key := range regionRowNames {
		if !strings.Contains(needle, key) && !strings.Contains(key, needle) {
			continue
		}
		if rec, ok := d.areas[key]; ok {
			return rec.Name, rec.Rent(bedrooms), true
		}
	}
	return "", 0, false
}

// ============================================================================
// SORT HELPERS
// ============================================================================

func sortByRent(records []AreaRecord, bedrooms int, descending bool) {
	sort.SliceStable(records, func(i, j int) bool {
		if descending {
			return records[i].Rent(bedrooms) > records[j].Rent(bedrooms)
		}
		return records[i].Rent(bedrooms) < records[j].Rent(bedrooms)
	})
}

func truncate(records []AreaRecord, limit int) []AreaRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
