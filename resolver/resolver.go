// Package resolver executes structured intents against the rent dataset.
package resolver

import (
	"fmt"

	"github.com/pocketrent-org/pocketrent/dataset"
	"github.com/pocketrent-org/pocketrent/query"
)

// Display caps per response shape.
const (
	cheapestRegionLimit = 5
	overallLimit        = 10
	expensiveRegionCap  = 10
	budgetLimit         = 10
	summaryCheapestN    = 3
)

// Resolver dispatches intents to the matching dataset operation. It holds
// only the read-only dataset, so one Resolver serves concurrent queries.
type Resolver struct {
	db *dataset.Dataset
}

// New returns a Resolver over the given dataset.
func New(db *dataset.Dataset) *Resolver {
	return &Resolver{db: db}
}

// Resolve executes one intent read-only and returns a render-ready Answer.
// All failure modes come back as Failure answers; Resolve never errors.
func (r *Resolver) Resolve(in query.Intent) Answer {
	switch it := in.(type) {
	case query.Compare:
		return r.compare(it)
	case query.CheapestInRegion:
		return r.cheapestInRegion(it)
	case query.CheapestOverall:
		rows := toRows(r.db.CheapestOverall(it.Bedrooms, overallLimit), it.Bedrooms)
		return Ranking{Cheapest: true, Bedrooms: it.Bedrooms, Studio: it.Studio, Rows: rows}
	case query.MostExpensiveInRegion:
		return r.mostExpensiveInRegion(it)
	case query.MostExpensiveOverall:
		rows := toRows(r.db.MostExpensiveOverall(it.Bedrooms, overallLimit), it.Bedrooms)
		return Ranking{Bedrooms: it.Bedrooms, Studio: it.Studio, Rows: rows}
	case query.UnderBudget:
		rows := toRows(r.db.UnderBudget(it.Budget, it.Bedrooms, it.Region, budgetLimit), it.Bedrooms)
		return BudgetMatches{Budget: it.Budget, Bedrooms: it.Bedrooms, Region: it.Region, Rows: rows}
	case query.AreaInfo:
		return r.areaInfo(it)
	case query.RegionInfo:
		return r.regionInfo(it)
	case query.Help:
		return HelpText{}
	case query.Unknown:
		return Unrecognized{Original: it.Original}
	default:
		return Unrecognized{}
	}
}

func (r *Resolver) compare(it query.Compare) Answer {
	entries := r.db.Compare(it.Areas, it.Bedrooms)
	if len(entries) == 0 {
		return Failure{Message: "Sorry, I couldn't find data for those areas."}
	}
	return Comparison{Bedrooms: it.Bedrooms, Studio: it.Studio, Entries: entries}
}

func (r *Resolver) cheapestInRegion(it query.CheapestInRegion) Answer {
	records := r.db.CheapestInRegion(it.Region, it.Bedrooms, cheapestRegionLimit)
	if len(records) == 0 {
		return Failure{Message: fmt.Sprintf("Sorry, I couldn't find rent data for %s.", it.Region)}
	}
	return Ranking{
		Cheapest: true,
		Region:   it.Region,
		Bedrooms: it.Bedrooms,
		Studio:   it.Studio,
		Rows:     toRows(records, it.Bedrooms),
	}
}

func (r *Resolver) mostExpensiveInRegion(it query.MostExpensiveInRegion) Answer {
	records := r.db.MostExpensiveInRegion(it.Region, it.Bedrooms)
	if len(records) == 0 {
		return Failure{Message: fmt.Sprintf("Sorry, I couldn't find rent data for %s.", it.Region)}
	}
	if len(records) > expensiveRegionCap {
		records = records[:expensiveRegionCap]
	}
	return Ranking{
		Region:   it.Region,
		Bedrooms: it.Bedrooms,
		Studio:   it.Studio,
		Rows:     toRows(records, it.Bedrooms),
	}
}

func (r *Resolver) areaInfo(it query.AreaInfo) Answer {
	if it.Area == "" {
		return Failure{Message: "Please specify an area name."}
	}
	rec, ok := r.db.Lookup(it.Area)
	if !ok {
		return Failure{Message: fmt.Sprintf("Sorry, I couldn't find rent data for '%s'.", it.Area)}
	}
	return AreaDetail{Area: rec, National: r.db.National}
}

func (r *Resolver) regionInfo(it query.RegionInfo) Answer {
	if it.Region == "" {
		return Failure{Message: "Please specify a region."}
	}
	name, avg, ok := r.db.RegionAverage(it.Region, it.Bedrooms)
	if !ok {
		return Failure{Message: fmt.Sprintf("Sorry, I couldn't find data for %s.", it.Region)}
	}
	return RegionSummary{
		Name:     name,
		Bedrooms: it.Bedrooms,
		Average:  avg,
		Cheapest: toRows(r.db.CheapestInRegion(it.Region, it.Bedrooms, summaryCheapestN), it.Bedrooms),
	}
}

func toRows(records []dataset.AreaRecord, bedrooms int) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		rows[i] = Row{Name: rec.Name, Rent: rec.Rent(bedrooms)}
	}
	return rows
}
