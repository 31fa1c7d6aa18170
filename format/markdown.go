// Package format renders resolved answers as markdown chat replies.
package format

import (
	"fmt"
	"strings"

	"github.com/pocketrent-org/pocketrent/resolver"
)

// ============================================================================
// MARKDOWN RENDERER — Answer → chat text
// ============================================================================
// Ranked tables use medal markers for the top three, plain numbers after.
// Amounts are whole GBP with thousands separators and a "/month" suffix.
// ============================================================================

const noDataMessage = "❌ No data found."

const studioNote = "*Note: Studio data not available, showing 1-bed prices*\n"

// Render produces the final reply text for any answer.
func Render(a resolver.Answer) string {
	switch ans := a.(type) {
	case resolver.Comparison:
		return renderComparison(ans)
	case resolver.Ranking:
		return renderRanking(ans)
	case resolver.BudgetMatches:
		return renderBudget(ans)
	case resolver.AreaDetail:
		return renderAreaDetail(ans)
	case resolver.RegionSummary:
		return renderRegionSummary(ans)
	case resolver.HelpText:
		return helpMessage
	case resolver.Unrecognized:
		return renderUnknown(ans.Original)
	case resolver.Failure:
		return "❌ " + ans.Message
	default:
		return noDataMessage
	}
}

func renderComparison(c resolver.Comparison) string {
	if len(c.Entries) == 0 {
		return noDataMessage
	}

	lines := []string{fmt.Sprintf("## 🏠 %s Rent Comparison\n", bedTitle(c.Bedrooms))}
	if c.Studio {
		lines = append(lines, studioNote)
	}
	lines = append(lines, "| Rank | Area | Monthly Rent |", "|------|------|-------------|")

	for i, e := range c.Entries {
		note := ""
		if !e.Found {
			note = " *(UK avg)*"
		}
		lines = append(lines, fmt.Sprintf("| %s | %s | %s/month%s |", rankMarker(i+1), e.Name, gbp(e.Rent), note))
	}

	cheapest := c.Entries[0]
	priciest := c.Entries[len(c.Entries)-1]
	lines = append(lines, fmt.Sprintf("\n**💡 Insight:** %s is cheapest at %s/month.", cheapest.Name, gbp(cheapest.Rent)))
	if len(c.Entries) > 1 {
		lines = append(lines, fmt.Sprintf("You'd save %s/month compared to %s.", gbp(priciest.Rent-cheapest.Rent), priciest.Name))
	}

	return strings.Join(lines, "\n")
}

func renderRanking(r resolver.Ranking) string {
	if len(r.Rows) == 0 {
		return noDataMessage
	}

	scope := "UK"
	if r.Region != "" {
		scope = titleCase(r.Region)
	}

	var lines []string
	if r.Cheapest {
		lines = append(lines, fmt.Sprintf("## 🏆 Cheapest %s Rent in %s\n", bedTitle(r.Bedrooms), scope))
	} else {
		lines = append(lines, fmt.Sprintf("## 💰 Most Expensive %s Rent in %s\n", bedTitle(r.Bedrooms), scope))
	}
	if r.Studio {
		lines = append(lines, studioNote)
	}
	lines = append(lines, "| Rank | Area | Monthly Rent |", "|------|------|-------------|")

	for i, row := range r.Rows {
		marker := fmt.Sprintf("%d.", i+1)
		if r.Cheapest {
			marker = rankMarker(i + 1)
		}
		lines = append(lines, fmt.Sprintf("| %s | %s | %s/month |", marker, row.Name, gbp(row.Rent)))
	}

	return strings.Join(lines, "\n")
}

func renderBudget(b resolver.BudgetMatches) string {
	regionSuffix := ""
	if b.Region != "" {
		regionSuffix = " in " + titleCase(b.Region)
	}

	if len(b.Rows) == 0 {
		return fmt.Sprintf("❌ No %s properties found under %s/month%s.", bedLabel(b.Bedrooms), gbp(b.Budget), regionSuffix)
	}

	lines := []string{
		fmt.Sprintf("## 🏠 %s Rent Under %s/month%s\n", bedTitle(b.Bedrooms), gbp(b.Budget), regionSuffix),
		"| Area | Monthly Rent | Under Budget By |",
		"|------|-------------|-----------------|",
	}
	for _, row := range b.Rows {
		lines = append(lines, fmt.Sprintf("| %s | %s/month | %s |", row.Name, gbp(row.Rent), gbp(b.Budget-row.Rent)))
	}
	lines = append(lines, fmt.Sprintf("\n*Found %d areas*", len(b.Rows)))

	return strings.Join(lines, "\n")
}

func renderAreaDetail(d resolver.AreaDetail) string {
	a := d.Area
	lines := []string{
		fmt.Sprintf("## 📍 Rent in %s\n", a.Name),
		"| Bedrooms | Monthly Rent |",
		"|----------|-------------|",
		fmt.Sprintf("| 1 Bed | %s/month |", gbp(a.Rent1Bed)),
		fmt.Sprintf("| 2 Bed | %s/month |", gbp(a.Rent2Bed)),
		fmt.Sprintf("| 3 Bed | %s/month |", gbp(a.Rent3Bed)),
		fmt.Sprintf("| 4+ Bed | %s/month |", gbp(a.Rent4Bed)),
	}

	diff := a.Rent1Bed - d.National.Rent1Bed
	pct := float64(diff) / float64(d.National.Rent1Bed) * 100
	if diff > 0 {
		lines = append(lines, fmt.Sprintf("\n**📊 vs UK Average:** %s/month more (%+.0f%%)", gbp(diff), pct))
	} else {
		lines = append(lines, fmt.Sprintf("\n**📊 vs UK Average:** %s/month less (%.0f%%)", gbp(-diff), pct))
	}

	return strings.Join(lines, "\n")
}

func renderRegionSummary(s resolver.RegionSummary) string {
	lines := []string{
		fmt.Sprintf("## 📍 Average Rent in %s\n", s.Name),
		fmt.Sprintf("**%s average:** %s/month\n", bedLabel(s.Bedrooms), gbp(s.Average)),
	}
	if len(s.Cheapest) > 0 {
		lines = append(lines, "**Cheapest areas:**")
		for _, row := range s.Cheapest {
			lines = append(lines, fmt.Sprintf("- %s: %s/month", row.Name, gbp(row.Rent)))
		}
	}
	return strings.Join(lines, "\n")
}

func renderUnknown(original string) string {
	return fmt.Sprintf(`❓ I'm not sure what you're asking about "%s".

Try questions like:
- "Compare Manchester vs Liverpool"
- "Cheapest 2-bed in North West"
- "Areas under £800/month"
- "Rent in Birmingham"

Type **help** for more examples.
`, original)
}

const helpMessage = `## 🏠 PocketRent - Help

I can help you explore UK rent prices! Try asking:

### Compare Areas
- "Compare Manchester vs Liverpool vs Leeds"
- "Manchester vs Oxford on 2-bed rent"

### Find Cheapest
- "Cheapest 1-bed rent in North West"
- "Where is rent lowest in UK?"
- "Most affordable 2-bed in Yorkshire"

### Budget Search
- "Areas under £700/month rent"
- "2-bed under £1000 in South East"

### Area Info
- "How much is rent in Manchester?"
- "Rent prices in Bristol"

### Regions Available
London, North West, North East, Yorkshire, West Midlands, East Midlands, South West, South East, East of England, Wales, Scotland

---
*Data: ONS Private Rental Market Statistics*
`

// ============================================================================
// FORMATTING HELPERS
// ============================================================================

// rankMarker returns medals for the podium, "N." after.
func rankMarker(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", position)
	}
}

// gbp formats whole pounds with thousands separators: 1234 → "£1,234".
func gbp(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return "£" + sign + b.String()
}

// bedTitle renders the tier for headings: 2 → "2-Bed".
func bedTitle(bedrooms int) string {
	return fmt.Sprintf("%d-Bed", bedrooms)
}

// bedLabel renders the tier for prose: 2 → "2-bed".
func bedLabel(bedrooms int) string {
	return fmt.Sprintf("%d-bed", bedrooms)
}

// titleCase capitalizes each word: "north west" → "North West".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
