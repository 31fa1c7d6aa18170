package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// LOADER — CSV → Dataset
// ============================================================================
// The collaborator exports the ONS spreadsheet as CSV with per-area,
// per-period rows. Columns are matched by normalized header name, not
// position, so column reordering in a new release doesn't break ingestion.
// Only the single most recent period is loaded.
// ============================================================================

type columnIndexes struct {
	area, period, bed1, bed2, bed3, bed4 int
}

// Load parses CSV bytes into a Dataset, keeping only rows from the most
// recent time period. Rows missing the obligatory 1-bed or 2-bed rent are
// skipped; missing 3- and 4-bed figures fall back to the nearest smaller
// tier so every record answers all four bedroom tiers.
func Load(data []byte) (*Dataset, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	cols, err := mapColumns(headers)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data rows in CSV")
	}

	latest := latestPeriod(rows, cols.period)
	if latest == "" {
		return nil, fmt.Errorf("no parseable time period values")
	}

	var records []AreaRecord
	for _, row := range rows {
		if field(row, cols.period) != latest {
			continue
		}
		name := field(row, cols.area)
		if name == "" {
			continue
		}

		r1, ok1 := parseRent(field(row, cols.bed1))
		r2, ok2 := parseRent(field(row, cols.bed2))
		if !ok1 || !ok2 {
			continue
		}
		r3, ok3 := parseRent(field(row, cols.bed3))
		if !ok3 {
			r3 = r2
		}
		r4, ok4 := parseRent(field(row, cols.bed4))
		if !ok4 {
			r4 = r3
		}

		records = append(records, AreaRecord{
			Name:     name,
			Rent1Bed: r1,
			Rent2Bed: r2,
			Rent3Bed: r3,
			Rent4Bed: r4,
		})
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no usable records for period %q", latest)
	}

	return New(records, periodLabel(latest)), nil
}

// LoadFile loads a Dataset from a CSV file, degrading gracefully: any
// failure logs a warning and returns the hardcoded fallback so the process
// still serves (area queries answer "not found").
func LoadFile(path string) *Dataset {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ PocketRent: could not read rent data %s: %v (using fallback)", path, err)
		return Fallback()
	}
	d, err := Load(data)
	if err != nil {
		log.Printf("⚠️ PocketRent: could not load rent data: %v (using fallback)", err)
		return Fallback()
	}
	log.Printf("📊 PocketRent: loaded %d areas for %s", d.Len(), d.Period)
	return d
}

// Fallback returns an empty dataset with the hardcoded national-average
// record, keeping the system queryable after a load failure.
func Fallback() *Dataset {
	return New(nil, "Unknown")
}

// ============================================================================
// COLUMN MAPPING
// ============================================================================

func mapColumns(headers []string) (columnIndexes, error) {
	cols := columnIndexes{area: -1, period: -1, bed1: -1, bed2: -1, bed3: -1, bed4: -1}
	for i, h := range headers {
		switch key := normalizeHeader(h); {
		case strings.Contains(key, "area"):
			cols.area = i
		case strings.Contains(key, "period"):
			cols.period = i
		case strings.Contains(key, "one_bed") || strings.Contains(key, "1_bed"):
			cols.bed1 = i
		case strings.Contains(key, "two_bed") || strings.Contains(key, "2_bed"):
			cols.bed2 = i
		case strings.Contains(key, "three_bed") || strings.Contains(key, "3_bed"):
			cols.bed3 = i
		case strings.Contains(key, "four") || strings.Contains(key, "4_bed"):
			cols.bed4 = i
		}
	}
	if cols.area < 0 || cols.period < 0 || cols.bed1 < 0 || cols.bed2 < 0 {
		return cols, fmt.Errorf("CSV missing required columns (area, period, one bed, two bed)")
	}
	return cols, nil
}

// normalizeHeader converts "Rental price one bed" → "rental_price_one_bed".
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ============================================================================
// PERIOD SELECTION
// ============================================================================

var periodLayouts = []string{"2006-01-02", "2006-01", "January 2006", "Jan-06", "Jan 2006"}

func parsePeriod(value string) (time.Time, bool) {
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// latestPeriod returns the raw value of the most recent period column.
// Values that parse as dates compare chronologically; if none parse, the
// lexicographic maximum is used so ISO-style strings still order correctly.
func latestPeriod(rows [][]string, periodCol int) string {
	var bestRaw string
	var bestTime time.Time
	parsedAny := false

	for _, row := range rows {
		raw := field(row, periodCol)
		if raw == "" {
			continue
		}
		if t, ok := parsePeriod(raw); ok {
			if !parsedAny || t.After(bestTime) {
				bestTime = t
				bestRaw = raw
			}
			parsedAny = true
			continue
		}
		if !parsedAny && raw > bestRaw {
			bestRaw = raw
		}
	}
	return bestRaw
}

// periodLabel renders the period as "March 2024" when it parses as a date.
func periodLabel(raw string) string {
	if t, ok := parsePeriod(raw); ok {
		return t.Format("January 2006")
	}
	return raw
}

// ============================================================================
// VALUE PARSING
// ============================================================================

// parseRent converts a source cell to a rent integer. Empty cells and the
// ONS suppression marker "[x]" count as missing.
func parseRent(value string) (int, bool) {
	if value == "" || value == "[x]" {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return int(f), true
}
