package dataset

// ============================================================================
// AREA RECORD — One geography's rent figures
// ============================================================================

// AreaRecord holds the monthly rent for one area across the four bedroom
// tiers. Records are built once at load and never mutated; the loader
// guarantees every tier is populated (3- and 4-bed fall back to the nearest
// smaller tier when the source omits them).
type AreaRecord struct {
	Name     string
	Rent1Bed int
	Rent2Bed int
	Rent3Bed int
	Rent4Bed int
}

// Rent returns the monthly rent for the given bedroom count.
// Counts outside [1,4] fall back to the 1-bed figure.
func (r AreaRecord) Rent(bedrooms int) int {
	switch bedrooms {
	case 2:
		return r.Rent2Bed
	case 3:
		return r.Rent3Bed
	case 4:
		return r.Rent4Bed
	default:
		return r.Rent1Bed
	}
}
