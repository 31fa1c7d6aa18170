package dataset

import "testing"

// Sample ONS-style export: two periods, suppression markers, a missing
// obligatory field, and the United Kingdom aggregate row.
var rentCSV = []byte(`Area name,Time period,Rental price one bed,Rental price two bed,Rental price three bed,Rental price four or more bed
United Kingdom,2024-02,1100,1240,1380,2020
Manchester,2024-02,940,1090,1280,1580
United Kingdom,2024-03,1109,1250,1396,2039
Manchester,2024-03,950,1100,1300,1600
Bolton,2024-03,600,750,[x],[x]
Liverpool,2024-03,700,850,1000,
Suppressed Town,2024-03,[x],800,900,1000
`)

func TestLoadSelectsLatestPeriod(t *testing.T) {
	d, err := Load(rentCSV)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if d.Period != "March 2024" {
		t.Errorf("period = %q, want March 2024", d.Period)
	}

	rec, ok := d.Lookup("manchester")
	if !ok {
		t.Fatal("manchester missing")
	}
	if rec.Rent1Bed != 950 {
		t.Errorf("loaded the stale period: 1-bed = %d, want 950", rec.Rent1Bed)
	}
}

func TestLoadDesignatesNationalAverage(t *testing.T) {
	d, err := Load(rentCSV)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.National.Name != "United Kingdom" || d.National.Rent1Bed != 1109 {
		t.Errorf("national = %+v", d.National)
	}
}

func TestLoadTierFallbacks(t *testing.T) {
	d, err := Load(rentCSV)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Suppressed 3- and 4-bed fall back to the 2-bed figure.
	bolton, _ := d.Lookup("bolton")
	if bolton.Rent3Bed != 750 || bolton.Rent4Bed != 750 {
		t.Errorf("bolton fallbacks: %+v", bolton)
	}

	// Empty 4-bed falls back to the 3-bed figure.
	liverpool, _ := d.Lookup("liverpool")
	if liverpool.Rent4Bed != 1000 {
		t.Errorf("liverpool 4-bed = %d, want 1000", liverpool.Rent4Bed)
	}
}

func TestLoadSkipsRowsMissingObligatoryRents(t *testing.T) {
	d, err := Load(rentCSV)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := d.Lookup("suppressed town"); ok {
		t.Error("rows without a 1-bed rent must be skipped")
	}
}

func TestLoadToleratesColumnReordering(t *testing.T) {
	shuffled := []byte(`Time period,Rental price two bed,Area name,Rental price one bed,Rental price three bed,Rental price four or more bed
2024-03,1100,Manchester,950,1300,1600
`)
	d, err := Load(shuffled)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	rec, ok := d.Lookup("manchester")
	if !ok || rec.Rent2Bed != 1100 {
		t.Errorf("column mapping by header failed: %+v", rec)
	}
}

func TestLoadFailures(t *testing.T) {
	if _, err := Load([]byte("")); err == nil {
		t.Error("empty input should fail")
	}
	if _, err := Load([]byte("Area name,Time period,Rental price one bed,Rental price two bed\n")); err == nil {
		t.Error("header-only input should fail")
	}
	if _, err := Load([]byte("not,the,right,columns\na,b,c,d\n")); err == nil {
		t.Error("unrecognizable columns should fail")
	}
}

func TestLoadFileDegradesToFallback(t *testing.T) {
	d := LoadFile("/nonexistent/rent_data.csv")
	if d == nil {
		t.Fatal("LoadFile must never return nil")
	}
	if d.Len() != 0 {
		t.Error("fallback dataset should have no areas")
	}
	if d.National.Rent1Bed != 1109 {
		t.Error("fallback national record missing")
	}
	// Still queryable: everything answers not-found.
	if _, ok := d.Lookup("manchester"); ok {
		t.Error("fallback dataset should resolve nothing")
	}
}
