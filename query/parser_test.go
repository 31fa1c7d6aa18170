package query

import (
	"testing"

	"github.com/pocketrent-org/pocketrent/dataset"
)

func testParser() *Parser {
	db := dataset.New([]dataset.AreaRecord{
		{Name: "United Kingdom", Rent1Bed: 1109, Rent2Bed: 1250, Rent3Bed: 1396, Rent4Bed: 2039},
		{Name: "Manchester", Rent1Bed: 950, Rent2Bed: 1100, Rent3Bed: 1300, Rent4Bed: 1600},
		{Name: "Liverpool", Rent1Bed: 700, Rent2Bed: 850, Rent3Bed: 1000, Rent4Bed: 1200},
		{Name: "Leeds", Rent1Bed: 800, Rent2Bed: 900, Rent3Bed: 1050, Rent4Bed: 1250},
		{Name: "Birmingham", Rent1Bed: 850, Rent2Bed: 950, Rent3Bed: 1100, Rent4Bed: 1300},
		{Name: "Oxford", Rent1Bed: 1200, Rent2Bed: 1450, Rent3Bed: 1700, Rent4Bed: 2100},
	}, "test")
	return New(db)
}

func TestParseCompareExplicit(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("Compare Manchester vs Liverpool vs Leeds").(Compare)
	if !ok {
		t.Fatalf("expected Compare, got %T", p.Parse("Compare Manchester vs Liverpool vs Leeds"))
	}
	if len(intent.Areas) != 3 {
		t.Fatalf("areas = %v", intent.Areas)
	}
	if intent.Areas[0] != "manchester" || intent.Areas[2] != "leeds" {
		t.Errorf("areas out of order: %v", intent.Areas)
	}
	if intent.Bedrooms != 1 {
		t.Errorf("default bedrooms = %d, want 1", intent.Bedrooms)
	}
}

func TestParseCompareBareVs(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("Manchester vs Oxford on 2-bed rent").(Compare)
	if !ok {
		t.Fatal("expected Compare")
	}
	if intent.Bedrooms != 2 {
		t.Errorf("bedrooms = %d, want 2", intent.Bedrooms)
	}
	if len(intent.Areas) != 2 || intent.Areas[1] != "oxford" {
		t.Errorf("areas = %v", intent.Areas)
	}
}

func TestParseCompareAndList(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("manchester and liverpool and leeds").(Compare)
	if !ok {
		t.Fatal("expected Compare from and-list")
	}
	if len(intent.Areas) != 3 {
		t.Errorf("areas = %v", intent.Areas)
	}
}

func TestParseCheapestInRegion(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("Cheapest 2-bed in North West").(CheapestInRegion)
	if !ok {
		t.Fatal("expected CheapestInRegion")
	}
	if intent.Region != "north west" {
		t.Errorf("region = %q", intent.Region)
	}
	if intent.Bedrooms != 2 {
		t.Errorf("bedrooms = %d", intent.Bedrooms)
	}
}

func TestParseCheapestUmbrellaIsOverall(t *testing.T) {
	p := testParser()
	if _, ok := p.Parse("Cheapest 1-bed rent in UK").(CheapestOverall); !ok {
		t.Error("uk-scoped cheapest should classify as overall")
	}
	if _, ok := p.Parse("Most expensive areas in UK").(MostExpensiveOverall); !ok {
		t.Error("uk-scoped expensive should classify as overall")
	}
}

func TestParseMostExpensiveInRegion(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("priciest 3-bed in yorkshire").(MostExpensiveInRegion)
	if !ok {
		t.Fatal("expected MostExpensiveInRegion")
	}
	if intent.Region != "yorkshire" || intent.Bedrooms != 3 {
		t.Errorf("got %+v", intent)
	}
}

func TestParseUnderBudget(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("Areas under £700 rent").(UnderBudget)
	if !ok {
		t.Fatal("expected UnderBudget")
	}
	if intent.Budget != 700 {
		t.Errorf("budget = %d", intent.Budget)
	}
	if intent.Bedrooms != 1 || intent.Region != "" {
		t.Errorf("got %+v", intent)
	}
}

func TestParseUnderBudgetWithRegionAndBedrooms(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("2-bed under £1000 in South East").(UnderBudget)
	if !ok {
		t.Fatal("expected UnderBudget")
	}
	if intent.Budget != 1000 || intent.Bedrooms != 2 || intent.Region != "south east" {
		t.Errorf("got %+v", intent)
	}
}

func TestParseBudgetWithoutCurrencySymbol(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("anywhere under 850 per month").(UnderBudget)
	if !ok {
		t.Fatal("the under-form should not require a currency symbol")
	}
	if intent.Budget != 850 {
		t.Errorf("budget = %d", intent.Budget)
	}
}

func TestParseBudgetPrefersUnderForm(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("under £700, my max is £900 pcm").(UnderBudget)
	if !ok {
		t.Fatal("expected UnderBudget")
	}
	if intent.Budget != 700 {
		t.Errorf("the under-qualified amount must win, got %d", intent.Budget)
	}
}

func TestParseRegionInfo(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("average rent in yorkshire").(RegionInfo)
	if !ok {
		t.Fatal("expected RegionInfo")
	}
	if intent.Region != "yorkshire" {
		t.Errorf("region = %q", intent.Region)
	}
}

func TestParseAreaInfoByPricePhrase(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("Rent in Birmingham?").(AreaInfo)
	if !ok {
		t.Fatal("expected AreaInfo")
	}
	if intent.Area != "birmingham" {
		t.Errorf("area = %q", intent.Area)
	}
}

func TestParseSpecificAreaWithDirectionWord(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("cheapest flats in manchester").(AreaInfo)
	if !ok {
		t.Fatal("a direction word with a known area should give AreaInfo, not a ranking")
	}
	if intent.Area != "manchester" {
		t.Errorf("area = %q", intent.Area)
	}
}

func TestParseBareAreaMention(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("tell me about manchester").(AreaInfo)
	if !ok {
		t.Fatal("expected AreaInfo from the sliding-window scan")
	}
	if intent.Area != "manchester" {
		t.Errorf("area = %q", intent.Area)
	}
}

func TestParseStudio(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("compare manchester vs liverpool for a studio").(Compare)
	if !ok {
		t.Fatal("expected Compare")
	}
	if !intent.Studio || intent.Bedrooms != 1 {
		t.Errorf("studio should map to the 1-bed tier with the flag set: %+v", intent)
	}
}

func TestParseBedroomsClamped(t *testing.T) {
	p := testParser()
	intent := p.Parse("cheapest 7-bed rent").(CheapestOverall)
	if intent.Bedrooms != 4 {
		t.Errorf("bedrooms = %d, want clamp to 4", intent.Bedrooms)
	}
}

func TestParseHelp(t *testing.T) {
	p := testParser()
	if _, ok := p.Parse("how do I use this?").(Help); !ok {
		t.Error("expected Help")
	}
	if _, ok := p.Parse("help").(Help); !ok {
		t.Error("expected Help")
	}
}

func TestParseUnknownEchoesOriginal(t *testing.T) {
	p := testParser()
	intent, ok := p.Parse("asdkjaslkdj").(Unknown)
	if !ok {
		t.Fatal("expected Unknown")
	}
	if intent.Original != "asdkjaslkdj" {
		t.Errorf("original = %q", intent.Original)
	}
}

func TestRuleOrderCompareBeatsCheapest(t *testing.T) {
	p := testParser()
	// Both "compare" areas and a cheapest word present: compare must win.
	if _, ok := p.Parse("compare manchester vs liverpool, which is cheapest?").(Compare); !ok {
		t.Error("compare rule must precede the cheapest rules")
	}
}
