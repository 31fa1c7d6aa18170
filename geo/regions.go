package geo

import "strings"

// ============================================================================
// REGION REGISTRY — Static UK region → area rosters
// ============================================================================
// A fixed reference table, not user data. Held as an ordered slice so that
// overlapping names ("east midlands" vs "midlands") resolve in a documented
// precedence order instead of map-iteration luck.
// ============================================================================

// Region groups local-authority areas under one region name.
// Member names are lowercase and resolved to dataset records via
// dataset.Lookup, which tolerates aliases and partial names.
type Region struct {
	Key     string
	Members []string
}

var regions = []Region{
	{
		Key: "london",
		Members: []string{
			"barking and dagenham", "barnet", "bexley", "brent", "bromley", "camden",
			"croydon", "ealing", "enfield", "greenwich", "hackney", "hammersmith and fulham",
			"haringey", "harrow", "havering", "hillingdon", "hounslow", "islington",
			"kensington and chelsea", "kingston upon thames", "lambeth", "lewisham",
			"merton", "newham", "redbridge", "richmond upon thames", "southwark", "sutton",
			"tower hamlets", "waltham forest", "wandsworth", "westminster", "city of london",
		},
	},
	{
		Key: "north west",
		Members: []string{
			"manchester", "liverpool", "bolton", "bury", "oldham", "rochdale", "salford",
			"stockport", "tameside", "trafford", "wigan", "blackburn with darwen", "blackpool",
			"cheshire east", "cheshire west and chester", "halton", "knowsley", "lancaster",
			"preston", "sefton", "st helens", "warrington", "wirral",
		},
	},
	{
		Key: "north east",
		Members: []string{
			"newcastle upon tyne", "sunderland", "gateshead", "south tyneside", "north tyneside",
			"county durham", "darlington", "hartlepool", "middlesbrough", "redcar and cleveland",
			"stockton-on-tees", "northumberland",
		},
	},
	{
		Key: "yorkshire",
		Members: []string{
			"leeds", "sheffield", "bradford", "york", "hull", "barnsley", "calderdale",
			"doncaster", "kirklees", "rotherham", "wakefield", "east riding of yorkshire",
			"north lincolnshire", "north east lincolnshire",
		},
	},
	{
		Key: "west midlands",
		Members: []string{
			"birmingham", "coventry", "wolverhampton", "dudley", "sandwell", "solihull",
			"walsall", "herefordshire", "shropshire", "stoke-on-trent", "telford and wrekin",
			"warwickshire", "worcestershire",
		},
	},
	{
		Key: "east midlands",
		Members: []string{
			"nottingham", "derby", "leicester", "northampton", "lincoln", "chesterfield",
			"derbyshire dales", "high peak", "north east derbyshire", "south derbyshire",
			"rutland", "peterborough",
		},
	},
	{
		Key: "south west",
		Members: []string{
			"bristol", "bath", "plymouth", "exeter", "bournemouth", "swindon", "gloucester",
			"cheltenham", "torbay", "cornwall", "devon", "dorset", "somerset", "wiltshire",
		},
	},
	{
		Key: "south east",
		Members: []string{
			"reading", "oxford", "brighton and hove", "southampton", "portsmouth", "milton keynes",
			"slough", "guildford", "woking", "luton", "watford", "st albans", "crawley",
			"maidstone", "canterbury", "tunbridge wells", "hastings", "eastbourne", "worthing",
			"basingstoke", "bracknell forest", "windsor and maidenhead", "wokingham",
			"buckinghamshire", "hampshire", "kent", "surrey", "east sussex", "west sussex",
		},
	},
	{
		Key: "east of england",
		Members: []string{
			"cambridge", "norwich", "ipswich", "colchester", "chelmsford", "peterborough",
			"southend-on-sea", "luton", "bedford", "hertfordshire", "essex", "suffolk", "norfolk",
		},
	},
	{
		Key: "wales",
		Members: []string{
			"cardiff", "swansea", "newport", "wrexham", "barry", "neath", "cwmbran",
		},
	},
	{
		Key: "scotland",
		Members: []string{
			"edinburgh", "glasgow", "aberdeen", "dundee", "stirling", "perth", "inverness",
			"greater glasgow", "lothian", "aberdeen and shire", "dundee and angus",
		},
	},
}

// Members returns the area roster for the first registry entry whose key
// matches the given name by bidirectional substring containment.
// "north west england" matches "north west"; "yorks" matches nothing.
func Members(name string) ([]string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil, false
	}
	for _, r := range regions {
		if Matches(needle, r.Key) {
			return r.Members, true
		}
	}
	return nil, false
}

// Keys returns region keys in registry declaration order.
func Keys() []string {
	keys := make([]string, len(regions))
	for i, r := range regions {
		keys[i] = r.Key
	}
	return keys
}

// Matches reports bidirectional substring containment after lowercasing.
// This is the only fuzziness region resolution allows.
func Matches(input, key string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	key = strings.ToLower(key)
	if input == "" || key == "" {
		return false
	}
	return strings.Contains(input, key) || strings.Contains(key, input)
}
