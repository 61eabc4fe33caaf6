package basketball_nba

// NBA team abbreviation mappings
var nbaTeamAbbreviations = map[string]string{
	"Atlanta Hawks":          "ATL",
	"Boston Celtics":         "BOS",
	"Brooklyn Nets":          "BKN",
	"Charlotte Hornets":      "CHA",
	"Chicago Bulls":          "CHI",
	"Cleveland Cavaliers":    "CLE",
	"Dallas Mavericks":       "DAL",
	"Denver Nuggets":         "DEN",
	"Detroit Pistons":        "DET",
	"Golden State Warriors":  "GSW",
	"Houston Rockets":        "HOU",
	"Indiana Pacers":         "IND",
	"Los Angeles Clippers":   "LAC",
	"Los Angeles Lakers":     "LAL",
	"Memphis Grizzlies":      "MEM",
	"Miami Heat":             "MIA",
	"Milwaukee Bucks":        "MIL",
	"Minnesota Timberwolves": "MIN",
	"New Orleans Pelicans":   "NOP",
	"New York Knicks":        "NYK",
	"Oklahoma City Thunder":  "OKC",
	"Orlando Magic":          "ORL",
	"Philadelphia 76ers":     "PHI",
	"Phoenix Suns":           "PHX",
	"Portland Trail Blazers": "POR",
	"Sacramento Kings":       "SAC",
	"San Antonio Spurs":      "SAS",
	"Toronto Raptors":        "TOR",
	"Utah Jazz":              "UTA",
	"Washington Wizards":     "WAS",
}

// nbaTeamIndex maps canonical team names to row positions in the season
// stats table. The stats feed returns teams in alphabetical order; these
// positions must match or features get assembled from the wrong rows
var nbaTeamIndex = map[string]int{
	"Atlanta Hawks":          0,
	"Boston Celtics":         1,
	"Brooklyn Nets":          2,
	"Charlotte Hornets":      3,
	"Chicago Bulls":          4,
	"Cleveland Cavaliers":    5,
	"Dallas Mavericks":       6,
	"Denver Nuggets":         7,
	"Detroit Pistons":        8,
	"Golden State Warriors":  9,
	"Houston Rockets":        10,
	"Indiana Pacers":         11,
	"Los Angeles Clippers":   12,
	"Los Angeles Lakers":     13,
	"Memphis Grizzlies":      14,
	"Miami Heat":             15,
	"Milwaukee Bucks":        16,
	"Minnesota Timberwolves": 17,
	"New Orleans Pelicans":   18,
	"New York Knicks":        19,
	"Oklahoma City Thunder":  20,
	"Orlando Magic":          21,
	"Philadelphia 76ers":     22,
	"Phoenix Suns":           23,
	"Portland Trail Blazers": 24,
	"Sacramento Kings":       25,
	"San Antonio Spurs":      26,
	"Toronto Raptors":        27,
	"Utah Jazz":              28,
	"Washington Wizards":     29,
}

// Reverse mapping for lookups
var nbaAbbreviationToName = map[string]string{}

func init() {
	// Build reverse mapping
	for name, abbr := range nbaTeamAbbreviations {
		nbaAbbreviationToName[abbr] = name
	}
}

// TeamIndex returns the canonical-name → stats-row mapping. The returned
// map is a copy; callers may not mutate the shared table
func TeamIndex() map[string]int {
	index := make(map[string]int, len(nbaTeamIndex))
	for name, row := range nbaTeamIndex {
		index[name] = row
	}
	return index
}

// GetTeamAbbreviation returns the abbreviation for a full team name
func GetTeamAbbreviation(fullName string) string {
	if abbr, ok := nbaTeamAbbreviations[fullName]; ok {
		return abbr
	}
	return fullName // Return original if not found
}

// GetTeamName returns the full name for an abbreviation
func GetTeamName(abbr string) string {
	if name, ok := nbaAbbreviationToName[abbr]; ok {
		return name
	}
	return abbr // Return original if not found
}
