package thesportsdb

import (
	"regexp"
	"strings"
)

// Upstream ids for the women's soccer competitions the service tracks.
const (
	LeagueNWSL            = 4521
	LeagueUSLSuper        = 5498
	LeagueLigaMXFemenil   = 5206
	LeagueNSL             = 5602
	LeagueWSL             = 4849
	LeagueFrauenBundes    = 5204
	LeagueD1Feminine      = 5010
	LeagueSerieAWomen     = 5205
	LeagueLigaF           = 5013
	LeagueEredivisieWomen = 5207
	LeagueDamallsvenskan  = 5014
	LeagueToppserien      = 5015
	LeagueWELeague        = 5016
	LeagueALeagueWomen    = 4805
	LeagueBrasileiraoFem  = 5201
	LeagueUWCL            = 5208
	LeagueLibertadoresFem = 5213
	LeagueCAFChampions    = 5210
)

// womensLeagueIDs is the fixed membership table; matches carrying one
// of these league ids pass the filter regardless of name.
var womensLeagueIDs = map[int]string{
	LeagueNWSL:            "NWSL",
	LeagueUSLSuper:        "USL Super League",
	LeagueLigaMXFemenil:   "Liga MX Femenil",
	LeagueNSL:             "NSL",
	LeagueWSL:             "WSL",
	LeagueFrauenBundes:    "Frauen-Bundesliga",
	LeagueD1Feminine:      "Division 1 Féminine",
	LeagueSerieAWomen:     "Serie A Women",
	LeagueLigaF:           "Liga F",
	LeagueEredivisieWomen: "Eredivisie Women",
	LeagueDamallsvenskan:  "Damallsvenskan",
	LeagueToppserien:      "Toppserien Women",
	LeagueWELeague:        "WE League",
	LeagueALeagueWomen:    "A-League Women",
	LeagueBrasileiraoFem:  "Brasileirão Feminino A1",
	LeagueUWCL:            "UWCL",
	LeagueLibertadoresFem: "Copa Libertadores Femenina",
	LeagueCAFChampions:    "CAF Women's Champions League",
}

// trackedLeagueIDs drive the per-league fan-out when no date range is
// given. Ordered by how reliably the upstream carries their data.
var trackedLeagueIDs = []int{
	LeagueNWSL,
	LeagueWSL,
	LeagueFrauenBundes,
	LeagueD1Feminine,
	LeagueLigaF,
	LeagueSerieAWomen,
	LeagueLigaMXFemenil,
	LeagueDamallsvenskan,
	LeagueALeagueWomen,
	LeagueUWCL,
}

// mensLeaguePatterns exclude known men's leagues whose names collide
// with women's ones (e.g. "Liga FPD" vs "Liga F"). Checked first.
var mensLeaguePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)costa\s*rica.*liga`),
	regexp.MustCompile(`(?i)liga.*costa\s*rica`),
	regexp.MustCompile(`(?i)liga\s*fpd`),
	regexp.MustCompile(`(?i)\bfpd\b`),
	regexp.MustCompile(`(?i)swiss\s*super\s*league`),
	regexp.MustCompile(`(?i)super\s*league.*swiss`),
	regexp.MustCompile(`(?i)switzerland.*super`),
	regexp.MustCompile(`(?i)uzbekistan\s*super\s*league`),
	regexp.MustCompile(`(?i)super\s*league.*uzbekistan`),
	regexp.MustCompile(`(?i)uzbekistan.*league`),
	regexp.MustCompile(`(?i)netherlands.*divisie`),
	regexp.MustCompile(`(?i)divisie.*netherlands`),
	regexp.MustCompile(`(?i)derde\s*divisie`),
	regexp.MustCompile(`(?i)^swiss\s*super`),
	regexp.MustCompile(`(?i)^super\s*league$`),
}

// approvedLeagueNames is the allow-list of full league names, matched
// case-insensitively in both substring directions.
var approvedLeagueNames = []string{
	"national women's soccer league",
	"american nwsl",
	"nwsl",
	"usl super league women",
	"liga mx femenil",
	"northern super league",
	"fa women's super league",
	"frauen-bundesliga",
	"division 1 feminine",
	"division 1 féminine",
	"serie a women",
	"liga f",
	"primera division femenina",
	"primera división femenina",
	"eredivisie women",
	"scottish women's premier league",
	"damallsvenskan",
	"toppserien women",
	"nifl women's premiership",
	"we league",
	"wk league",
	"a-league women",
	"indian women's league",
	"brasileirao feminino a1",
	"brasileirão feminino a1",
	"primera division a women (argentina)",
	"hollywoodbets super league",
	"caf women's champions league",
}

// womensNameFragments catch women-specific competitions whose names
// lack an explicit "Women" marker.
var womensNameFragments = []string{
	"women",
	"womens",
	"female",
	"féminine",
	"feminine",
	"femminile",
	"femenil",
	"feminino",
	"frauen",
	"damallsvenskan",
	"toppserien",
	"uwcl",
	"concacaf w",
	"nwsl",
	"wsl",
	"liga f ",
	"d1 arkema",
	"we league",
}

// isWomensSoccerEvent decides allow-list membership for a raw event:
// denylist first, then the fixed id table, then name/keyword matching.
// Name-based matches additionally require a soccer/football sport tag.
func isWomensSoccerEvent(ev rawEvent) bool {
	league := strings.ToLower(strings.TrimSpace(ev.League))
	sport := strings.ToLower(ev.Sport)

	for _, pattern := range mensLeaguePatterns {
		if pattern.MatchString(league) {
			return false
		}
	}

	if id, ok := ev.LeagueID.Int(); ok {
		if _, known := womensLeagueIDs[id]; known {
			return true
		}
	}

	if league == "" {
		return false
	}
	if !strings.Contains(sport, "soccer") && !strings.Contains(sport, "football") {
		return false
	}

	for _, approved := range approvedLeagueNames {
		if strings.Contains(league, approved) || strings.Contains(approved, league) {
			return true
		}
	}
	for _, fragment := range womensNameFragments {
		if strings.Contains(league, fragment) {
			return true
		}
	}
	return false
}

// leagueNameAliases maps verbose or sponsored upstream league names to
// the display names the rest of the system uses.
var leagueNameAliases = strings.NewReplacer(
	"American NWSL", "NWSL",
	"National Women's Soccer League", "NWSL",
	"USL Super League Women", "USL Super League",
	"Northern Super League", "NSL",
	"League1 Canada Women", "League1 Canada",
	"FA Women's Super League", "WSL",
	"Barclays WSL", "WSL",
	"English Women's Super League", "WSL",
	"Google Pixel Frauen-Bundesliga", "Frauen-Bundesliga",
	"German Women's Bundesliga", "Frauen-Bundesliga",
	"D1 Arkema", "Division 1 Féminine",
	"Arkema Première Ligue", "Division 1 Féminine",
	"Serie A Femminile eBay", "Serie A Women",
	"Primera División (Liga F)", "Liga F",
	"Primera División Femenina", "Liga F",
	"Eredivisie Vrouwen", "Eredivisie Women",
	"Scottish Women's Premier League", "SWPL",
	"Sports Direct Women's Premiership", "NIFL Women's Premiership",
	"Campeonato Brasileiro Feminino Série A1", "Brasileirão Feminino A1",
	"Primera División A Femenina", "Primera División A Women",
	"UEFA Women's Champions League", "UWCL",
	"CONMEBOL Copa Libertadores Femenina", "Copa Libertadores Femenina",
	"Olympic Games – Women", "Olympic Women's Football",
	"UEFA Women's Championship", "UEFA Women's Euro",
	"CAF Women's Africa Cup of Nations", "CAF Women's AFCON",
	"Women's International Friendlies", "International Friendlies",
)

// cleanLeagueName normalizes variant upstream league names to their
// display names.
func cleanLeagueName(name string) string {
	if name == "" {
		return "Unknown League"
	}
	return strings.TrimSpace(leagueNameAliases.Replace(name))
}
