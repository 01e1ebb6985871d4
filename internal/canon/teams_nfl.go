package canon

// NFL alias table. "NY" and "LA" teams need city-qualified entries because
// the bare city is ambiguous; bare nicknames are safe within the sport.
var nflTeams = map[string][]string{
	"ARI": {"arizona cardinals", "cardinals", "arizona", "cards"},
	"ATL": {"atlanta falcons", "falcons", "atlanta"},
	"BAL": {"baltimore ravens", "ravens", "baltimore"},
	"BUF": {"buffalo bills", "bills", "buffalo"},
	"CAR": {"carolina panthers", "panthers", "carolina"},
	"CHI": {"chicago bears", "bears", "chicago"},
	"CIN": {"cincinnati bengals", "bengals", "cincinnati", "cincy"},
	"CLE": {"cleveland browns", "browns", "cleveland"},
	"DAL": {"dallas cowboys", "cowboys", "dallas", "boys"},
	"DEN": {"denver broncos", "broncos", "denver"},
	"DET": {"detroit lions", "lions", "detroit"},
	"GB":  {"green bay packers", "packers", "green bay", "gnb"},
	"HOU": {"houston texans", "texans", "houston"},
	"IND": {"indianapolis colts", "colts", "indianapolis", "indy"},
	"JAX": {"jacksonville jaguars", "jaguars", "jacksonville", "jags", "jac"},
	"KC":  {"kansas city chiefs", "chiefs", "kansas city", "kan"},
	"LAC": {"los angeles chargers", "la chargers", "chargers"},
	"LAR": {"los angeles rams", "la rams", "rams"},
	"LV":  {"las vegas raiders", "raiders", "las vegas", "lvr", "oakland raiders"},
	"MIA": {"miami dolphins", "dolphins", "miami", "fins"},
	"MIN": {"minnesota vikings", "vikings", "minnesota", "vikes"},
	"NE":  {"new england patriots", "patriots", "new england", "pats", "nwe"},
	"NO":  {"new orleans saints", "saints", "new orleans", "nor"},
	"NYG": {"new york giants", "ny giants", "giants"},
	"NYJ": {"new york jets", "ny jets", "jets"},
	"PHI": {"philadelphia eagles", "eagles", "philadelphia", "philly eagles"},
	"PIT": {"pittsburgh steelers", "steelers", "pittsburgh"},
	"SEA": {"seattle seahawks", "seahawks", "seattle", "hawks"},
	"SF":  {"san francisco 49ers", "49ers", "niners", "san francisco", "sfo"},
	"TB":  {"tampa bay buccaneers", "buccaneers", "bucs", "tampa bay", "tampa", "tam"},
	"TEN": {"tennessee titans", "titans", "tennessee"},
	"WAS": {"washington commanders", "commanders", "washington", "wsh"},
}
