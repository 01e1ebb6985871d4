package canon

// NBA alias table: canonical code -> feed spellings seen in the wild.
// The code itself always resolves, so "LAL" needs no explicit entry.
var nbaTeams = map[string][]string{
	"ATL": {"atlanta hawks", "hawks", "atlanta"},
	"BOS": {"boston celtics", "celtics", "boston"},
	"BKN": {"brooklyn nets", "nets", "brooklyn", "bkn nets"},
	"CHA": {"charlotte hornets", "hornets", "charlotte"},
	"CHI": {"chicago bulls", "bulls", "chicago"},
	"CLE": {"cleveland cavaliers", "cavaliers", "cavs", "cleveland"},
	"DAL": {"dallas mavericks", "mavericks", "mavs", "dallas"},
	"DEN": {"denver nuggets", "nuggets", "denver"},
	"DET": {"detroit pistons", "pistons", "detroit"},
	"GSW": {"golden state warriors", "warriors", "golden state", "gs warriors"},
	"HOU": {"houston rockets", "rockets", "houston"},
	"IND": {"indiana pacers", "pacers", "indiana"},
	"LAC": {"los angeles clippers", "la clippers", "clippers"},
	"LAL": {"los angeles lakers", "la lakers", "lakers"},
	"MEM": {"memphis grizzlies", "grizzlies", "memphis", "grizzles"},
	"MIA": {"miami heat", "heat", "miami"},
	"MIL": {"milwaukee bucks", "bucks", "milwaukee", "milwakee bucks"},
	"MIN": {"minnesota timberwolves", "timberwolves", "wolves", "minnesota"},
	"NOP": {"new orleans pelicans", "pelicans", "new orleans", "pels"},
	"NYK": {"new york knicks", "knicks", "ny knicks"},
	"OKC": {"oklahoma city thunder", "thunder", "oklahoma city", "okc thunder"},
	"ORL": {"orlando magic", "magic", "orlando"},
	"PHI": {"philadelphia 76ers", "76ers", "sixers", "philadelphia", "philly"},
	"PHX": {"phoenix suns", "suns", "phoenix", "pho"},
	"POR": {"portland trail blazers", "trail blazers", "blazers", "portland", "trailblazers"},
	"SAC": {"sacramento kings", "kings", "sacramento"},
	"SAS": {"san antonio spurs", "spurs", "san antonio", "sa spurs"},
	"TOR": {"toronto raptors", "raptors", "toronto"},
	"UTA": {"utah jazz", "jazz", "utah"},
	"WAS": {"washington wizards", "wizards", "washington", "wiz"},
}
