package canon

// MLB alias table
var mlbTeams = map[string][]string{
	"ARI": {"arizona diamondbacks", "diamondbacks", "dbacks", "d backs", "arizona"},
	"ATL": {"atlanta braves", "braves", "atlanta"},
	"BAL": {"baltimore orioles", "orioles", "baltimore", "os"},
	"BOS": {"boston red sox", "red sox", "boston", "redsox"},
	"CHC": {"chicago cubs", "cubs", "chi cubs"},
	"CHW": {"chicago white sox", "white sox", "chi white sox", "chisox", "cws"},
	"CIN": {"cincinnati reds", "reds", "cincinnati"},
	"CLE": {"cleveland guardians", "guardians", "cleveland"},
	"COL": {"colorado rockies", "rockies", "colorado"},
	"DET": {"detroit tigers", "tigers", "detroit"},
	"HOU": {"houston astros", "astros", "houston", "stros"},
	"KC":  {"kansas city royals", "royals", "kansas city", "kcr"},
	"LAA": {"los angeles angels", "angels", "la angels", "anaheim"},
	"LAD": {"los angeles dodgers", "dodgers", "la dodgers"},
	"MIA": {"miami marlins", "marlins", "miami"},
	"MIL": {"milwaukee brewers", "brewers", "milwaukee", "brew crew"},
	"MIN": {"minnesota twins", "twins", "minnesota"},
	"NYM": {"new york mets", "mets", "ny mets"},
	"NYY": {"new york yankees", "yankees", "ny yankees", "yanks"},
	"OAK": {"oakland athletics", "athletics", "as", "oakland"},
	"PHI": {"philadelphia phillies", "phillies", "phils"},
	"PIT": {"pittsburgh pirates", "pirates", "buccos"},
	"SD":  {"san diego padres", "padres", "san diego", "sdp"},
	"SEA": {"seattle mariners", "mariners", "seattle", "ms"},
	"SF":  {"san francisco giants", "sf giants", "giants", "sfg"},
	"STL": {"st louis cardinals", "cardinals", "st louis", "stl cardinals"},
	"TB":  {"tampa bay rays", "rays", "tampa bay", "tbr"},
	"TEX": {"texas rangers", "rangers", "texas"},
	"TOR": {"toronto blue jays", "blue jays", "jays", "toronto"},
	"WAS": {"washington nationals", "nationals", "nats", "wsn"},
}
