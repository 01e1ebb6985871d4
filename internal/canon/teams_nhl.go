package canon

// NHL alias table
var nhlTeams = map[string][]string{
	"ANA": {"anaheim ducks", "ducks", "anaheim"},
	"BOS": {"boston bruins", "bruins", "boston"},
	"BUF": {"buffalo sabres", "sabres", "buffalo"},
	"CAR": {"carolina hurricanes", "hurricanes", "canes", "carolina"},
	"CBJ": {"columbus blue jackets", "blue jackets", "jackets", "columbus"},
	"CGY": {"calgary flames", "flames", "calgary"},
	"CHI": {"chicago blackhawks", "blackhawks", "chicago"},
	"COL": {"colorado avalanche", "avalanche", "avs", "colorado"},
	"DAL": {"dallas stars", "stars", "dallas"},
	"DET": {"detroit red wings", "red wings", "wings", "detroit"},
	"EDM": {"edmonton oilers", "oilers", "edmonton"},
	"FLA": {"florida panthers", "panthers", "florida"},
	"LAK": {"los angeles kings", "la kings", "kings"},
	"MIN": {"minnesota wild", "wild", "minnesota"},
	"MTL": {"montreal canadiens", "canadiens", "habs", "montreal"},
	"NJD": {"new jersey devils", "devils", "new jersey", "nj devils"},
	"NSH": {"nashville predators", "predators", "preds", "nashville"},
	"NYI": {"new york islanders", "islanders", "isles", "ny islanders"},
	"NYR": {"new york rangers", "ny rangers", "rangers"},
	"OTT": {"ottawa senators", "senators", "sens", "ottawa"},
	"PHI": {"philadelphia flyers", "flyers", "philly flyers"},
	"PIT": {"pittsburgh penguins", "penguins", "pens", "pittsburgh"},
	"SEA": {"seattle kraken", "kraken", "seattle"},
	"SJS": {"san jose sharks", "sharks", "san jose"},
	"STL": {"st louis blues", "blues", "st louis"},
	"TBL": {"tampa bay lightning", "lightning", "bolts", "tampa bay"},
	"TOR": {"toronto maple leafs", "maple leafs", "leafs", "toronto"},
	"UTA": {"utah hockey club", "utah hc", "utah"},
	"VAN": {"vancouver canucks", "canucks", "vancouver"},
	"VGK": {"vegas golden knights", "golden knights", "knights", "vegas"},
	"WPG": {"winnipeg jets", "jets", "winnipeg"},
	"WSH": {"washington capitals", "capitals", "caps", "washington"},
}
