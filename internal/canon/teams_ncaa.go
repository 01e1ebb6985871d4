package canon

// College tables cover the programs that actually show up in capper feeds.
// Gaps surface as schedule-filter rejections with an "unknown team" reason,
// which is the signal to add entries here.

var ncaafTeams = map[string][]string{
	"ALA":  {"alabama", "alabama crimson tide", "crimson tide", "bama"},
	"UGA":  {"georgia", "georgia bulldogs", "dawgs"},
	"OSU":  {"ohio state", "ohio state buckeyes", "buckeyes"},
	"MICH": {"michigan", "michigan wolverines", "wolverines"},
	"TEX":  {"texas", "texas longhorns", "longhorns", "horns"},
	"ORE":  {"oregon", "oregon ducks"},
	"PSU":  {"penn state", "penn state nittany lions", "nittany lions"},
	"ND":   {"notre dame", "notre dame fighting irish", "fighting irish", "irish"},
	"LSU":  {"lsu", "lsu tigers", "louisiana state"},
	"CLEM": {"clemson", "clemson tigers"},
	"FSU":  {"florida state", "florida state seminoles", "seminoles", "noles"},
	"OKLA": {"oklahoma", "oklahoma sooners", "sooners"},
	"TENN": {"tennessee", "tennessee volunteers", "volunteers", "vols"},
	"USC":  {"usc", "usc trojans", "southern cal", "southern california"},
	"MIA":  {"miami", "miami hurricanes", "miami fl", "the u"},
	"WASH": {"washington", "washington huskies", "huskies"},
	"UTAH": {"utah", "utah utes", "utes"},
	"OLE":  {"ole miss", "ole miss rebels", "mississippi"},
}

var ncaabTeams = map[string][]string{
	"DUKE":  {"duke", "duke blue devils", "blue devils"},
	"UNC":   {"north carolina", "unc", "tar heels", "carolina"},
	"UK":    {"kentucky", "kentucky wildcats"},
	"KU":    {"kansas", "kansas jayhawks", "jayhawks"},
	"UCONN": {"uconn", "connecticut", "uconn huskies"},
	"GONZ":  {"gonzaga", "gonzaga bulldogs", "zags"},
	"PUR":   {"purdue", "purdue boilermakers", "boilermakers"},
	"HOU":   {"houston", "houston cougars", "cougars"},
	"AUB":   {"auburn", "auburn tigers"},
	"TENN":  {"tennessee", "tennessee volunteers", "vols"},
	"MSU":   {"michigan state", "michigan state spartans", "spartans"},
	"NOVA":  {"villanova", "villanova wildcats", "nova"},
	"ARIZ":  {"arizona", "arizona wildcats"},
	"BAY":   {"baylor", "baylor bears"},
	"ALA":   {"alabama", "alabama crimson tide", "bama"},
	"ILL":   {"illinois", "illinois fighting illini", "illini"},
}
