// Package canon resolves free-text sport and team labels into stable
// identifiers. Matching is exact-after-normalization against static alias
// tables; there is no fuzzy matching, so grouping stays deterministic and
// table gaps are fixed by adding entries, not by heuristics.
package canon

import (
	"strings"

	"github.com/pickline/consensus/pkg/models"
)

// sportAliases maps normalized sport labels to the canonical sport
var sportAliases = map[string]models.Sport{
	"nfl":                 models.SportNFL,
	"football":            models.SportNFL,
	"pro football":        models.SportNFL,
	"nba":                 models.SportNBA,
	"basketball":          models.SportNBA,
	"pro basketball":      models.SportNBA,
	"mlb":                 models.SportMLB,
	"baseball":            models.SportMLB,
	"nhl":                 models.SportNHL,
	"hockey":              models.SportNHL,
	"ncaaf":               models.SportNCAAF,
	"cfb":                 models.SportNCAAF,
	"college football":    models.SportNCAAF,
	"ncaa football":       models.SportNCAAF,
	"ncaab":               models.SportNCAAB,
	"cbb":                 models.SportNCAAB,
	"ncaam":               models.SportNCAAB,
	"college basketball":  models.SportNCAAB,
	"ncaa basketball":     models.SportNCAAB,
	"college hoops":       models.SportNCAAB,
	// Recognized leagues we do not build consensus for
	"soccer": models.SportOther,
	"epl":    models.SportOther,
	"mls":    models.SportOther,
	"ufc":    models.SportOther,
	"mma":    models.SportOther,
	"tennis": models.SportOther,
	"golf":   models.SportOther,
	"wnba":   models.SportOther,
}

// teamLookup is assembled from the per-sport alias tables at init
var teamLookup = map[models.Sport]map[string]models.TeamID{}

func init() {
	register(models.SportNBA, nbaTeams)
	register(models.SportNFL, nflTeams)
	register(models.SportMLB, mlbTeams)
	register(models.SportNHL, nhlTeams)
	register(models.SportNCAAF, ncaafTeams)
	register(models.SportNCAAB, ncaabTeams)
}

// register builds the alias -> TeamID lookup for one sport. The canonical id
// itself is always a valid alias.
func register(sport models.Sport, teams map[string][]string) {
	lookup := make(map[string]models.TeamID)
	prefix := string(sport) + ":"

	for code, aliases := range teams {
		id := models.TeamID(prefix + code)
		lookup[Normalize(code)] = id
		for _, alias := range aliases {
			lookup[Normalize(alias)] = id
		}
	}

	teamLookup[sport] = lookup
}

// Normalize lowercases, trims, collapses inner whitespace, and strips
// punctuation so "L.A.  Lakers " and "la lakers" hit the same table entry.
func Normalize(text string) string {
	var sb strings.Builder
	lastSpace := true

	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastSpace = false
		case r == ' ' || r == '\t' || r == '-' || r == '_':
			if !lastSpace {
				sb.WriteByte(' ')
				lastSpace = true
			}
		default:
			// Punctuation like periods and apostrophes is dropped entirely
		}
	}

	return strings.TrimRight(sb.String(), " ")
}

// Sport resolves a free-text sport label. Labels for leagues we recognize but
// do not aggregate resolve to SportOther; anything else is SportUnknown.
func Sport(text string) models.Sport {
	if sport, ok := sportAliases[Normalize(text)]; ok {
		return sport
	}
	return models.SportUnknown
}

// Team resolves a free-text team label within a sport. Lookups are keyed per
// sport because short names collide across leagues (e.g. "giants").
func Team(sport models.Sport, text string) (models.TeamID, bool) {
	lookup, ok := teamLookup[sport]
	if !ok {
		return models.TeamUnknown, false
	}

	id, ok := lookup[Normalize(text)]
	if !ok {
		return models.TeamUnknown, false
	}
	return id, true
}
