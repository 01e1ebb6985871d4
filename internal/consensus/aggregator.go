// Package consensus groups normalized picks that recommend the same
// underlying wager, classifies the agreement into confidence tiers, and
// produces the ranked views consumed by callers. Everything here is pure,
// in-memory computation; groups are rebuilt from scratch on every call.
package consensus

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pickline/consensus/pkg/contracts"
	"github.com/pickline/consensus/pkg/models"
)

// BuildConsensus groups picks by (sport, team, bet type, date) plus the line
// compatibility rule, deduplicates contributing cappers, and returns groups
// in a deterministic order: capper count descending, then sport, team, bet
// type, line. Reruns on the same input are byte-identical.
func BuildConsensus(picks []models.NormalizedPick, cfg contracts.EngineConfig) []models.ConsensusGroup {
	// Canonical pre-sort makes grouping independent of input order: the
	// group's representative pick (and therefore its display fields and
	// line anchor) is always the same one.
	sorted := make([]models.NormalizedPick, len(picks))
	copy(sorted, picks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return pickLess(sorted[i], sorted[j])
	})

	var groups []models.ConsensusGroup

	for _, pick := range sorted {
		// Unknown sport or team never merges with anything; each such pick
		// stands alone so canonicalization gaps stay visible as singletons.
		if pick.Sport == models.SportUnknown || pick.TeamID == models.TeamUnknown {
			groups = append(groups, newGroup(pick))
			continue
		}

		idx := -1
		for i := range groups {
			if sameWager(&groups[i], pick, cfg.LineTolerance) {
				idx = i
				break
			}
		}

		if idx < 0 {
			groups = append(groups, newGroup(pick))
			continue
		}

		addToGroup(&groups[idx], pick)
	}

	for i := range groups {
		groups[i].Tier = TierFor(groups[i].CapperCount)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groupLess(groups[i], groups[j])
	})

	return groups
}

// sameWager reports whether pick belongs to the group. Lines are compatible
// when both are absent, or both present and within tolerance of the group's
// anchor line; a present line never merges with an absent one.
func sameWager(g *models.ConsensusGroup, pick models.NormalizedPick, tolerance float64) bool {
	if g.TeamID == models.TeamUnknown {
		return false
	}
	if g.Sport != pick.Sport || g.TeamID != pick.TeamID ||
		g.BetType != pick.BetType || g.Date != pick.Date {
		return false
	}

	if g.Line == nil && pick.Line == nil {
		return true
	}
	if g.Line == nil || pick.Line == nil {
		return false
	}
	return math.Abs(*g.Line-*pick.Line) <= tolerance
}

// newGroup starts a group from its first contributing pick, which supplies
// the display fields and the line anchor.
func newGroup(pick models.NormalizedPick) models.ConsensusGroup {
	return models.ConsensusGroup{
		Sport:       pick.Sport,
		TeamID:      pick.TeamID,
		BetType:     pick.BetType,
		Line:        pick.Line,
		Date:        pick.Date,
		Bet:         betText(pick),
		Matchup:     pick.Matchup,
		Picks:       []models.NormalizedPick{pick},
		Cappers:     []string{pick.Capper},
		CapperCount: 1,
	}
}

// addToGroup appends a pick, counting its capper only if not already present.
// A capper appearing twice for the same wager (e.g. via two feeds) counts
// once toward CapperCount.
func addToGroup(g *models.ConsensusGroup, pick models.NormalizedPick) {
	g.Picks = append(g.Picks, pick)

	key := capperKey(pick.Capper)
	for _, existing := range g.Cappers {
		if capperKey(existing) == key {
			return
		}
	}
	g.Cappers = append(g.Cappers, pick.Capper)
	g.CapperCount = len(g.Cappers)
}

// capperKey folds capper names for dedup: case-insensitive, trimmed.
func capperKey(capper string) string {
	return strings.ToLower(strings.TrimSpace(capper))
}

// betText renders the wager for display, preferring the feed's own wording.
func betText(pick models.NormalizedPick) string {
	if pick.Raw != nil {
		if raw := strings.TrimSpace(strings.TrimSpace(pick.Raw.BetText) + " " + strings.TrimSpace(pick.Raw.Line)); raw != "" {
			return fmt.Sprintf("%s %s", pick.Raw.Team, raw)
		}
	}

	switch pick.BetType {
	case models.BetTypeSpread:
		if pick.Line != nil {
			return fmt.Sprintf("%s %+g", pick.TeamID, *pick.Line)
		}
	case models.BetTypeTotal:
		if pick.Line != nil {
			return fmt.Sprintf("%s O/U %g", pick.TeamID, *pick.Line)
		}
	case models.BetTypeMoneyline:
		return fmt.Sprintf("%s ML", pick.TeamID)
	}
	return string(pick.TeamID)
}

// pickLess is the canonical pick ordering used before grouping
func pickLess(a, b models.NormalizedPick) bool {
	if a.Sport != b.Sport {
		return a.Sport < b.Sport
	}
	if a.TeamID != b.TeamID {
		return a.TeamID < b.TeamID
	}
	if a.BetType != b.BetType {
		return a.BetType < b.BetType
	}
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if la, lb := lineKey(a.Line), lineKey(b.Line); la != lb {
		return la < lb
	}
	if a.Capper != b.Capper {
		return a.Capper < b.Capper
	}
	return sourceOf(a) < sourceOf(b)
}

// groupLess is the deterministic output ordering: strongest consensus first,
// then a stable tiebreak so equal counts never flap between runs.
func groupLess(a, b models.ConsensusGroup) bool {
	if a.CapperCount != b.CapperCount {
		return a.CapperCount > b.CapperCount
	}
	if a.Sport != b.Sport {
		return a.Sport < b.Sport
	}
	if a.TeamID != b.TeamID {
		return a.TeamID < b.TeamID
	}
	if a.BetType != b.BetType {
		return a.BetType < b.BetType
	}
	if la, lb := lineKey(a.Line), lineKey(b.Line); la != lb {
		return la < lb
	}
	return a.Date < b.Date
}

// lineKey orders absent lines after any present line
func lineKey(line *float64) float64 {
	if line == nil {
		return math.MaxFloat64
	}
	return *line
}

func sourceOf(p models.NormalizedPick) string {
	if p.Raw == nil {
		return ""
	}
	return p.Raw.Source
}
