package consensus

import (
	"github.com/pickline/consensus/pkg/contracts"
	"github.com/pickline/consensus/pkg/models"
)

// FormatConsensus produces the ranked and partitioned views from aggregated
// groups. The input ordering (from BuildConsensus) is preserved everywhere;
// the fade predicate is injectable so the contrarian rule can change without
// touching this function.
func FormatConsensus(groups []models.ConsensusGroup, cfg contracts.EngineConfig, fade contracts.FadePredicate) models.FormattedOutput {
	minCappers := cfg.MinCappers
	if minCappers < 2 {
		minCappers = 2
	}
	topLimit := cfg.TopLimit
	if topLimit <= 0 {
		topLimit = 10
	}
	if fade == nil {
		fade = DefaultFadePredicate
	}

	filtered := make([]models.ConsensusGroup, 0, len(groups))
	for _, g := range groups {
		if g.CapperCount >= minCappers {
			filtered = append(filtered, g)
		}
	}

	top := filtered
	if len(top) > topLimit {
		top = top[:topLimit]
	}

	bySport := make(map[models.Sport][]models.ConsensusGroup)
	for _, g := range filtered {
		bySport[g.Sport] = append(bySport[g.Sport], g)
	}

	fadeThePublic := make([]models.ConsensusGroup, 0)
	for _, g := range filtered {
		if fade(g, groups) {
			fadeThePublic = append(fadeThePublic, g)
		}
	}

	return models.FormattedOutput{
		TopOverall:        top,
		BySport:           bySport,
		FadeThePublic:     fadeThePublic,
		FilteredConsensus: filtered,
	}
}

// DefaultFadePredicate selects the minority side of a split market: a group
// at LEAN or better whose opposite side (same sport, date, bet type and
// matchup, different team) drew strictly more cappers. With no public-betting
// percentage available this is the observable contrarian signal; deployments
// with that data swap in their own predicate.
func DefaultFadePredicate(group models.ConsensusGroup, all []models.ConsensusGroup) bool {
	if group.Tier == models.TierNone {
		return false
	}
	if group.Matchup == "" {
		return false
	}

	for _, other := range all {
		if other.Sport != group.Sport || other.Date != group.Date ||
			other.BetType != group.BetType || other.Matchup != group.Matchup {
			continue
		}
		if other.TeamID == group.TeamID {
			continue
		}
		if other.CapperCount > group.CapperCount {
			return true
		}
	}
	return false
}
