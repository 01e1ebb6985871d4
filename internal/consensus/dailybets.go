package consensus

import (
	"sort"
	"strings"

	"github.com/pickline/consensus/pkg/models"
)

// BuildDailyBets combines the formatted consensus with the schedule-filtered
// picks into the enriched daily summary. Pure reshaping: no I/O, no schedule
// lookups, no normalization. date is the reporting day the caller computed;
// picks carry their own dates and a stray one must not relabel the whole
// view. Empty inputs produce a well-formed empty output.
func BuildDailyBets(formatted models.FormattedOutput, todaysPicks []models.NormalizedPick, totalPicks int, date string) models.DailyBetsOutput {
	out := models.DailyBetsOutput{
		Date:           date,
		Consensus:      formatted.FilteredConsensus,
		BySport:        formatted.BySport,
		SportSummaries: []models.SportSummary{},
		TodaysPicks:    todaysPicks,
		TotalPicks:     totalPicks,
		TotalGroups:    len(formatted.FilteredConsensus),
	}

	if out.Consensus == nil {
		out.Consensus = []models.ConsensusGroup{}
	}
	if out.BySport == nil {
		out.BySport = map[models.Sport][]models.ConsensusGroup{}
	}
	if out.TodaysPicks == nil {
		out.TodaysPicks = []models.NormalizedPick{}
	}

	cappers := map[string]bool{}
	picksBySport := map[models.Sport]int{}
	for _, p := range todaysPicks {
		cappers[strings.ToLower(strings.TrimSpace(p.Capper))] = true
		picksBySport[p.Sport]++
	}
	out.DistinctCappers = len(cappers)

	for sport, groups := range out.BySport {
		summary := models.SportSummary{
			Sport:    sport,
			Groups:   len(groups),
			Picks:    picksBySport[sport],
			BestTier: models.TierNone,
		}

		for _, g := range groups {
			if g.Tier.Rank() > summary.BestTier.Rank() {
				summary.BestTier = g.Tier
			}
			switch g.Tier {
			case models.TierLock:
				summary.LockCount++
			case models.TierStrong:
				summary.FirePicks++
			case models.TierLean:
				summary.LeanCount++
			}
		}

		out.SportSummaries = append(out.SportSummaries, summary)
	}

	// Map iteration order is random; the summary list is part of the output
	// contract and must be stable.
	sort.Slice(out.SportSummaries, func(i, j int) bool {
		return out.SportSummaries[i].Sport < out.SportSummaries[j].Sport
	})

	return out
}
