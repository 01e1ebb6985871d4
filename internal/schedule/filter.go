package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/pickline/consensus/pkg/contracts"
	"github.com/pickline/consensus/pkg/models"
)

// Rejection reasons surfaced to operators. "unknown team" usually means a
// canonicalization-table gap rather than a filter bug.
const (
	ReasonNoGameToday    = "no game today"
	ReasonUnknownTeam    = "unknown team"
	ReasonUnknownSport   = "unknown sport"
	ReasonNoSource       = "no schedule source for sport"
	ReasonProviderFailed = "schedule unavailable"
)

// Filter keeps only picks whose team plays today according to the schedule
// provider. Provider failures degrade per configured policy instead of
// zeroing the result set.
type Filter struct {
	provider contracts.ScheduleProvider
	cfg      contracts.EngineConfig
}

// NewFilter creates a schedule filter
func NewFilter(provider contracts.ScheduleProvider, cfg contracts.EngineConfig) *Filter {
	return &Filter{provider: provider, cfg: cfg}
}

// TodaysPicks partitions picks into filtered and rejected. The provider is
// consulted once per sport present in the input; a sport whose schedule
// cannot be retrieved is either passed through unfiltered and flagged
// degraded (fail-open, default) or rejected wholesale (fail-closed).
func (f *Filter) TodaysPicks(ctx context.Context, picks []models.NormalizedPick) models.FilterResult {
	result := models.FilterResult{
		Filtered: []models.NormalizedPick{},
		Rejected: []models.RejectedPick{},
	}

	playing, failed := f.fetchSlates(ctx, sportsIn(picks))

	for _, pick := range picks {
		switch {
		case pick.Sport == models.SportUnknown:
			result.Rejected = append(result.Rejected, reject(pick, ReasonUnknownSport))

		case pick.TeamID == models.TeamUnknown:
			result.Rejected = append(result.Rejected, reject(pick, ReasonUnknownTeam))

		case pick.Sport == models.SportOther:
			result.Rejected = append(result.Rejected, reject(pick, ReasonNoSource))

		case failed[pick.Sport]:
			if f.cfg.SchedulePolicy == contracts.FailClosed {
				result.Rejected = append(result.Rejected, reject(pick, ReasonProviderFailed))
			} else {
				result.Filtered = append(result.Filtered, pick)
			}

		case playing[pick.Sport][pick.TeamID]:
			result.Filtered = append(result.Filtered, pick)

		default:
			result.Rejected = append(result.Rejected, reject(pick, ReasonNoGameToday))
		}
	}

	for sport := range failed {
		result.Degraded = append(result.Degraded, sport)
	}
	sort.Slice(result.Degraded, func(i, j int) bool {
		return result.Degraded[i] < result.Degraded[j]
	})

	return result
}

// fetchSlates retrieves today's slate for each sport, returning the set of
// teams playing per sport and the set of sports whose provider call failed.
func (f *Filter) fetchSlates(ctx context.Context, sports []models.Sport) (map[models.Sport]map[models.TeamID]bool, map[models.Sport]bool) {
	playing := make(map[models.Sport]map[models.TeamID]bool)
	failed := make(map[models.Sport]bool)

	for _, sport := range sports {
		entries, err := f.provider.TodaysGames(ctx, sport)
		if err != nil {
			fmt.Printf("schedule fetch failed for %s (%s): %v\n", sport, f.cfg.SchedulePolicy, err)
			failed[sport] = true
			continue
		}

		teams := make(map[models.TeamID]bool, len(entries)*2)
		for _, entry := range entries {
			teams[entry.HomeTeam] = true
			teams[entry.AwayTeam] = true
		}
		playing[sport] = teams
	}

	return playing, failed
}

// sportsIn lists, in deterministic order, the schedulable sports present
func sportsIn(picks []models.NormalizedPick) []models.Sport {
	seen := make(map[models.Sport]bool)
	for _, pick := range picks {
		switch pick.Sport {
		case models.SportUnknown, models.SportOther:
			continue
		}
		seen[pick.Sport] = true
	}

	sports := make([]models.Sport, 0, len(seen))
	for _, sport := range models.AllSports {
		if seen[sport] {
			sports = append(sports, sport)
		}
	}
	return sports
}

func reject(pick models.NormalizedPick, reason string) models.RejectedPick {
	return models.RejectedPick{Pick: pick, Reason: reason}
}
