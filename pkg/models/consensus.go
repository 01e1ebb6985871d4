package models

// Tier classifies a consensus group by how many distinct cappers agree.
// Ordering: NONE < LEAN < STRONG < LOCK.
type Tier string

const (
	TierNone   Tier = "NONE"
	TierLean   Tier = "LEAN"
	TierStrong Tier = "STRONG" // "fire pick"
	TierLock   Tier = "LOCK"
)

// tierRank orders tiers for monotonicity checks and sorting
var tierRank = map[Tier]int{
	TierNone:   0,
	TierLean:   1,
	TierStrong: 2,
	TierLock:   3,
}

// Rank returns the tier's position in the NONE < LEAN < STRONG < LOCK order
func (t Tier) Rank() int {
	return tierRank[t]
}

// ConsensusGroup is the set of picks judged to recommend the same underlying
// wager. Groups are recomputed from scratch on every request, never mutated
// incrementally.
type ConsensusGroup struct {
	Sport   Sport   `json:"sport"`
	TeamID  TeamID  `json:"team_id"`
	BetType BetType `json:"bet_type"`
	// Line is the group's representative line (the first contributing pick's),
	// nil when the picks carried no numeric line.
	Line *float64 `json:"line,omitempty"`
	Date string   `json:"date"`

	// Display fields, taken from the first contributing pick
	Bet     string `json:"bet"`
	Matchup string `json:"matchup,omitempty"`

	// Picks is deduplicated by capper; CapperCount == len(Cappers) always.
	Picks       []NormalizedPick `json:"picks"`
	Cappers     []string         `json:"cappers"`
	CapperCount int              `json:"capper_count"`
	Tier        Tier             `json:"tier"`
}

// FormattedOutput is the presentation-ready view of the consensus
type FormattedOutput struct {
	TopOverall        []ConsensusGroup           `json:"top_overall"`
	BySport           map[Sport][]ConsensusGroup `json:"by_sport"`
	FadeThePublic     []ConsensusGroup           `json:"fade_the_public"`
	FilteredConsensus []ConsensusGroup           `json:"filtered_consensus"`
}

// SportSummary is a per-sport rollup inside the daily-bets view
type SportSummary struct {
	Sport     Sport `json:"sport"`
	Groups    int   `json:"groups"`
	Picks     int   `json:"picks"`
	BestTier  Tier  `json:"best_tier"`
	LockCount int   `json:"lock_count"`
	FirePicks int   `json:"fire_picks"`
	LeanCount int   `json:"lean_count"`
}

// DailyBetsOutput combines the formatted consensus with schedule-filtered
// picks into the enriched summary view. A pure function of its inputs.
type DailyBetsOutput struct {
	Date            string                     `json:"date"`
	Consensus       []ConsensusGroup           `json:"consensus"`
	BySport         map[Sport][]ConsensusGroup `json:"by_sport"`
	SportSummaries  []SportSummary             `json:"sport_summaries"`
	TodaysPicks     []NormalizedPick           `json:"todays_picks"`
	TotalPicks      int                        `json:"total_picks"`
	TotalGroups     int                        `json:"total_groups"`
	DistinctCappers int                        `json:"distinct_cappers"`
}
