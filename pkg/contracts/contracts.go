package contracts

import (
	"context"

	"github.com/pickline/consensus/pkg/models"
)

// FeedSource supplies raw picks from one upstream feed. Sources are
// independent; one source failing must not abort the batch.
type FeedSource interface {
	// Name returns the feed-source identifier stamped onto each RawPick
	Name() string

	// Fetch retrieves the source's current raw picks
	Fetch(ctx context.Context) ([]models.RawPick, error)
}

// ScheduleProvider supplies today's slate for a sport on demand. Treated as
// unreliable (network-bound); callers decide how to degrade on error.
type ScheduleProvider interface {
	TodaysGames(ctx context.Context, sport models.Sport) ([]models.ScheduleEntry, error)
}

// FadePredicate selects contrarian-signal candidates from the consensus.
// The concrete rule is a configuration concern; the formatter only requires
// that the predicate is total over its input.
type FadePredicate func(group models.ConsensusGroup, all []models.ConsensusGroup) bool

// SchedulePolicy controls how the schedule filter degrades when the provider
// fails for a sport.
type SchedulePolicy string

const (
	// FailOpen passes a sport's picks through unfiltered when its schedule
	// could not be retrieved, flagging the sport as degraded.
	FailOpen SchedulePolicy = "fail-open"

	// FailClosed rejects a sport's picks when its schedule could not be
	// retrieved.
	FailClosed SchedulePolicy = "fail-closed"
)

// EngineConfig carries the engine's behavior knobs. It is passed explicitly
// into each component so behavior is reproducible and testable per call.
type EngineConfig struct {
	// MinCappers is the minimum distinct-capper count for a group to appear
	// in FilteredConsensus
	MinCappers int

	// TopLimit bounds the TopOverall list
	TopLimit int

	// LineTolerance is the maximum absolute difference between two lines for
	// picks to merge into the same group. 0 means exact line equality.
	LineTolerance float64

	// ReportingTimezone is the IANA zone used to resolve feed timestamps to
	// a single calendar day. The reporting day boundary is 00:00 local.
	ReportingTimezone string

	// SchedulePolicy selects fail-open or fail-closed degradation
	SchedulePolicy SchedulePolicy

	// DefaultLimit and MaxLimit bound pagination on raw listings
	DefaultLimit int
	MaxLimit     int
}

// DefaultEngineConfig returns the production defaults
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		MinCappers:        2,
		TopLimit:          10,
		LineTolerance:     0,
		ReportingTimezone: "America/New_York",
		SchedulePolicy:    FailOpen,
		DefaultLimit:      50,
		MaxLimit:          500,
	}
}
