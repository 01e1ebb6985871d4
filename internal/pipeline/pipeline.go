// Package pipeline runs one self-contained pass of the consensus engine:
// feeds -> normalize -> schedule filter -> aggregate -> format -> compose.
// Every invocation allocates its derived state fresh; nothing is shared
// across concurrent runs.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/pickline/consensus/internal/consensus"
	"github.com/pickline/consensus/internal/feeds"
	"github.com/pickline/consensus/internal/normalizer"
	"github.com/pickline/consensus/internal/schedule"
	"github.com/pickline/consensus/pkg/contracts"
	"github.com/pickline/consensus/pkg/models"
)

// Archiver persists a pipeline run's consensus; failures are logged, never
// surfaced to callers.
type Archiver interface {
	WriteSnapshot(ctx context.Context, date string, groups []models.ConsensusGroup) (string, error)
}

// Broadcaster pushes refreshed output to live subscribers
type Broadcaster interface {
	Broadcast(output models.FormattedOutput)
}

// Result is everything one pipeline run produced. The shape is always
// well-formed; total upstream failure sets Success to false with a short
// diagnostic message instead of failing the call.
type Result struct {
	Success       bool                        `json:"success"`
	Message       string                      `json:"message,omitempty"`
	GeneratedAt   time.Time                   `json:"generated_at"`
	Diagnostics   models.NormalizeDiagnostics `json:"diagnostics"`
	FailedSources []string                    `json:"failed_sources,omitempty"`
	Degraded      []models.Sport              `json:"degraded_sports,omitempty"`

	TodaysPicks []models.NormalizedPick `json:"todays_picks"`
	Rejected    []models.RejectedPick   `json:"rejected"`

	// Groups is the full aggregation before minimum-capper filtering, in the
	// aggregator's deterministic order
	Groups    []models.ConsensusGroup `json:"groups"`
	Formatted models.FormattedOutput  `json:"formatted"`
	DailyBets models.DailyBetsOutput  `json:"daily_bets"`
}

// Pipeline wires the engine stages to their collaborators
type Pipeline struct {
	sources     []contracts.FeedSource
	filter      *schedule.Filter
	cfg         contracts.EngineConfig
	fade        contracts.FadePredicate
	archiver    Archiver
	broadcaster Broadcaster
}

// New creates a pipeline. archiver and broadcaster may be nil.
func New(sources []contracts.FeedSource, filter *schedule.Filter, cfg contracts.EngineConfig, fade contracts.FadePredicate) *Pipeline {
	return &Pipeline{
		sources: sources,
		filter:  filter,
		cfg:     cfg,
		fade:    fade,
	}
}

// WithArchiver attaches a snapshot writer
func (p *Pipeline) WithArchiver(a Archiver) *Pipeline {
	p.archiver = a
	return p
}

// WithBroadcaster attaches a live-update hub
func (p *Pipeline) WithBroadcaster(b Broadcaster) *Pipeline {
	p.broadcaster = b
	return p
}

// Run executes one full pass
func (p *Pipeline) Run(ctx context.Context) Result {
	result := Result{
		GeneratedAt: time.Now().UTC(),
		TodaysPicks: []models.NormalizedPick{},
		Rejected:    []models.RejectedPick{},
		Groups:      []models.ConsensusGroup{},
	}

	now := time.Now()
	day := normalizer.ReportingDay(p.cfg, now)

	gathered := feeds.Gather(ctx, p.sources)
	result.FailedSources = gathered.FailedSources

	if gathered.AllFailed(len(p.sources)) {
		result.Message = "no feed data available: all sources failed"
		result.Formatted = emptyFormatted()
		result.DailyBets = consensus.BuildDailyBets(result.Formatted, nil, 0, day)
		return result
	}

	normalized, diag := normalizer.Normalize(gathered.Picks, p.cfg, now)
	result.Diagnostics = diag

	filtered := p.filter.TodaysPicks(ctx, normalized)
	result.TodaysPicks = filtered.Filtered
	result.Rejected = filtered.Rejected
	result.Degraded = filtered.Degraded

	result.Groups = consensus.BuildConsensus(filtered.Filtered, p.cfg)
	result.Formatted = consensus.FormatConsensus(result.Groups, p.cfg, p.fade)
	result.DailyBets = consensus.BuildDailyBets(result.Formatted, filtered.Filtered, len(normalized), day)
	result.Success = true

	if p.archiver != nil && len(result.Formatted.FilteredConsensus) > 0 {
		if _, err := p.archiver.WriteSnapshot(ctx, result.DailyBets.Date, result.Formatted.FilteredConsensus); err != nil {
			fmt.Printf("archive write failed: %v\n", err)
		}
	}

	if p.broadcaster != nil {
		p.broadcaster.Broadcast(result.Formatted)
	}

	return result
}

func emptyFormatted() models.FormattedOutput {
	return models.FormattedOutput{
		TopOverall:        []models.ConsensusGroup{},
		BySport:           map[models.Sport][]models.ConsensusGroup{},
		FadeThePublic:     []models.ConsensusGroup{},
		FilteredConsensus: []models.ConsensusGroup{},
	}
}
