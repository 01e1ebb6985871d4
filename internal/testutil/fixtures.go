// Package testutil provides fixtures shared across package tests.
package testutil

import (
	"context"
	"fmt"

	"github.com/pickline/consensus/pkg/models"
)

// RawSpread builds a raw spread pick for today (empty date resolves to the
// reporting day)
func RawSpread(capper, sport, team, line string) models.RawPick {
	return models.RawPick{
		Capper:  capper,
		Sport:   sport,
		Team:    team,
		BetText: "spread",
		Line:    line,
		Source:  "test-feed",
	}
}

// Pick builds a normalized pick with a line
func Pick(capper string, sport models.Sport, team models.TeamID, betType models.BetType, line float64, date string) models.NormalizedPick {
	return models.NormalizedPick{
		Capper:  capper,
		Sport:   sport,
		TeamID:  team,
		BetType: betType,
		Line:    &line,
		Date:    date,
	}
}

// PickNoLine builds a normalized pick without a numeric line
func PickNoLine(capper string, sport models.Sport, team models.TeamID, betType models.BetType, date string) models.NormalizedPick {
	return models.NormalizedPick{
		Capper:  capper,
		Sport:   sport,
		TeamID:  team,
		BetType: betType,
		Date:    date,
	}
}

// Game builds a schedule entry between two teams
func Game(sport models.Sport, home, away models.TeamID) models.ScheduleEntry {
	return models.ScheduleEntry{
		Sport:    sport,
		HomeTeam: home,
		AwayTeam: away,
		Status:   models.GameScheduled,
	}
}

// FakeScheduleProvider serves canned slates per sport and errors for sports
// listed in Errors
type FakeScheduleProvider struct {
	Slates map[models.Sport][]models.ScheduleEntry
	Errors map[models.Sport]error
	Calls  []models.Sport
}

// TodaysGames implements contracts.ScheduleProvider
func (f *FakeScheduleProvider) TodaysGames(_ context.Context, sport models.Sport) ([]models.ScheduleEntry, error) {
	f.Calls = append(f.Calls, sport)
	if err, ok := f.Errors[sport]; ok {
		return nil, err
	}
	return f.Slates[sport], nil
}

// FakeFeedSource returns canned picks or a fixed error
type FakeFeedSource struct {
	SourceName string
	Picks      []models.RawPick
	Err        error
}

// Name implements contracts.FeedSource
func (f *FakeFeedSource) Name() string {
	if f.SourceName == "" {
		return "fake-feed"
	}
	return f.SourceName
}

// Fetch implements contracts.FeedSource
func (f *FakeFeedSource) Fetch(_ context.Context) ([]models.RawPick, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Picks, nil
}

// ErrUpstream is a reusable provider failure
var ErrUpstream = fmt.Errorf("upstream unavailable")
