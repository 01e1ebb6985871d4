// Package schedule cross-references picks against a live schedule source so
// only wagers on games occurring today survive. The provider is the one
// network-bound collaborator in the pipeline and is treated as unreliable.
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pickline/consensus/internal/canon"
	"github.com/pickline/consensus/pkg/models"
)

const espnBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

// espnPaths maps our sports to ESPN scoreboard paths
var espnPaths = map[models.Sport]string{
	models.SportNFL:   "football/nfl",
	models.SportNBA:   "basketball/nba",
	models.SportMLB:   "baseball/mlb",
	models.SportNHL:   "hockey/nhl",
	models.SportNCAAF: "football/college-football",
	models.SportNCAAB: "basketball/mens-college-basketball",
}

// ESPNProvider fetches today's slate from the ESPN scoreboard API
type ESPNProvider struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewESPNProvider creates a schedule provider backed by ESPN
func NewESPNProvider() *ESPNProvider {
	return &ESPNProvider{
		baseURL: espnBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: "Mozilla/5.0 (compatible; PicklineBot/1.0)",
	}
}

// NewESPNProviderWithBase creates a provider against a custom base URL (tests)
func NewESPNProviderWithBase(baseURL string) *ESPNProvider {
	p := NewESPNProvider()
	p.baseURL = baseURL
	return p
}

// scoreboard is the slice of the ESPN response we care about
type scoreboard struct {
	Events []struct {
		Date         string `json:"date"`
		Competitions []struct {
			Competitors []struct {
				HomeAway string `json:"homeAway"`
				Team     struct {
					Abbreviation string `json:"abbreviation"`
					DisplayName  string `json:"displayName"`
				} `json:"team"`
			} `json:"competitors"`
			Status struct {
				Type struct {
					State string `json:"state"` // pre, in, post
				} `json:"type"`
			} `json:"status"`
		} `json:"competitions"`
	} `json:"events"`
}

// TodaysGames fetches the sport's scoreboard and maps it to schedule entries.
// Teams ESPN names that our alias tables cannot resolve are skipped; their
// picks then surface in the filter's rejected list, which is the signal to
// extend the tables.
func (p *ESPNProvider) TodaysGames(ctx context.Context, sport models.Sport) ([]models.ScheduleEntry, error) {
	path, ok := espnPaths[sport]
	if !ok {
		return nil, fmt.Errorf("no schedule source for sport %s", sport)
	}

	url := fmt.Sprintf("%s/%s/scoreboard", p.baseURL, path)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ESPN API error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var sb scoreboard
	if err := json.NewDecoder(resp.Body).Decode(&sb); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	entries := make([]models.ScheduleEntry, 0, len(sb.Events))
	for _, event := range sb.Events {
		start, _ := time.Parse(time.RFC3339, event.Date)
		if start.IsZero() {
			start, _ = time.Parse("2006-01-02T15:04Z", event.Date)
		}

		for _, comp := range event.Competitions {
			var home, away models.TeamID
			for _, competitor := range comp.Competitors {
				id, found := canon.Team(sport, competitor.Team.Abbreviation)
				if !found {
					id, found = canon.Team(sport, competitor.Team.DisplayName)
				}
				if !found {
					continue
				}
				if competitor.HomeAway == "home" {
					home = id
				} else {
					away = id
				}
			}

			if home == "" || away == "" {
				continue
			}

			entries = append(entries, models.ScheduleEntry{
				Sport:     sport,
				HomeTeam:  home,
				AwayTeam:  away,
				StartTime: start,
				Status:    statusFromState(comp.Status.Type.State),
			})
		}
	}

	return entries, nil
}

func statusFromState(state string) models.GameStatus {
	switch state {
	case "in":
		return models.GameInProgress
	case "post":
		return models.GameFinal
	default:
		return models.GameScheduled
	}
}
