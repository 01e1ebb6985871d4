package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pickline/consensus/internal/consensus"
	"github.com/pickline/consensus/internal/handlers"
	"github.com/pickline/consensus/internal/pipeline"
	"github.com/pickline/consensus/internal/testutil"
	"github.com/pickline/consensus/pkg/contracts"
	"github.com/pickline/consensus/pkg/models"
)

const day = "2026-01-15"

// stubRunner serves a canned pipeline result so handler behavior is tested
// without feeds or schedules.
type stubRunner struct {
	result pipeline.Result
}

func (s *stubRunner) Run(context.Context) pipeline.Result {
	return s.result
}

func fixtureResult(t *testing.T) pipeline.Result {
	t.Helper()

	cfg := contracts.DefaultEngineConfig()
	picks := []models.NormalizedPick{
		testutil.Pick("A", models.SportNBA, "NBA:LAL", models.BetTypeSpread, -3.5, day),
		testutil.Pick("B", models.SportNBA, "NBA:LAL", models.BetTypeSpread, -3.5, day),
		testutil.Pick("C", models.SportNBA, "NBA:LAL", models.BetTypeSpread, -3.5, day),
		testutil.Pick("A", models.SportNFL, "NFL:KC", models.BetTypeTotal, 47.5, day),
		testutil.Pick("B", models.SportNFL, "NFL:KC", models.BetTypeTotal, 47.5, day),
		testutil.Pick("D", models.SportMLB, "MLB:NYY", models.BetTypeMoneyline, 0, day),
	}
	groups := consensus.BuildConsensus(picks, cfg)
	formatted := consensus.FormatConsensus(groups, cfg, nil)

	return pipeline.Result{
		Success:     true,
		TodaysPicks: picks,
		Rejected:    []models.RejectedPick{},
		Groups:      groups,
		Formatted:   formatted,
		DailyBets:   consensus.BuildDailyBets(formatted, picks, len(picks), day),
	}
}

func newHandler(t *testing.T) *handlers.Handler {
	t.Helper()
	return handlers.NewHandler(&stubRunner{result: fixtureResult(t)}, contracts.DefaultEngineConfig(), nil)
}

func get(t *testing.T, h http.HandlerFunc, target string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v\n%s", err, rec.Body.String())
	}
	return rec, body
}

func intField(t *testing.T, body map[string]json.RawMessage, key string) int {
	t.Helper()
	var v int
	if err := json.Unmarshal(body[key], &v); err != nil {
		t.Fatalf("field %q: %v", key, err)
	}
	return v
}

func groupsField(t *testing.T, body map[string]json.RawMessage, key string) []models.ConsensusGroup {
	t.Helper()
	var v []models.ConsensusGroup
	if err := json.Unmarshal(body[key], &v); err != nil {
		t.Fatalf("field %q: %v", key, err)
	}
	return v
}

func TestHealthCheck(t *testing.T) {
	rec, body := get(t, newHandler(t).HealthCheck, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var status string
	if err := json.Unmarshal(body["status"], &status); err != nil || status != "healthy" {
		t.Errorf("status field = %q (%v)", status, err)
	}
}

func TestGetConsensus(t *testing.T) {
	rec, body := get(t, newHandler(t).GetConsensus, "/api/v1/consensus")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	// Default min_cappers (2) drops the MLB singleton
	if total := intField(t, body, "total"); total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	groups := groupsField(t, body, "groups")
	if len(groups) != 2 || groups[0].CapperCount != 3 {
		t.Errorf("groups = %d, first count = %d; want 2 groups strongest first", len(groups), groups[0].CapperCount)
	}

	var sports []models.Sport
	if err := json.Unmarshal(body["sports"], &sports); err != nil {
		t.Fatal(err)
	}
	// Distinct sports cover the full aggregation, including the singleton
	if len(sports) != 3 {
		t.Errorf("sports = %v, want 3 distinct", sports)
	}

	var cappers []string
	if err := json.Unmarshal(body["cappers"], &cappers); err != nil {
		t.Fatal(err)
	}
	if len(cappers) != 4 {
		t.Errorf("cappers = %v, want 4 distinct", cappers)
	}
}

func TestGetConsensusMinCappersFilter(t *testing.T) {
	_, body := get(t, newHandler(t).GetConsensus, "/api/v1/consensus?min_cappers=3")
	if total := intField(t, body, "total"); total != 1 {
		t.Errorf("total = %d, want 1 group with 3+ cappers", total)
	}

	// min_cappers=0 exposes the full aggregation, singletons included
	_, body = get(t, newHandler(t).GetConsensus, "/api/v1/consensus?min_cappers=0")
	if total := intField(t, body, "total"); total != 3 {
		t.Errorf("total = %d, want all 3 groups", total)
	}
}

func TestGetConsensusSportFilter(t *testing.T) {
	_, body := get(t, newHandler(t).GetConsensus, "/api/v1/consensus?sport=nfl")
	if total := intField(t, body, "total"); total != 1 {
		t.Errorf("total = %d, want 1 NFL group", total)
	}

	_, body = get(t, newHandler(t).GetConsensus, "/api/v1/consensus?sport=ALL")
	if total := intField(t, body, "total"); total != 2 {
		t.Errorf("sport=ALL total = %d, want 2", total)
	}
}

// An unrecognized sport yields an empty result, not an error.
func TestGetConsensusUnknownSportDegradesGracefully(t *testing.T) {
	rec, body := get(t, newHandler(t).GetConsensus, "/api/v1/consensus?sport=cricket")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if total := intField(t, body, "total"); total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
	if groups := groupsField(t, body, "groups"); len(groups) != 0 {
		t.Errorf("groups = %d, want empty page", len(groups))
	}
}

func TestGetConsensusPagination(t *testing.T) {
	h := newHandler(t)

	// total reflects the filtered set, not the page
	_, body := get(t, h.GetConsensus, "/api/v1/consensus?min_cappers=0&limit=2&offset=0")
	if total := intField(t, body, "total"); total != 3 {
		t.Errorf("total = %d, want 3 regardless of page", total)
	}
	first := groupsField(t, body, "groups")
	if len(first) != 2 {
		t.Fatalf("page 1 = %d groups, want 2", len(first))
	}

	_, body = get(t, h.GetConsensus, "/api/v1/consensus?min_cappers=0&limit=2&offset=2")
	second := groupsField(t, body, "groups")
	if len(second) != 1 {
		t.Fatalf("page 2 = %d groups, want 1", len(second))
	}

	// Pages are contiguous and non-overlapping
	if first[0].CapperCount != 3 || first[1].CapperCount != 2 || second[0].CapperCount != 1 {
		t.Errorf("pages out of order: %d %d | %d",
			first[0].CapperCount, first[1].CapperCount, second[0].CapperCount)
	}

	// Offset past the end is an empty page, same shape
	_, body = get(t, h.GetConsensus, "/api/v1/consensus?min_cappers=0&limit=2&offset=50")
	if groups := groupsField(t, body, "groups"); len(groups) != 0 {
		t.Errorf("past-the-end page = %d groups, want 0", len(groups))
	}
}

func TestGetConsensusRejectsBadPaging(t *testing.T) {
	tests := []string{
		"/api/v1/consensus?limit=-1",
		"/api/v1/consensus?offset=-5",
		"/api/v1/consensus?min_cappers=-2",
	}
	for _, target := range tests {
		rec, _ := get(t, newHandler(t).GetConsensus, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}

func TestGetTopConsensus(t *testing.T) {
	_, body := get(t, newHandler(t).GetTopConsensus, "/api/v1/consensus/top")
	top := groupsField(t, body, "top")
	if len(top) != 2 {
		t.Fatalf("top = %d groups, want 2", len(top))
	}
	if top[0].CapperCount < top[1].CapperCount {
		t.Errorf("top list not ranked: %d before %d", top[0].CapperCount, top[1].CapperCount)
	}
}

func TestGetDailyBets(t *testing.T) {
	_, body := get(t, newHandler(t).GetDailyBets, "/api/v1/daily-bets")

	var daily models.DailyBetsOutput
	if err := json.Unmarshal(body["daily_bets"], &daily); err != nil {
		t.Fatal(err)
	}
	if daily.Date != day || daily.TotalGroups != 2 || daily.TotalPicks != 6 {
		t.Errorf("daily bets = date %q groups %d picks %d, want %s/2/6", daily.Date, daily.TotalGroups, daily.TotalPicks, day)
	}
}

func TestGetPicksFilters(t *testing.T) {
	h := newHandler(t)

	_, body := get(t, h.GetPicks, "/api/v1/picks?sport=NBA")
	if total := intField(t, body, "total"); total != 3 {
		t.Errorf("NBA total = %d, want 3", total)
	}

	_, body = get(t, h.GetPicks, "/api/v1/picks?capper=a")
	if total := intField(t, body, "total"); total != 2 {
		t.Errorf("capper=a total = %d, want 2 (case-insensitive)", total)
	}

	_, body = get(t, h.GetPicks, "/api/v1/picks?sport=NFL&capper=A")
	if total := intField(t, body, "total"); total != 1 {
		t.Errorf("combined filter total = %d, want 1", total)
	}
}

func TestDegradedRunStillResponds(t *testing.T) {
	stub := &stubRunner{result: pipeline.Result{
		Success:       false,
		Message:       "no feed data available: all sources failed",
		FailedSources: []string{"feed-a", "feed-b"},
		TodaysPicks:   []models.NormalizedPick{},
		Rejected:      []models.RejectedPick{},
		Groups:        []models.ConsensusGroup{},
	}}
	h := handlers.NewHandler(stub, contracts.DefaultEngineConfig(), nil)

	rec, body := get(t, h.GetConsensus, "/api/v1/consensus")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with degraded payload", rec.Code)
	}

	var success bool
	if err := json.Unmarshal(body["success"], &success); err != nil || success {
		t.Errorf("success = %v, want false", success)
	}
	var message string
	if err := json.Unmarshal(body["message"], &message); err != nil || message == "" {
		t.Errorf("message missing from degraded response")
	}
	if total := intField(t, body, "total"); total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
}

func TestLiveConsensusDisabled(t *testing.T) {
	h := handlers.NewHandler(&stubRunner{}, contracts.DefaultEngineConfig(), nil)
	rec, _ := get(t, h.LiveConsensus, "/api/v1/consensus/live")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when hub is nil", rec.Code)
	}
}
