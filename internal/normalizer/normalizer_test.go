package normalizer_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/pickline/consensus/internal/normalizer"
	"github.com/pickline/consensus/pkg/contracts"
	"github.com/pickline/consensus/pkg/models"
)

var testNow = time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC)

func testConfig() contracts.EngineConfig {
	return contracts.DefaultEngineConfig()
}

func TestParseBet(t *testing.T) {
	tests := []struct {
		name     string
		betText  string
		lineText string
		wantType models.BetType
		wantLine *float64
	}{
		{"spread negative", "", "-3.5", models.BetTypeSpread, f(-3.5)},
		{"spread positive", "", "+4", models.BetTypeSpread, f(4)},
		{"spread with odds", "spread", "-3.5 -110", models.BetTypeSpread, f(-3.5)},
		{"first half spread", "1H", "-3.5", models.BetTypeSpread, f(-3.5)},
		{"second half spread", "2H", "+4.5", models.BetTypeSpread, f(4.5)},
		{"half marker alone", "1H", "", models.BetTypeOther, nil},
		{"pickem", "", "PK", models.BetTypeSpread, f(0)},
		{"pickem spelled", "pick'em", "", models.BetTypeSpread, f(0)},
		{"moneyline price", "", "-110", models.BetTypeMoneyline, nil},
		{"moneyline marker", "ML", "", models.BetTypeMoneyline, nil},
		{"moneyline dog", "", "+240", models.BetTypeMoneyline, nil},
		{"total over under", "O/U 47.5", "", models.BetTypeTotal, f(47.5)},
		{"total over", "Over 212.5", "", models.BetTypeTotal, f(212.5)},
		{"total under with odds", "Under", "8.5 -115", models.BetTypeTotal, f(8.5)},
		{"total no number", "over", "", models.BetTypeTotal, nil},
		{"empty", "", "", models.BetTypeOther, nil},
		{"no signal", "best bet", "", models.BetTypeOther, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotLine := normalizer.ParseBet(tt.betText, tt.lineText)
			if gotType != tt.wantType {
				t.Errorf("ParseBet(%q, %q) type = %v, want %v", tt.betText, tt.lineText, gotType, tt.wantType)
			}
			if !lineEq(gotLine, tt.wantLine) {
				t.Errorf("ParseBet(%q, %q) line = %v, want %v", tt.betText, tt.lineText, fv(gotLine), fv(tt.wantLine))
			}
		})
	}
}

// Zero is a valid spread; the parser must distinguish it from "no line".
func TestParseBetZeroLineIsNotAbsent(t *testing.T) {
	gotType, gotLine := normalizer.ParseBet("", "PK")
	if gotType != models.BetTypeSpread {
		t.Fatalf("type = %v, want SPREAD", gotType)
	}
	if gotLine == nil || *gotLine != 0 {
		t.Fatalf("line = %v, want explicit 0", fv(gotLine))
	}

	_, absent := normalizer.ParseBet("ML", "")
	if absent != nil {
		t.Fatalf("moneyline line = %v, want absent", fv(absent))
	}
}

func TestNormalizeCanonicalizes(t *testing.T) {
	raws := []models.RawPick{
		{Capper: " Vegas Vic ", Sport: "NBA", Team: "LA Lakers", BetText: "spread", Line: "-3.5", Source: "feed-a"},
	}

	picks, diag := normalizer.Normalize(raws, testConfig(), testNow)
	if len(picks) != 1 {
		t.Fatalf("got %d picks, want 1 (diag: %+v)", len(picks), diag)
	}

	p := picks[0]
	if p.Capper != "Vegas Vic" {
		t.Errorf("capper = %q, want trimmed", p.Capper)
	}
	if p.Sport != models.SportNBA {
		t.Errorf("sport = %v, want NBA", p.Sport)
	}
	if p.TeamID != "NBA:LAL" {
		t.Errorf("team = %v, want NBA:LAL", p.TeamID)
	}
	if p.BetType != models.BetTypeSpread || p.Line == nil || *p.Line != -3.5 {
		t.Errorf("bet = %v %v, want SPREAD -3.5", p.BetType, fv(p.Line))
	}
	if p.Raw == nil || p.Raw.Source != "feed-a" {
		t.Errorf("raw back-reference missing")
	}
}

func TestNormalizeRetainsUnknowns(t *testing.T) {
	raws := []models.RawPick{
		{Capper: "A", Sport: "NBA", Team: "Monstars", Line: "-3.5"},
		{Capper: "B", Sport: "quidditch", Team: "Chudley Cannons", Line: "-3.5"},
	}

	picks, diag := normalizer.Normalize(raws, testConfig(), testNow)
	if len(picks) != 2 || diag.Dropped != 0 {
		t.Fatalf("got %d picks dropped=%d, want 2 dropped=0", len(picks), diag.Dropped)
	}

	if picks[0].TeamID != models.TeamUnknown {
		t.Errorf("unresolvable team = %v, want UNKNOWN marker", picks[0].TeamID)
	}
	if picks[1].Sport != models.SportUnknown {
		t.Errorf("unresolvable sport = %v, want UNKNOWN marker", picks[1].Sport)
	}
}

func TestNormalizeDropsMalformed(t *testing.T) {
	raws := []models.RawPick{
		{Capper: "", Sport: "NBA", Team: "Lakers"},
		{Capper: "A", Sport: "NBA", Team: ""},
		{Capper: "B", Sport: "NBA", Team: "Lakers", PickedAt: "not a date"},
		{Capper: "C", Sport: "NBA", Team: "Lakers", Line: "-3.5"},
	}

	picks, diag := normalizer.Normalize(raws, testConfig(), testNow)
	if len(picks) != 1 {
		t.Fatalf("got %d picks, want 1", len(picks))
	}
	if diag.Input != 4 || diag.Output != 1 || diag.Dropped != 3 {
		t.Errorf("diag = %+v, want input=4 output=1 dropped=3", diag)
	}
	if diag.Reasons[normalizer.ReasonMissingCapper] != 1 ||
		diag.Reasons[normalizer.ReasonMissingTeam] != 1 ||
		diag.Reasons[normalizer.ReasonBadDate] != 1 {
		t.Errorf("reasons = %v", diag.Reasons)
	}
}

func TestNormalizeDateResolution(t *testing.T) {
	tests := []struct {
		name     string
		pickedAt string
		want     string
	}{
		{"iso date", "2026-01-10", "2026-01-10"},
		{"us date", "01/10/2026", "2026-01-10"},
		{"short us date", "1/10/26", "2026-01-10"},
		{"written date", "Jan 10, 2026", "2026-01-10"},
		// 03:30 UTC is 22:30 the previous evening in the reporting timezone;
		// the day boundary is 00:00 local, so the pick belongs to Jan 9.
		{"near midnight utc", "2026-01-10T03:30:00Z", "2026-01-09"},
		// Empty resolves to "today" (testNow) in the reporting timezone
		{"empty is today", "", "2026-01-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raws := []models.RawPick{
				{Capper: "A", Sport: "NBA", Team: "Lakers", Line: "-3.5", PickedAt: tt.pickedAt},
			}
			picks, diag := normalizer.Normalize(raws, testConfig(), testNow)
			if len(picks) != 1 {
				t.Fatalf("dropped: %+v", diag)
			}
			if picks[0].Date != tt.want {
				t.Errorf("date = %q, want %q", picks[0].Date, tt.want)
			}
		})
	}
}

func TestReportingDay(t *testing.T) {
	// 03:30 UTC is still the previous evening in America/New_York
	lateNight := time.Date(2026, 1, 15, 3, 30, 0, 0, time.UTC)
	if got := normalizer.ReportingDay(testConfig(), lateNight); got != "2026-01-14" {
		t.Errorf("ReportingDay = %q, want 2026-01-14", got)
	}
	if got := normalizer.ReportingDay(testConfig(), testNow); got != "2026-01-15" {
		t.Errorf("ReportingDay = %q, want 2026-01-15", got)
	}
}

// Normalization is a pure function: identical input yields identical output.
func TestNormalizePurity(t *testing.T) {
	raws := []models.RawPick{
		{Capper: "A", Sport: "NBA", Team: "Lakers", BetText: "spread", Line: "-3.5", PickedAt: "2026-01-10"},
		{Capper: "B", Sport: "NFL", Team: "Chiefs", Line: "O/U 47.5", PickedAt: "2026-01-10"},
		{Capper: "", Sport: "NBA", Team: "Celtics"},
	}

	first, diag1 := normalizer.Normalize(raws, testConfig(), testNow)
	second, diag2 := normalizer.Normalize(raws, testConfig(), testNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalize not deterministic")
	}
	if !reflect.DeepEqual(diag1, diag2) {
		t.Errorf("diagnostics not deterministic")
	}
}

func f(v float64) *float64 { return &v }

func lineEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fv(v *float64) interface{} {
	if v == nil {
		return "<nil>"
	}
	return *v
}
