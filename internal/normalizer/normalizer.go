// Package normalizer turns heterogeneous raw feed records into the canonical
// NormalizedPick shape. Normalization is a pure function: identical input
// always yields identical output, and malformed records are dropped with a
// counted reason instead of aborting the batch.
package normalizer

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pickline/consensus/internal/canon"
	"github.com/pickline/consensus/pkg/contracts"
	"github.com/pickline/consensus/pkg/models"
)

// Drop reasons reported in NormalizeDiagnostics
const (
	ReasonMissingCapper = "missing capper"
	ReasonMissingTeam   = "missing team"
	ReasonBadDate       = "unparseable date"
)

var (
	totalRe  = regexp.MustCompile(`(?i)(?:^|[\s(])(o/u|ou|over|under|total)(?:[\s:)]|$)`)
	mlRe     = regexp.MustCompile(`(?i)(?:^|[\s(])(ml|moneyline|money\s*line)(?:[\s)]|$)`)
	pickemRe = regexp.MustCompile(`(?i)\bpk\b|pick\s*'?em`)
	// numberRe accepts unsigned numbers (totals, odds); signedNumberRe is for
	// spreads, where the sign is what separates the line from stray digits in
	// markers like "1H" or "2H".
	numberRe       = regexp.MustCompile(`[+-]?\d+(?:\.\d+)?`)
	signedNumberRe = regexp.MustCompile(`[+-]\d+(?:\.\d+)?`)
)

// dateFormats are tried in order against feed date expressions
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"1/2/06",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// Normalize converts a batch of raw feed records into normalized picks.
// now anchors "today" for records that carry no date; passing it in keeps the
// function pure and the day boundary testable.
func Normalize(raws []models.RawPick, cfg contracts.EngineConfig, now time.Time) ([]models.NormalizedPick, models.NormalizeDiagnostics) {
	diag := models.NormalizeDiagnostics{
		Input:   len(raws),
		Reasons: make(map[string]int),
	}

	loc := reportingLocation(cfg)
	picks := make([]models.NormalizedPick, 0, len(raws))

	for i := range raws {
		raw := &raws[i]

		capper := strings.TrimSpace(raw.Capper)
		if capper == "" {
			diag.Reasons[ReasonMissingCapper]++
			continue
		}

		if strings.TrimSpace(raw.Team) == "" {
			diag.Reasons[ReasonMissingTeam]++
			continue
		}

		date, ok := resolveDate(raw.PickedAt, loc, now)
		if !ok {
			diag.Reasons[ReasonBadDate]++
			continue
		}

		// Unresolvable sport/team values are retained as explicit unknown
		// markers so they form isolated singleton groups downstream instead
		// of silently vanishing.
		sport := canon.Sport(raw.Sport)
		teamID := models.TeamUnknown
		if id, found := canon.Team(sport, raw.Team); found {
			teamID = id
		}

		betType, line := ParseBet(raw.BetText, raw.Line)

		picks = append(picks, models.NormalizedPick{
			Capper:  capper,
			Sport:   sport,
			TeamID:  teamID,
			BetType: betType,
			Line:    line,
			Date:    date,
			Matchup: strings.TrimSpace(raw.Matchup),
			Raw:     raw,
		})
	}

	diag.Output = len(picks)
	diag.Dropped = diag.Input - diag.Output
	if len(diag.Reasons) == 0 {
		diag.Reasons = nil
	}

	return picks, diag
}

// ParseBet classifies the wager and extracts a numeric line from unstructured
// bet text. Precedence, highest first:
//
//  1. total markers (O/U, over, under, total) -> TOTAL, line from the text
//  2. pick'em markers (PK, pick'em)           -> SPREAD, line 0
//  3. signed number with magnitude < 100      -> SPREAD, that number
//  4. ML marker or magnitude >= 100           -> MONEYLINE, no line
//  5. anything else                           -> OTHER, no line
//
// A total's number can be unsigned ("O/U 47.5"); a spread's line must carry
// its sign, so stray unsigned digits in markers like "1H" never pose as the
// line. A spread's magnitude is always below 100 while American odds are
// always at or above 100, which is what keeps "-3.5" and "-110" apart. When
// no number is extractable the line stays absent: zero is a valid spread and
// total value and must not stand in for "unknown".
func ParseBet(betText, lineText string) (models.BetType, *float64) {
	text := strings.TrimSpace(betText + " " + lineText)
	if text == "" {
		return models.BetTypeOther, nil
	}

	if totalRe.MatchString(text) {
		return models.BetTypeTotal, firstNumber(text, numberRe, func(v float64) bool {
			return v > 0 && v < 400
		})
	}

	if pickemRe.MatchString(text) {
		zero := 0.0
		return models.BetTypeSpread, &zero
	}

	if line := firstNumber(text, signedNumberRe, func(v float64) bool {
		return v > -100 && v < 100
	}); line != nil {
		return models.BetTypeSpread, line
	}

	if mlRe.MatchString(text) || firstNumber(text, numberRe, func(v float64) bool {
		return v <= -100 || v >= 100
	}) != nil {
		// American odds only; the price is not a line
		return models.BetTypeMoneyline, nil
	}

	return models.BetTypeOther, nil
}

// firstNumber extracts the first token matching re that keep accepts (nil
// keeps everything). Returns nil when the text holds no acceptable number.
func firstNumber(text string, re *regexp.Regexp, keep func(float64) bool) *float64 {
	for _, match := range re.FindAllString(text, -1) {
		v, err := strconv.ParseFloat(match, 64)
		if err != nil {
			continue
		}
		if keep == nil || keep(v) {
			return &v
		}
	}
	return nil
}

// resolveDate reduces a feed date expression to one calendar day in the
// reporting timezone. The reporting day boundary is 00:00 local, so a
// timestamp near midnight resolves deterministically to the local day it
// falls in. An empty expression means "today"; an unparseable one fails.
func resolveDate(expr string, loc *time.Location, now time.Time) (string, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return now.In(loc).Format("2006-01-02"), true
	}

	// Unix seconds
	if sec, err := strconv.ParseInt(expr, 10, 64); err == nil && sec > 1_000_000_000 {
		return time.Unix(sec, 0).In(loc).Format("2006-01-02"), true
	}

	for _, layout := range dateFormats {
		t, err := time.ParseInLocation(layout, expr, loc)
		if err != nil {
			continue
		}
		return t.In(loc).Format("2006-01-02"), true
	}

	return "", false
}

// ReportingDay formats now as a calendar day in the configured reporting
// timezone. This is the day all "today" views are labeled with.
func ReportingDay(cfg contracts.EngineConfig, now time.Time) string {
	return now.In(reportingLocation(cfg)).Format("2006-01-02")
}

// reportingLocation loads the configured reporting timezone, falling back to
// UTC when the zone name is invalid.
func reportingLocation(cfg contracts.EngineConfig) *time.Location {
	loc, err := time.LoadLocation(cfg.ReportingTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
