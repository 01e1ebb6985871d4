package canon_test

import (
	"testing"

	"github.com/pickline/consensus/internal/canon"
	"github.com/pickline/consensus/pkg/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  LA  Lakers ", "la lakers"},
		{"L.A. Lakers", "la lakers"},
		{"ST-LOUIS", "st louis"},
		{"Pick'em", "pickem"},
		{"", ""},
		{"  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := canon.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSport(t *testing.T) {
	tests := []struct {
		in   string
		want models.Sport
	}{
		{"NBA", models.SportNBA},
		{"nba", models.SportNBA},
		{" Basketball ", models.SportNBA},
		{"NFL", models.SportNFL},
		{"college football", models.SportNCAAF},
		{"CFB", models.SportNCAAF},
		{"NCAAM", models.SportNCAAB},
		{"soccer", models.SportOther},
		{"UFC", models.SportOther},
		{"quidditch", models.SportUnknown},
		{"", models.SportUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := canon.Sport(tt.in); got != tt.want {
				t.Errorf("Sport(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTeamAliases(t *testing.T) {
	tests := []struct {
		sport models.Sport
		in    string
		want  models.TeamID
	}{
		{models.SportNBA, "Lakers", "NBA:LAL"},
		{models.SportNBA, "LA Lakers", "NBA:LAL"},
		{models.SportNBA, "Los Angeles Lakers", "NBA:LAL"},
		{models.SportNBA, "lal", "NBA:LAL"},
		{models.SportNBA, "Celtics", "NBA:BOS"},
		{models.SportNBA, "Sixers", "NBA:PHI"},
		{models.SportNFL, "Niners", "NFL:SF"},
		{models.SportNFL, "Green Bay", "NFL:GB"},
		{models.SportMLB, "Yankees", "MLB:NYY"},
		{models.SportNHL, "Maple Leafs", "NHL:TOR"},
		{models.SportNCAAB, "Tar Heels", "NCAAB:UNC"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sport)+"/"+tt.in, func(t *testing.T) {
			got, ok := canon.Team(tt.sport, tt.in)
			if !ok {
				t.Fatalf("Team(%v, %q) not found", tt.sport, tt.in)
			}
			if got != tt.want {
				t.Errorf("Team(%v, %q) = %v, want %v", tt.sport, tt.in, got, tt.want)
			}
		})
	}
}

// Short names collide across sports; the per-sport tables must keep them apart.
func TestTeamCrossSportCollisions(t *testing.T) {
	tests := []struct {
		sport models.Sport
		in    string
		want  models.TeamID
	}{
		{models.SportNFL, "Giants", "NFL:NYG"},
		{models.SportMLB, "Giants", "MLB:SF"},
		{models.SportNFL, "Cardinals", "NFL:ARI"},
		{models.SportMLB, "Cardinals", "MLB:STL"},
		{models.SportNFL, "Jets", "NFL:NYJ"},
		{models.SportNHL, "Jets", "NHL:WPG"},
		{models.SportNHL, "Rangers", "NHL:NYR"},
		{models.SportMLB, "Rangers", "MLB:TEX"},
		{models.SportNBA, "Kings", "NBA:SAC"},
		{models.SportNHL, "Kings", "NHL:LAK"},
	}

	for _, tt := range tests {
		t.Run(string(tt.sport)+"/"+tt.in, func(t *testing.T) {
			got, ok := canon.Team(tt.sport, tt.in)
			if !ok {
				t.Fatalf("Team(%v, %q) not found", tt.sport, tt.in)
			}
			if got != tt.want {
				t.Errorf("Team(%v, %q) = %v, want %v", tt.sport, tt.in, got, tt.want)
			}
		})
	}
}

func TestTeamUnknown(t *testing.T) {
	if id, ok := canon.Team(models.SportNBA, "Space Jam Monstars"); ok {
		t.Errorf("expected unknown, got %v", id)
	}
	if id, ok := canon.Team(models.SportUnknown, "Lakers"); ok {
		t.Errorf("expected unknown for unknown sport, got %v", id)
	}
	if id, ok := canon.Team(models.SportOther, "Lakers"); ok {
		t.Errorf("expected unknown for OTHER sport, got %v", id)
	}
}
