package domain

import "testing"

func f(v float64) *float64 { return &v }

func TestPerGameDividesAndRounds(t *testing.T) {
	log := SeasonLog{
		PlayerID:    1,
		Season:      2025,
		League:      "NCAA",
		Team:        "Duke",
		GamesPlayed: 37,
		Minutes:     f(1110.0),
		Points:      f(711.0),
		TotalReb:    f(278.0),
		Assists:     f(158.0),
	}

	got := log.PerGame()

	if *got.Minutes != 30.0 {
		t.Fatalf("expected 30.0 minutes per game, got %v", *got.Minutes)
	}
	if *got.Points != 19.2 {
		t.Fatalf("expected 19.2 points per game, got %v", *got.Points)
	}
	if *got.TotalReb != 7.5 {
		t.Fatalf("expected 7.5 rebounds per game, got %v", *got.TotalReb)
	}
	if *got.Assists != 4.3 {
		t.Fatalf("expected 4.3 assists per game, got %v", *got.Assists)
	}
}

func TestPerGameZeroGPUsesDivisorOne(t *testing.T) {
	log := SeasonLog{GamesPlayed: 0, Points: f(12.0)}
	got := log.PerGame()
	if *got.Points != 12.0 {
		t.Fatalf("expected degenerate per-game value 12.0, got %v", *got.Points)
	}

	log.GamesPlayed = -3
	got = log.PerGame()
	if *got.Points != 12.0 {
		t.Fatalf("expected negative GP to divide by one, got %v", *got.Points)
	}
}

func TestPerGameNullFieldsStayNull(t *testing.T) {
	log := SeasonLog{GamesPlayed: 10, Points: f(100.0)}
	got := log.PerGame()

	if got.Blocks != nil {
		t.Fatalf("null input must yield absent output, got %v", *got.Blocks)
	}
	if got.Steals != nil || got.Turnovers != nil || got.Minutes != nil {
		t.Fatalf("absent fields must stay absent")
	}
	if *got.Points != 10.0 {
		t.Fatalf("expected 10.0 points per game, got %v", *got.Points)
	}
}

func TestPerGamePassThroughFields(t *testing.T) {
	log := SeasonLog{
		Season:       2024,
		League:       "EuroLeague",
		Team:         "Ratiopharm Ulm",
		GamesPlayed:  34,
		GamesStarted: f(20.0),
		FGPct:        f(48.7),
		Wins:         f(22.0),
	}
	got := log.PerGame()

	if got.Season != 2024 || got.League != "EuroLeague" || got.Team != "Ratiopharm Ulm" {
		t.Fatalf("identity fields must pass through unchanged")
	}
	if got.GamesPlayed != 34 || *got.GamesStarted != 20.0 {
		t.Fatalf("GP/GS must pass through unchanged")
	}
	if *got.FGPct != 48.7 {
		t.Fatalf("percentage fields must pass through unchanged, got %v", *got.FGPct)
	}
	if *got.Wins != 22.0 {
		t.Fatalf("record fields must pass through unchanged, got %v", *got.Wins)
	}
}

func TestDatasetCounts(t *testing.T) {
	ds := Dataset{
		Bio:        []PlayerBio{{PlayerID: 1}},
		SeasonLogs: []SeasonLog{{PlayerID: 1}, {PlayerID: 1}},
	}
	counts := ds.Counts()
	if counts["bio"] != 1 || counts["seasonLogs"] != 2 || counts["game_logs"] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
