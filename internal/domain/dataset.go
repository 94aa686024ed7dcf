package domain

// Dataset is the six-relation draft document as it appears on disk or over
// the wire. All relations are immutable after load.
type Dataset struct {
	Bio             []PlayerBio      `json:"bio"`
	ScoutRankings   []ScoutRanking   `json:"scoutRankings"`
	Measurements    []Measurement    `json:"measurements"`
	GameLogs        []GameLog        `json:"game_logs"`
	SeasonLogs      []SeasonLog      `json:"seasonLogs"`
	ScoutingReports []ScoutingReport `json:"scoutingReports"`
}

// Counts summarizes relation sizes for load logging.
func (d Dataset) Counts() map[string]int {
	return map[string]int{
		"bio":             len(d.Bio),
		"scoutRankings":   len(d.ScoutRankings),
		"measurements":    len(d.Measurements),
		"game_logs":       len(d.GameLogs),
		"seasonLogs":      len(d.SeasonLogs),
		"scoutingReports": len(d.ScoutingReports),
	}
}
