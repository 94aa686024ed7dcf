package domain

import "math"

// GameLog is one player's line for a single game.
type GameLog struct {
	PlayerID       int      `json:"playerId"`
	GameID         int      `json:"gameId"`
	Season         int      `json:"season"`
	League         string   `json:"league"`
	Date           string   `json:"date"`
	Team           string   `json:"team"`
	TeamID         int      `json:"teamId"`
	OpponentID     int      `json:"opponentId"`
	IsHome         *int     `json:"isHome"`
	Opponent       string   `json:"opponent"`
	HomeTeamPts    *float64 `json:"homeTeamPts,omitempty"`
	VisitorTeamPts *float64 `json:"visitorTeamPts,omitempty"`
	GamesPlayed    int      `json:"gp"`
	GamesStarted   *float64 `json:"gs,omitempty"`
	TimePlayed     *string  `json:"timePlayed,omitempty"`
	FGM            *float64 `json:"fgm,omitempty"`
	FGA            *float64 `json:"fga,omitempty"`
	FGPct          *float64 `json:"fg%,omitempty"`
	TPM            *float64 `json:"tpm,omitempty"`
	TPA            *float64 `json:"tpa,omitempty"`
	TPPct          *float64 `json:"tp%,omitempty"`
	FTM            *float64 `json:"ftm,omitempty"`
	FTA            *float64 `json:"fta,omitempty"`
	FTPct          *float64 `json:"ft%,omitempty"`
	OffensiveReb   *float64 `json:"oreb,omitempty"`
	DefensiveReb   *float64 `json:"dreb,omitempty"`
	Rebounds       *float64 `json:"reb,omitempty"`
	Assists        *float64 `json:"ast,omitempty"`
	Steals         *float64 `json:"stl,omitempty"`
	Blocks         *float64 `json:"blk,omitempty"`
	Turnovers      *float64 `json:"tov,omitempty"`
	PersonalFouls  *float64 `json:"pf,omitempty"`
	Points         *float64 `json:"pts,omitempty"`
	PlusMinus      *float64 `json:"plusMinus,omitempty"`
}

// SeasonLog carries season totals for one (season, team) stint. Numeric
// fields are totals, not averages; PerGame derives the averaged view.
type SeasonLog struct {
	PlayerID      int      `json:"playerId"`
	Season        int      `json:"Season"`
	League        string   `json:"League"`
	Team          string   `json:"Team"`
	Wins          *float64 `json:"w,omitempty"`
	Losses        *float64 `json:"l,omitempty"`
	GamesPlayed   int      `json:"GP"`
	GamesStarted  *float64 `json:"GS,omitempty"`
	Minutes       *float64 `json:"MP,omitempty"`
	FGM           *float64 `json:"FGM,omitempty"`
	FGA           *float64 `json:"FGA,omitempty"`
	FGPct         *float64 `json:"FG%,omitempty"`
	TPM           *float64 `json:"3PM,omitempty"`
	TPA           *float64 `json:"3PA,omitempty"`
	TPPct         *float64 `json:"3P%,omitempty"`
	FTM           *float64 `json:"FTM,omitempty"`
	FTA           *float64 `json:"FTA,omitempty"`
	FTPct         *float64 `json:"FT%,omitempty"`
	OffensiveReb  *float64 `json:"ORB,omitempty"`
	DefensiveReb  *float64 `json:"DRB,omitempty"`
	TotalReb      *float64 `json:"TRB,omitempty"`
	Assists       *float64 `json:"AST,omitempty"`
	Steals        *float64 `json:"STL,omitempty"`
	Blocks        *float64 `json:"BLK,omitempty"`
	Turnovers     *float64 `json:"TOV,omitempty"`
	PersonalFouls *float64 `json:"PF,omitempty"`
	Points        *float64 `json:"PTS,omitempty"`
}

// PerGame converts season totals into per-game averages rounded to one
// decimal. A GP of zero or less divides by one, which degenerates to the
// season total; null inputs stay null. Identity, percentage, and record
// fields pass through unchanged.
func (l SeasonLog) PerGame() SeasonLog {
	divisor := 1.0
	if l.GamesPlayed > 0 {
		divisor = float64(l.GamesPlayed)
	}

	out := l
	out.Minutes = perGameValue(l.Minutes, divisor)
	out.FGM = perGameValue(l.FGM, divisor)
	out.FGA = perGameValue(l.FGA, divisor)
	out.TPM = perGameValue(l.TPM, divisor)
	out.TPA = perGameValue(l.TPA, divisor)
	out.FTM = perGameValue(l.FTM, divisor)
	out.FTA = perGameValue(l.FTA, divisor)
	out.OffensiveReb = perGameValue(l.OffensiveReb, divisor)
	out.DefensiveReb = perGameValue(l.DefensiveReb, divisor)
	out.TotalReb = perGameValue(l.TotalReb, divisor)
	out.Assists = perGameValue(l.Assists, divisor)
	out.Steals = perGameValue(l.Steals, divisor)
	out.Blocks = perGameValue(l.Blocks, divisor)
	out.Turnovers = perGameValue(l.Turnovers, divisor)
	out.PersonalFouls = perGameValue(l.PersonalFouls, divisor)
	out.Points = perGameValue(l.Points, divisor)
	return out
}

func perGameValue(total *float64, divisor float64) *float64 {
	if total == nil {
		return nil
	}
	avg := math.Round(*total/divisor*10) / 10
	return &avg
}
