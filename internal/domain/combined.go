package domain

// CombinedPlayer is the derived per-player board row: the bio joined with the
// matching scout ranking record (when one exists) and the average of its
// non-null ranks across the discovered sources.
type CombinedPlayer struct {
	PlayerBio
	Rankings *ScoutRanking `json:"scoutRankings,omitempty"`
	AvgRank  *float64      `json:"avgRank"`
}

// BoardResponse is the payload returned by /board.
type BoardResponse struct {
	Sources     []string         `json:"sources"`
	Count       int              `json:"count"`
	TopProspect *CombinedPlayer  `json:"topProspect,omitempty"`
	Players     []CombinedPlayer `json:"players"`
}
