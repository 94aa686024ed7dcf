package fixture

import (
	"context"

	"draft-board-service/internal/domain"
)

// Provider returns a static draft class useful for local development and
// bootstrapping without a dataset file.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

// FetchDataset returns a deterministic three-player draft class.
func (p *Provider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	_ = ctx

	return domain.Dataset{
		Bio: []domain.PlayerBio{
			{
				PlayerID:    1,
				Name:        "Cooper Flagg",
				FirstName:   "Cooper",
				LastName:    "Flagg",
				BirthDate:   sptr("2006-12-21"),
				Height:      fptr(81),
				Weight:      fptr(205),
				HighSchool:  sptr("Montverde Academy"),
				HomeTown:    sptr("Newport"),
				HomeState:   sptr("Maine"),
				HomeCountry: sptr("USA"),
				Nationality: sptr("USA"),
				CurrentTeam: sptr("Duke"),
				League:      sptr("NCAA"),
				LeagueType:  sptr("College"),
			},
			{
				PlayerID:    2,
				Name:        "Dylan Harper",
				FirstName:   "Dylan",
				LastName:    "Harper",
				BirthDate:   sptr("2006-03-02"),
				Height:      fptr(78),
				Weight:      fptr(215),
				HomeTown:    sptr("Franklin Lakes"),
				HomeState:   sptr("New Jersey"),
				HomeCountry: sptr("USA"),
				Nationality: sptr("USA"),
				CurrentTeam: sptr("Rutgers"),
				League:      sptr("NCAA"),
				LeagueType:  sptr("College"),
			},
			{
				PlayerID:    3,
				Name:        "Ace Bailey",
				FirstName:   "Ace",
				LastName:    "Bailey",
				BirthDate:   sptr("2006-08-08"),
				Height:      fptr(82),
				Weight:      fptr(203),
				HomeTown:    sptr("Chattanooga"),
				HomeState:   sptr("Tennessee"),
				HomeCountry: sptr("USA"),
				Nationality: sptr("USA"),
				CurrentTeam: sptr("Rutgers"),
				League:      sptr("NCAA"),
				LeagueType:  sptr("College"),
			},
		},
		ScoutRankings: []domain.ScoutRanking{
			{PlayerID: 1, Ranks: map[string]*float64{
				"ESPN Rank":           fptr(1),
				"Sam Vecenie Rank":    fptr(1),
				"Kevin O'Connor Rank": fptr(1),
				"Kyle Boone Rank":     fptr(1),
				"Gary Parrish Rank":   fptr(1),
			}},
			{PlayerID: 2, Ranks: map[string]*float64{
				"ESPN Rank":           fptr(2),
				"Sam Vecenie Rank":    fptr(2),
				"Kevin O'Connor Rank": fptr(3),
				"Kyle Boone Rank":     fptr(2),
				"Gary Parrish Rank":   fptr(2),
			}},
			{PlayerID: 3, Ranks: map[string]*float64{
				"ESPN Rank":           fptr(3),
				"Sam Vecenie Rank":    fptr(5),
				"Kevin O'Connor Rank": fptr(2),
				"Kyle Boone Rank":     nil,
				"Gary Parrish Rank":   fptr(3),
			}},
		},
		Measurements: []domain.Measurement{
			{
				PlayerID:      1,
				HeightNoShoes: fptr(80.25),
				Wingspan:      fptr(84),
				Reach:         fptr(106.5),
				MaxVertical:   fptr(37.5),
				Weight:        fptr(205),
				HandLength:    fptr(9),
				HandWidth:     fptr(10.25),
			},
			{
				PlayerID:      2,
				HeightNoShoes: fptr(76.75),
				Wingspan:      fptr(80.5),
				Reach:         fptr(102),
				Weight:        fptr(215.2),
			},
		},
		GameLogs: []domain.GameLog{
			{
				PlayerID: 1, GameID: 101, Season: 2025, League: "NCAA",
				Date: "2025-02-17", Team: "Duke", TeamID: 10, OpponentID: 20,
				Opponent: "Virginia", GamesPlayed: 1,
				FGM: fptr(10), FGA: fptr(16), FGPct: fptr(62.5),
				TPM: fptr(2), TPA: fptr(5), FTM: fptr(6), FTA: fptr(7),
				Rebounds: fptr(9), Assists: fptr(5), Steals: fptr(2),
				Blocks: fptr(1), Turnovers: fptr(2), PersonalFouls: fptr(3),
				Points: fptr(28), PlusMinus: fptr(17),
			},
			{
				PlayerID: 1, GameID: 102, Season: 2025, League: "NCAA",
				Date: "2025-02-21", Team: "Duke", TeamID: 10, OpponentID: 21,
				Opponent: "Wake Forest", GamesPlayed: 1,
				FGM: fptr(7), FGA: fptr(12), Points: fptr(16),
				Rebounds: fptr(10), Assists: fptr(4),
			},
			{
				PlayerID: 2, GameID: 103, Season: 2025, League: "NCAA",
				Date: "2025-02-18", Team: "Rutgers", TeamID: 11, OpponentID: 22,
				Opponent: "Illinois", GamesPlayed: 1,
				FGM: fptr(8), FGA: fptr(15), Points: fptr(22),
				Rebounds: fptr(4), Assists: fptr(6),
			},
		},
		SeasonLogs: []domain.SeasonLog{
			{
				PlayerID: 1, Season: 2025, League: "NCAA", Team: "Duke",
				GamesPlayed: 37, GamesStarted: fptr(37),
				Minutes: fptr(1110), FGM: fptr(247), FGA: fptr(512),
				FGPct: fptr(48.2), TPM: fptr(45), TPA: fptr(117),
				TPPct: fptr(38.5), FTM: fptr(172), FTA: fptr(204),
				FTPct: fptr(84.3), OffensiveReb: fptr(48), DefensiveReb: fptr(230),
				TotalReb: fptr(278), Assists: fptr(158), Steals: fptr(52),
				Blocks: fptr(47), Turnovers: fptr(79), PersonalFouls: fptr(65),
				Points: fptr(711),
			},
			{
				PlayerID: 2, Season: 2025, League: "NCAA", Team: "Rutgers",
				GamesPlayed: 29, GamesStarted: fptr(29),
				Minutes: fptr(940), FGM: fptr(196), FGA: fptr(408),
				Points: fptr(557), TotalReb: fptr(134), Assists: fptr(117),
			},
			{
				PlayerID: 3, Season: 2025, League: "NCAA", Team: "Rutgers",
				GamesPlayed: 30, Minutes: fptr(1005), Points: fptr(525),
				TotalReb: fptr(218), Assists: fptr(39),
			},
		},
		ScoutingReports: []domain.ScoutingReport{
			{
				ReportID: "report-seed-1",
				Scout:    "Front Office",
				Report:   "Two-way wing with elite feel; projects as a lead initiator at the next level.",
				PlayerID: 1,
				Date:     sptr("2025-03-14"),
			},
			{
				ReportID: "report-seed-2",
				Scout:    "Regional Scout",
				Report:   "Downhill guard, finishes through contact. Jumper still streaky.",
				PlayerID: 2,
				Date:     sptr("2025-02-02"),
			},
		},
	}, nil
}
