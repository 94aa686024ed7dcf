package testutil

import (
	"draft-board-service/internal/domain"
)

// SampleBio returns a minimal player bio fixture with the provided id and name.
func SampleBio(id int, name string) domain.PlayerBio {
	first, last := name, ""
	for i := 0; i < len(name); i++ {
		if name[i] == ' ' {
			first, last = name[:i], name[i+1:]
			break
		}
	}
	return domain.PlayerBio{
		PlayerID:    id,
		Name:        name,
		FirstName:   first,
		LastName:    last,
		BirthDate:   Str("2004-01-15"),
		Height:      Float(78),
		Weight:      Float(200),
		CurrentTeam: Str("Test Team"),
		League:      Str("Test League"),
	}
}

// SampleRanking builds a ranking for the player using the default scout panel,
// assigning the same rank for every source.
func SampleRanking(id int, rank float64) domain.ScoutRanking {
	ranks := make(map[string]*float64, len(domain.DefaultScoutSources))
	for _, source := range domain.DefaultScoutSources {
		v := rank
		ranks[source] = &v
	}
	return domain.ScoutRanking{PlayerID: id, Ranks: ranks}
}

// SampleDataset builds a dataset with the given bios and one ranking per bio,
// ranked in slice order starting at 1.
func SampleDataset(bios ...domain.PlayerBio) domain.Dataset {
	ds := domain.Dataset{Bio: bios}
	for i, bio := range bios {
		ds.ScoutRankings = append(ds.ScoutRankings, SampleRanking(bio.PlayerID, float64(i+1)))
	}
	return ds
}

// Float returns a pointer to the provided float64.
func Float(v float64) *float64 {
	return &v
}

// Str returns a pointer to the provided string.
func Str(v string) *string {
	return &v
}
