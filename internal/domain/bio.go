package domain

// PlayerBio is the biographical record for one draft prospect. playerId is
// the primary key shared by every relation in the dataset.
type PlayerBio struct {
	PlayerID        int      `json:"playerId"`
	Name            string   `json:"name"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	BirthDate       *string  `json:"birthDate,omitempty"`
	Height          *float64 `json:"height,omitempty"`
	Weight          *float64 `json:"weight,omitempty"`
	HighSchool      *string  `json:"highSchool,omitempty"`
	HighSchoolState *string  `json:"highSchoolState,omitempty"`
	HomeTown        *string  `json:"homeTown,omitempty"`
	HomeState       *string  `json:"homeState,omitempty"`
	HomeCountry     *string  `json:"homeCountry,omitempty"`
	Nationality     *string  `json:"nationality,omitempty"`
	PhotoURL        *string  `json:"photoUrl,omitempty"`
	CurrentTeam     *string  `json:"currentTeam,omitempty"`
	League          *string  `json:"league,omitempty"`
	LeagueType      *string  `json:"leagueType,omitempty"`
}

// TeamName returns the current team, or "" when unknown.
func (b PlayerBio) TeamName() string {
	if b.CurrentTeam == nil {
		return ""
	}
	return *b.CurrentTeam
}
