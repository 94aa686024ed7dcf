package profile

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"draft-board-service/internal/domain"
	"draft-board-service/internal/timeutil"
)

// ErrPlayerNotFound signals an unknown player id or name.
var ErrPlayerNotFound = errors.New("player not found")

// Names closer than this Levenshtein distance count as a lookup match.
const maxLookupDistance = 3

// Store defines the dataset view a player profile needs.
type Store interface {
	ListBios() []domain.PlayerBio
	GetBio(id int) (domain.PlayerBio, bool)
	RankingFor(id int) (domain.ScoutRanking, bool)
	ScoutSources() []string
	MeasurementFor(id int) (domain.Measurement, bool)
	GameLogsFor(id int) []domain.GameLog
	SeasonLogsFor(id int) []domain.SeasonLog
}

// SeasonLine pairs a season's raw totals with the per-game averaged view.
type SeasonLine struct {
	Totals  domain.SeasonLog `json:"totals"`
	PerGame domain.SeasonLog `json:"perGame"`
}

// Profile is the full single-player payload.
type Profile struct {
	Bio          domain.PlayerBio    `json:"bio"`
	Age          *int                `json:"age,omitempty"`
	Rankings     *domain.ScoutRanking `json:"scoutRankings,omitempty"`
	AvgRank      *float64            `json:"avgRank"`
	Measurements *domain.Measurement `json:"measurements,omitempty"`
	Seasons      []int               `json:"seasons"`
	SeasonLogs   []SeasonLine        `json:"seasonLogs"`
	GameLogs     []domain.GameLog    `json:"gameLogs"`
}

// Service assembles single-player profiles from the loaded dataset.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// WithNow overrides the clock; intended for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// Profile returns the full profile for one player. A season of zero or less
// keeps every season; a positive season keeps only that season's logs.
// Seasons always lists every season the player appeared in, newest first,
// regardless of the filter.
func (s *Service) Profile(id int, season int) (Profile, error) {
	bio, ok := s.store.GetBio(id)
	if !ok {
		return Profile{}, ErrPlayerNotFound
	}

	p := Profile{Bio: bio}
	if bio.BirthDate != nil {
		if age, ok := timeutil.Age(*bio.BirthDate, s.now()); ok {
			p.Age = &age
		}
	}
	if ranking, ok := s.store.RankingFor(id); ok {
		r := ranking
		p.Rankings = &r
		p.AvgRank = r.AverageOver(s.store.ScoutSources())
	}
	if m, ok := s.store.MeasurementFor(id); ok {
		measurement := m
		p.Measurements = &measurement
	}

	seasonLogs := s.store.SeasonLogsFor(id)
	p.Seasons = distinctSeasons(seasonLogs)
	p.SeasonLogs = make([]SeasonLine, 0, len(seasonLogs))
	for _, log := range seasonLogs {
		if season > 0 && log.Season != season {
			continue
		}
		p.SeasonLogs = append(p.SeasonLogs, SeasonLine{Totals: log, PerGame: log.PerGame()})
	}

	p.GameLogs = make([]domain.GameLog, 0)
	for _, log := range s.store.GameLogsFor(id) {
		if season > 0 && log.Season != season {
			continue
		}
		p.GameLogs = append(p.GameLogs, log)
	}

	return p, nil
}

// LookupByName resolves a player by name, tolerating small typos. Exact
// case-insensitive matches win; otherwise the closest name within the
// distance threshold does. Ties keep the earlier player in dataset order.
func (s *Service) LookupByName(name string) (domain.PlayerBio, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return domain.PlayerBio{}, ErrPlayerNotFound
	}

	bios := s.store.ListBios()
	best := -1
	bestDistance := maxLookupDistance + 1
	for i, bio := range bios {
		candidate := strings.ToLower(bio.Name)
		if candidate == needle {
			return bio, nil
		}
		if d := fuzzy.LevenshteinDistance(needle, candidate); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	if best < 0 {
		return domain.PlayerBio{}, ErrPlayerNotFound
	}
	return bios[best], nil
}

func distinctSeasons(logs []domain.SeasonLog) []int {
	seen := make(map[int]bool, len(logs))
	seasons := make([]int, 0, len(logs))
	for _, log := range logs {
		if !seen[log.Season] {
			seen[log.Season] = true
			seasons = append(seasons, log.Season)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(seasons)))
	return seasons
}
