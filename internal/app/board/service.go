package board

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"draft-board-service/internal/domain"
)

// Store defines the dataset view the board needs.
type Store interface {
	ListBios() []domain.PlayerBio
	RankingFor(id int) (domain.ScoutRanking, bool)
	ScoutSources() []string
}

// Direction orders a sorted board.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Direct sort keys; any scout-source column name is also accepted.
const (
	SortByName    = "name"
	SortByTeam    = "team"
	SortByAvgRank = "avgRank"
)

// Query is one board request: an optional substring search plus sort column
// and direction. Zero values mean no search, avgRank ascending.
type Query struct {
	Search    string
	SortKey   string
	Direction Direction
}

// Service derives and orders the big board from the loaded dataset.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Board combines, filters, and sorts the big board for one query. Filtering
// happens before sorting, and both recompute in full on every call.
func (s *Service) Board(q Query) (domain.BoardResponse, error) {
	sources := s.store.ScoutSources()

	key := q.SortKey
	if key == "" {
		key = SortByAvgRank
	}
	dir := q.Direction
	if dir == "" {
		dir = Ascending
	}
	if dir != Ascending && dir != Descending {
		return domain.BoardResponse{}, fmt.Errorf("unknown sort direction %q", q.Direction)
	}
	if !validSortKey(key, sources) {
		return domain.BoardResponse{}, fmt.Errorf("unknown sort key %q", key)
	}

	players := s.Combine()
	players = Filter(players, q.Search)
	Sort(players, key, dir)

	return domain.BoardResponse{
		Sources:     sources,
		Count:       len(players),
		TopProspect: TopProspect(players),
		Players:     players,
	}, nil
}

// Combine joins each bio with its scout ranking record and the average of
// its non-null ranks across the discovered sources. Players without a
// ranking record keep a nil Rankings and a nil AvgRank. Rows come back in
// dataset order.
func (s *Service) Combine() []domain.CombinedPlayer {
	bios := s.store.ListBios()
	sources := s.store.ScoutSources()
	players := make([]domain.CombinedPlayer, 0, len(bios))
	for _, bio := range bios {
		player := domain.CombinedPlayer{PlayerBio: bio}
		if ranking, ok := s.store.RankingFor(bio.PlayerID); ok {
			r := ranking
			player.Rankings = &r
			player.AvgRank = r.AverageOver(sources)
		}
		players = append(players, player)
	}
	return players
}

// Filter keeps players whose name or current team contains the search term,
// case-insensitively. An empty term passes everything through. Relative order
// is preserved.
func Filter(players []domain.CombinedPlayer, search string) []domain.CombinedPlayer {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return players
	}
	out := players[:0:0]
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.TeamName()), term) {
			out = append(out, p)
		}
	}
	return out
}

// Sort orders players in place by the given column. Missing values sort last
// in both directions; string columns compare locale-aware, numeric columns by
// value. The sort is stable, so equal rows keep their relative order.
func Sort(players []domain.CombinedPlayer, key string, dir Direction) {
	desc := dir == Descending

	if key == SortByName || key == SortByTeam {
		// Collators are not safe for concurrent use, so build one per sort.
		collator := collate.New(language.English)
		sort.SliceStable(players, func(i, j int) bool {
			return lessString(stringValue(players[i], key), stringValue(players[j], key), desc, collator)
		})
		return
	}

	sort.SliceStable(players, func(i, j int) bool {
		av, aok := numericValue(players[i], key)
		bv, bok := numericValue(players[j], key)
		if !aok || !bok {
			// One side missing: the present value wins regardless of
			// direction. Both missing: equal.
			return aok
		}
		if desc {
			return av > bv
		}
		return av < bv
	})
}

// TopProspect returns the player with the best (lowest) average rank, or nil
// when no player carries one. Ties keep the earlier row.
func TopProspect(players []domain.CombinedPlayer) *domain.CombinedPlayer {
	var top *domain.CombinedPlayer
	for i := range players {
		if players[i].AvgRank == nil {
			continue
		}
		if top == nil || *players[i].AvgRank < *top.AvgRank {
			top = &players[i]
		}
	}
	return top
}

func validSortKey(key string, sources []string) bool {
	switch key {
	case SortByName, SortByTeam, SortByAvgRank:
		return true
	}
	for _, source := range sources {
		if key == source {
			return true
		}
	}
	return false
}

func stringValue(p domain.CombinedPlayer, key string) *string {
	if key == SortByTeam {
		return p.CurrentTeam
	}
	return &p.Name
}

func lessString(a, b *string, desc bool, collator *collate.Collator) bool {
	if a == nil || b == nil {
		return a != nil
	}
	cmp := collator.CompareString(*a, *b)
	if desc {
		return cmp > 0
	}
	return cmp < 0
}

func numericValue(p domain.CombinedPlayer, key string) (float64, bool) {
	if key == SortByAvgRank {
		if p.AvgRank == nil {
			return 0, false
		}
		return *p.AvgRank, true
	}
	return p.Rankings.Rank(key)
}
