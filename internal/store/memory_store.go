package store

import (
	"sync"

	"draft-board-service/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of the loaded draft dataset with
// per-player lookup indexes. The dataset is set once by the loader and read
// thereafter; nothing mutates the base relations.
type MemoryStore struct {
	mu sync.RWMutex

	bios            []domain.PlayerBio
	bioByID         map[int]domain.PlayerBio
	rankingByID     map[int]domain.ScoutRanking
	measurementByID map[int]domain.Measurement
	gameLogsByID    map[int][]domain.GameLog
	seasonLogsByID  map[int][]domain.SeasonLog
	reportsByID     map[int][]domain.ScoutingReport
	sources         []string
	loaded          bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bioByID:         make(map[int]domain.PlayerBio),
		rankingByID:     make(map[int]domain.ScoutRanking),
		measurementByID: make(map[int]domain.Measurement),
		gameLogsByID:    make(map[int][]domain.GameLog),
		seasonLogsByID:  make(map[int][]domain.SeasonLog),
		reportsByID:     make(map[int][]domain.ScoutingReport),
	}
}

// SetDataset replaces the held dataset and rebuilds all indexes. Duplicate
// playerIds within a relation resolve first-match-wins. The scout-source
// column set is computed once here.
func (s *MemoryStore) SetDataset(ds domain.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bios = append([]domain.PlayerBio(nil), ds.Bio...)

	s.bioByID = make(map[int]domain.PlayerBio, len(ds.Bio))
	for _, b := range ds.Bio {
		if _, exists := s.bioByID[b.PlayerID]; !exists {
			s.bioByID[b.PlayerID] = b
		}
	}

	s.rankingByID = make(map[int]domain.ScoutRanking, len(ds.ScoutRankings))
	for _, r := range ds.ScoutRankings {
		if _, exists := s.rankingByID[r.PlayerID]; !exists {
			s.rankingByID[r.PlayerID] = r
		}
	}

	s.measurementByID = make(map[int]domain.Measurement, len(ds.Measurements))
	for _, m := range ds.Measurements {
		if _, exists := s.measurementByID[m.PlayerID]; !exists {
			s.measurementByID[m.PlayerID] = m
		}
	}

	s.gameLogsByID = make(map[int][]domain.GameLog)
	for _, gl := range ds.GameLogs {
		s.gameLogsByID[gl.PlayerID] = append(s.gameLogsByID[gl.PlayerID], gl)
	}

	s.seasonLogsByID = make(map[int][]domain.SeasonLog)
	for _, sl := range ds.SeasonLogs {
		s.seasonLogsByID[sl.PlayerID] = append(s.seasonLogsByID[sl.PlayerID], sl)
	}

	s.reportsByID = make(map[int][]domain.ScoutingReport)
	for _, sr := range ds.ScoutingReports {
		s.reportsByID[sr.PlayerID] = append(s.reportsByID[sr.PlayerID], sr)
	}

	s.sources = domain.ScoutSources(ds.ScoutRankings)
	s.loaded = true
}

// Loaded reports whether a dataset has been set.
func (s *MemoryStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// ListBios returns a copy of the bio relation in document order.
func (s *MemoryStore) ListBios() []domain.PlayerBio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PlayerBio(nil), s.bios...)
}

// GetBio retrieves a player's bio by id.
func (s *MemoryStore) GetBio(id int) (domain.PlayerBio, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bioByID[id]
	return b, ok
}

// RankingFor retrieves a player's scout ranking record, if any.
func (s *MemoryStore) RankingFor(id int) (domain.ScoutRanking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rankingByID[id]
	return r, ok
}

// MeasurementFor retrieves a player's combine measurements, if any.
func (s *MemoryStore) MeasurementFor(id int) (domain.Measurement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.measurementByID[id]
	return m, ok
}

// GameLogsFor returns the player's game logs in document order.
func (s *MemoryStore) GameLogsFor(id int) []domain.GameLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.GameLog(nil), s.gameLogsByID[id]...)
}

// SeasonLogsFor returns the player's season logs in document order.
func (s *MemoryStore) SeasonLogsFor(id int) []domain.SeasonLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.SeasonLog(nil), s.seasonLogsByID[id]...)
}

// ReportsFor returns the player's seeded scouting reports in document order.
func (s *MemoryStore) ReportsFor(id int) []domain.ScoutingReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ScoutingReport(nil), s.reportsByID[id]...)
}

// ScoutSources returns the rankable column set computed at load time.
func (s *MemoryStore) ScoutSources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.sources...)
}
