package reports

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"draft-board-service/internal/domain"
	"draft-board-service/internal/timeutil"
)

var (
	// ErrEmptyReport rejects a report whose body is empty or whitespace.
	ErrEmptyReport = errors.New("report body must not be empty")
	// ErrPlayerNotFound signals an unknown player id.
	ErrPlayerNotFound = errors.New("player not found")
)

// Store defines the dataset view the ledger seeds from.
type Store interface {
	GetBio(id int) (domain.PlayerBio, bool)
	ReportsFor(id int) []domain.ScoutingReport
}

// Service owns the session report ledger: the dataset's reports for a player
// plus any reports added during this process's lifetime. Session additions
// are never written back to the dataset; Reset discards them, reproducing a
// fresh seed from the original relation.
type Service struct {
	store Store
	now   func() time.Time
	newID func() string

	mu    sync.Mutex
	added map[int][]entry
	seq   int
}

// entry pairs a session-added report with its insertion sequence so that
// same-day reports order newest-insertion-first.
type entry struct {
	report domain.ScoutingReport
	seq    int
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: func() string { return "report-" + uuid.NewString() },
		added: make(map[int][]entry),
	}
}

// WithNow overrides the clock; intended for tests.
func (s *Service) WithNow(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithIDGenerator overrides report id generation; intended for tests.
func (s *Service) WithIDGenerator(newID func() string) *Service {
	s.newID = newID
	return s
}

// Ledger returns the player's reports newest-first: dataset seeds merged
// with this session's additions. Reports without a parseable date sort
// oldest.
func (s *Service) Ledger(playerID int) ([]domain.ScoutingReport, error) {
	if _, ok := s.store.GetBio(playerID); !ok {
		return nil, ErrPlayerNotFound
	}

	entries := make([]entry, 0)
	for _, r := range s.store.ReportsFor(playerID) {
		entries = append(entries, entry{report: r})
	}
	s.mu.Lock()
	entries = append(entries, s.added[playerID]...)
	s.mu.Unlock()

	// Stable sort by (date, insertion sequence) descending: seeds carry
	// sequence zero, so a report added today still lands above a seed
	// dated today.
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := reportTime(entries[i].report), reportTime(entries[j].report)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return entries[i].seq > entries[j].seq
	})

	out := make([]domain.ScoutingReport, len(entries))
	for i, e := range entries {
		out[i] = e.report
	}
	return out, nil
}

// Add appends a new report for the player, stamped with the current date and
// a generated id. Blank bodies are rejected; the scout name may be empty.
func (s *Service) Add(playerID int, scout, body string) (domain.ScoutingReport, error) {
	if _, ok := s.store.GetBio(playerID); !ok {
		return domain.ScoutingReport{}, ErrPlayerNotFound
	}
	if strings.TrimSpace(body) == "" {
		return domain.ScoutingReport{}, ErrEmptyReport
	}

	date := timeutil.FormatDate(s.now())
	report := domain.ScoutingReport{
		ReportID: s.newID(),
		Scout:    strings.TrimSpace(scout),
		Report:   body,
		PlayerID: playerID,
		Date:     &date,
	}

	s.mu.Lock()
	s.seq++
	s.added[playerID] = append(s.added[playerID], entry{report: report, seq: s.seq})
	s.mu.Unlock()

	return report, nil
}

// Reset discards this session's additions for the player; the next Ledger
// call re-seeds from the dataset alone.
func (s *Service) Reset(playerID int) {
	s.mu.Lock()
	delete(s.added, playerID)
	s.mu.Unlock()
}

// reportTime resolves a report's sort instant; missing or unparseable dates
// are treated as the oldest possible.
func reportTime(r domain.ScoutingReport) time.Time {
	if r.Date == nil {
		return time.Time{}
	}
	t, ok := timeutil.ParseFlexibleDate(*r.Date)
	if !ok {
		return time.Time{}
	}
	return t
}
