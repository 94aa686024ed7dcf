package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"draft-board-service/internal/app/board"
	"draft-board-service/internal/app/profile"
	"draft-board-service/internal/app/reports"
	"draft-board-service/internal/domain"
	"draft-board-service/internal/loader"
	"draft-board-service/internal/metrics"
	"draft-board-service/internal/store"
	"draft-board-service/internal/testutil"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func sampleDataset() domain.Dataset {
	return domain.Dataset{
		Bio: []domain.PlayerBio{
			{PlayerID: 1, Name: "Cooper Flagg", BirthDate: sptr("2006-12-21"), CurrentTeam: sptr("Duke")},
			{PlayerID: 2, Name: "Dylan Harper", CurrentTeam: sptr("Rutgers")},
		},
		ScoutRankings: []domain.ScoutRanking{
			{PlayerID: 1, Ranks: map[string]*float64{"ESPN Rank": fptr(1)}},
			{PlayerID: 2, Ranks: map[string]*float64{"ESPN Rank": fptr(2)}},
		},
		SeasonLogs: []domain.SeasonLog{
			{PlayerID: 1, Season: 2025, GamesPlayed: 37, Points: fptr(711)},
		},
		ScoutingReports: []domain.ScoutingReport{
			{ReportID: "seed-1", Scout: "A", Report: "seed report", PlayerID: 1, Date: sptr("2025-01-10")},
		},
	}
}

func newHandler(t *testing.T, ds domain.Dataset, statusFn func() loader.Status) (*Handler, *metrics.Recorder) {
	t.Helper()
	st := store.NewMemoryStore()
	st.SetDataset(ds)
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	fixed := testutil.NowAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	h := NewHandler(
		board.NewService(st),
		profile.NewService(st).WithNow(fixed),
		reports.NewService(st).WithNow(fixed),
		logger,
		rec,
		statusFn,
	)
	return h, rec
}

func TestHealth(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthRejectsPost(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)
	rr := testutil.Serve(h, http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestReadyReflectsLoaderStatus(t *testing.T) {
	ready := loader.Status{LastSuccess: time.Now()}
	h, _ := newHandler(t, sampleDataset(), func() loader.Status { return ready })
	rr := testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	notReady := loader.Status{LastError: "fetch failed"}
	h, _ = newHandler(t, sampleDataset(), func() loader.Status { return notReady })
	rr = testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "fetch failed" {
		t.Fatalf("expected load error surfaced, got %q", resp["error"])
	}
}

func TestBoardDefaultOrder(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/board", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.BoardResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Count != 2 || len(resp.Players) != 2 {
		t.Fatalf("expected 2 players, got %+v", resp)
	}
	if resp.Players[0].PlayerID != 1 {
		t.Fatalf("expected avgRank ascending by default, got %+v", resp.Players)
	}
	if resp.TopProspect == nil || resp.TopProspect.PlayerID != 1 {
		t.Fatalf("expected top prospect, got %+v", resp.TopProspect)
	}
}

func TestPlayersAliasesBoard(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)
	rr := testutil.Serve(h, http.MethodGet, "/players?sort=name&dir=desc", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.BoardResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Players[0].Name != "Dylan Harper" {
		t.Fatalf("expected name descending, got %+v", resp.Players)
	}
}

func TestBoardRejectsUnknownSortKey(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)
	rr := testutil.Serve(h, http.MethodGet, "/board?sort=salary", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestBoardSearchFilters(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)
	rr := testutil.Serve(h, http.MethodGet, "/board?search=rutgers", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp domain.BoardResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Count != 1 || resp.Players[0].PlayerID != 2 {
		t.Fatalf("expected only the Rutgers player, got %+v", resp.Players)
	}
}

func TestLookup(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/players/lookup?name=Coper+Flag", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var bio domain.PlayerBio
	testutil.DecodeJSON(t, rr, &bio)
	if bio.PlayerID != 1 {
		t.Fatalf("expected fuzzy match to player 1, got %+v", bio)
	}

	rr = testutil.Serve(h, http.MethodGet, "/players/lookup?name=Nobody+Anywhere", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(h, http.MethodGet, "/players/lookup", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestProfile(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/players/1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var p profile.Profile
	testutil.DecodeJSON(t, rr, &p)
	if p.Bio.PlayerID != 1 {
		t.Fatalf("unexpected profile %+v", p.Bio)
	}
	if p.Age == nil || *p.Age != 18 {
		t.Fatalf("expected age 18 on 2025-06-01, got %v", p.Age)
	}
	if len(p.SeasonLogs) != 1 {
		t.Fatalf("expected one season line, got %+v", p.SeasonLogs)
	}
	if got := p.SeasonLogs[0].PerGame.Points; got == nil || *got != 19.2 {
		t.Fatalf("expected per-game points 19.2, got %v", got)
	}
}

func TestProfileErrors(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/players/99", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(h, http.MethodGet, "/players/abc", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.Serve(h, http.MethodGet, "/players/1?season=next", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.Serve(h, http.MethodDelete, "/players/1", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestListReports(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)

	rr := testutil.Serve(h, http.MethodGet, "/players/1/reports", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp struct {
		Count   int                     `json:"count"`
		Reports []domain.ScoutingReport `json:"reports"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Count != 1 || resp.Reports[0].ReportID != "seed-1" {
		t.Fatalf("expected seeded ledger, got %+v", resp)
	}
}

func TestAddReport(t *testing.T) {
	h, rec := newHandler(t, sampleDataset(), nil)

	body := strings.NewReader(`{"scout":"New Scout","report":"tremendous motor"}`)
	rr := testutil.Serve(h, http.MethodPost, "/players/1/reports", body)
	testutil.AssertStatus(t, rr, http.StatusCreated)

	var created domain.ScoutingReport
	testutil.DecodeJSON(t, rr, &created)
	if created.ReportID == "" || created.PlayerID != 1 {
		t.Fatalf("unexpected created report %+v", created)
	}
	if created.Date == nil || *created.Date != "2025-06-01" {
		t.Fatalf("expected current date stamp, got %v", created.Date)
	}
	if rec.ReportsAdded() != 1 {
		t.Fatalf("expected report-added metric, got %d", rec.ReportsAdded())
	}

	rr = testutil.Serve(h, http.MethodGet, "/players/1/reports", nil)
	var resp struct {
		Count   int                     `json:"count"`
		Reports []domain.ScoutingReport `json:"reports"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Count != 2 || resp.Reports[0].ReportID != created.ReportID {
		t.Fatalf("expected new report first, got %+v", resp)
	}
}

func TestAddReportErrors(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)

	rr := testutil.Serve(h, http.MethodPost, "/players/1/reports", strings.NewReader(`{"scout":"S","report":"   "}`))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.Serve(h, http.MethodPost, "/players/99/reports", strings.NewReader(`{"scout":"S","report":"note"}`))
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(h, http.MethodPost, "/players/1/reports", strings.NewReader(`not json`))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.Serve(h, http.MethodDelete, "/players/1/reports", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestUnknownPlayerSubpath(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)
	rr := testutil.Serve(h, http.MethodGet, "/players/1/stats", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestUnknownPathViaDispatcher(t *testing.T) {
	h, _ := newHandler(t, sampleDataset(), nil)
	rr := testutil.Serve(h, http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
