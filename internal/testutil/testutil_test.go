package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"draft-board-service/internal/domain"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseDate("2024-01-02") != time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid date")
		}
	}()
	MustParseDate("not-a-date")
}

func TestFixtureHelpers(t *testing.T) {
	bio := SampleBio(1, "Test Player")
	if bio.PlayerID != 1 || bio.FirstName != "Test" || bio.LastName != "Player" {
		t.Fatalf("unexpected bio fixture %+v", bio)
	}
	ranking := SampleRanking(1, 3)
	for source := range ranking.Ranks {
		if got, ok := ranking.Rank(source); !ok || got != 3 {
			t.Fatalf("expected rank 3 for %s", source)
		}
	}
	ds := SampleDataset(SampleBio(1, "A One"), SampleBio(2, "B Two"))
	if len(ds.Bio) != 2 || len(ds.ScoutRankings) != 2 {
		t.Fatalf("unexpected dataset counts %+v", ds.Counts())
	}
	if got, ok := ds.ScoutRankings[1].Rank(domain.DefaultScoutSources[0]); !ok || got != 2 {
		t.Fatalf("expected second bio ranked 2, got %v ok=%v", got, ok)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()
	ds := SampleDataset(SampleBio(1, "A One"))

	good := GoodProvider{Dataset: ds}
	if got, err := good.FetchDataset(ctx); err != nil || len(got.Bio) != 1 {
		t.Fatalf("expected dataset from GoodProvider, got %v err %v", got.Counts(), err)
	}

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchDataset(ctx); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}

	notify := &NotifyingProvider{Dataset: ds, Notify: make(chan struct{}, 1)}
	if _, err := notify.FetchDataset(ctx); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	select {
	case <-notify.Notify:
	default:
		t.Fatalf("expected notify channel to close or signal")
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestServerStubs(t *testing.T) {
	l := &StubLoader{Err: errors.New("stop")}
	l.Start(context.Background())
	if err := l.Stop(context.Background()); !errors.Is(err, l.Err) {
		t.Fatalf("expected stop error")
	}
	if l.StartCalls != 1 || l.StopCalls != 1 {
		t.Fatalf("unexpected call counts %+v", l)
	}
	select {
	case <-l.Done():
	default:
		t.Fatalf("expected Done channel to be closed by default")
	}

	s := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down"), HandlerVal: http.NewServeMux()}
	_ = s.ListenAndServe()
	_ = s.Shutdown(context.Background())
	_ = s.Handler()
	_ = s.Addr()
	if s.ListenCalls != 1 || s.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", s)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	e := &ErrHTTPServer{}
	_ = e.ListenAndServe()
	_ = e.Shutdown(context.Background())
	if e.Addr() == "" || e.Handler() == nil || e.ShutdownCalls != 1 {
		t.Fatalf("unexpected ErrHTTPServer state %+v", e)
	}

	c := &CloseableHTTPServer{}
	if !errors.Is(c.ListenAndServe(), http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed")
	}
	_ = c.Shutdown(context.Background())
	if c.Addr() == "" || c.Handler() == nil || c.ShutdownCalls != 1 {
		t.Fatalf("unexpected CloseableHTTPServer state %+v", c)
	}
}
