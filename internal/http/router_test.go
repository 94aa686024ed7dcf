package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"draft-board-service/internal/app/board"
	"draft-board-service/internal/app/profile"
	"draft-board-service/internal/app/reports"
	"draft-board-service/internal/domain"
	"draft-board-service/internal/http/handlers"
	"draft-board-service/internal/store"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	ms := store.NewMemoryStore()
	ms.SetDataset(domain.Dataset{
		Bio: []domain.PlayerBio{{PlayerID: 1, Name: "Cooper Flagg"}},
	})
	h := handlers.NewHandler(
		board.NewService(ms),
		profile.NewService(ms),
		reports.NewService(ms),
		nil,
		nil,
		nil,
	)
	return NewRouter(h)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newRouter(t)

	cases := map[string]int{
		"/health":             http.StatusOK,
		"/ready":              http.StatusOK,
		"/board":              http.StatusOK,
		"/players":            http.StatusOK,
		"/players/1":          http.StatusOK,
		"/players/1/reports":  http.StatusOK,
		"/players/99":         http.StatusNotFound, // known route, missing player
		"/players/lookup":     http.StatusBadRequest,
		"/players/1/whatever": http.StatusNotFound,
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
