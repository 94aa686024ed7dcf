package domain

import (
	"encoding/json"
	"sort"
)

// DefaultScoutSources is the fallback scout panel used when the rankings
// relation is empty and no sources can be discovered from the data.
var DefaultScoutSources = []string{
	"ESPN Rank",
	"Sam Vecenie Rank",
	"Kevin O'Connor Rank",
	"Kyle Boone Rank",
	"Gary Parrish Rank",
}

// ScoutRanking maps scout-source display names to that scout's rank for one
// player. The source set varies across data snapshots, so ranks are an open
// map rather than a fixed record; a nil value is an explicit null rank.
type ScoutRanking struct {
	PlayerID int
	Ranks    map[string]*float64
}

// UnmarshalJSON treats every key other than playerId as an optional rank.
func (r *ScoutRanking) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	r.Ranks = make(map[string]*float64, len(fields))
	for key, raw := range fields {
		if key == "playerId" {
			if err := json.Unmarshal(raw, &r.PlayerID); err != nil {
				return err
			}
			continue
		}
		var rank *float64
		if err := json.Unmarshal(raw, &rank); err != nil {
			// Non-numeric junk degrades to an absent rank instead of
			// failing the whole load.
			continue
		}
		r.Ranks[key] = rank
	}
	return nil
}

// MarshalJSON flattens the ranks back alongside playerId.
func (r ScoutRanking) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Ranks)+1)
	out["playerId"] = r.PlayerID
	for key, rank := range r.Ranks {
		out[key] = rank
	}
	return json.Marshal(out)
}

// Rank returns the rank for the given source when present and non-null.
func (r *ScoutRanking) Rank(source string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	rank, ok := r.Ranks[source]
	if !ok || rank == nil {
		return 0, false
	}
	return *rank, true
}

// AverageOver returns the mean of the non-null ranks among the given sources,
// or nil when every rank is null or absent. Null ranks are excluded from the
// mean rather than counted as zero; sources outside the panel are ignored.
func (r *ScoutRanking) AverageOver(sources []string) *float64 {
	if r == nil {
		return nil
	}
	var sum float64
	var n int
	for _, source := range sources {
		if rank, ok := r.Rank(source); ok {
			sum += rank
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// ScoutSources returns the rankable column set discovered from the relation:
// the first record's non-null sources. Records later in the relation may
// carry sources the first one lacks; those are intentionally ignored. An
// empty relation falls back to the default panel.
// Sources are sorted because Go maps do not preserve the document key order.
func ScoutSources(rankings []ScoutRanking) []string {
	if len(rankings) == 0 {
		return append([]string(nil), DefaultScoutSources...)
	}

	first := rankings[0]
	sources := make([]string, 0, len(first.Ranks))
	for source, rank := range first.Ranks {
		if rank != nil {
			sources = append(sources, source)
		}
	}
	sort.Strings(sources)
	return sources
}
