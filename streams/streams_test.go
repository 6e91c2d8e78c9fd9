package streams_test

import (
	"errors"
	"testing"
)

// player is the record type used throughout the tests. All field
// access goes through selector closures, as the API requires.
type player struct {
	name  string
	team  int64
	score float64
	wins  int
	games int
}

// roster returns a fresh fixture per call so in-place sorts in one
// test cannot leak into another.
func roster() []player {
	return []player{
		{name: "ann", team: 4, score: 120, wins: 11, games: 20},
		{name: "bob", team: 4, score: 110, wins: 12, games: 20},
		{name: "cat", team: 1, score: 130, wins: 13, games: 200},
		{name: "dan", team: 1, score: 150, wins: 14, games: 20},
	}
}

func byScore(p player) float64 { return p.score }
func byWins(p player) float64  { return float64(p.wins) }
func byTeam(p player) int64    { return p.team }
func byName(p player) string   { return p.name }

func names(ps []player) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.name
	}
	return out
}

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func assertErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
}
