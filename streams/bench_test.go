package streams_test

import (
	"testing"

	"github.com/hasbyte1/go-stream-utils/streams"
)

// makePlayers creates n players cycling over a handful of teams.
func makePlayers(n int) []player {
	ps := make([]player, n)
	for i := range ps {
		ps[i] = player{
			team:  int64(i % 7),
			score: float64((i * 31) % 1000),
			wins:  i % 50,
		}
	}
	return ps
}

func BenchmarkSortBy(b *testing.B) {
	src := makePlayers(10_000)
	buf := make([]player, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		_ = streams.SortBy(buf, false, byScore)
	}
}

func BenchmarkSortByWeightedSum(b *testing.B) {
	src := makePlayers(10_000)
	buf := make([]player, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		_ = streams.SortByWeightedSum(buf, true, byScore, byWins)
	}
}

func BenchmarkGroupBy(b *testing.B) {
	ps := makePlayers(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = streams.GroupBy(ps, byTeam)
	}
}

func BenchmarkGroupAggregate(b *testing.B) {
	ps := makePlayers(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = streams.GroupAggregate(ps, byTeam, streams.Average, byScore, byWins)
	}
}

func BenchmarkMergeReduce(b *testing.B) {
	ps := makePlayers(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = streams.MergeReduce(ps, streams.Sum, byScore)
	}
}

func BenchmarkDistinctBy(b *testing.B) {
	ps := makePlayers(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = streams.DistinctBy(ps, byTeam)
	}
}
