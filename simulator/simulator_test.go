package simulator

import (
	"testing"

	"risksim/game"

	"github.com/stretchr/testify/require"
)

func TestSingleRound(t *testing.T) {
	rules := game.NewStandardRules()
	sim := NewSimulator(WithSeed(1), WithGoroutines(4))

	t.Run("single die converges to 15/36", func(t *testing.T) {
		got := sim.SingleRound(1, 1, 1_000_000)

		require.Equal(t, 1, got.Attacker)
		require.Equal(t, 1, got.Defender)
		require.Equal(t, 1_000_000, got.Trials)
		require.InDelta(t, 100*game.ExactAttackerWinRate(rules, 1, 1), got.WinPercentage, 0.3)
		require.InDelta(t, 41.67, got.WinPercentage, 0.3)
	})

	t.Run("three dice beat one die more often", func(t *testing.T) {
		single := sim.SingleRound(1, 1, 200_000)
		got := sim.SingleRound(3, 1, 200_000)

		require.Greater(t, got.WinPercentage, single.WinPercentage)
		require.Greater(t, got.WinPercentage, 60.0)
		require.InDelta(t, 100*game.ExactAttackerWinRate(rules, 3, 1), got.WinPercentage, 0.5)
	})

	t.Run("denominator uses defender dice", func(t *testing.T) {
		got := sim.SingleRound(1, 2, 200_000)

		require.InDelta(t, 100*55.0/432, got.WinPercentage, 0.5)
		require.Equal(t, float64(got.Wins)/float64(2*got.Trials)*100, got.WinPercentage)
	})

	t.Run("no defender dice", func(t *testing.T) {
		got := sim.SingleRound(3, 0, 1_000)

		require.Equal(t, int64(0), got.Wins)
		require.Equal(t, 0.0, got.WinPercentage, "Empty denominator should report 0%")
	})

	t.Run("no trials", func(t *testing.T) {
		got := sim.SingleRound(3, 2, 0)

		require.Equal(t, 0, got.Trials)
		require.Equal(t, 0.0, got.WinPercentage)
	})
}

func TestBattle(t *testing.T) {
	sim := NewSimulator(WithSeed(2))

	t.Run("single soldiers converge to 15/36", func(t *testing.T) {
		got := sim.Battle(1, 1, 100_000)

		require.InDelta(t, 41.67, got.WinPercentage, 1.0)
	})

	t.Run("empty attacker never wins", func(t *testing.T) {
		got := sim.Battle(0, 5, 1_000)

		require.Equal(t, int64(0), got.Wins)
		require.Equal(t, 0.0, got.WinPercentage)
	})

	t.Run("empty defender always loses", func(t *testing.T) {
		got := sim.Battle(5, 0, 1_000)

		require.Equal(t, int64(1_000), got.Wins)
		require.Equal(t, 100.0, got.WinPercentage)
	})

	t.Run("reporting the starting armies", func(t *testing.T) {
		got := sim.Battle(20, 7, 1_000)

		require.Equal(t, 20, got.Attacker)
		require.Equal(t, 7, got.Defender)
	})

	t.Run("bigger army wins more often", func(t *testing.T) {
		small := sim.Battle(5, 10, 20_000)
		big := sim.Battle(10, 5, 20_000)

		require.Greater(t, big.WinPercentage, small.WinPercentage)
	})
}

func TestSeededRuns(t *testing.T) {
	t.Run("same seed gives the same result", func(t *testing.T) {
		first := NewSimulator(WithSeed(42)).Battle(10, 8, 50_000)
		second := NewSimulator(WithSeed(42)).Battle(10, 8, 50_000)

		require.Equal(t, first.Wins, second.Wins)
		require.Equal(t, first.WinPercentage, second.WinPercentage)
	})

	t.Run("result does not depend on goroutines", func(t *testing.T) {
		sequential := NewSimulator(WithSeed(7), WithGoroutines(1)).SingleRound(3, 2, 45_000)
		parallel := NewSimulator(WithSeed(7), WithGoroutines(16)).SingleRound(3, 2, 45_000)

		require.Equal(t, sequential.Wins, parallel.Wins)
	})

	t.Run("unseeded runs stay in range", func(t *testing.T) {
		got := NewSimulator().SingleRound(2, 2, 20_000)

		require.GreaterOrEqual(t, got.WinPercentage, 0.0)
		require.LessOrEqual(t, got.WinPercentage, 100.0)
	})
}

func TestSimulatorOptions(t *testing.T) {
	t.Run("ignoring invalid values", func(t *testing.T) {
		sim := NewSimulator(WithGoroutines(0), WithRules(nil))

		require.Greater(t, sim.goroutines, 0)
		require.NotNil(t, sim.Rules())
	})

	t.Run("custom rules", func(t *testing.T) {
		// A single die each caps the battle at one comparison per step
		rules := &game.StandardRules{MaxAttackDice: 1, MaxDefendDice: 1}
		sim := NewSimulator(WithSeed(5), WithRules(rules), WithMetrics())

		got := sim.Battle(3, 3, 1_000)

		require.Equal(t, rules, sim.Rules())
		require.GreaterOrEqual(t, got.Metric.Steps, 3*1_000, "Every battle needs at least 3 comparisons")
		require.LessOrEqual(t, got.Metric.Steps, 5*1_000, "Every battle needs at most 5 comparisons")
	})

	t.Run("collecting metrics", func(t *testing.T) {
		sim := NewSimulator(WithSeed(9), WithGoroutines(3), WithMetrics())

		got := sim.SingleRound(3, 2, 25_000)

		require.Equal(t, 25_000, got.Metric.Trials)
		require.Equal(t, 3, got.Metric.Chunks)
		require.Equal(t, 25_000, got.Metric.Steps)
		require.Equal(t, 3, got.Metric.Goroutines)
		require.Equal(t, uint64(9), got.Metric.Seed)
	})

	t.Run("no metrics by default", func(t *testing.T) {
		got := NewSimulator(WithSeed(9)).SingleRound(3, 2, 1_000)

		require.Equal(t, 0, got.Metric.Trials)
	})
}

func TestChunkSeed(t *testing.T) {
	seen := map[uint64]bool{}
	for chunk := 0; chunk < 1000; chunk++ {
		s := chunkSeed(1, chunk)
		require.False(t, seen[s], "Chunk %d should get its own seed", chunk)
		seen[s] = true
	}
}
