package experiments

import (
	"risksim/simulator"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func logResult(result simulator.Result) *zerolog.Event {
	return log.Debug().
		Int("attacker", result.Attacker).
		Int("defender", result.Defender).
		Int("trials", result.Trials).
		Int64("wins", result.Wins).
		Float64("win_percentage", result.WinPercentage).
		Int("goroutines", result.Metric.Goroutines).
		Int("steps", result.Metric.Steps).
		Dur("duration", result.Metric.Duration)
}
