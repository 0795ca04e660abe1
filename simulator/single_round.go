package simulator

import (
	"risksim/game"
)

// SingleRound throws attackerDice against defenderDice trials times and sums
// the positions won by the attacker. The win percentage is normalised by
// trials*defenderDice, not by the contested positions, so it understates the
// per-position rate when the attacker throws fewer dice than the defender.
func (s *Simulator) SingleRound(attackerDice, defenderDice, trials int) Result {
	wins, metric := s.run(trials, func(src game.Source) (int64, int) {
		outcome := game.Compare(s.rules, src, attackerDice, defenderDice)
		return int64(outcome.AttackerWins()), 1
	})

	return Result{
		Attacker:      attackerDice,
		Defender:      defenderDice,
		Trials:        max(trials, 0),
		Wins:          wins,
		WinPercentage: percentage(wins, int64(trials)*int64(defenderDice)),
		Metric:        metric,
	}
}
