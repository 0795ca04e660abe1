package simulator

import (
	"risksim/game"
)

// Battle fights trials full battles starting from attackers against defenders
// and counts the ones the attacker survives. The result carries the starting
// armies, not what was left after the last battle.
func (s *Simulator) Battle(attackers, defenders, trials int) Result {
	wins, metric := s.run(trials, func(src game.Source) (int64, int) {
		remaining, _, steps := game.Fight(s.rules, src, attackers, defenders)
		if game.AttackerWon(remaining) {
			return 1, steps
		}
		return 0, steps
	})

	return Result{
		Attacker:      attackers,
		Defender:      defenders,
		Trials:        max(trials, 0),
		Wins:          wins,
		WinPercentage: percentage(wins, int64(trials)),
		Metric:        metric,
	}
}
