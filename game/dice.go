package game

import (
	"sort"
)

// DieFaces is the number of faces on every die.
const DieFaces = 6

// Source provides the randomness for dice rolls. A Source is owned by a
// single goroutine.
type Source interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// Outcome counts the positions each side lost in one comparison.
type Outcome struct {
	AttackerLosses int
	DefenderLosses int
}

// AttackerWins returns the number of positions won by the attacker.
func (o Outcome) AttackerWins() int {
	return o.DefenderLosses
}

// Contested returns the number of resolved positions.
func (o Outcome) Contested() int {
	return o.AttackerLosses + o.DefenderLosses
}

// RollDice throws num dice and returns them sorted descending.
func RollDice(src Source, num int) []int {
	if num <= 0 {
		return nil
	}
	rolls := make([]int, num)
	for i := 0; i < num; i++ {
		rolls[i] = src.Intn(DieFaces) + 1
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	return rolls
}

// Compare rolls attackerDice against defenderDice and resolves the contested
// positions with rules.
func Compare(rules Rules, src Source, attackerDice, defenderDice int) Outcome {
	attackerRolls := RollDice(src, attackerDice)
	defenderRolls := RollDice(src, defenderDice)

	attackerLosses, defenderLosses := rules.DetermineAttackOutcome(attackerRolls, defenderRolls)
	return Outcome{
		AttackerLosses: attackerLosses,
		DefenderLosses: defenderLosses,
	}
}
