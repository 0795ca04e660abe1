package game

import (
	"sort"
)

// ExactOutcomes enumerates every throw of attackerDice against defenderDice
// and returns the probability of each outcome. The work grows as
// 6^(attackerDice+defenderDice), so it is meant for the small pools the rules
// allow.
func ExactOutcomes(rules Rules, attackerDice, defenderDice int) map[Outcome]float64 {
	attackerThrows := allRolls(attackerDice)
	defenderThrows := allRolls(defenderDice)

	total := 0
	counts := make(map[Outcome]int)
	for _, attackerRolls := range attackerThrows {
		for _, defenderRolls := range defenderThrows {
			total++
			attackerLosses, defenderLosses := rules.DetermineAttackOutcome(attackerRolls, defenderRolls)
			counts[Outcome{AttackerLosses: attackerLosses, DefenderLosses: defenderLosses}]++
		}
	}

	outcomes := make(map[Outcome]float64, len(counts))
	for outcome, count := range counts {
		outcomes[outcome] = float64(count) / float64(total)
	}
	return outcomes
}

// ExactAttackerWinRate is the closed form of the single-round estimate: the
// expected number of positions won by the attacker divided by the number of
// defender dice.
func ExactAttackerWinRate(rules Rules, attackerDice, defenderDice int) float64 {
	if defenderDice <= 0 {
		return 0
	}
	expected := 0.0
	for outcome, p := range ExactOutcomes(rules, attackerDice, defenderDice) {
		expected += float64(outcome.AttackerWins()) * p
	}
	return expected / float64(defenderDice)
}

// allRolls lists every throw of n dice, each sorted descending.
func allRolls(n int) [][]int {
	if n <= 0 {
		return [][]int{nil}
	}
	var out [][]int
	for _, sub := range allRolls(n - 1) {
		for face := 1; face <= DieFaces; face++ {
			roll := append([]int{face}, sub...)
			sort.Sort(sort.Reverse(sort.IntSlice(roll)))
			out = append(out, roll)
		}
	}
	return out
}
