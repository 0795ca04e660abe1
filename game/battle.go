package game

// Fight resolves a full attrition battle between two armies. Every step the
// attacker throws up to MaxAttackTroops dice and the defender up to
// MaxDefendTroops, until either side is wiped out. It returns what is left of
// each army and the number of dice comparisons it took.
func Fight(rules Rules, src Source, attackerTroops, defenderTroops int) (attackers, defenders, steps int) {
	for attackerTroops > 0 && defenderTroops > 0 {
		// Determine dice count
		attackerDice := min(attackerTroops, rules.MaxAttackTroops())
		defenderDice := min(defenderTroops, rules.MaxDefendTroops())

		outcome := Compare(rules, src, attackerDice, defenderDice)

		// Apply losses
		attackerTroops -= outcome.AttackerLosses
		defenderTroops -= outcome.DefenderLosses
		steps++
	}
	return max(attackerTroops, 0), max(defenderTroops, 0), steps
}

// AttackerWon reports whether the attacker is still standing after a battle.
func AttackerWon(attackerTroops int) bool {
	return attackerTroops > 0
}
