package game

// Rules decides how many dice each side may throw and who loses a contested
// position.
type Rules interface {
	MaxAttackTroops() int
	MaxDefendTroops() int
	DetermineAttackOutcome(attackerRolls, defenderRolls []int) (attackerLosses, defenderLosses int)
}
