// Package combat provides the turn-based battle state machine.
package combat

// Phase is a state of the battle state machine.
type Phase int

const (
	// PhaseEncounterStart introduces the enemy and resets the skill budget.
	PhaseEncounterStart Phase = iota
	// PhasePlayerTurn waits for the player's action.
	PhasePlayerTurn
	// PhaseEnemyTurn resolves the enemy's counter-attack.
	PhaseEnemyTurn
	// PhaseVictory means the enemy's HP reached zero.
	PhaseVictory
	// PhaseDefeat means the character's HP reached zero.
	PhaseDefeat
	// PhaseFled means the character ran away.
	PhaseFled
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseEncounterStart:
		return "encounter_start"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseEnemyTurn:
		return "enemy_turn"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhaseFled:
		return "fled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the battle is over.
func (p Phase) IsTerminal() bool {
	return p == PhaseVictory || p == PhaseDefeat || p == PhaseFled
}
