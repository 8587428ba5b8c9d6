package game

// Status is the session's end condition.
type Status int

const (
	// StatusPlaying means the session is still running.
	StatusPlaying Status = iota
	// StatusWon means the boss was defeated.
	StatusWon
	// StatusLost means every heart was lost.
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}
