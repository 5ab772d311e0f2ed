package state

// Mode represents the top-level state of the playing scene.
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
	ModeGameOver
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
