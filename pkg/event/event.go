package event

// State is the phase of the game loop.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

type Event struct {
	Message string
}

type GameOverEvent struct {
	Event
	Score     int
	HighScore int
}

type ScoreEvent struct {
	Event
	Score int
	Lines int
}
