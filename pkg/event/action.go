package event

type GameAction int

const (
	ActionUnknown GameAction = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotateCW
	ActionStart
	ActionQuit
)

func (a GameAction) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
