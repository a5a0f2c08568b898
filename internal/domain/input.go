package domain

type InputEvent int

const (
	InputOther InputEvent = iota
	InputQuit
	InputEscape
	InputUp
	InputDown
	InputLeft
	InputRight
	InputRestart
)

func (e InputEvent) Direction() (Direction, bool) {
	switch e {
	case InputUp:
		return DirectionUp, true
	case InputDown:
		return DirectionDown, true
	case InputLeft:
		return DirectionLeft, true
	case InputRight:
		return DirectionRight, true
	}
	return 0, false
}

func (e InputEvent) String() string {
	switch e {
	case InputQuit:
		return "quit"
	case InputEscape:
		return "escape"
	case InputUp:
		return "up"
	case InputDown:
		return "down"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputRestart:
		return "restart"
	}
	return "other"
}
