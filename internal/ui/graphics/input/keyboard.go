package input

import (
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Normalize maps a key to the game's input vocabulary.
func Normalize(key ebiten.Key) domain.InputEvent {
	switch key {
	case ebiten.KeyW, ebiten.KeyUp:
		return domain.InputUp
	case ebiten.KeyS, ebiten.KeyDown:
		return domain.InputDown
	case ebiten.KeyA, ebiten.KeyLeft:
		return domain.InputLeft
	case ebiten.KeyD, ebiten.KeyRight:
		return domain.InputRight
	case ebiten.KeySpace:
		return domain.InputRestart
	case ebiten.KeyEscape:
		return domain.InputEscape
	}
	return domain.InputOther
}

type KeyboardHandler struct {
	keys []ebiten.Key
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Poll returns the events of keys pressed since the previous frame. Closing
// the window counts as a quit.
func (kh *KeyboardHandler) Poll() []domain.InputEvent {
	kh.keys = inpututil.AppendJustPressedKeys(kh.keys[:0])

	events := make([]domain.InputEvent, 0, len(kh.keys)+1)
	for _, key := range kh.keys {
		if e := Normalize(key); e != domain.InputOther {
			events = append(events, e)
		}
	}

	if ebiten.IsWindowBeingClosed() {
		events = append(events, domain.InputQuit)
	}

	return events
}
